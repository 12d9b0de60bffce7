package testutil

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"finitefield.org/landing-web/internal/config"
	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/httpserver"
	"finitefield.org/landing-web/internal/i18n"
	"finitefield.org/landing-web/internal/session"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithSites replaces the bundled sites.
func WithSites(store *content.Store) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Sites = store
	}
}

// WithNow pins the clock used for the copyright year.
func WithNow(now func() time.Time) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Now = now
	}
}

// NewServer constructs an httptest server running the landing HTTP stack with
// the bundled sites, embedded catalogs and a fixed session key.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	cfg.Sites = config.DefaultSites()
	store, err := cfg.BuildStore(content.Embedded())
	if err != nil {
		t.Fatalf("build store: %v", err)
	}
	catalog, err := i18n.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	sessions, err := session.NewManager(session.Config{HashKey: bytes.Repeat([]byte("t"), 32)})
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}

	srvCfg := httpserver.Config{
		Address:  ":0",
		Sites:    store,
		Catalog:  catalog,
		Sessions: sessions,
	}
	for _, opt := range opts {
		opt(&srvCfg)
	}

	srv, err := httpserver.New(srvCfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
