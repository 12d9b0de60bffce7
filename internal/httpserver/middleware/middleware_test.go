package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/lang"
	appsession "finitefield.org/landing-web/internal/session"
)

func newManager(t *testing.T) *appsession.Manager {
	t.Helper()
	m, err := appsession.NewManager(appsession.Config{HashKey: bytes.Repeat([]byte("k"), 32)})
	require.NoError(t, err)
	return m
}

func newStore(t *testing.T) *content.Store {
	t.Helper()
	store := content.NewStore()
	for _, spec := range []content.SiteSpec{
		{ID: "first", Hosts: []string{"first.example"}},
		{ID: "second", Hosts: []string{"second.example"}, NegotiateLanguage: true},
	} {
		site, err := content.NewSite(spec, &content.Document{}, &content.Document{})
		require.NoError(t, err)
		require.NoError(t, store.Add(site))
	}
	return store
}

// chain wraps h with the page middleware stack in server order.
func chain(store *content.Store, m *appsession.Manager, h http.Handler) http.Handler {
	return HTMX()(Site(store)(Session(m)(Locale()(CSRF(CSRFConfig{})(h)))))
}

func cookieFrom(t *testing.T, rr *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %s not set", name)
	return nil
}

func TestHTMXInfo(t *testing.T) {
	t.Parallel()

	var got HTMXInfo
	handler := HTMX()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = HTMXInfoFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/overlays/chat", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Current-URL", "https://first.example/?hl=en")
	req.Header.Set("HX-Target", "overlay-root")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.True(t, got.IsHTMX)
	require.Equal(t, "https://first.example/?hl=en", got.CurrentURL)
	require.Equal(t, "overlay-root", got.Target)
	require.True(t, got.Fragment())
	require.Contains(t, rr.Header().Values("Vary"), "HX-Request")
	require.False(t, IsHTMXRequest(httptest.NewRequest(http.MethodGet, "/", nil).Context()))

	req.Header.Set("HX-History-Restore-Request", "true")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	require.True(t, got.IsHTMX)
	require.False(t, got.Fragment())
}

func TestSiteResolvesHost(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	var got string
	handler := Site(store)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		site, ok := SiteFromContext(r.Context())
		require.True(t, ok)
		got = site.ID()
	}))

	cases := map[string]string{
		"second.example":      "second",
		"SECOND.example:8443": "second",
		"first.example":       "first",
		"unknown.example":     "first",
	}
	for host, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = host
		handler.ServeHTTP(httptest.NewRecorder(), req)
		require.Equal(t, want, got, host)
	}

	empty := Site(content.NewStore())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run without sites")
	}))
	rr := httptest.NewRecorder()
	empty.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestSessionPersistsBeforeRedirect(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	handler := Session(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		require.True(t, ok)
		sess.SetLocale("en")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/lang/toggle", nil))
	require.Equal(t, http.StatusSeeOther, rr.Code)

	cookie := cookieFrom(t, rr, m.CookieName())
	require.Zero(t, cookie.MaxAge, "session cookie must not outlive the browser session")
	require.True(t, cookie.Expires.IsZero())

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(cookie)
	sess, err := m.Load(next)
	require.NoError(t, err)
	require.Equal(t, "en", sess.Locale())
}

func TestSessionSavedWhenHandlerWritesNothing(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	handler := Session(m)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodHead, "/", nil))
	require.NotEmpty(t, cookieFrom(t, rr, m.CookieName()).Value)
}

func TestUnchangedSessionIsNotRewritten(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	m := newManager(t)
	handler := chain(store, m, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.Host = "first.example"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, first)
	cookie := cookieFrom(t, rr, m.CookieName())

	again := httptest.NewRequest(http.MethodGet, "/", nil)
	again.Host = "first.example"
	again.AddCookie(cookie)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, again)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Empty(t, rr.Header().Values("Set-Cookie"))

	switched := httptest.NewRequest(http.MethodGet, "/?hl=en", nil)
	switched.Host = "first.example"
	switched.AddCookie(cookie)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, switched)
	require.NotEmpty(t, cookieFrom(t, rr, m.CookieName()).Value, "a locale change rewrites the cookie")
}

func TestLocalePrecedence(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	m := newManager(t)

	var seen lang.Context
	handler := chain(store, m, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = lang.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	serve := func(target, host, accept string, cookie *http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.Host = host
		if accept != "" {
			req.Header.Set("Accept-Language", accept)
		}
		if cookie != nil {
			req.AddCookie(cookie)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	t.Run("fresh session starts in primary", func(t *testing.T) {
		rr := serve("/", "first.example", "en-US,en;q=0.9", nil)
		require.Equal(t, content.Primary, seen.Locale())
		require.Equal(t, "zh", rr.Header().Get("Content-Language"))
	})

	t.Run("query parameter wins and is remembered", func(t *testing.T) {
		rr := serve("/?hl=en", "first.example", "", nil)
		require.Equal(t, content.Secondary, seen.Locale())

		serve("/", "first.example", "", cookieFrom(t, rr, m.CookieName()))
		require.Equal(t, content.Secondary, seen.Locale(), "session keeps the choice")
	})

	t.Run("unknown code is ignored", func(t *testing.T) {
		serve("/?hl=fr", "first.example", "", nil)
		require.Equal(t, content.Primary, seen.Locale())
	})

	t.Run("negotiating site honours Accept-Language", func(t *testing.T) {
		rr := serve("/", "second.example", "en-GB,en;q=0.8", nil)
		require.Equal(t, content.Secondary, seen.Locale())
		require.Contains(t, rr.Header().Values("Vary"), "Accept-Language")

		serve("/", "second.example", "ja", nil)
		require.Equal(t, content.Primary, seen.Locale())
	})
}

func TestCSRF(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	m := newManager(t)

	var token string
	handler := chain(store, m, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token = CSRFTokenFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusNoContent, rr.Code)
	require.NotEmpty(t, token)
	cookie := cookieFrom(t, rr, m.CookieName())
	issued := token

	post := func(header, field string) int {
		form := url.Values{}
		if field != "" {
			form.Set("csrf_token", field)
		}
		req := httptest.NewRequest(http.MethodPost, "/lang/toggle", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if header != "" {
			req.Header.Set("X-CSRF-Token", header)
		}
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	require.Equal(t, http.StatusForbidden, post("", ""))
	require.Equal(t, http.StatusForbidden, post("wrong", ""))
	require.Equal(t, http.StatusForbidden, post("", "wrong"))
	require.Equal(t, http.StatusNoContent, post(issued, ""))
	require.Equal(t, http.StatusNoContent, post("", issued))
}

func TestNoStoreAndPrivate(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	rr := httptest.NewRecorder()
	NoStore()(ok).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "no-store", rr.Header().Get("Cache-Control"))

	rr = httptest.NewRecorder()
	Private()(ok).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "private, no-cache", rr.Header().Get("Cache-Control"))
	require.Contains(t, rr.Header().Values("Vary"), "Cookie")
}

func TestAssetsETag(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"site.css":        {Data: []byte("body{}")},
		"images/logo.svg": {Data: []byte("<svg/>")},
		"overlay.js":      {Data: []byte("void 0")},
	}
	handler := Assets(fsys, 7*24*time.Hour)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/site.css", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "body{}", rr.Body.String())
	require.Equal(t, "public, max-age=604800, stale-while-revalidate=86400", rr.Header().Get("Cache-Control"))
	etag := rr.Header().Get("ETag")
	require.True(t, strings.HasPrefix(etag, `W/"`))

	req := httptest.NewRequest(http.MethodGet, "/site.css", nil)
	req.Header.Set("If-None-Match", etag)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNotModified, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/images/logo.svg", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotEmpty(t, rr.Header().Get("ETag"))

	rr = httptest.NewRecorder()
	Assets(fsys, 0).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/overlay.js", nil))
	require.Equal(t, "no-cache", rr.Header().Get("Cache-Control"))
}
