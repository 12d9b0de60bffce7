package config

import (
	"fmt"
	"io/fs"
	"net"
	"os"
	"strings"

	"github.com/gorilla/securecookie"
	"golang.org/x/net/idna"

	"finitefield.org/landing-web/internal/content"
)

// NormalizeHost lower-cases host, strips any port and converts IDNs to their
// ASCII form so "Bücher.example:443" and "xn--bcher-kva.example" match.
func NormalizeHost(host string) (string, error) {
	host = strings.TrimSpace(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	if host == "" {
		return "", fmt.Errorf("%w: empty host", ErrInvalid)
	}
	if ip := net.ParseIP(strings.Trim(host, "[]")); ip != nil {
		return ip.String(), nil
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("%w: host %q: %v", ErrInvalid, host, err)
	}
	return ascii, nil
}

// ContentFS returns the directory named by content_dir, or the documents
// bundled with the binary.
func (c *Config) ContentFS() fs.FS {
	if strings.TrimSpace(c.ContentDir) == "" {
		return content.Embedded()
	}
	return os.DirFS(c.ContentDir)
}

// Spec converts the site configuration into a content.SiteSpec.
func (s SiteConfig) Spec() (content.SiteSpec, error) {
	pair, err := s.LocalePair()
	if err != nil {
		return content.SiteSpec{}, err
	}
	order, err := s.Order()
	if err != nil {
		return content.SiteSpec{}, err
	}
	hosts := make([]string, 0, len(s.Hosts))
	for _, h := range s.Hosts {
		norm, err := NormalizeHost(h)
		if err != nil {
			return content.SiteSpec{}, err
		}
		hosts = append(hosts, norm)
	}
	return content.SiteSpec{
		ID:                strings.TrimSpace(s.ID),
		Name:              s.Name,
		Dir:               s.Dir,
		Pair:              pair,
		SectionOrder:      order,
		Hosts:             hosts,
		Theme:             s.Theme,
		BaseURL:           s.URL,
		ChatEmbedURL:      s.ChatEmbedURL,
		NegotiateLanguage: s.NegotiateLanguage,
	}, nil
}

// BuildStore loads every configured site from fsys.
func (c *Config) BuildStore(fsys fs.FS) (*content.Store, error) {
	store := content.NewStore()
	for _, sc := range c.Sites {
		spec, err := sc.Spec()
		if err != nil {
			return nil, fmt.Errorf("site %s: %w", sc.ID, err)
		}
		site, err := content.LoadSite(fsys, spec)
		if err != nil {
			return nil, err
		}
		if err := store.Add(site); err != nil {
			return nil, err
		}
		if sc.Default {
			if err := store.SetDefault(site.ID()); err != nil {
				return nil, err
			}
		}
	}
	return store, nil
}

// SessionKeys returns the configured cookie keys. Missing keys are generated,
// which invalidates visitor sessions on every restart; generated reports it.
func (c *Config) SessionKeys() (hash, block []byte, generated bool) {
	hash = []byte(c.Session.HashKey)
	block = []byte(c.Session.BlockKey)
	if len(hash) == 0 {
		hash = securecookie.GenerateRandomKey(32)
		block = securecookie.GenerateRandomKey(32)
		generated = true
	}
	return hash, block, generated
}
