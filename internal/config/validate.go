package config

import (
	"fmt"
	"net/url"
	"strings"

	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/theme"
)

// Validate checks that the configuration can build a store and a server.
func (c *Config) Validate() error {
	var invalid []string

	if strings.TrimSpace(c.Server.Addr) == "" {
		invalid = append(invalid, "server.addr")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.IdleTimeout < 0 {
		invalid = append(invalid, "server.timeouts")
	}
	if c.Session.HashKey != "" && len(c.Session.HashKey) < 32 {
		invalid = append(invalid, "session.hash_key")
	}
	switch len(c.Session.BlockKey) {
	case 0, 16, 24, 32:
	default:
		invalid = append(invalid, "session.block_key")
	}

	if len(c.Sites) == 0 {
		invalid = append(invalid, "sites")
	}
	ids := map[string]bool{}
	hosts := map[string]string{}
	defaults := 0
	for i, s := range c.Sites {
		field := func(name string) string { return fmt.Sprintf("sites[%d].%s", i, name) }
		id := strings.TrimSpace(s.ID)
		if id == "" {
			invalid = append(invalid, field("id"))
		} else if ids[id] {
			invalid = append(invalid, field("id")+" (duplicate)")
		}
		ids[id] = true
		if s.Default {
			defaults++
		}
		if _, err := s.LocalePair(); err != nil {
			invalid = append(invalid, field("locales"))
		}
		if s.Theme != "" {
			if _, ok := theme.Lookup(s.Theme); !ok {
				invalid = append(invalid, field("theme"))
			}
		}
		if _, err := s.Order(); err != nil {
			invalid = append(invalid, field("section_order"))
		}
		for _, h := range s.Hosts {
			norm, err := NormalizeHost(h)
			if err != nil {
				invalid = append(invalid, field("hosts"))
				continue
			}
			if owner, taken := hosts[norm]; taken && owner != id {
				invalid = append(invalid, field("hosts")+" (duplicate)")
			}
			hosts[norm] = id
		}
		if !validURL(s.URL) {
			invalid = append(invalid, field("url"))
		}
		if !validURL(s.ChatEmbedURL) {
			invalid = append(invalid, field("chat_embed_url"))
		}
	}
	if defaults > 1 {
		invalid = append(invalid, "sites.default (more than one)")
	}

	if len(invalid) > 0 {
		return &ValidationError{fields: invalid}
	}
	return nil
}

// LocalePair parses the site's locale codes, defaulting to zh and en.
func (s SiteConfig) LocalePair() (content.LocalePair, error) {
	primary := content.Fallback(s.PrimaryLocale, "zh")
	secondary := content.Fallback(s.SecondaryLocale, "en")
	return content.ParseLocalePair(primary, secondary)
}

// Order parses section_order into section keys.
func (s SiteConfig) Order() ([]content.SectionKey, error) {
	out := make([]content.SectionKey, 0, len(s.SectionOrder))
	for _, name := range s.SectionOrder {
		key := content.ParseSectionKey(name)
		if key == content.SectionUnknown {
			return nil, fmt.Errorf("%w: unknown section %q", ErrInvalid, name)
		}
		out = append(out, key)
	}
	return out, nil
}

func validURL(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return true
	}
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "https" || u.Scheme == "http") && u.Host != ""
}
