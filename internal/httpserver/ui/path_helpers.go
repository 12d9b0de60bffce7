package ui

import (
	"net/url"
	"strings"

	custommw "finitefield.org/landing-web/internal/httpserver/middleware"
)

// returnPath reduces raw to a same-origin path without the locale parameter,
// so a toggle is not undone by a stale ?hl=. Anything else yields "/".
func returnPath(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.Contains(raw, `\`) {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "/"
	}
	if u.Scheme != "" || u.Host != "" {
		// absolute URLs only come from HX-Current-URL; keep the path.
		if u.Scheme != "http" && u.Scheme != "https" {
			return "/"
		}
	} else if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return "/"
	}

	path := u.EscapedPath()
	if path == "" || !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		path = "/"
	}
	q := u.Query()
	q.Del(custommw.LocaleParam)
	if enc := q.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}

func hasLocaleParam(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Query().Has(custommw.LocaleParam)
}

// pagePath is the path part of returnPath, used as the dismiss target for
// overlays opened on that page.
func pagePath(raw string) string {
	p := returnPath(raw)
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	return p
}
