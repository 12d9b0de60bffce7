package seo

import (
	"net/url"
	"strings"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	Locale      string
	URL         string
}

// Alternate is one hreflang link.
type Alternate struct {
	Lang string
	Href string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
	Alternates  []Alternate
	Robots      string
}

// LocalizedURL appends hl=<code> to base, keeping any existing query.
func LocalizedURL(base, code string) string {
	if base == "" {
		return ""
	}
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set("hl", code)
	u.RawQuery = q.Encode()
	return u.String()
}

// Describe trims text into a meta description of at most max runes.
func Describe(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	r := []rune(text)
	if max <= 0 || len(r) <= max {
		return text
	}
	return strings.TrimSpace(string(r[:max-1])) + "…"
}
