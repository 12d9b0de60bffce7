// Package sitecheck reports content that renders but relies on a fallback or
// is silently ignored by the renderer.
package sitecheck

import (
	"fmt"
	"sort"

	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/i18n"
	"finitefield.org/landing-web/internal/icons"
	"finitefield.org/landing-web/internal/theme"
)

// Severity ranks an issue.
type Severity uint8

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Issue is one finding. Locale is the language code, empty for site-wide
// issues. File names the document the finding came from, when known.
type Issue struct {
	Site     string
	Locale   string
	File     string
	Severity Severity
	Message  string
}

func (i Issue) String() string {
	where := i.Site
	if i.Locale != "" {
		where += "/" + i.Locale
	}
	if i.File != "" {
		return fmt.Sprintf("%s %s: %s [%s]", i.Severity, where, i.Message, i.File)
	}
	return fmt.Sprintf("%s %s: %s", i.Severity, where, i.Message)
}

// HasErrors reports whether any issue is an Error.
func HasErrors(issues []Issue) bool {
	for _, is := range issues {
		if is.Severity == Error {
			return true
		}
	}
	return false
}

// Sites checks every site and returns the issues ordered by site and locale.
func Sites(sites []*content.Site, cat *i18n.Catalog) []Issue {
	var out []Issue
	for _, s := range sites {
		out = append(out, Site(s, cat)...)
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Site != out[b].Site {
			return out[a].Site < out[b].Site
		}
		return out[a].Locale < out[b].Locale
	})
	return out
}

// Site checks one site in both locales.
func Site(site *content.Site, cat *i18n.Catalog) []Issue {
	c := checker{site: site.ID()}
	if name := site.Theme(); name != "" {
		if _, ok := theme.Lookup(name); !ok {
			c.warn("", "unknown theme %q, using %q", name, theme.Default().Name)
		}
	}

	pair := site.Pair()
	for _, l := range []content.Locale{content.Primary, content.Secondary} {
		code := pair.Code(l)
		c.file = site.Source(l)
		c.document(code, site.Document(l), site.Name())
		c.file = ""
		if cat != nil {
			for _, id := range cat.Missing(code) {
				c.add(Error, code, "UI text %q has no translation", id)
			}
		}
	}

	primary, secondary := site.Document(content.Primary), site.Document(content.Secondary)
	for _, k := range content.DefaultSectionOrder() {
		if primary.Has(k) != secondary.Has(k) {
			c.warn("", "section %s is present in only one locale", k)
		}
	}
	return c.issues
}

type checker struct {
	site   string
	file   string
	issues []Issue
}

func (c *checker) add(sev Severity, code, format string, args ...any) {
	c.issues = append(c.issues, Issue{
		Site:     c.site,
		Locale:   code,
		File:     c.file,
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (c *checker) warn(code, format string, args ...any) {
	c.add(Warning, code, format, args...)
}

func (c *checker) document(code string, doc *content.Document, siteName string) {
	info := doc.CompanyInfo
	if info.Name == "" {
		c.warn(code, "companyInfo.name is missing, falling back to %q", siteName)
	}
	if info.Headline == "" {
		c.warn(code, "companyInfo.headline is missing, falling back to %q", doc.CompanyName(siteName))
	}
	for _, key := range doc.UnknownKeys() {
		c.warn(code, "unknown top-level key %q is ignored", key)
	}

	if v, ok := doc.Advantages.Get(); ok {
		c.items(code, "coreAdvantages", v)
	}
	if v, ok := doc.TechStack.Get(); ok {
		c.items(code, "coreTechStack.pillars", v.Pillars)
	}
	if v, ok := doc.Architecture.Get(); ok {
		c.items(code, "systemArchitecture.layers", v.Layers)
	}
	if v, ok := doc.Tracks.Get(); ok {
		c.items(code, "serviceTracks.tracks", v.Tracks)
	}
}

func (c *checker) items(code, path string, items []content.Item) {
	for i, it := range items {
		if it.Icon != "" {
			if _, ok := icons.Parse(it.Icon); !ok {
				c.warn(code, "%s[%d]: unknown icon %q", path, i, it.Icon)
			}
		}
		if it.Color != "" && theme.SafeColor(it.Color, "") == "" {
			c.warn(code, "%s[%d]: color %q is not a hex colour and is ignored", path, i, it.Color)
		}
		if it.Heading() == "" {
			c.warn(code, "%s[%d]: item has no name or title", path, i)
		}
	}
}
