// Package views renders landing pages with gomponents.
package views

import (
	"strings"
	"time"

	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/i18n"
	"finitefield.org/landing-web/internal/lang"
	"finitefield.org/landing-web/internal/overlay"
	"finitefield.org/landing-web/internal/theme"
)

// Links holds the URLs a page points at. Served pages use query parameters
// and htmx fragments; exported pages link to sibling files.
type Links struct {
	Static   bool
	Home     string
	Overlays map[overlay.Kind]string
	Toggle   string
}

// ServerLinks returns the links of a page served at path.
func ServerLinks(path string) Links {
	if path == "" {
		path = "/"
	}
	return Links{
		Home: path,
		Overlays: map[overlay.Kind]string{
			overlay.KindProject: path + "?overlay=project",
			overlay.KindChat:    path + "?overlay=chat",
		},
		Toggle: "/lang/toggle",
	}
}

// StaticLinks returns the links of an exported page living in the directory
// of its language code, next to the other language's directory.
func StaticLinks(otherCode string) Links {
	return Links{
		Static: true,
		Home:   "index.html",
		Overlays: map[overlay.Kind]string{
			overlay.KindProject: "project.html",
			overlay.KindChat:    "chat.html",
		},
		Toggle: "../" + otherCode + "/index.html",
	}
}

// OverlayHref returns the link that opens k.
func (l Links) OverlayHref(k overlay.Kind) string {
	if href, ok := l.Overlays[k]; ok {
		return href
	}
	return l.Home
}

// PageData is everything a render needs. It is built per request.
type PageData struct {
	Site      *content.Site
	Lang      lang.Context
	Catalog   *i18n.Catalog
	Theme     theme.Theme
	Host      *overlay.Host
	Links     Links
	CSRFToken string
	Year      int
	AssetBase string
}

// NewPageData fills the theme, year, overlay host and server links for site.
func NewPageData(site *content.Site, lc lang.Context, cat *i18n.Catalog) PageData {
	th, ok := theme.Lookup(site.Theme())
	if !ok {
		th = theme.Default()
	}
	return PageData{
		Site:      site,
		Lang:      lc,
		Catalog:   cat,
		Theme:     th,
		Host:      overlay.NewPageHost(""),
		Links:     ServerLinks("/"),
		Year:      time.Now().Year(),
		AssetBase: "/static/",
	}
}

// Doc returns the document of the active locale.
func (d PageData) Doc() *content.Document {
	return d.Site.Document(d.Lang.Locale())
}

// T looks up a UI string in the active language.
func (d PageData) T(id string) string {
	return d.Catalog.T(d.Lang.Code(), id)
}

// CompanyName returns the document's company name or the site display name.
func (d PageData) CompanyName() string {
	return d.Doc().CompanyName(d.Site.Name())
}

func (d PageData) asset(name string) string {
	base := d.AssetBase
	if base == "" {
		base = "/static/"
	}
	return base + name
}

// resolve rebases document asset paths under /static/ onto AssetBase.
func (d PageData) resolve(p string) string {
	if rest, ok := strings.CutPrefix(p, "/static/"); ok {
		return d.asset(rest)
	}
	return p
}

func (d PageData) host() *overlay.Host {
	if d.Host == nil {
		return overlay.NewPageHost("")
	}
	return d.Host
}
