package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/seo"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// PageMeta derives the SEO metadata of the page.
func PageMeta(d PageData) seo.Meta {
	doc := d.Doc()
	info := doc.CompanyInfo
	name := d.CompanyName()
	title := name
	if info.Tagline != "" {
		title = name + " | " + info.Tagline
	}
	desc := seo.Describe(content.Fallback(info.Subtitle, info.Slogan), 160)
	base := d.Site.BaseURL()
	code := d.Lang.Code()

	m := seo.Meta{
		Title:       title,
		Description: desc,
		OG: seo.OpenGraph{
			Title:       title,
			Description: desc,
			Type:        "website",
			Locale:      d.Lang.Tag().String(),
			Image:       absolute(base, info.Logo),
		},
	}
	if base != "" {
		m.Canonical = seo.LocalizedURL(base+"/", code)
		m.OG.URL = m.Canonical
		pair := d.Lang.Pair
		for _, l := range []content.Locale{content.Primary, content.Secondary} {
			m.Alternates = append(m.Alternates, seo.Alternate{
				Lang: pair.Tag(l).String(),
				Href: seo.LocalizedURL(base+"/", pair.Code(l)),
			})
		}
		m.Alternates = append(m.Alternates, seo.Alternate{Lang: "x-default", Href: base + "/"})
	}
	return m
}

func absolute(base, p string) string {
	if p == "" || base == "" || p[0] != '/' {
		return p
	}
	return base + p
}

func organizationJSON(d PageData) string {
	doc := d.Doc()
	c, _ := doc.Contact.Get()
	pair := d.Lang.Pair
	return seo.JSON(seo.Organization(
		d.CompanyName(),
		d.Site.BaseURL(),
		absolute(d.Site.BaseURL(), doc.CompanyInfo.Logo),
		c.Address,
		seo.ContactPoint{
			Telephone: c.Phone,
			Email:     c.Email,
			Languages: []string{pair.Tag(content.Primary).String(), pair.Tag(content.Secondary).String()},
		},
	))
}

func head(d PageData, m seo.Meta) g.Node {
	return Head(
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		TitleEl(g.Text(m.Title)),
		g.If(m.Description != "", Meta(Name("description"), Content(m.Description))),
		g.If(m.Robots != "", Meta(Name("robots"), Content(m.Robots))),
		g.If(m.Canonical != "", Link(Rel("canonical"), Href(m.Canonical))),
		g.Map(m.Alternates, func(a seo.Alternate) g.Node {
			return Link(Rel("alternate"), g.Attr("hreflang", a.Lang), Href(a.Href))
		}),
		Meta(g.Attr("property", "og:title"), Content(m.OG.Title)),
		g.If(m.OG.Description != "", Meta(g.Attr("property", "og:description"), Content(m.OG.Description))),
		Meta(g.Attr("property", "og:type"), Content(m.OG.Type)),
		Meta(g.Attr("property", "og:locale"), Content(m.OG.Locale)),
		g.If(m.OG.URL != "", Meta(g.Attr("property", "og:url"), Content(m.OG.URL))),
		g.If(m.OG.Image != "", Meta(g.Attr("property", "og:image"), Content(m.OG.Image))),
		Link(Rel("stylesheet"), Href(d.asset("site.css"))),
		Script(Type("application/ld+json"), g.Raw(organizationJSON(d))),
		g.If(!d.Links.Static, Script(Src(htmxSrc), Defer())),
		Script(Src(d.asset("overlay.js")), Defer()),
	)
}

func document(d PageData, body ...g.Node) g.Node {
	m := PageMeta(d)
	locked := d.host().ScrollLocked()
	var hxHeaders g.Node
	if !d.Links.Static && d.CSRFToken != "" {
		hxHeaders = g.Attr("hx-headers", seo.JSON(map[string]string{"X-CSRF-Token": d.CSRFToken}))
	}
	return Doctype(
		HTML(
			Lang(d.Lang.Tag().String()),
			g.Attr("data-theme", d.Theme.Name),
			Style(d.Theme.Vars()),
			head(d, m),
			Body(
				g.If(locked, Class("scroll-locked")),
				g.If(locked, g.Attr("data-scroll-locked", "true")),
				hxHeaders,
				g.Group(body),
			),
		),
	)
}
