package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"finitefield.org/landing-web/internal/i18n"
	"finitefield.org/landing-web/internal/icons"
	"finitefield.org/landing-web/internal/overlay"
)

// CSRFField is the form field carrying the CSRF token.
const CSRFField = "csrf_token"

func pageHeader(d PageData) g.Node {
	doc := d.Doc()
	info := doc.CompanyInfo
	contact, hasContact := doc.Contact.Get()
	name := d.CompanyName()
	return Header(Class("site-header"),
		Div(Class("container header-inner"),
			A(Class("brand"), Href(d.Links.Home),
				g.If(info.Logo != "", Img(Class("brand-logo"), Src(d.resolve(info.Logo)), Alt(name))),
				Span(Class("brand-name"), g.Text(name)),
			),
			Nav(Class("header-contact"),
				g.If(hasContact && contact.Phone != "", A(Class("contact-link"), Href("tel:"+contact.Phone),
					icons.Phone.SVG("icon"), Span(g.Text(contact.Phone)),
				)),
				g.If(hasContact && contact.Email != "", A(Class("contact-link"), Href("mailto:"+contact.Email),
					icons.Mail.SVG("icon"), Span(g.Text(contact.Email)),
				)),
			),
			langToggle(d),
		),
	)
}

// langToggle shows the label of the language it switches to.
func langToggle(d PageData) g.Node {
	label := d.Catalog.T(d.Lang.OtherCode(), i18n.MsgLangShort)
	aria := d.T(i18n.MsgLangSwitch)
	if d.Links.Static {
		return A(Class("lang-toggle"), Href(d.Links.Toggle), Aria("label", aria),
			g.Attr("hreflang", d.Lang.OtherCode()),
			icons.Languages.SVG("icon"), Span(g.Text(label)),
		)
	}
	return g.El("form",
		Class("lang-toggle-form"),
		Method("post"),
		Action(d.Links.Toggle),
		g.Attr("hx-post", d.Links.Toggle),
		Input(Type("hidden"), Name(CSRFField), Value(d.CSRFToken)),
		Input(Type("hidden"), Name("return_to"), Value(d.Links.Home)),
		Button(Type("submit"), Class("lang-toggle"), Aria("label", aria),
			icons.Languages.SVG("icon"), Span(g.Text(label)),
		),
	)
}

func hero(d PageData) g.Node {
	doc := d.Doc()
	info := doc.CompanyInfo
	return Section(
		ID("hero"),
		Class("hero hero-"+d.Theme.Hero.String()),
		Div(Class("container hero-inner"),
			g.If(info.Tagline != "", P(Class("hero-tagline"), g.Text(info.Tagline))),
			H1(Class("hero-headline"), g.Text(doc.Headline(d.Site.Name()))),
			g.If(info.Slogan != "", P(Class("hero-slogan"), g.Text(info.Slogan))),
			g.If(info.Subtitle != "", P(Class("hero-subtitle"), g.Text(info.Subtitle))),
			Div(Class("hero-actions"),
				A(Class("btn btn-primary"), g.Attr("data-cta", "primary"),
					openOverlay(d, overlay.KindChat),
					g.Text(d.T(i18n.MsgCTAPrimary)),
				),
				A(Class("btn btn-secondary"), g.Attr("data-cta", "secondary"),
					openOverlay(d, overlay.KindProject),
					g.Text(d.T(i18n.MsgCTASecondary)),
				),
			),
		),
	)
}

// contactBlock renders nothing when the document has no contact section.
func contactBlock(d PageData) g.Node {
	c, ok := d.Doc().Contact.Get()
	if !ok {
		return nil
	}
	row := func(icon icons.Icon, label string, value g.Node) g.Node {
		return Li(Class("contact-row"),
			icon.SVG("icon"),
			Span(Class("contact-label"), g.Text(label)),
			value,
		)
	}
	return Ul(Class("contact-list"),
		g.If(c.Phone != "", row(icons.Phone, d.T(i18n.MsgContactPhone), A(Href("tel:"+c.Phone), g.Text(c.Phone)))),
		g.If(c.Email != "", row(icons.Mail, d.T(i18n.MsgContactEmail), A(Href("mailto:"+c.Email), g.Text(c.Email)))),
		g.If(c.Address != "", row(icons.MapPin, d.T(i18n.MsgContactAddress), Span(g.Text(c.Address)))),
		g.If(c.WorkingHours != "", row(icons.Clock, d.T(i18n.MsgWorkingHours), Span(g.Text(c.WorkingHours)))),
		g.If(c.ResponseTime != "", row(icons.MessageCircle, d.T(i18n.MsgResponseTime), Span(g.Text(c.ResponseTime)))),
	)
}

func pageFooter(d PageData) g.Node {
	info := d.Doc().CompanyInfo
	name := d.CompanyName()
	contacts := contactBlock(d)
	return Footer(Class("site-footer"),
		Div(Class("container footer-inner"),
			Div(Class("footer-about"),
				P(Class("footer-name"), g.Text(name)),
				g.If(info.Subtitle != "", P(Class("footer-subtitle"), g.Text(info.Subtitle))),
			),
			g.If(contacts != nil, Div(Class("footer-contact"),
				H3(g.Text(d.T(i18n.MsgContactTitle))),
				contacts,
			)),
		),
		Div(Class("footer-bottom"),
			P(Class("copyright"), g.Text(d.Catalog.Format(d.Lang.Code(), i18n.MsgFooterCopyright, map[string]any{
				"Year":    d.Year,
				"Company": name,
			}))),
			g.If(info.Focus != "", P(Class("footer-focus"), g.Text(info.Focus))),
		),
	)
}
