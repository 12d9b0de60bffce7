package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/i18n"
	"finitefield.org/landing-web/internal/icons"
	"finitefield.org/landing-web/internal/theme"
)

// SectionBlock renders the section named by key, or nil when the active
// document does not carry it.
func SectionBlock(key content.SectionKey, d PageData) g.Node {
	doc := d.Doc()
	switch key {
	case content.SectionAdvantages:
		if v, ok := doc.Advantages.Get(); ok {
			return advantagesBlock(v, d)
		}
	case content.SectionTechStack:
		if v, ok := doc.TechStack.Get(); ok {
			return cardsBlock(key, v.Title, v.Subtitle, i18n.MsgSectionTechStack, v.Pillars, icons.Cpu, d)
		}
	case content.SectionArchitecture:
		if v, ok := doc.Architecture.Get(); ok {
			return cardsBlock(key, v.Title, v.Subtitle, i18n.MsgSectionArchitecture, v.Layers, icons.Layers, d)
		}
	case content.SectionServiceTracks:
		if v, ok := doc.Tracks.Get(); ok {
			return cardsBlock(key, v.Title, v.Subtitle, i18n.MsgSectionServiceTracks, v.Tracks, d.Theme.DefaultIcon, d)
		}
	case content.SectionScenarios:
		if v, ok := doc.Scenarios.Get(); ok {
			return scenariosBlock(v, d)
		}
	default:
	}
	return nil
}

// Sections renders every present section in document order, honouring the
// site's section order override.
func Sections(d PageData) g.Node {
	var nodes g.Group
	for _, k := range d.Doc().SectionsOrdered(d.Site.SectionOrder()) {
		if n := SectionBlock(k, d); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func sectionShell(key content.SectionKey, title, subtitle string, body ...g.Node) g.Node {
	return Section(
		ID(key.String()),
		Class("section section-"+key.String()),
		g.Attr("data-section", key.String()),
		Div(Class("section-header"),
			H2(Class("section-title"), g.Text(title)),
			g.If(subtitle != "", P(Class("section-subtitle"), g.Text(subtitle))),
		),
		g.Group(body),
	)
}

func advantagesBlock(items content.Advantages, d PageData) g.Node {
	return sectionShell(content.SectionAdvantages, d.T(i18n.MsgSectionAdvantages), "",
		g.If(len(items) > 0, Div(Class("card-grid card-grid-3"),
			g.Map(items, func(it content.Item) g.Node { return card(it, d, d.Theme.DefaultIcon) }),
		)),
	)
}

func cardsBlock(key content.SectionKey, title, subtitle, fallbackID string, items []content.Item, def icons.Icon, d PageData) g.Node {
	return sectionShell(key, content.Fallback(title, d.T(fallbackID)), subtitle,
		g.If(len(items) > 0, Div(Class("card-grid"),
			g.Map(items, func(it content.Item) g.Node { return card(it, d, def) }),
		)),
	)
}

func card(it content.Item, d PageData, def icons.Icon) g.Node {
	heading := it.Heading()
	return Article(
		Class("card card-"+d.Theme.Cards.String()),
		g.Attr("data-card", ""),
		Div(Class("card-icon"),
			Style("color:"+theme.SafeColor(it.Color, "var(--color-primary)")),
			icons.ParseOr(it.Icon, def).SVG("icon"),
		),
		g.If(it.Level != "", Span(Class("card-level"), g.Text(it.Level))),
		g.If(heading != "", H3(Class("card-title"), g.Text(heading))),
		g.If(it.Description != "", P(Class("card-description"), g.Text(it.Description))),
		g.If(len(it.Points) > 0, bulletList("card-points", it.Points)),
	)
}

func scenariosBlock(sc content.Scenarios, d PageData) g.Node {
	vo, hasValue := sc.ValueOutput.Get()
	return sectionShell(content.SectionScenarios, content.Fallback(sc.Title, d.T(i18n.MsgSectionScenarios)), "",
		Div(Class("scenarios"),
			g.If(len(sc.Scenarios) > 0, bulletList("scenario-list", sc.Scenarios)),
			g.If(hasValue, valueOutput(vo)),
		),
	)
}

func valueOutput(vo content.ValueOutput) g.Node {
	return Div(Class("value-output"), g.Attr("data-value-output", ""),
		g.If(vo.Title != "", H3(Class("value-title"), g.Text(vo.Title))),
		g.If(len(vo.Metrics) > 0, Ul(Class("value-metrics"),
			g.Map(vo.Metrics, func(m string) g.Node { return Li(Class("metric"), g.Text(m)) }),
		)),
		g.If(vo.Outcome != "", P(Class("value-outcome"), g.Text(vo.Outcome))),
	)
}

func bulletList(class string, items []string) g.Node {
	return Ul(Class(class),
		g.Map(items, func(s string) g.Node { return Li(g.Text(s)) }),
	)
}
