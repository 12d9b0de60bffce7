package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/i18n"
	"finitefield.org/landing-web/internal/icons"
	"finitefield.org/landing-web/internal/overlay"
)

// OverlayRoot is the swap target of overlay fragments. It holds the open
// overlay, if any.
func OverlayRoot(d PageData) g.Node {
	return Div(ID(OverlayRootID), Overlays(d))
}

// Overlays renders every open overlay of the page host. Closed overlays
// render nothing.
func Overlays(d PageData) g.Node {
	host := d.host()
	var nodes g.Group
	for _, k := range overlay.Kinds() {
		o, ok := host.Overlay(k)
		if !ok || !o.IsOpen() {
			continue
		}
		nodes = append(nodes, overlayShell(d, o))
	}
	return nodes
}

// The backdrop is a sibling of the content panel, so clicks inside the panel
// never reach it.
func overlayShell(d PageData, o *overlay.Overlay) g.Node {
	kind := o.Kind().String()
	titleID := "overlay-" + kind + "-title"
	var title string
	var body, footer g.Node
	switch o.Kind() {
	case overlay.KindProject:
		title, body = projectOverlay(d)
		footer = Div(Class("overlay-footer"),
			A(Class("btn btn-secondary overlay-footer-close"),
				dismissOverlay(d, overlay.PathCloseControl),
				g.Text(d.T(i18n.MsgOverlayClose)),
			),
		)
	case overlay.KindChat:
		title, body = chatOverlay(d)
	default:
		return nil
	}
	return Div(
		ID("overlay-"+kind),
		Class("overlay overlay-"+kind),
		Role("dialog"),
		Aria("modal", "true"),
		Aria("labelledby", titleID),
		g.Attr("data-overlay", kind),
		g.If(o.ListensForEscape(), g.Attr("data-escape-dismiss", "true")),
		A(Class("overlay-backdrop"), Aria("hidden", "true"), g.Attr("tabindex", "-1"),
			dismissOverlay(d, overlay.PathBackdrop),
		),
		Div(Class("overlay-panel"), g.Attr("data-overlay-content", ""),
			Div(Class("overlay-header"),
				H2(ID(titleID), Class("overlay-title"), g.Text(title)),
				A(Class("overlay-close"), Aria("label", d.T(i18n.MsgOverlayClose)),
					dismissOverlay(d, overlay.PathCloseControl),
					icons.Close.SVG("icon"),
				),
			),
			Div(Class("overlay-body"), body),
			footer,
		),
	)
}

func projectOverlay(d PageData) (string, g.Node) {
	doc := d.Doc()
	profile, ok := doc.Profile.Get()
	if !ok {
		info := doc.CompanyInfo
		return d.CompanyName(), Div(Class("profile"),
			g.If(info.Tagline != "", P(Class("profile-lead"), g.Text(info.Tagline))),
			g.If(info.Subtitle != "", P(g.Text(info.Subtitle))),
			contactBlock(d),
		)
	}
	return content.Fallback(profile.Title, d.T(i18n.MsgProjectTitle)), Div(Class("profile"),
		g.Map(profile.Sections, func(s content.ProfileSection) g.Node { return profileSection(s) }),
	)
}

func profileSection(s content.ProfileSection) g.Node {
	return Section(Class("profile-section"),
		g.If(s.Title != "", H3(Class("profile-section-title"), g.Text(s.Title))),
		g.If(s.Content != "", Div(Class("profile-text"), g.Raw(content.RichText(s.Content)))),
		g.If(s.Content2 != "", Div(Class("profile-text"), g.Raw(content.RichText(s.Content2)))),
		g.If(len(s.List) > 0, bulletList("profile-list", s.List)),
		g.If(s.Footer != "", P(Class("profile-footer"), g.Text(s.Footer))),
		g.If(len(s.Items) > 0, Div(Class("profile-items"),
			g.Map(s.Items, func(it content.ProfileItem) g.Node {
				return Article(Class("profile-item"),
					H4(g.Text(it.Title)),
					g.If(len(it.Content) > 0, bulletList("profile-item-points", it.Content)),
				)
			}),
		)),
	)
}

func chatOverlay(d PageData) (string, g.Node) {
	title := d.T(i18n.MsgChatTitle)
	if url := d.Site.ChatEmbedURL(); url != "" {
		return title, IFrame(
			Class("chat-frame"),
			Src(url),
			g.Attr("title", title),
			g.Attr("loading", "lazy"),
			g.Attr("referrerpolicy", "strict-origin-when-cross-origin"),
		)
	}
	return title, Div(Class("chat-fallback"),
		P(g.Text(d.T(i18n.MsgChatFallback))),
		contactBlock(d),
	)
}

// FloatingChat is the fixed button that opens the chat overlay.
func FloatingChat(d PageData) g.Node {
	return A(
		Class("chat-fab"),
		Aria("label", d.T(i18n.MsgChatOpen)),
		openOverlay(d, overlay.KindChat),
		icons.MessageCircle.SVG("icon"),
	)
}
