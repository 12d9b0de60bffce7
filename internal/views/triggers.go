package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"finitefield.org/landing-web/internal/overlay"
)

// OverlayRootID is the element every overlay fragment is swapped into.
const OverlayRootID = "overlay-root"

// openOverlay links to the no-script URL and, on served pages, fetches the
// overlay fragment with htmx.
func openOverlay(d PageData, k overlay.Kind) g.Node {
	return g.Group{
		Href(d.Links.OverlayHref(k)),
		g.Attr("data-overlay-open", k.String()),
		g.If(!d.Links.Static, g.Group{
			g.Attr("hx-get", "/overlays/"+k.String()),
			g.Attr("hx-target", "#"+OverlayRootID),
			g.Attr("hx-swap", "innerHTML"),
		}),
	}
}

func dismissOverlay(d PageData, p overlay.Path) g.Node {
	return g.Group{
		Href(d.Links.Home),
		g.Attr("data-overlay-dismiss", p.String()),
		g.If(!d.Links.Static, g.Group{
			g.Attr("hx-get", "/overlays/close"),
			g.Attr("hx-target", "#"+OverlayRootID),
			g.Attr("hx-swap", "innerHTML"),
		}),
	}
}
