package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Page composes a full landing page: header, hero, the present sections in
// document order, footer, overlays and the floating chat trigger.
func Page(d PageData) g.Node {
	return document(d,
		pageHeader(d),
		Main(ID("main"),
			hero(d),
			Sections(d),
		),
		pageFooter(d),
		OverlayRoot(d),
		FloatingChat(d),
	)
}
