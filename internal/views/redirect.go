package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Redirect is the entry page of an exported site. It forwards to target
// without script.
func Redirect(target string) g.Node {
	return Doctype(
		HTML(
			Head(
				Meta(Charset("utf-8")),
				Meta(g.Attr("http-equiv", "refresh"), Content("0; url="+target)),
				Link(Rel("canonical"), Href(target)),
				TitleEl(g.Text(target)),
			),
			Body(A(Href(target), g.Text(target))),
		),
	)
}
