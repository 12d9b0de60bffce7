// Package icons renders the small enumerated icon set used by landing pages
// as inline SVG.
package icons

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
)

// Icon is one entry of the enumerated set. The zero value is Unknown.
type Icon uint8

const (
	Unknown Icon = iota
	Database
	Brain
	Zap
	Rocket
	BarChart
	Layers
	Cpu
	Search
	Users
	Target
	Heart
	Shield
	Cloud
	Server
	Handshake
	TrendingUp
	Calculator
	Building
	FileText
	MessageCircle
	Phone
	Mail
	MapPin
	Clock
	Close
	Languages
)

var names = [...]string{
	Unknown:       "",
	Database:      "Database",
	Brain:         "Brain",
	Zap:           "Zap",
	Rocket:        "Rocket",
	BarChart:      "BarChart",
	Layers:        "Layers",
	Cpu:           "Cpu",
	Search:        "Search",
	Users:         "Users",
	Target:        "Target",
	Heart:         "Heart",
	Shield:        "Shield",
	Cloud:         "Cloud",
	Server:        "Server",
	Handshake:     "Handshake",
	TrendingUp:    "TrendingUp",
	Calculator:    "Calculator",
	Building:      "Building",
	FileText:      "FileText",
	MessageCircle: "MessageCircle",
	Phone:         "Phone",
	Mail:          "Mail",
	MapPin:        "MapPin",
	Clock:         "Clock",
	Close:         "X",
	Languages:     "Languages",
}

// Parse resolves a content icon key such as "Brain". Matching ignores case,
// dashes and underscores so "bar-chart" and "BarChart" are the same icon.
func Parse(name string) (Icon, bool) {
	key := normalize(name)
	if key == "" {
		return Unknown, false
	}
	for i, n := range names {
		if n != "" && normalize(n) == key {
			return Icon(i), true
		}
	}
	return Unknown, false
}

// ParseOr resolves name, returning def for unknown keys.
func ParseOr(name string, def Icon) Icon {
	if icon, ok := Parse(name); ok {
		return icon
	}
	return def
}

// Names lists every known icon key.
func Names() []string {
	out := make([]string, 0, len(names)-1)
	for _, n := range names[1:] {
		out = append(out, n)
	}
	return out
}

func (i Icon) String() string {
	if int(i) < len(names) && names[i] != "" {
		return names[i]
	}
	return "Unknown"
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

// SVG renders the icon at the given CSS class. Unknown icons render a plain
// circle so a card never loses its icon slot.
func (i Icon) SVG(class string) g.Node {
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Attr("data-icon", strings.ToLower(i.String())),
		g.If(class != "", g.Attr("class", class)),
		g.Group(i.shapes()),
	)
}

func (i Icon) shapes() []g.Node {
	switch i {
	case Database:
		return []g.Node{
			ellipse(12, 5, 9, 3),
			path("M3 5V19A9 3 0 0 0 21 19V5"),
			path("M3 12A9 3 0 0 0 21 12"),
		}
	case Brain:
		return []g.Node{
			path("M12 5a3 3 0 1 0-5.997.125 4 4 0 0 0-2.526 5.77 4 4 0 0 0 .556 6.588A4 4 0 1 0 12 18Z"),
			path("M12 5a3 3 0 1 1 5.997.125 4 4 0 0 1 2.526 5.77 4 4 0 0 1-.556 6.588A4 4 0 1 1 12 18Z"),
			path("M12 5v13"),
		}
	case Zap:
		return []g.Node{path("M13 2 3 14h9l-1 8 10-12h-9l1-8z")}
	case Rocket:
		return []g.Node{
			path("M4.5 16.5c-1.5 1.26-2 5-2 5s3.74-.5 5-2c.71-.84.7-2.13-.09-2.91a2.18 2.18 0 0 0-2.91-.09z"),
			path("m12 15-3-3a22 22 0 0 1 2-3.95A12.88 12.88 0 0 1 22 2c0 2.72-.78 7.5-6 11a22.35 22.35 0 0 1-4 2z"),
			path("M9 12H4s.55-3.03 2-4c1.62-1.08 5 0 5 0"),
			path("M12 15v5s3.03-.55 4-2c1.08-1.62 0-5 0-5"),
		}
	case BarChart:
		return []g.Node{path("M12 20V10"), path("M18 20V4"), path("M6 20v-4")}
	case Layers:
		return []g.Node{
			path("M12 2 2 7l10 5 10-5-10-5z"),
			path("m2 17 10 5 10-5"),
			path("m2 12 10 5 10-5"),
		}
	case Cpu:
		return []g.Node{
			rect(4, 4, 16, 16, 2),
			rect(9, 9, 6, 6, 0),
			path("M15 2v2M15 20v2M2 15h2M2 9h2M20 15h2M20 9h2M9 2v2M9 20v2"),
		}
	case Search:
		return []g.Node{circle(11, 11, 8), path("m21 21-4.3-4.3")}
	case Users:
		return []g.Node{
			path("M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"),
			circle(9, 7, 4),
			path("M22 21v-2a4 4 0 0 0-3-3.87"),
			path("M16 3.13a4 4 0 0 1 0 7.75"),
		}
	case Target:
		return []g.Node{circle(12, 12, 10), circle(12, 12, 6), circle(12, 12, 2)}
	case Heart:
		return []g.Node{path("M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z")}
	case Shield:
		return []g.Node{path("M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z")}
	case Cloud:
		return []g.Node{path("M17.5 19H9a7 7 0 1 1 6.71-9h1.79a4.5 4.5 0 1 1 0 9Z")}
	case Server:
		return []g.Node{
			rect(2, 2, 20, 8, 2),
			rect(2, 14, 20, 8, 2),
			path("M6 6h.01M6 18h.01"),
		}
	case Handshake:
		return []g.Node{
			path("m11 17 2 2a1 1 0 1 0 3-3"),
			path("m14 14 2.5 2.5a1 1 0 1 0 3-3l-3.88-3.88a3 3 0 0 0-4.24 0l-.88.88a1 1 0 1 1-3-3l2.81-2.81a5.79 5.79 0 0 1 7.06-.87l.47.28a2 2 0 0 0 1.42.25L21 4"),
			path("m21 3 1 11h-2"),
			path("M3 3 2 14l6.5 6.5a1 1 0 1 0 3-3"),
			path("M3 4h8"),
		}
	case TrendingUp:
		return []g.Node{path("M22 7 13.5 15.5 8.5 10.5 2 17"), path("M16 7h6v6")}
	case Calculator:
		return []g.Node{
			rect(4, 2, 16, 20, 2),
			path("M8 6h8"),
			path("M16 14v4M8 10h.01M12 10h.01M16 10h.01M8 14h.01M12 14h.01M8 18h.01M12 18h.01"),
		}
	case Building:
		return []g.Node{
			rect(4, 2, 16, 20, 2),
			path("M9 22v-4h6v4"),
			path("M8 6h.01M12 6h.01M16 6h.01M8 10h.01M12 10h.01M16 10h.01M8 14h.01M12 14h.01M16 14h.01"),
		}
	case FileText:
		return []g.Node{
			path("M15 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7Z"),
			path("M14 2v4a2 2 0 0 0 2 2h4"),
			path("M10 9H8M16 13H8M16 17H8"),
		}
	case MessageCircle:
		return []g.Node{path("M7.9 20A9 9 0 1 0 4 16.1L2 22Z")}
	case Phone:
		return []g.Node{path("M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72 12.84 12.84 0 0 0 .7 2.81 2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45 12.84 12.84 0 0 0 2.81.7A2 2 0 0 1 22 16.92z")}
	case Mail:
		return []g.Node{rect(2, 4, 20, 16, 2), path("m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7")}
	case MapPin:
		return []g.Node{path("M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"), circle(12, 10, 3)}
	case Clock:
		return []g.Node{circle(12, 12, 10), path("M12 6v6l4 2")}
	case Close:
		return []g.Node{path("M18 6 6 18"), path("m6 6 12 12")}
	case Languages:
		return []g.Node{
			path("m5 8 6 6"),
			path("m4 14 6-6 2-3"),
			path("M2 5h12M7 2h1"),
			path("m22 22-5-10-5 10"),
			path("M14 18h6"),
		}
	default:
		return []g.Node{circle(12, 12, 9)}
	}
}

func path(d string) g.Node {
	return g.El("path", g.Attr("d", d))
}

func circle(cx, cy, r int) g.Node {
	return g.El("circle", g.Attr("cx", itoa(cx)), g.Attr("cy", itoa(cy)), g.Attr("r", itoa(r)))
}

func ellipse(cx, cy, rx, ry int) g.Node {
	return g.El("ellipse", g.Attr("cx", itoa(cx)), g.Attr("cy", itoa(cy)), g.Attr("rx", itoa(rx)), g.Attr("ry", itoa(ry)))
}

func rect(x, y, w, h, r int) g.Node {
	return g.El("rect",
		g.Attr("x", itoa(x)), g.Attr("y", itoa(y)),
		g.Attr("width", itoa(w)), g.Attr("height", itoa(h)),
		g.If(r > 0, g.Attr("rx", itoa(r))),
	)
}

func itoa(n int) string { return strconv.Itoa(n) }
