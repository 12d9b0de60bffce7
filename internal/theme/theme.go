// Package theme holds the visual presets one page composer is parameterised by.
package theme

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"finitefield.org/landing-web/internal/icons"
)

// HeroVariant selects the hero layout.
type HeroVariant uint8

const (
	HeroCentered HeroVariant = iota
	HeroSplit
)

func (v HeroVariant) String() string {
	if v == HeroSplit {
		return "split"
	}
	return "centered"
}

// CardStyle selects how section cards are drawn.
type CardStyle uint8

const (
	CardElevated CardStyle = iota
	CardOutlined
)

func (s CardStyle) String() string {
	if s == CardOutlined {
		return "outlined"
	}
	return "elevated"
}

// Palette is exposed to CSS as custom properties.
type Palette struct {
	Primary string
	Accent  string
	Surface string
	Text    string
	Muted   string
}

// Theme is a named visual preset.
type Theme struct {
	Name        string
	Palette     Palette
	Hero        HeroVariant
	Cards       CardStyle
	DefaultIcon icons.Icon
}

var presets = map[string]Theme{
	"growth": {
		Name: "growth",
		Palette: Palette{
			Primary: "#2563EB",
			Accent:  "#7C3AED",
			Surface: "#F8FAFC",
			Text:    "#0F172A",
			Muted:   "#64748B",
		},
		Hero:        HeroCentered,
		Cards:       CardElevated,
		DefaultIcon: icons.Zap,
	},
	"trust": {
		Name: "trust",
		Palette: Palette{
			Primary: "#0F766E",
			Accent:  "#B45309",
			Surface: "#F0FDFA",
			Text:    "#134E4A",
			Muted:   "#5F7C79",
		},
		Hero:        HeroSplit,
		Cards:       CardOutlined,
		DefaultIcon: icons.Shield,
	},
}

// Default returns the preset used when a site names none.
func Default() Theme { return presets["growth"] }

// Lookup returns the preset registered under name.
func Lookup(name string) (Theme, bool) {
	t, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Names lists the registered presets.
func Names() []string {
	out := make([]string, 0, len(presets))
	for name := range presets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Vars renders the palette as an inline style declaration.
func (t Theme) Vars() string {
	p := t.Palette
	return fmt.Sprintf("--color-primary:%s;--color-accent:%s;--color-surface:%s;--color-text:%s;--color-muted:%s",
		SafeColor(p.Primary, "#2563EB"),
		SafeColor(p.Accent, "#7C3AED"),
		SafeColor(p.Surface, "#FFFFFF"),
		SafeColor(p.Text, "#111827"),
		SafeColor(p.Muted, "#6B7280"),
	)
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// SafeColor returns c when it is a #RGB or #RRGGBB literal, otherwise fallback.
// Content colours end up in style attributes, so nothing else is allowed through.
func SafeColor(c, fallback string) string {
	c = strings.TrimSpace(c)
	if hexColor.MatchString(c) {
		return c
	}
	return fallback
}
