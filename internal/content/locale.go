package content

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale selects one of the two documents every site carries.
type Locale uint8

const (
	// Primary is the locale a new session starts in.
	Primary Locale = iota
	Secondary
)

// Toggle returns the other locale.
func (l Locale) Toggle() Locale {
	if l == Primary {
		return Secondary
	}
	return Primary
}

// Valid reports whether l is one of the two supported values.
func (l Locale) Valid() bool {
	return l == Primary || l == Secondary
}

func (l Locale) String() string {
	switch l {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return fmt.Sprintf("locale(%d)", uint8(l))
	}
}

// LocalePair binds both locales of a site to language tags.
type LocalePair struct {
	primary   language.Tag
	secondary language.Tag
	matcher   language.Matcher
}

// DefaultLocalePair is Chinese first, English second.
func DefaultLocalePair() LocalePair {
	return NewLocalePair(language.Chinese, language.English)
}

// NewLocalePair builds a pair from two tags.
func NewLocalePair(primary, secondary language.Tag) LocalePair {
	return LocalePair{
		primary:   primary,
		secondary: secondary,
		matcher:   language.NewMatcher([]language.Tag{primary, secondary}),
	}
}

// ParseLocalePair parses two BCP 47 codes. Both must be valid and distinct.
func ParseLocalePair(primary, secondary string) (LocalePair, error) {
	p, err := language.Parse(strings.TrimSpace(primary))
	if err != nil {
		return LocalePair{}, fmt.Errorf("content: primary locale %q: %w", primary, err)
	}
	s, err := language.Parse(strings.TrimSpace(secondary))
	if err != nil {
		return LocalePair{}, fmt.Errorf("content: secondary locale %q: %w", secondary, err)
	}
	pb, _ := p.Base()
	sb, _ := s.Base()
	if pb == sb {
		return LocalePair{}, fmt.Errorf("content: locales %q and %q share language %s", primary, secondary, pb)
	}
	return NewLocalePair(p, s), nil
}

// Tag returns the language tag bound to l.
func (p LocalePair) Tag(l Locale) language.Tag {
	if l == Secondary {
		return p.secondary
	}
	return p.primary
}

// Code returns the short code used in file names, cookies and the hl parameter.
func (p LocalePair) Code(l Locale) string {
	base, _ := p.Tag(l).Base()
	return base.String()
}

// Lookup maps a code such as "en" or "zh-CN" onto one of the two locales.
func (p LocalePair) Lookup(code string) (Locale, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Primary, false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Primary, false
	}
	base, _ := tag.Base()
	for _, l := range []Locale{Primary, Secondary} {
		if b, _ := p.Tag(l).Base(); b == base {
			return l, true
		}
	}
	return Primary, false
}

// Match negotiates an Accept-Language header. Anything without a usable match
// falls back to Primary.
func (p LocalePair) Match(acceptLanguage string) Locale {
	if p.matcher == nil || strings.TrimSpace(acceptLanguage) == "" {
		return Primary
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Primary
	}
	_, idx, conf := p.matcher.Match(tags...)
	if conf == language.No || idx != 1 {
		return Primary
	}
	return Secondary
}
