package content

import "strings"

// SectionKey enumerates the optional page sections a document may carry.
type SectionKey uint8

const (
	SectionUnknown SectionKey = iota
	SectionAdvantages
	SectionTechStack
	SectionArchitecture
	SectionServiceTracks
	SectionScenarios
)

var sectionNames = map[SectionKey]string{
	SectionAdvantages:    "coreAdvantages",
	SectionTechStack:     "coreTechStack",
	SectionArchitecture:  "systemArchitecture",
	SectionServiceTracks: "serviceTracks",
	SectionScenarios:     "applicableScenarios",
}

// keys that belong to the document but are not page sections
var structuralKeys = map[string]struct{}{
	"companyInfo": {},
	"contact":     {},
	"profile":     {},
}

// ParseSectionKey maps a document key onto a SectionKey.
func ParseSectionKey(name string) SectionKey {
	name = strings.TrimSpace(name)
	for k, v := range sectionNames {
		if strings.EqualFold(v, name) {
			return k
		}
	}
	return SectionUnknown
}

func (k SectionKey) String() string {
	if name, ok := sectionNames[k]; ok {
		return name
	}
	return "unknown"
}

// DefaultSectionOrder is used when a document's own key order is unknown.
func DefaultSectionOrder() []SectionKey {
	return []SectionKey{
		SectionAdvantages,
		SectionTechStack,
		SectionArchitecture,
		SectionServiceTracks,
		SectionScenarios,
	}
}

// CompanyInfo carries the scalar hero and footer copy.
type CompanyInfo struct {
	Name     string `json:"name" yaml:"name"`
	Tagline  string `json:"tagline" yaml:"tagline"`
	Headline string `json:"headline" yaml:"headline"`
	Slogan   string `json:"slogan" yaml:"slogan"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Focus    string `json:"focus" yaml:"focus"`
	Logo     string `json:"logo" yaml:"logo"`
}

// Contact is rendered as tel:/mailto: links and plain text.
type Contact struct {
	Phone        string `json:"phone" yaml:"phone"`
	Email        string `json:"email" yaml:"email"`
	Address      string `json:"address" yaml:"address"`
	WorkingHours string `json:"workingHours" yaml:"workingHours"`
	ResponseTime string `json:"responseTime" yaml:"responseTime"`
}

// Item is one card of a repeated section.
type Item struct {
	Name        string   `json:"name" yaml:"name"`
	Title       string   `json:"title" yaml:"title"`
	Level       string   `json:"level" yaml:"level"`
	Description string   `json:"description" yaml:"description"`
	Icon        string   `json:"icon" yaml:"icon"`
	Color       string   `json:"color" yaml:"color"`
	Points      []string `json:"points" yaml:"points"`
}

// Heading returns the name, or the title for sections that use that key.
func (i Item) Heading() string {
	return firstNonEmpty(i.Name, i.Title)
}

// Advantages are the hero feature cards.
type Advantages []Item

// TechStack lists the pillars of the core technology base.
type TechStack struct {
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Pillars  []Item `json:"pillars" yaml:"pillars"`
}

// Architecture lists system layers top to bottom.
type Architecture struct {
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Layers   []Item `json:"layers" yaml:"layers"`
}

// ServiceTracks lists service offerings, each with optional bullet points.
type ServiceTracks struct {
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Tracks   []Item `json:"tracks" yaml:"tracks"`
}

// Scenarios pairs the applicable scenarios with the value they produce.
type Scenarios struct {
	Title       string                `json:"title" yaml:"title"`
	Scenarios   []string              `json:"scenarios" yaml:"scenarios"`
	ValueOutput Optional[ValueOutput] `json:"valueOutput" yaml:"valueOutput"`
}

// ValueOutput summarises outcome metrics.
type ValueOutput struct {
	Title   string   `json:"title" yaml:"title"`
	Metrics []string `json:"metrics" yaml:"metrics"`
	Outcome string   `json:"outcome" yaml:"outcome"`
}

// Profile is the expanded company introduction shown in the project overlay.
type Profile struct {
	Title    string           `json:"title" yaml:"title"`
	Sections []ProfileSection `json:"sections" yaml:"sections"`
}

// ProfileSection is one titled block of the profile. Every field except the
// title is optional.
type ProfileSection struct {
	Title    string        `json:"title" yaml:"title"`
	Content  string        `json:"content" yaml:"content"`
	Content2 string        `json:"content2" yaml:"content2"`
	List     []string      `json:"list" yaml:"list"`
	Footer   string        `json:"footer" yaml:"footer"`
	Items    []ProfileItem `json:"items" yaml:"items"`
}

// ProfileItem is a capability card with bullet points.
type ProfileItem struct {
	Title   string   `json:"title" yaml:"title"`
	Content []string `json:"content" yaml:"content"`
}

// Document is the full localized content of one site in one locale. It is
// read-only once loaded.
type Document struct {
	CompanyInfo  CompanyInfo             `json:"companyInfo" yaml:"companyInfo"`
	Contact      Optional[Contact]       `json:"contact" yaml:"contact"`
	Advantages   Optional[Advantages]    `json:"coreAdvantages" yaml:"coreAdvantages"`
	TechStack    Optional[TechStack]     `json:"coreTechStack" yaml:"coreTechStack"`
	Architecture Optional[Architecture]  `json:"systemArchitecture" yaml:"systemArchitecture"`
	Tracks       Optional[ServiceTracks] `json:"serviceTracks" yaml:"serviceTracks"`
	Scenarios    Optional[Scenarios]     `json:"applicableScenarios" yaml:"applicableScenarios"`
	Profile      Optional[Profile]       `json:"profile" yaml:"profile"`

	keys []string
}

// Has reports whether the section is present.
func (d *Document) Has(k SectionKey) bool {
	if d == nil {
		return false
	}
	switch k {
	case SectionAdvantages:
		return d.Advantages.IsPresent()
	case SectionTechStack:
		return d.TechStack.IsPresent()
	case SectionArchitecture:
		return d.Architecture.IsPresent()
	case SectionServiceTracks:
		return d.Tracks.IsPresent()
	case SectionScenarios:
		return d.Scenarios.IsPresent()
	default:
		return false
	}
}

// Sections returns the present sections in the order their keys appear in the
// source document. Documents built in code fall back to DefaultSectionOrder.
func (d *Document) Sections() []SectionKey {
	return d.SectionsOrdered(nil)
}

// SectionsOrdered lists present sections with the keys in override first;
// the remaining sections follow in document order.
func (d *Document) SectionsOrdered(override []SectionKey) []SectionKey {
	if d == nil {
		return nil
	}
	seen := map[SectionKey]bool{}
	out := make([]SectionKey, 0, len(sectionNames))
	add := func(k SectionKey) {
		if k == SectionUnknown || seen[k] || !d.Has(k) {
			return
		}
		seen[k] = true
		out = append(out, k)
	}
	for _, k := range override {
		add(k)
	}
	for _, name := range d.keys {
		add(ParseSectionKey(name))
	}
	for _, k := range DefaultSectionOrder() {
		add(k)
	}
	return out
}

// UnknownKeys lists top-level keys that neither name a section nor belong to
// the document structure.
func (d *Document) UnknownKeys() []string {
	if d == nil {
		return nil
	}
	var out []string
	for _, name := range d.keys {
		if _, ok := structuralKeys[name]; ok {
			continue
		}
		if ParseSectionKey(name) == SectionUnknown {
			out = append(out, name)
		}
	}
	return out
}

// CompanyName returns the company name or fallback when the document omits it.
func (d *Document) CompanyName(fallback string) string {
	if d == nil {
		return fallback
	}
	return Fallback(d.CompanyInfo.Name, fallback)
}

// Headline returns the hero headline, defaulting to the company name.
func (d *Document) Headline(fallback string) string {
	if d == nil {
		return fallback
	}
	return Fallback(d.CompanyInfo.Headline, d.CompanyName(fallback))
}

// Fallback returns def when v is blank.
func Fallback(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
