package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message ids shared by every locale file.
const (
	MsgLangShort            = "lang_short"
	MsgLangSwitch           = "lang_switch"
	MsgCTAPrimary           = "cta_primary"
	MsgCTASecondary         = "cta_secondary"
	MsgOverlayClose         = "overlay_close"
	MsgProjectTitle         = "project_title"
	MsgChatTitle            = "chat_title"
	MsgChatOpen             = "chat_open"
	MsgChatFallback         = "chat_fallback"
	MsgSectionAdvantages    = "section_advantages"
	MsgSectionTechStack     = "section_tech_stack"
	MsgSectionArchitecture  = "section_architecture"
	MsgSectionServiceTracks = "section_service_tracks"
	MsgSectionScenarios     = "section_scenarios"
	MsgContactTitle         = "contact_title"
	MsgContactPhone         = "contact_phone"
	MsgContactEmail         = "contact_email"
	MsgContactAddress       = "contact_address"
	MsgWorkingHours         = "working_hours"
	MsgResponseTime         = "response_time"
	MsgFooterCopyright      = "footer_copyright"
)

// MessageIDs lists every id the views look up.
func MessageIDs() []string {
	return []string{
		MsgLangShort, MsgLangSwitch,
		MsgCTAPrimary, MsgCTASecondary,
		MsgOverlayClose, MsgProjectTitle, MsgChatTitle, MsgChatOpen, MsgChatFallback,
		MsgSectionAdvantages, MsgSectionTechStack, MsgSectionArchitecture,
		MsgSectionServiceTracks, MsgSectionScenarios,
		MsgContactTitle, MsgContactPhone, MsgContactEmail, MsgContactAddress,
		MsgWorkingHours, MsgResponseTime, MsgFooterCopyright,
	}
}

//go:embed locales/*.toml
var embedded embed.FS

// Catalog resolves UI strings for a language code, falling back to the
// catalog's default language and finally to the message id.
type Catalog struct {
	bundle   *goi18n.Bundle
	fallback language.Tag
}

// Default loads the catalogs bundled with the binary.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "locales")
	if err != nil {
		return nil, err
	}
	return Load(sub, language.Chinese)
}

// Load parses every ui.<code>.toml file at the root of fsys.
func Load(fsys fs.FS, fallback language.Tag) (*Catalog, error) {
	bundle := goi18n.NewBundle(fallback)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	names, err := fs.Glob(fsys, "ui.*.toml")
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, errors.New("i18n: no ui.*.toml files found")
	}
	sort.Strings(names)
	loadedFallback := false
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", name, err)
		}
		mf, err := bundle.ParseMessageFileBytes(raw, path.Base(name))
		if err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", name, err)
		}
		if sameBase(mf.Tag, fallback) {
			loadedFallback = true
		}
	}
	if !loadedFallback {
		return nil, fmt.Errorf("i18n: fallback language %s not loaded", fallback)
	}
	return &Catalog{bundle: bundle, fallback: fallback}, nil
}

// Fallback returns the language used when a code has no catalog.
func (c *Catalog) Fallback() language.Tag { return c.fallback }

// Languages lists the loaded language tags.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// T returns the message for id in lang.
func (c *Catalog) T(lang, id string) string {
	return c.Format(lang, id, nil)
}

// Format renders the message for id in lang with template data. Languages
// without a catalog and ids the language lacks use the fallback language.
func (c *Catalog) Format(lang, id string, data map[string]any) string {
	if c == nil {
		return id
	}
	cfg := &goi18n.LocalizeConfig{MessageID: id, TemplateData: data}
	if c.supports(lang) {
		out, err := goi18n.NewLocalizer(c.bundle, lang).Localize(cfg)
		if err == nil && strings.TrimSpace(out) != "" {
			return out
		}
	}
	out, err := goi18n.NewLocalizer(c.bundle, c.fallback.String()).Localize(cfg)
	if err != nil || strings.TrimSpace(out) == "" {
		return id
	}
	return out
}

// supports reports whether a catalog was loaded for lang's base language.
func (c *Catalog) supports(lang string) bool {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return false
	}
	for _, t := range c.bundle.LanguageTags() {
		if sameBase(t, tag) {
			return true
		}
	}
	return false
}

// Has reports whether lang defines id itself, without fallback.
func (c *Catalog) Has(lang, id string) bool {
	want, err := language.Parse(lang)
	if err != nil {
		return false
	}
	_, tag, err := goi18n.NewLocalizer(c.bundle, lang).LocalizeWithTag(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return false
	}
	return sameBase(tag, want)
}

// Missing lists the message ids lang does not define.
func (c *Catalog) Missing(lang string) []string {
	var out []string
	for _, id := range MessageIDs() {
		if !c.Has(lang, id) {
			out = append(out, id)
		}
	}
	return out
}

func sameBase(a, b language.Tag) bool {
	ab, _ := a.Base()
	bb, _ := b.Base()
	return ab == bb
}
