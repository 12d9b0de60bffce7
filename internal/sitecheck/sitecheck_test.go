package sitecheck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/i18n"
)

func messages(issues []Issue) string {
	var b strings.Builder
	for _, is := range issues {
		b.WriteString(is.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func TestBundledSitesHaveNoErrors(t *testing.T) {
	t.Parallel()

	cat, err := i18n.Default()
	require.NoError(t, err)

	var sites []*content.Site
	for _, id := range []string{"aigrowth", "huirong"} {
		site, err := content.LoadSite(content.Embedded(), content.SiteSpec{ID: id, Name: id, Theme: "trust"})
		require.NoError(t, err)
		sites = append(sites, site)
	}

	issues := Sites(sites, cat)
	require.False(t, HasErrors(issues), messages(issues))
	require.NotContains(t, messages(issues), "unknown icon")

	out := messages(issues)
	require.Contains(t, out, `warning huirong/zh: companyInfo.headline is missing, falling back to "海南汇融未来有限公司"`)
	require.Contains(t, out, `warning huirong/en: companyInfo.headline is missing, falling back to "Hainan Huirong Future Co., Ltd."`)
	require.NotContains(t, out, "aigrowth/zh: companyInfo.headline")
	require.Contains(t, out, "[huirong/company.zh.yaml]")
}

func TestSiteReportsSuspiciousContent(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"companyInfo": {},
		"coreAdvantages": [
			{"title": "Fast", "icon": "Sparkles", "color": "red"},
			{"icon": "Zap"}
		],
		"testimonials": []
	}`)
	doc, err := content.DecodeDocument("company.zh.json", raw)
	require.NoError(t, err)
	other, err := content.DecodeDocument("company.en.json", []byte(`{"companyInfo": {"name": "Acme", "headline": "Go"}}`))
	require.NoError(t, err)

	site, err := content.NewSite(content.SiteSpec{ID: "acme", Name: "Acme Site", Theme: "neon"}, doc, other)
	require.NoError(t, err)

	out := messages(Site(site, nil))
	require.Contains(t, out, `warning acme: unknown theme "neon", using "growth"`)
	require.Contains(t, out, `warning acme/zh: companyInfo.name is missing, falling back to "Acme Site"`)
	require.Contains(t, out, `warning acme/zh: coreAdvantages[0]: unknown icon "Sparkles"`)
	require.Contains(t, out, `warning acme/zh: coreAdvantages[0]: color "red" is not a hex colour and is ignored`)
	require.Contains(t, out, `warning acme/zh: coreAdvantages[1]: item has no name or title`)
	require.Contains(t, out, `warning acme/zh: unknown top-level key "testimonials" is ignored`)
	require.Contains(t, out, "warning acme: section coreAdvantages is present in only one locale")
	require.NotContains(t, out, "acme/en")
}

func TestSiteReportsMissingTranslations(t *testing.T) {
	t.Parallel()

	cat, err := i18n.Default()
	require.NoError(t, err)

	pair, err := content.ParseLocalePair("zh", "ja")
	require.NoError(t, err)
	doc := &content.Document{CompanyInfo: content.CompanyInfo{Name: "X", Headline: "Y"}}
	site, err := content.NewSite(content.SiteSpec{ID: "jp", Pair: pair}, doc, doc)
	require.NoError(t, err)

	issues := Site(site, cat)
	require.True(t, HasErrors(issues))
	require.Contains(t, messages(issues), `error jp/ja: UI text "cta_primary" has no translation`)
}
