package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSectionsFollowDocumentKeyOrder(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"companyInfo": {"name": "Acme"},
		"applicableScenarios": {"title": "S", "scenarios": ["a"]},
		"coreAdvantages": [{"title": "A"}],
		"systemArchitecture": {"title": "Arch", "layers": []}
	}`)
	doc, err := DecodeDocument("company.en.json", raw)
	require.NoError(t, err)

	require.Equal(t, []SectionKey{SectionScenarios, SectionAdvantages, SectionArchitecture}, doc.Sections())
	require.False(t, doc.Has(SectionTechStack))
	require.False(t, doc.Has(SectionServiceTracks))
}

func TestSectionsOrderedOverrideOnlyReorders(t *testing.T) {
	t.Parallel()

	raw := []byte("companyInfo:\n  name: Acme\ncoreAdvantages: []\ncoreTechStack:\n  title: T\nserviceTracks:\n  title: Tracks\n")
	doc, err := DecodeDocument("company.zh.yaml", raw)
	require.NoError(t, err)

	got := doc.SectionsOrdered([]SectionKey{SectionServiceTracks, SectionScenarios})
	require.Equal(t, []SectionKey{SectionServiceTracks, SectionAdvantages, SectionTechStack}, got,
		"absent sections in the override must be skipped and unlisted ones appended")
}

func TestTrackOrderIsPreserved(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"serviceTracks": {"title": "T", "tracks": [
		{"title": "A"}, {"title": "B"}, {"title": "C"}
	]}}`)
	doc, err := DecodeDocument("company.en.json", raw)
	require.NoError(t, err)

	tracks, ok := doc.Tracks.Get()
	require.True(t, ok)
	var headings []string
	for _, tr := range tracks.Tracks {
		headings = append(headings, tr.Heading())
	}
	require.Equal(t, []string{"A", "B", "C"}, headings)
}

func TestNullSectionIsAbsent(t *testing.T) {
	t.Parallel()

	doc, err := DecodeDocument("company.en.json", []byte(`{"coreTechStack": null, "contact": null}`))
	require.NoError(t, err)
	require.False(t, doc.TechStack.IsPresent())
	require.False(t, doc.Contact.IsPresent())
	require.Empty(t, doc.Sections())

	doc, err = DecodeDocument("company.en.yaml", []byte("coreTechStack: ~\n"))
	require.NoError(t, err)
	require.False(t, doc.TechStack.IsPresent())
}

func TestMissingScenarioFieldsDecode(t *testing.T) {
	t.Parallel()

	doc, err := DecodeDocument("company.en.json", []byte(`{"applicableScenarios": {"title": "Only title"}}`))
	require.NoError(t, err)

	sc, ok := doc.Scenarios.Get()
	require.True(t, ok)
	require.Empty(t, sc.Scenarios)
	require.False(t, sc.ValueOutput.IsPresent())
}

func TestUnknownKeysAreReported(t *testing.T) {
	t.Parallel()

	doc, err := DecodeDocument("company.en.json", []byte(`{"companyInfo": {}, "profile": null, "testimonials": [], "coreAdvantages": []}`))
	require.NoError(t, err)
	require.Equal(t, []string{"testimonials"}, doc.UnknownKeys())
}

func TestHeadlineFallsBackToCompanyName(t *testing.T) {
	t.Parallel()

	doc := &Document{CompanyInfo: CompanyInfo{Name: "Acme"}}
	require.Equal(t, "Acme", doc.Headline("Site"))

	doc = &Document{}
	require.Equal(t, "Site", doc.CompanyName("Site"))
	require.Equal(t, "Site", doc.Headline("Site"))

	doc = &Document{CompanyInfo: CompanyInfo{Name: "Acme", Headline: "AI Growth"}}
	require.Equal(t, "AI Growth", doc.Headline("Site"))
}

func TestDocumentBuiltInCodeUsesDefaultOrder(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Scenarios:  Present(Scenarios{Title: "S"}),
		TechStack:  Absent[TechStack](),
		Advantages: Present(Advantages{{Title: "A"}}),
	}
	require.Equal(t, []SectionKey{SectionAdvantages, SectionScenarios}, doc.Sections())
}

func TestParseSectionKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, SectionTechStack, ParseSectionKey("coreTechStack"))
	require.Equal(t, SectionServiceTracks, ParseSectionKey(" ServiceTracks "))
	require.Equal(t, SectionUnknown, ParseSectionKey("companyInfo"))
	require.Equal(t, "unknown", SectionUnknown.String())
}

func TestDecodeDocumentRejectsUnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := DecodeDocument("company.en.toml", []byte(""))
	require.Error(t, err)

	_, err = DecodeDocument("company.en.json", []byte(`[]`))
	require.Error(t, err)
}
