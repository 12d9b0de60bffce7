package content

import (
	"errors"
	"io/fs"
	"path"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestEveryEmbeddedDocumentDecodes(t *testing.T) {
	t.Parallel()

	var names []string
	err := fs.WalkDir(Embedded(), ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		names = append(names, name)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, names, 4)

	for _, name := range names {
		t.Run(path.Base(path.Dir(name))+"/"+path.Base(name), func(t *testing.T) {
			raw, err := fs.ReadFile(Embedded(), name)
			require.NoError(t, err)
			doc, err := DecodeDocument(name, raw)
			require.NoError(t, err)
			require.NotEmpty(t, doc.CompanyInfo.Name)
		})
	}
}

func TestEmbeddedSitesLoad(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"aigrowth", "huirong"} {
		site, err := LoadSite(Embedded(), SiteSpec{ID: id})
		require.NoError(t, err, id)
		for _, l := range []Locale{Primary, Secondary} {
			doc := site.Document(l)
			require.NotNil(t, doc)
			require.NotEmpty(t, doc.CompanyInfo.Name, "%s %s", id, l)
			require.Empty(t, doc.UnknownKeys(), "%s %s", id, l)
			require.NotEmpty(t, site.Source(l))
		}
	}
}

func TestEmbeddedHuirongOmitsTechSections(t *testing.T) {
	t.Parallel()

	site, err := LoadSite(Embedded(), SiteSpec{ID: "huirong"})
	require.NoError(t, err)

	doc := site.Document(Primary)
	require.Equal(t, []SectionKey{SectionAdvantages, SectionServiceTracks, SectionScenarios}, doc.Sections())
	require.Equal(t, "huirong/company.zh.yaml", site.Source(Primary))
}

func TestLoadSiteMissingLocale(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"acme/company.zh.json": {Data: []byte(`{"companyInfo": {"name": "Acme"}}`)},
	}
	_, err := LoadSite(fsys, SiteSpec{ID: "acme"})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDocumentMissing))
}

func TestLoadSitePrefersJSONAndHonoursDir(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"sites/acme/company.zh.json": {Data: []byte(`{"companyInfo": {"name": "json"}}`)},
		"sites/acme/company.zh.yaml": {Data: []byte("companyInfo:\n  name: yaml\n")},
		"sites/acme/company.en.yml":  {Data: []byte("companyInfo:\n  name: yml\n")},
	}
	site, err := LoadSite(fsys, SiteSpec{ID: "acme", Dir: "sites/acme/"})
	require.NoError(t, err)
	require.Equal(t, "json", site.Document(Primary).CompanyInfo.Name)
	require.Equal(t, "yml", site.Document(Secondary).CompanyInfo.Name)
	require.Equal(t, "acme", site.Name())
}

func TestStoreLookupAndDefault(t *testing.T) {
	t.Parallel()

	a, err := NewSite(SiteSpec{ID: "a", Name: "Site A"}, &Document{}, &Document{})
	require.NoError(t, err)
	b, err := NewSite(SiteSpec{ID: "b"}, &Document{}, &Document{})
	require.NoError(t, err)

	store := NewStore()
	require.Nil(t, store.Default())
	require.NoError(t, store.Add(b))
	require.NoError(t, store.Add(a))
	require.Error(t, store.Add(a))

	require.Equal(t, "b", store.Default().ID())
	require.Equal(t, []string{"a", "b"}, store.IDs())
	require.Len(t, store.Sites(), 2)

	require.NoError(t, store.SetDefault("a"))
	require.Equal(t, "Site A", store.Default().Name())

	_, err = store.Site("missing")
	require.ErrorIs(t, err, ErrSiteNotFound)
	require.ErrorIs(t, store.SetDefault("missing"), ErrSiteNotFound)
}

func TestStoreResolvesHosts(t *testing.T) {
	t.Parallel()

	a, err := NewSite(SiteSpec{ID: "a", Hosts: []string{"a.example"}, BaseURL: "https://a.example/"}, &Document{}, &Document{})
	require.NoError(t, err)
	b, err := NewSite(SiteSpec{ID: "b", Hosts: []string{"b.example", "www.b.example"}}, &Document{}, &Document{})
	require.NoError(t, err)
	clash, err := NewSite(SiteSpec{ID: "c", Hosts: []string{"b.example"}}, &Document{}, &Document{})
	require.NoError(t, err)

	store := NewStore()
	require.NoError(t, store.Add(a))
	require.NoError(t, store.Add(b))
	require.Error(t, store.Add(clash))

	require.Equal(t, "b", store.Resolve("www.b.example").ID())
	require.Equal(t, "a", store.Resolve("unknown.example").ID())
	require.Equal(t, "https://a.example", a.BaseURL())
	require.Equal(t, []string{"b.example", "www.b.example"}, b.Hosts())
}

func TestNewSiteValidation(t *testing.T) {
	t.Parallel()

	_, err := NewSite(SiteSpec{}, &Document{}, &Document{})
	require.Error(t, err)

	_, err = NewSite(SiteSpec{ID: "x"}, &Document{}, nil)
	require.ErrorIs(t, err, ErrDocumentMissing)
}
