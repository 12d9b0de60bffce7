package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefaultCatalogTranslates(t *testing.T) {
	t.Parallel()

	cat, err := Default()
	require.NoError(t, err)

	require.Equal(t, "开始咨询", cat.T("zh", MsgCTAPrimary))
	require.Equal(t, "Start Consulting", cat.T("en", MsgCTAPrimary))
	require.Equal(t, "Learn More", cat.T("en-GB", MsgCTASecondary))
	require.Equal(t, "关闭", cat.T("fr", MsgOverlayClose), "unknown languages fall back to the default")
	require.Equal(t, "no_such_message", cat.T("en", "no_such_message"))
	require.Equal(t, language.Chinese, cat.Fallback())
	require.Len(t, cat.Languages(), 2)
}

func TestDefaultCatalogIsComplete(t *testing.T) {
	t.Parallel()

	cat, err := Default()
	require.NoError(t, err)
	for _, lang := range []string{"zh", "en"} {
		require.Empty(t, cat.Missing(lang), lang)
	}
}

func TestFormatCopyright(t *testing.T) {
	t.Parallel()

	cat, err := Default()
	require.NoError(t, err)

	got := cat.Format("en", MsgFooterCopyright, map[string]any{"Year": 2026, "Company": "Acme"})
	require.Equal(t, "© 2026 Acme. All rights reserved.", got)
}

func TestHasIgnoresFallbackButLookupsUseIt(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"ui.zh.toml": {Data: []byte("cta_primary = \"开始\"\nchat_title = \"咨询\"\n")},
		"ui.en.toml": {Data: []byte("cta_primary = \"Start\"\n")},
	}
	cat, err := Load(fsys, language.Chinese)
	require.NoError(t, err)

	require.True(t, cat.Has("en", MsgCTAPrimary))
	require.False(t, cat.Has("en", MsgChatTitle))
	require.Equal(t, "咨询", cat.T("en", MsgChatTitle), "missing ids use the fallback language")
	require.Equal(t, "开始", cat.T("fr", MsgCTAPrimary), "unsupported languages use the fallback language")
	require.Equal(t, "Start", cat.T("en-US", MsgCTAPrimary))
	require.Equal(t, "no_such_message", cat.T("fr", "no_such_message"))
	require.Contains(t, cat.Missing("en"), MsgChatTitle)
	require.Contains(t, cat.Missing("fr"), MsgCTAPrimary)
}

func TestLoadRequiresFallbackLanguage(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"ui.en.toml": {Data: []byte("cta_primary = \"Start\"\n")},
	}
	_, err := Load(fsys, language.Chinese)
	require.Error(t, err)

	_, err = Load(fstest.MapFS{}, language.Chinese)
	require.Error(t, err)
}

func TestNilCatalogReturnsID(t *testing.T) {
	t.Parallel()

	var cat *Catalog
	require.Equal(t, MsgChatOpen, cat.T("en", MsgChatOpen))
}
