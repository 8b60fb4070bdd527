package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/content"
)

func TestForLanding(t *testing.T) {
	t.Parallel()

	landing, err := content.Default()
	require.NoError(t, err)

	meta := ForLanding(landing, "https://overlay.example.com/", language.MustParse("pt-BR"))
	require.Equal(t, "pt-BR", meta.Lang)
	require.Equal(t, "https://overlay.example.com/", meta.Canonical)
	require.Equal(t, "pt_BR", meta.OG.Locale)
	require.Equal(t, landing.Product.Name, meta.OG.SiteName)
	require.Contains(t, meta.KeywordList(), "userscript")
	require.Len(t, meta.JSONLD, 2)

	var app map[string]any
	require.NoError(t, json.Unmarshal([]byte(meta.JSONLD[0]), &app))
	require.Equal(t, "SoftwareApplication", app["@type"])
	require.Equal(t, landing.Product.DownloadURL, app["downloadUrl"])

	var faq map[string]any
	require.NoError(t, json.Unmarshal([]byte(meta.JSONLD[1]), &faq))
	require.Equal(t, "FAQPage", faq["@type"])
	require.Len(t, faq["mainEntity"], 6)
}

func TestOGLocaleWithoutRegion(t *testing.T) {
	t.Parallel()

	require.Equal(t, "en", ogLocale(language.MustParse("en")))
}
