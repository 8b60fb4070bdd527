package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestDefaultContentCounts(t *testing.T) {
	t.Parallel()

	landing, err := Default()
	require.NoError(t, err)
	require.Equal(t, Counts{Features: 6, Highlights: 3, FAQs: 6, Steps: 3}, landing.Counts())

	require.Equal(t, "Overlay Pro TT", landing.Product.Name)
	require.Equal(t, "https://github.com/CreepsoOff/Wplace-Overlay-Pro", landing.Product.RepositoryURL)
	require.Contains(t, landing.Product.Keywords, "tampermonkey")
	require.Equal(t, "Multiple Overlays", landing.Features[0].Title)
	require.Equal(t, "move", landing.Highlights[2].Icon)

	first := landing.Steps[0]
	require.Len(t, first.Links, 2)
	require.Equal(t, "Violentmonkey", first.Links[0].Label)
}

func TestMarkdownIsRenderedAndSanitised(t *testing.T) {
	t.Parallel()

	landing, err := Default()
	require.NoError(t, err)

	last := landing.FAQs[len(landing.FAQs)-1]
	require.Contains(t, last.AnswerHTML, `<a href="https://github.com/CreepsoOff/Wplace-Overlay-Pro/blob/master/LICENSE.md"`)
	require.Contains(t, last.AnswerHTML, `target="_blank"`)
	require.Contains(t, landing.Steps[2].BodyHTML, "<strong>Overlay Pro</strong>")

	html, err := renderMarkdown("hi <script>alert(1)</script> [x](javascript:alert(1))")
	require.NoError(t, err)
	require.NotContains(t, html, "<script")
	require.NotContains(t, html, "javascript:")
}

func TestParseAggregatesValidationErrors(t *testing.T) {
	t.Parallel()

	raw := []byte(`
product:
  name: ""
  description: demo
  repository_url: not-a-url
  download_url: https://example.com/x.user.js
  target_site_url: https://wplace.live
features:
  - icon: rocket
    title: Fast
    description: Very
highlights:
  - icon: eye
    title: Eye
    description: See
faqs: []
steps:
  - title: One
    links:
      - label: Go
        url: /relative
`)

	_, err := Parse(raw)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalid)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))

	fields := map[string]bool{}
	for _, e := range merr.Errors {
		var fe *FieldError
		require.True(t, errors.As(e, &fe))
		fields[fe.Field] = true
	}
	require.True(t, fields["product.name"])
	require.True(t, fields["product.repository_url"])
	require.True(t, fields["features[0].icon"])
	require.True(t, fields["faqs"])
	require.True(t, fields["steps[0].links[0].url"])
	require.Len(t, merr.Errors, 5)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("product:\n  nickname: x\n"))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalid)
}

func TestLoadFileOverridesEmbeddedContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "landing.yaml")
	require.NoError(t, os.WriteFile(path, defaultLanding, 0o600))

	landing, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 6, landing.Counts().FAQs)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
