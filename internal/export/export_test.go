package export

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/httpserver"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/testutil"
)

func newSite(t *testing.T) *httpserver.Site {
	t.Helper()
	site, err := httpserver.NewSite(httpserver.Config{BaseURL: "https://overlay.example.com"})
	require.NoError(t, err)
	return site
}

func TestRunWritesPageAndAssets(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	res, err := Run(context.Background(), newSite(t), Options{OutDir: out})
	require.NoError(t, err)

	require.Contains(t, res.Files, "index.html")
	require.Contains(t, res.Files, "static/css/site.css")
	require.Contains(t, res.Files, "static/js/site.js")
	require.Contains(t, res.Files, "static/img/favicon.svg")

	body, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	doc := testutil.ParseHTML(t, body)

	require.Equal(t, "true", doc.Find("body").AttrOr("data-static", ""))
	require.Equal(t, "#install", doc.Find(`ul.nav-links a[data-nav-target="install"]`).AttrOr("href", ""))
	require.Equal(t, 0, doc.Find("[hx-get]").Length())
	require.Equal(t, 0, doc.Find(`script[src*="htmx"]`).Length())
	require.Equal(t, 6, doc.Find(".faq-item").Length())

	css, err := os.ReadFile(filepath.Join(out, "static", "css", "site.css"))
	require.NoError(t, err)
	require.Contains(t, string(css), ".reveal.is-visible")
}

type failingRenderer struct {
	*httpserver.Site
}

func (failingRenderer) RenderStatic(io.Writer) error { return errors.New("boom") }

func TestRunReportsRenderFailure(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), failingRenderer{newSite(t)}, Options{OutDir: t.TempDir()})
	require.ErrorContains(t, err, "render page: boom")
}

func TestRunRequiresOutDir(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), newSite(t), Options{})
	require.Error(t, err)
}
