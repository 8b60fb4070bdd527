package httpserver_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/testutil"
)

var noRedirect = &http.Client{
	CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

var htmxHeaders = map[string]string{"HX-Request": "true"}

func get(t *testing.T, client *http.Client, url string, header map[string]string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestLandingPageRendersContent(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	resp, body := get(t, http.DefaultClient, ts.URL+"/", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	require.Equal(t, "no-store, max-age=0", resp.Header.Get("Cache-Control"))

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, 6, doc.Find("#features .card").Length())
	require.Equal(t, 3, doc.Find("#highlights .highlight").Length())
	require.Equal(t, 6, doc.Find("#faq .faq-item").Length())
	require.Equal(t, 3, doc.Find("#install .step").Length())
	require.Equal(t, 0, doc.Find(".faq-item.is-open").Length())
	require.Equal(t, "https://overlay.example.com/", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	require.Contains(t, doc.Find(`link[rel="stylesheet"]`).AttrOr("href", ""), "/static/css/site.css?v=")
}

func TestLandingPageRevealsOnlyFirstViewport(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		width, height float64
		want          []string
	}{
		"desktop": {1280, 900, []string{"home", "features"}},
		"short":   {1280, 100, []string{"home"}},
	}
	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ts := testutil.NewServer(t, testutil.WithFold(tc.width, tc.height))
			_, body := get(t, http.DefaultClient, ts.URL+"/", nil)
			doc := testutil.ParseHTML(t, body)

			revealed := doc.Find(".reveal.is-visible").Map(func(_ int, s *goquery.Selection) string {
				return s.AttrOr("id", "")
			})
			require.ElementsMatch(t, tc.want, revealed)
			require.Equal(t, len(tc.want), doc.Find("[data-revealed]").Length())
			require.Greater(t, doc.Find(".reveal:not(.is-visible)").Length(), 20)
		})
	}
}

func TestLandingPageRestoresQueryState(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	_, body := get(t, http.DefaultClient, ts.URL+"/?menu=open&faq=1&faq=4&faq=99", nil)
	doc := testutil.ParseHTML(t, body)

	require.True(t, doc.Find("header.site-nav").HasClass("is-open"))
	require.Equal(t, 2, doc.Find(".faq-item.is-open").Length())
	require.True(t, doc.Find("#faq-1").HasClass("is-open"))
	require.True(t, doc.Find("#faq-4").HasClass("is-open"))
	require.Equal(t, "/?faq=0&faq=1&faq=4&menu=open#faq-0", doc.Find("#faq-0 .faq-question").AttrOr("href", ""))
}

func TestNavigateClosesMenuAndRedirects(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	resp, _ := get(t, noRedirect, ts.URL+"/go/install?menu=open&faq=2", nil)

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/?faq=2#install", resp.Header.Get("Location"))
	require.NotEmpty(t, resp.Header.Get("X-Scroll-Offset"))

	resp, _ = get(t, noRedirect, ts.URL+"/go/Highlights", nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/#highlights", resp.Header.Get("Location"))
}

func TestNavigateUnknownSectionIsNoop(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	for _, section := range []string{"pricing", "footer", "feature-0"} {
		resp, body := get(t, noRedirect, ts.URL+"/go/"+section, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode, section)
		require.Empty(t, body)
		require.Empty(t, resp.Header.Get("Location"))
	}
}

func TestFAQFragmentTogglesOneEntry(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, body := get(t, http.DefaultClient, ts.URL+"/fragments/faq/3?open=false", htmxHeaders)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc := testutil.ParseHTML(t, body)
	item := doc.Find("#faq-3")
	require.Equal(t, 1, item.Length())
	require.True(t, item.HasClass("is-open"))
	require.True(t, item.HasClass("is-visible"))
	require.Equal(t, 1, doc.Find(".faq-item").Length(), "only the toggled entry is returned")
	require.Equal(t, "/fragments/faq/3?open=true", item.Find(".faq-question").AttrOr("hx-get", ""))
	require.Equal(t, "true", item.Find(".faq-question").AttrOr("aria-expanded", ""))

	_, body = get(t, http.DefaultClient, ts.URL+"/fragments/faq/3?open=true", htmxHeaders)
	item = testutil.ParseHTML(t, body).Find("#faq-3")
	require.False(t, item.HasClass("is-open"))
	require.Equal(t, "/fragments/faq/3?open=false", item.Find(".faq-question").AttrOr("hx-get", ""))
}

func TestFAQFragmentErrors(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, body := get(t, http.DefaultClient, ts.URL+"/fragments/faq/0", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	require.Contains(t, string(body), "404")

	resp, body = get(t, http.DefaultClient, ts.URL+"/fragments/faq/6", htmxHeaders)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.Equal(t, "not_found", envelope["error"])
	require.EqualValues(t, 6, envelope["index"])
	require.NotEmpty(t, envelope["request_id"])

	resp, body = get(t, http.DefaultClient, ts.URL+"/fragments/faq/one", htmxHeaders)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, string(body), `"error":"bad_request"`)

	resp, _ = get(t, http.DefaultClient, ts.URL+"/fragments/faq/0?open=maybe", htmxHeaders)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStaticAssetsAreCached(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	resp, body := get(t, http.DefaultClient, ts.URL+"/static/js/site.js", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "IntersectionObserver")
	require.Equal(t, "public, max-age=3600, stale-while-revalidate=86400", resp.Header.Get("Cache-Control"))
	etag := resp.Header.Get("ETag")
	require.NotEmpty(t, etag)

	resp, _ = get(t, http.DefaultClient, ts.URL+"/static/js/site.js", map[string]string{"If-None-Match": etag})
	require.Equal(t, http.StatusNotModified, resp.StatusCode)

	resp, _ = get(t, http.DefaultClient, ts.URL+"/static/js/", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	resp, body := get(t, http.DefaultClient, ts.URL+"/healthz", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", string(body))
	require.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	require.Len(t, resp.Header.Get("X-Request-ID"), 26)
}
