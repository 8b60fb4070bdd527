package httpserver

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/content"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/faq"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/layout"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/nav"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/platform/httpx"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/platform/observability"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/platform/requestctx"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/reveal"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/scroll"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/seo"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/views"
)

// Site holds the immutable page model shared by all requests.
type Site struct {
	landing  *content.Landing
	meta     seo.Meta
	assets   *Assets
	layout   *layout.Document
	revealed *reveal.Set
	logger   *zap.Logger
	metrics  *observability.HTTPMetrics
}

func newSite(cfg Config, assets *Assets) *Site {
	doc := layout.Estimate(cfg.Landing, cfg.Fold.Width)
	return &Site{
		landing:  cfg.Landing,
		meta:     seo.ForLanding(cfg.Landing, cfg.BaseURL, cfg.Lang),
		assets:   assets,
		layout:   doc,
		revealed: doc.FirstPaint(cfg.Fold),
		logger:   cfg.Logger,
		metrics:  observability.NewHTTPMetrics(cfg.MeterProvider, cfg.Logger),
	}
}

// Assets exposes the static file set.
func (s *Site) Assets() *Assets { return s.assets }

// Revealed lists the ids rendered visible on first paint.
func (s *Site) Revealed() []string { return s.revealed.IDs() }

func (s *Site) pageData(state views.State, static bool) views.PageData {
	return views.PageData{
		Meta: s.meta,
		Assets: views.Assets{
			Stylesheet: s.assets.URL("css/site.css"),
			Script:     s.assets.URL("js/site.js"),
			Favicon:    s.assets.URL("img/favicon.svg"),
		},
		Landing:  s.landing,
		Nav:      nav.Build(nav.SectionHome),
		State:    state,
		Layout:   s.layout,
		Revealed: s.revealed,
		Static:   static,
	}
}

// RenderStatic writes the landing page for static hosting.
func (s *Site) RenderStatic(w io.Writer) error {
	return views.Page(s.pageData(views.State{}, true)).Render(w)
}

// Page renders the landing page. menu and faq query parameters restore the no-JS state.
func (s *Site) Page(w http.ResponseWriter, r *http.Request) {
	state := views.ParseState(r.URL.Query())
	state.OpenFAQ = state.Accordion(s.landing.FAQs).Open()

	w.Header().Add("Vary", "HX-Request")
	templ.Handler(views.Component(views.Page(s.pageData(state, false)))).ServeHTTP(w, r)
}

// Healthz reports liveness.
func (s *Site) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Navigate is the no-JS rendition of section navigation: it closes the menu and sends the
// browser to the section anchor. Unknown sections leave the page where it is.
func (s *Site) Navigate(w http.ResponseWriter, r *http.Request) {
	state := views.ParseState(r.URL.Query())
	menu := nav.NewMobileMenu(state.MenuOpen)
	position := &scroll.Position{}
	navigator := scroll.NewNavigator(sectionDocument{s.layout}, position, menu)

	id := nav.Normalize(chi.URLParam(r, "section"))
	if !navigator.NavigateTo(id) {
		requestctx.Logger(r.Context()).Debug("navigation target not found", zap.String("section", id))
		w.WriteHeader(http.StatusNoContent)
		return
	}

	state = state.WithMenu(menu.IsOpen())
	w.Header().Set("X-Scroll-Offset", strconv.FormatFloat(position.Y, 'f', 0, 64))
	http.Redirect(w, r, state.Href(id), http.StatusSeeOther)
}

// FAQFragment returns entry index toggled from the state given by ?open=.
func (s *Site) FAQFragment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		httpx.WriteError(ctx, w, httpx.BadRequest("faq index must be an integer"))
		return
	}
	open, err := parseOpen(r.URL.Query().Get("open"))
	if err != nil {
		httpx.WriteError(ctx, w, httpx.BadRequest("open must be true or false"))
		return
	}

	var state views.State
	if open {
		state.OpenFAQ = []int{index}
	}
	acc := state.Accordion(s.landing.FAQs)
	nowOpen, err := acc.Toggle(index)
	if errors.Is(err, faq.ErrEntryNotFound) {
		httpx.WriteError(ctx, w, httpx.NotFound("faq entry not found").WithDetails(map[string]any{"index": index}))
		return
	}
	state.OpenFAQ = acc.Open()

	requestctx.Logger(ctx).Debug("faq toggled", zap.Int("index", index), zap.Bool("open", nowOpen))
	item := views.FAQItem(views.FAQItemData{
		Index:    index,
		FAQ:      s.landing.FAQs[index],
		Open:     nowOpen,
		State:    state,
		Layout:   s.layout,
		Revealed: reveal.NewSet(layout.FAQID(index)),
	})
	templ.Handler(views.Component(item)).ServeHTTP(w, r)
}

func parseOpen(raw string) (bool, error) {
	if strings.TrimSpace(raw) == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// sectionDocument restricts navigation to page sections.
type sectionDocument struct {
	doc *layout.Document
}

func (d sectionDocument) ElementTop(id string) (float64, bool) {
	if !nav.IsSection(id) {
		return 0, false
	}
	return d.doc.ElementTop(id)
}
