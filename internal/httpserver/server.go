package httpserver

import (
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/content"
	custommw "github.com/CreepsoOff/wplace-overlayttpro-website/internal/httpserver/middleware"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/platform/observability"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/reveal"
	"github.com/CreepsoOff/wplace-overlayttpro-website/public"
)

const (
	defaultFoldWidth  = 1280
	defaultFoldHeight = 800
)

// Config holds runtime options for the site HTTP server.
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	AssetMaxAge  time.Duration

	BaseURL string
	Lang    language.Tag
	// Fold is the viewport assumed on first paint; sections inside it render revealed.
	Fold    reveal.Rect
	Landing *content.Landing
	Logger  *zap.Logger

	// MeterProvider receives request metrics; nil uses the global provider.
	MeterProvider metric.MeterProvider
	// Static overrides the embedded asset file system.
	Static        fs.FS
}

// New constructs the HTTP server with the middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	site, err := NewSite(cfg)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              cfg.Address,
		Handler:           site.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       durationOr(cfg.ReadTimeout, 10*time.Second),
		WriteTimeout:      durationOr(cfg.WriteTimeout, 15*time.Second),
		IdleTimeout:       durationOr(cfg.IdleTimeout, 60*time.Second),
	}, nil
}

// NewSite prepares the page model and assets shared by every request.
func NewSite(cfg Config) (*Site, error) {
	if cfg.Landing == nil {
		landing, err := content.Default()
		if err != nil {
			return nil, fmt.Errorf("load default content: %w", err)
		}
		cfg.Landing = landing
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Lang == language.Und {
		cfg.Lang = language.English
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Fold.Width <= 0 || cfg.Fold.Height <= 0 {
		cfg.Fold = reveal.Rect{Width: defaultFoldWidth, Height: defaultFoldHeight}
	}
	static := cfg.Static
	if static == nil {
		embedded, err := public.StaticFS()
		if err != nil {
			return nil, fmt.Errorf("embed static: %w", err)
		}
		static = embedded
	}
	assets, err := NewAssets(static, cfg.AssetMaxAge)
	if err != nil {
		return nil, err
	}
	return newSite(cfg, assets), nil
}

// Router mounts every route behind the shared middleware stack.
func (s *Site) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(custommw.RequestID())
	router.Use(chimw.RealIP)
	router.Use(chimw.CleanPath)
	router.Use(observability.InjectLogger(s.logger))
	router.Use(observability.Trace())
	router.Use(observability.RequestLogger())
	router.Use(s.metrics.Middleware())
	router.Use(observability.Recovery(s.logger))
	router.Use(chimw.Compress(5))
	router.Use(custommw.SecurityHeaders())
	router.Use(custommw.HTMX())

	router.Get("/healthz", s.Healthz)
	router.Handle(StaticPrefix+"/*", http.StripPrefix(StaticPrefix, s.assets))

	router.Group(func(r chi.Router) {
		r.Use(custommw.NoStore())
		r.Get("/", s.Page)
		r.Get("/go/{section}", s.Navigate)
		RegisterFragment(r, "/fragments/faq/{index}", s.FAQFragment)
	})

	return router
}

// RegisterFragment registers a GET handler intended for htmx fragment rendering.
func RegisterFragment(r chi.Router, pattern string, handler http.HandlerFunc) {
	r.With(custommw.RequireHTMX()).Get(pattern, handler)
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
