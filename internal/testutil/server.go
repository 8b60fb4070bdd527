package testutil

import (
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/content"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/httpserver"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/reveal"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithFold sets the first-paint viewport.
func WithFold(width, height float64) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Fold = reveal.Rect{Width: width, Height: height}
	}
}

// WithLanding replaces the embedded content.
func WithLanding(landing *content.Landing) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Landing = landing
	}
}

// WithLogger routes server logs to logger.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Logger = logger
	}
}

// WithAssetMaxAge sets the Cache-Control lifetime of static assets.
func WithAssetMaxAge(d time.Duration) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.AssetMaxAge = d
	}
}

// NewServer constructs an httptest server running the site HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address:     ":0",
		BaseURL:     "https://overlay.example.com",
		Fold:        reveal.Rect{Width: 1280, Height: 900},
		AssetMaxAge: time.Hour,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	srv, err := httpserver.New(cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
