package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/content"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/httpserver"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/platform/config"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/platform/observability"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/reveal"
)

var envFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "overlaysite",
		Short: "Landing site for the Overlay Pro TT userscript",
		Long: `overlaysite serves the Overlay Pro TT landing page over HTTP or exports it
as static files. Settings come from SITE_* environment variables and an optional
.env file.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with SITE_* overrides (empty to disable)")
	root.AddCommand(newServeCmd(), newExportCmd())
	return root
}

// app bundles what every subcommand needs after startup.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	landing *content.Landing
}

func bootstrap(ctx context.Context, overrides map[string]string) (*app, error) {
	opts := []config.Option{config.WithEnvFile(envFile)}
	if len(overrides) > 0 {
		opts = append(opts, config.WithEnvMap(overrides))
	}
	cfg, err := config.Load(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	logger = logger.With(zap.String("env", cfg.Site.Environment))

	landing, err := content.Load(cfg.Site.ContentFile)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("load content: %w", err)
	}
	counts := landing.Counts()
	logger.Info("content loaded",
		zap.String("source", contentSource(cfg.Site.ContentFile)),
		zap.Int("features", counts.Features),
		zap.Int("highlights", counts.Highlights),
		zap.Int("faqs", counts.FAQs),
		zap.Int("steps", counts.Steps),
	)
	return &app{cfg: cfg, logger: logger, landing: landing}, nil
}

func (rt *app) serverConfig() httpserver.Config {
	return httpserver.Config{
		Address:      rt.cfg.Server.Addr,
		ReadTimeout:  rt.cfg.Server.ReadTimeout,
		WriteTimeout: rt.cfg.Server.WriteTimeout,
		IdleTimeout:  rt.cfg.Server.IdleTimeout,
		AssetMaxAge:  rt.cfg.Server.AssetMaxAge,
		BaseURL:      rt.cfg.Site.BaseURL,
		Lang:         rt.cfg.Site.Lang,
		Fold: reveal.Rect{
			Width:  float64(rt.cfg.Site.FoldWidth),
			Height: float64(rt.cfg.Site.FoldHeight),
		},
		Landing: rt.landing,
		Logger:  rt.logger,
	}
}

func contentSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
