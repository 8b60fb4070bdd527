package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/httpserver"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides := map[string]string{}
			if addr != "" {
				overrides["SITE_HTTP_ADDR"] = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, overrides)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides SITE_HTTP_ADDR")
	return cmd
}

func runServe(ctx context.Context, overrides map[string]string) error {
	rt, err := bootstrap(ctx, overrides)
	if err != nil {
		return err
	}
	logger := rt.logger
	defer func() { _ = logger.Sync() }()

	srv, err := httpserver.New(rt.serverConfig())
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("site listening",
		zap.String("addr", rt.cfg.Server.Addr),
		zap.String("base_url", rt.cfg.Site.BaseURL),
		zap.String("lang", rt.cfg.Site.Lang.String()),
	)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("http server failed", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", rt.cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), rt.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}
