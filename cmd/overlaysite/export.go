package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/export"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/httpserver"
)

func newExportCmd() *cobra.Command {
	var (
		out         string
		baseURL     string
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the landing page and assets to a directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides := map[string]string{}
			if baseURL != "" {
				overrides["SITE_BASE_URL"] = baseURL
			}
			rt, err := bootstrap(cmd.Context(), overrides)
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()

			site, err := httpserver.NewSite(rt.serverConfig())
			if err != nil {
				return err
			}
			res, err := export.Run(cmd.Context(), site, export.Options{
				OutDir:      out,
				Concurrency: concurrency,
				Logger:      rt.logger,
			})
			if err != nil {
				rt.logger.Error("export failed", zap.Error(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d files to %s\n", len(res.Files), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "public URL of the exported site, overrides SITE_BASE_URL")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "files written in parallel")
	return cmd
}
