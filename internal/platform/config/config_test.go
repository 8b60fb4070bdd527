package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(context.Background(), WithoutSystemEnv(), WithEnvFile(""))
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, 24*time.Hour, cfg.Server.AssetMaxAge)
	require.Equal(t, "http://localhost:8080", cfg.Site.BaseURL)
	require.Equal(t, language.English, cfg.Site.Lang)
	require.Equal(t, "local", cfg.Site.Environment)
	require.False(t, cfg.Site.IsProduction())
	require.Equal(t, 1280, cfg.Site.FoldWidth)
	require.Equal(t, 800, cfg.Site.FoldHeight)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadWithOverrides(t *testing.T) {
	env := map[string]string{
		"SITE_HTTP_ADDR":        "127.0.0.1:9000",
		"SITE_READ_TIMEOUT":     "3s",
		"SITE_SHUTDOWN_TIMEOUT": "1m",
		"SITE_BASE_URL":         "https://overlay.example.com/",
		"SITE_LANG":             "fr-CA",
		"SITE_ENV":              "Production",
		"SITE_FOLD_WIDTH":       "390",
		"SITE_FOLD_HEIGHT":      "844",
		"SITE_CONTENT_FILE":     "content/landing.yaml",
		"SITE_ASSET_MAX_AGE":    "0s",
		"LOG_LEVEL":             "DEBUG",
	}

	cfg, err := Load(context.Background(), WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	require.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, time.Minute, cfg.Server.ShutdownTimeout)
	require.Zero(t, cfg.Server.AssetMaxAge)
	require.Equal(t, "https://overlay.example.com", cfg.Site.BaseURL)
	require.Equal(t, language.MustParse("fr-CA"), cfg.Site.Lang)
	require.True(t, cfg.Site.IsProduction())
	require.Equal(t, 390, cfg.Site.FoldWidth)
	require.Equal(t, 844, cfg.Site.FoldHeight)
	require.Equal(t, "content/landing.yaml", cfg.Site.ContentFile)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFallsBackToPort(t *testing.T) {
	cfg, err := Load(context.Background(), WithEnvMap(map[string]string{"PORT": "3000"}), WithoutSystemEnv(), WithEnvFile(""))
	require.NoError(t, err)
	require.Equal(t, ":3000", cfg.Server.Addr)
}

func TestLoadReportsEveryInvalidField(t *testing.T) {
	env := map[string]string{
		"SITE_READ_TIMEOUT": "soon",
		"SITE_LANG":         "not a language",
		"SITE_BASE_URL":     "ftp://example.com",
		"SITE_FOLD_WIDTH":   "-1",
		"SITE_FOLD_HEIGHT":  "tall",
	}

	_, err := Load(context.Background(), WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	require.Equal(t, []string{
		"SITE_FOLD_HEIGHT",
		"SITE_LANG",
		"SITE_READ_TIMEOUT",
		"Site.BaseURL",
		"Site.FoldWidth",
	}, vErr.Fields())
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "# local overrides\nexport SITE_ENV=staging\nSITE_LANG=\"de\"\nSITE_FOLD_WIDTH=1024\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	t.Setenv("SITE_LANG", "es")

	cfg, err := Load(context.Background(),
		WithEnvFile(envFile),
		WithEnvMap(map[string]string{"SITE_FOLD_WIDTH": "640"}),
	)
	require.NoError(t, err)

	require.Equal(t, "staging", cfg.Site.Environment)
	require.Equal(t, language.Spanish, cfg.Site.Lang)
	require.Equal(t, 640, cfg.Site.FoldWidth)
}

func TestLoadHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, WithoutSystemEnv(), WithEnvFile(""))
	require.ErrorIs(t, err, context.Canceled)
}
