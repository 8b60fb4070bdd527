// Package config loads site settings from defaults, an optional .env file, the process
// environment and explicit overrides, in increasing order of precedence.
package config

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	defaultEnvFile         = ".env"
	defaultAddr            = ":8080"
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultBaseURL         = "http://localhost:8080"
	defaultLang            = "en"
	defaultEnvironment     = "local"
	defaultLogLevel        = "info"
	defaultFoldWidth       = 1280
	defaultFoldHeight      = 800
	defaultAssetMaxAge     = 24 * time.Hour
)

// Config captures runtime configuration grouped by concern.
type Config struct {
	Server  ServerConfig
	Site    SiteConfig
	Logging LoggingConfig
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	AssetMaxAge     time.Duration
}

// SiteConfig controls how the landing page renders.
type SiteConfig struct {
	BaseURL     string
	Lang        language.Tag
	Environment string
	ContentFile string
	FoldWidth   int
	FoldHeight  int
}

// LoggingConfig selects the log level.
type LoggingConfig struct {
	Level string
}

// IsProduction reports whether the site runs in a production environment.
func (c SiteConfig) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production") || strings.EqualFold(c.Environment, "prod")
}

// ValidationError is returned when one or more fields are invalid.
type ValidationError struct {
	fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env path. An empty path disables the file.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) { o.envFile = path }
}

// WithEnvMap injects explicit values that win over every other source.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) { o.envMap = values }
}

// WithoutSystemEnv stops Load from reading the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) { o.useSystemEnv = false }
}

// Load assembles the configuration. Values that fail to parse are reported together in a
// *ValidationError rather than silently replaced by defaults.
func Load(ctx context.Context, opts ...Option) (Config, error) {
	if err := ctx.Err(); err != nil {
		return Config{}, err
	}
	options := loaderOptions{envFile: defaultEnvFile, useSystemEnv: true}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnv, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if value, ok := options.envMap[key]; ok {
			return value, true
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		value, ok := dotEnv[key]
		return value, ok
	}

	p := &parser{lookup: lookup}

	addr := p.str("SITE_HTTP_ADDR", "")
	if addr == "" {
		if port := p.str("PORT", ""); port != "" {
			addr = ":" + strings.TrimPrefix(port, ":")
		} else {
			addr = defaultAddr
		}
	}

	cfg := Config{
		Server: ServerConfig{
			Addr:            addr,
			ReadTimeout:     p.duration("SITE_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:    p.duration("SITE_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:     p.duration("SITE_IDLE_TIMEOUT", defaultIdleTimeout),
			ShutdownTimeout: p.duration("SITE_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
			AssetMaxAge:     p.duration("SITE_ASSET_MAX_AGE", defaultAssetMaxAge),
		},
		Site: SiteConfig{
			BaseURL:     strings.TrimRight(p.str("SITE_BASE_URL", defaultBaseURL), "/"),
			Lang:        p.lang("SITE_LANG", defaultLang),
			Environment: strings.ToLower(p.str("SITE_ENV", defaultEnvironment)),
			ContentFile: p.str("SITE_CONTENT_FILE", ""),
			FoldWidth:   p.integer("SITE_FOLD_WIDTH", defaultFoldWidth),
			FoldHeight:  p.integer("SITE_FOLD_HEIGHT", defaultFoldHeight),
		},
		Logging: LoggingConfig{
			Level: strings.ToLower(p.str("LOG_LEVEL", defaultLogLevel)),
		},
	}

	return cfg, validateConfig(cfg, p.invalid)
}

func validateConfig(cfg Config, invalid []string) error {
	fields := append([]string(nil), invalid...)

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		fields = append(fields, "Server.Addr")
	}
	for name, d := range map[string]time.Duration{
		"Server.ReadTimeout":     cfg.Server.ReadTimeout,
		"Server.WriteTimeout":    cfg.Server.WriteTimeout,
		"Server.IdleTimeout":     cfg.Server.IdleTimeout,
		"Server.ShutdownTimeout": cfg.Server.ShutdownTimeout,
	} {
		if d <= 0 {
			fields = append(fields, name)
		}
	}
	if cfg.Server.AssetMaxAge < 0 {
		fields = append(fields, "Server.AssetMaxAge")
	}
	if u, err := url.Parse(cfg.Site.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		fields = append(fields, "Site.BaseURL")
	}
	if cfg.Site.FoldWidth <= 0 {
		fields = append(fields, "Site.FoldWidth")
	}
	if cfg.Site.FoldHeight <= 0 {
		fields = append(fields, "Site.FoldHeight")
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{fields: dedupeSorted(fields)}
}

// parser records keys whose values were present but unparseable.
type parser struct {
	lookup  func(string) (string, bool)
	invalid []string
}

func (p *parser) raw(key string) (string, bool) {
	value, ok := p.lookup(key)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

func (p *parser) str(key, fallback string) string {
	if value, ok := p.raw(key); ok {
		return value
	}
	return fallback
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	value, ok := p.raw(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return d
}

func (p *parser) integer(key string, fallback int) int {
	value, ok := p.raw(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return n
}

func (p *parser) lang(key, fallback string) language.Tag {
	value, ok := p.raw(key)
	if !ok {
		return language.MustParse(fallback)
	}
	tag, err := language.Parse(value)
	if err != nil {
		p.invalid = append(p.invalid, key)
		return language.MustParse(fallback)
	}
	return tag
}

func dedupeSorted(fields []string) []string {
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		key, value, found := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(value), "\"'")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}
