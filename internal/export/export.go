// Package export writes the landing page and its assets to a directory for static hosting.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/httpserver"
)

const defaultConcurrency = 4

// Renderer is the part of the site an export needs.
type Renderer interface {
	RenderStatic(w io.Writer) error
	Assets() *httpserver.Assets
}

// Options controls an export run.
type Options struct {
	OutDir      string
	Concurrency int
	Logger      *zap.Logger
}

// Result lists the written files relative to OutDir.
type Result struct {
	Files []string
}

// Run renders index.html and copies every static asset under OutDir/static. Files are
// written concurrently; the first failure cancels the rest.
func Run(ctx context.Context, site Renderer, opts Options) (Result, error) {
	if opts.OutDir == "" {
		return Result{}, fmt.Errorf("export: output directory is required")
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("export: create %s: %w", opts.OutDir, err)
	}

	var (
		mu      sync.Mutex
		written []string
	)
	record := func(rel string) {
		mu.Lock()
		written = append(written, rel)
		mu.Unlock()
		logger.Debug("exported file", zap.String("path", rel))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	g.Go(func() error {
		var buf bytes.Buffer
		if err := site.RenderStatic(&buf); err != nil {
			return fmt.Errorf("export: render page: %w", err)
		}
		if err := writeFile(ctx, filepath.Join(opts.OutDir, "index.html"), &buf); err != nil {
			return err
		}
		record("index.html")
		return nil
	})

	assets := site.Assets()
	for _, name := range assets.Files() {
		name := name
		g.Go(func() error {
			rel := path.Join("static", name)
			if err := copyAsset(ctx, assets.FS(), name, filepath.Join(opts.OutDir, filepath.FromSlash(rel))); err != nil {
				return err
			}
			record(rel)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	sort.Strings(written)
	logger.Info("export complete", zap.String("out", opts.OutDir), zap.Int("files", len(written)))
	return Result{Files: written}, nil
}

func copyAsset(ctx context.Context, fsys fs.FS, name, dst string) error {
	src, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("export: open asset %s: %w", name, err)
	}
	defer src.Close()
	return writeFile(ctx, dst, src)
}

func writeFile(ctx context.Context, dst string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("export: create dir for %s: %w", dst, err)
	}
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", dst, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("export: write %s: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", dst, err)
	}
	return nil
}
