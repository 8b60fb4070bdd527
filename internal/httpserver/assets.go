package httpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"sort"
	"strings"
	"time"
)

// StaticPrefix is the URL prefix the embedded assets are mounted under.
const StaticPrefix = "/static"

// Assets serves an fs.FS with Cache-Control, Vary and ETag handling and hands out
// content-hashed URLs so long cache lifetimes stay safe across deploys.
type Assets struct {
	fsys   fs.FS
	files  http.Handler
	sums   map[string]string
	maxAge time.Duration
}

// NewAssets hashes every file in fsys up front.
func NewAssets(fsys fs.FS, maxAge time.Duration) (*Assets, error) {
	sums := map[string]string{}
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		sum, err := fileSum(fsys, path)
		if err != nil {
			return err
		}
		sums["/"+path] = sum
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("hash static assets: %w", err)
	}
	return &Assets{
		fsys:   fsys,
		files:  http.FileServer(http.FS(fsys)),
		sums:   sums,
		maxAge: maxAge,
	}, nil
}

// URL returns the public URL for name with a version query derived from its content.
// Unknown names are returned unversioned.
func (a *Assets) URL(name string) string {
	name = "/" + strings.TrimPrefix(name, "/")
	if sum, ok := a.sums[name]; ok {
		return StaticPrefix + name + "?v=" + sum[:12]
	}
	return StaticPrefix + name
}

// Files lists every asset path relative to the root, e.g. "css/site.css".
func (a *Assets) Files() []string {
	out := make([]string, 0, len(a.sums))
	for name := range a.sums {
		out = append(out, strings.TrimPrefix(name, "/"))
	}
	sort.Strings(out)
	return out
}

// FS exposes the underlying file system.
func (a *Assets) FS() fs.FS { return a.fsys }

// ServeHTTP expects the StaticPrefix to be stripped already.
func (a *Assets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sum, ok := a.sums[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	h := w.Header()
	h.Set("Vary", "Accept-Encoding")
	if a.maxAge > 0 {
		h.Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=86400", int(a.maxAge.Seconds())))
	} else {
		h.Set("Cache-Control", "no-cache")
	}
	etag := `W/"` + sum + `"`
	h.Set("ETag", etag)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	a.files.ServeHTTP(w, r)
}

func fileSum(fsys fs.FS, path string) (string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
