// Package middleware holds the site-specific HTTP middleware: htmx request detection,
// fragment guards and response headers.
package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const htmxContextKey contextKey = "htmx.info"

// HTMXInfo captures request metadata from HX-* headers.
type HTMXInfo struct {
	IsHTMX         bool
	IsBoosted      bool
	CurrentURL     string
	Target         string
	TriggerID      string
	HistoryRestore bool
}

// HTMX inspects HX-* headers and annotates the context.
func HTMX() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := HTMXInfo{
				IsHTMX:         strings.EqualFold(r.Header.Get("HX-Request"), "true"),
				IsBoosted:      strings.EqualFold(r.Header.Get("HX-Boosted"), "true"),
				CurrentURL:     r.Header.Get("HX-Current-URL"),
				Target:         r.Header.Get("HX-Target"),
				TriggerID:      r.Header.Get("HX-Trigger"),
				HistoryRestore: strings.EqualFold(r.Header.Get("HX-History-Restore-Request"), "true"),
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), htmxContextKey, info)))
		})
	}
}

// HTMXInfoFromContext retrieves htmx metadata; the zero value when absent.
func HTMXInfoFromContext(ctx context.Context) HTMXInfo {
	info, _ := ctx.Value(htmxContextKey).(HTMXInfo)
	return info
}

// IsHTMXRequest reports whether the request was issued by htmx.
func IsHTMXRequest(ctx context.Context) bool {
	return HTMXInfoFromContext(ctx).IsHTMX
}

// RequireHTMX answers 404 in plain text to anything but htmx, so fragment routes are not
// reachable by direct navigation.
func RequireHTMX() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "HX-Request")
			if !IsHTMXRequest(r.Context()) {
				http.NotFound(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
