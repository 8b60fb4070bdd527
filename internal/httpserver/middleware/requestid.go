package middleware

import (
	"context"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/oklog/ulid/v2"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 64

// RequestID assigns each request a sortable ULID, or keeps a well-formed id supplied by an
// upstream proxy. The id is stored where chi's GetReqID finds it and echoed on the response.
func RequestID() func(http.Handler) http.Handler {
	return requestID(func() string { return ulid.Make().String() })
}

func requestID(idGen func() string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
			if !validRequestID(id) {
				id = idGen()
			}
			w.Header().Set(RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), chimw.RequestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == ':':
		default:
			return false
		}
	}
	return true
}
