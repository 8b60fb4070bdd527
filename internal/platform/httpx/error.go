// Package httpx writes the JSON error envelope returned by fragment and health endpoints.
package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/platform/requestctx"
)

// Error is the error envelope. Page routes render HTML instead.
type Error struct {
	Code      string
	Message   string
	Status    int
	RequestID string
	TraceID   string
	Details   map[string]any
}

// NewError builds an Error. A zero status becomes 500.
func NewError(code, message string, status int) Error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return Error{
		Code:    clean(code, 80),
		Message: clean(message, 512),
		Status:  status,
	}
}

// NotFound reports a missing resource such as an unknown FAQ entry.
func NotFound(message string) Error {
	return NewError("not_found", message, http.StatusNotFound)
}

// BadRequest reports malformed input.
func BadRequest(message string) Error {
	return NewError("bad_request", message, http.StatusBadRequest)
}

// Error implements the error interface so envelopes can travel through error returns.
func (e Error) Error() string {
	return e.Code + ": " + e.Message
}

// WithDetails attaches extra metadata merged into the payload.
func (e Error) WithDetails(details map[string]any) Error {
	if len(details) == 0 {
		return e
	}
	merged := make(map[string]any, len(details))
	for k, v := range details {
		merged[k] = v
	}
	e.Details = merged
	return e
}

// WriteError encodes err as JSON, filling request and trace ids from ctx when unset.
func WriteError(ctx context.Context, w http.ResponseWriter, err Error) {
	status := err.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}

	requestID := err.RequestID
	if requestID == "" {
		requestID = clean(middleware.GetReqID(ctx), 80)
	}
	traceID := err.TraceID
	if traceID == "" {
		traceID = clean(requestctx.TraceID(ctx), 64)
	}

	payload := map[string]any{
		"error":   err.Code,
		"message": err.Message,
		"status":  status,
	}
	if requestID != "" {
		payload["request_id"] = requestID
	}
	if traceID != "" {
		payload["trace_id"] = traceID
	}
	for k, v := range err.Details {
		if _, reserved := payload[k]; reserved {
			continue
		}
		payload[k] = v
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func clean(value string, limit int) string {
	value = strings.NewReplacer("\n", " ", "\r", " ").Replace(value)
	value = strings.TrimSpace(value)
	if len(value) > limit {
		value = value[:limit]
	}
	return value
}
