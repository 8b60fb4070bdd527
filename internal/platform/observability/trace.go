package observability

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/platform/requestctx"
)

const instrumentation = "github.com/CreepsoOff/wplace-overlayttpro-website/internal/platform/observability"

// Propagator reads and writes W3C traceparent and baggage headers.
var Propagator propagation.TextMapPropagator = propagation.NewCompositeTextMapPropagator(
	propagation.TraceContext{},
	propagation.Baggage{},
)

// Trace starts a server span per request, continuing any incoming traceparent, and
// records the ids on the request context. The global tracer provider is used, so spans
// are no-ops until a provider is installed.
func Trace() func(http.Handler) http.Handler {
	tracer := otel.Tracer(instrumentation)
	return func(next http.Handler) http.Handler {
		next = passthrough(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := Propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, r.Method+" "+SanitizeRoute(r.URL.Path),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(requestAttributes(r)...),
			)
			defer span.End()

			sc := span.SpanContext()
			if !sc.IsValid() {
				// No provider installed; keep the caller's ids when they sent some.
				sc = trace.SpanContextFromContext(ctx)
			}
			if sc.IsValid() {
				ctx = requestctx.WithTrace(ctx, requestctx.TraceInfo{
					TraceID: sc.TraceID().String(),
					SpanID:  sc.SpanID().String(),
					Sampled: sc.IsSampled(),
				})
				Propagator.Inject(ctx, propagation.HeaderCarrier(w.Header()))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requestAttributes(r *http.Request) []attribute.KeyValue {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", SanitizeMethod(r.Method)),
		attribute.String("url.scheme", scheme),
		attribute.String("url.path", SanitizeRoute(r.URL.Path)),
	}
	if r.Host != "" {
		attrs = append(attrs, attribute.String("server.address", sanitizeString(r.Host, 128)))
	}
	if ua := r.UserAgent(); ua != "" {
		attrs = append(attrs, attribute.String("user_agent.original", sanitizeString(ua, 256)))
	}
	return attrs
}
