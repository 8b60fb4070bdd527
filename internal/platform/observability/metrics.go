package observability

import (
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const metricNamespace = "github.com/CreepsoOff/wplace-overlayttpro-website/httpserver"

// HTTPMetrics records request duration and count per route.
type HTTPMetrics struct {
	duration        metric.Float64Histogram
	durationEnabled bool
	requests        metric.Int64Counter
	requestsEnabled bool
}

// NewHTTPMetrics registers the request instruments on provider. A nil provider uses the
// global one. Instruments that fail to register are skipped with a warning.
func NewHTTPMetrics(provider metric.MeterProvider, logger *zap.Logger) *HTTPMetrics {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	meter := provider.Meter(metricNamespace)

	duration, durationErr := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithUnit("ms"),
		metric.WithDescription("Latency in milliseconds for handled requests"),
	)
	if durationErr != nil {
		logger.Warn("observability: unable to register duration metric", zap.Error(durationErr))
	}

	requests, requestsErr := meter.Int64Counter(
		"http.server.requests",
		metric.WithDescription("Count of handled requests"),
	)
	if requestsErr != nil {
		logger.Warn("observability: unable to register request metric", zap.Error(requestsErr))
	}

	return &HTTPMetrics{
		duration:        duration,
		durationEnabled: durationErr == nil,
		requests:        requests,
		requestsEnabled: requestsErr == nil,
	}
}

// Middleware records one observation per request once the handler returns.
func (m *HTTPMetrics) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		next = passthrough(next)
		if m == nil || (!m.durationEnabled && !m.requestsEnabled) {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := newResponseRecorder(w)
			start := time.Now()
			next.ServeHTTP(recorder, r)

			attrs := metric.WithAttributes(
				attribute.String("http.route", SanitizeRoute(routePattern(r))),
				attribute.String("http.request.method", SanitizeMethod(r.Method)),
				attribute.String("http.response.status_class", statusClass(recorder.Status())),
			)
			ctx := r.Context()
			if m.durationEnabled {
				m.duration.Record(ctx, float64(time.Since(start))/float64(time.Millisecond), attrs)
			}
			if m.requestsEnabled {
				m.requests.Add(ctx, 1, attrs)
			}
		})
	}
}

func statusClass(status int) string {
	if status < 100 || status > 599 {
		return "unknown"
	}
	return strconv.Itoa(status/100) + "xx"
}
