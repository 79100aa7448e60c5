package observability

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// NewLogger builds the process-wide slog logger. JSON output; debug level
// outside production.
func NewLogger(environment string) *slog.Logger {
	level := slog.LevelDebug
	if environment == "production" {
		level = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With(slog.String("service", "predictor"))
	slog.SetDefault(logger)
	return logger
}

// NewTracer returns a tracer from the global provider. Exporter wiring (OTLP,
// sampling) is an ops concern configured at deploy time; tests pass a noop
// tracer instead.
func NewTracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// OperationMetrics records service operation outcomes. Implemented by
// PrometheusMetrics in production and NoOpMetrics in tests.
type OperationMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
}

// PrometheusMetrics implements OperationMetrics over a prometheus registry.
type PrometheusMetrics struct {
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the operation metric vectors on reg. Pass a
// subsystem to keep module metrics distinguishable (match, prediction, ...).
func NewPrometheusMetrics(reg prometheus.Registerer, subsystem string) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		attempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "predictor",
			Subsystem: subsystem,
			Name:      "operation_attempts_total",
			Help:      "Number of attempted service operations.",
		}, []string{"operation"}),
		successes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "predictor",
			Subsystem: subsystem,
			Name:      "operation_successes_total",
			Help:      "Number of successful service operations.",
		}, []string{"operation"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "predictor",
			Subsystem: subsystem,
			Name:      "operation_failures_total",
			Help:      "Number of failed service operations.",
		}, []string{"operation"}),
		durations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "predictor",
			Subsystem: subsystem,
			Name:      "operation_duration_seconds",
			Help:      "Duration of service operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

func (m *PrometheusMetrics) RecordOperationAttempt(ctx context.Context, operation string) {
	m.attempts.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(ctx context.Context, operation string) {
	m.successes.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(ctx context.Context, operation string) {
	m.failures.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(ctx context.Context, operation string, duration time.Duration) {
	m.durations.WithLabelValues(operation).Observe(duration.Seconds())
}

// NoOpMetrics discards all recordings.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(ctx context.Context, operation string) {}
func (NoOpMetrics) RecordOperationSuccess(ctx context.Context, operation string) {}
func (NoOpMetrics) RecordOperationFailure(ctx context.Context, operation string) {}
func (NoOpMetrics) RecordOperationDuration(ctx context.Context, operation string, duration time.Duration) {
}

// NewMetricsServer serves the prometheus registry on addr.
func NewMetricsServer(addr string, gatherer prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
