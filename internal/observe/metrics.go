// Package observe provides application-wide observability primitives
// for Glasform: OpenTelemetry metrics, tracing helpers, and HTTP
// middleware that ties them together.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A
// Prometheus exporter bridge is available via [InitProvider] so that
// metrics can be scraped via the standard /metrics endpoint. A
// package-level default [Metrics] instance ([DefaultMetrics]) is
// provided for convenience; tests should use [NewMetrics] with a
// custom [metric.MeterProvider] to avoid cross-test pollution.
package observe

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all Glasform metrics.
const meterName = "github.com/glasform/glasform"

// Metrics holds all OpenTelemetry metric instruments for the
// application. All fields are safe for concurrent use — the underlying
// OTel types handle their own synchronisation.
type Metrics struct {
	// TranscriptDuration tracks transcript normalisation latency
	// (raw-display staging included). Use with attribute:
	//   attribute.String("field_type", ...)
	TranscriptDuration metric.Float64Histogram

	// Transcripts counts processed transcripts. Use with attributes:
	//   attribute.String("field_type", ...), attribute.String("outcome", ...)
	Transcripts metric.Int64Counter

	// ValidationFailures counts rejected field values by field key.
	ValidationFailures metric.Int64Counter

	// CaptureErrors counts speech-capture failures by error code.
	CaptureErrors metric.Int64Counter

	// WebhookSubmissions counts form submissions by status.
	WebhookSubmissions metric.Int64Counter

	// ActiveCaptureSessions tracks live speech-capture sessions.
	ActiveCaptureSessions metric.Int64UpDownCounter

	// HTTPRequestDuration tracks HTTP request processing time. Use
	// with attributes:
	//   attribute.String("method", ...), attribute.String("path", ...)
	HTTPRequestDuration metric.Float64Histogram
}

// latencyBuckets defines histogram bucket boundaries (in seconds)
// sized for the dictation staging windows.
var latencyBuckets = []float64{
	0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
}

// NewMetrics creates a fully initialised [Metrics] struct using the
// given [metric.MeterProvider]. Returns an error if any instrument
// creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.TranscriptDuration, err = m.Float64Histogram("glasform.transcript.duration",
		metric.WithDescription("Latency of transcript normalisation by field type."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.Transcripts, err = m.Int64Counter("glasform.transcripts",
		metric.WithDescription("Total processed transcripts by field type and outcome."),
	); err != nil {
		return nil, err
	}
	if met.ValidationFailures, err = m.Int64Counter("glasform.validation.failures",
		metric.WithDescription("Total rejected field values by field key."),
	); err != nil {
		return nil, err
	}
	if met.CaptureErrors, err = m.Int64Counter("glasform.capture.errors",
		metric.WithDescription("Total speech-capture failures by error code."),
	); err != nil {
		return nil, err
	}
	if met.WebhookSubmissions, err = m.Int64Counter("glasform.webhook.submissions",
		metric.WithDescription("Total form submissions by status."),
	); err != nil {
		return nil, err
	}
	if met.ActiveCaptureSessions, err = m.Int64UpDownCounter("glasform.active_capture_sessions",
		metric.WithDescription("Number of live speech-capture sessions."),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("glasform.http.request.duration",
		metric.WithDescription("HTTP request latency by method and path."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance,
// creating it on first call using [otel.GetMeterProvider]. Subsequent
// calls return the same pointer. Panics if instrument creation fails
// (should not happen with the global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// Attr is a convenience alias for [attribute.String] to reduce
// verbosity at call sites.
func Attr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

// TranscriptProcessed records one processed transcript with its
// normalisation latency. It satisfies the flow package's Recorder.
func (m *Metrics) TranscriptProcessed(fieldType, outcome string, elapsed time.Duration) {
	ctx := context.Background()
	m.Transcripts.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("field_type", fieldType),
			attribute.String("outcome", outcome),
		),
	)
	m.TranscriptDuration.Record(ctx, elapsed.Seconds(),
		metric.WithAttributes(attribute.String("field_type", fieldType)),
	)
	if outcome != "valid" {
		m.ValidationFailures.Add(ctx, 1,
			metric.WithAttributes(attribute.String("field_type", fieldType)),
		)
	}
}

// CaptureError records one speech-capture failure. It satisfies the
// flow package's Recorder.
func (m *Metrics) CaptureError(code string) {
	m.CaptureErrors.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("code", code)),
	)
}

// RecordWebhookSubmission records one submission attempt by outcome
// ("ok", "rejected", "error").
func (m *Metrics) RecordWebhookSubmission(ctx context.Context, status string) {
	m.WebhookSubmissions.Add(ctx, 1,
		metric.WithAttributes(attribute.String("status", status)),
	)
}
