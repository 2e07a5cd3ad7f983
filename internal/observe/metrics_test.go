package observe

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// newTestMetrics returns a Metrics instance backed by a ManualReader
// for programmatic metric inspection.
func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	return m, reader
}

// collect gathers all metric data from the reader.
func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	return rm
}

// findMetric searches for a metric by name across all scope metrics.
func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func TestNewMetrics_CreatesWithoutError(t *testing.T) {
	m, _ := newTestMetrics(t)
	if m == nil {
		t.Fatal("NewMetrics returned nil")
	}
}

func TestTranscriptProcessed(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.TranscriptProcessed("oib", "valid", 850*time.Millisecond)
	m.TranscriptProcessed("oib", "invalid", 900*time.Millisecond)

	rm := collect(t, reader)

	counter := findMetric(rm, "glasform.transcripts")
	if counter == nil {
		t.Fatal("glasform.transcripts not found")
	}
	sum, ok := counter.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("glasform.transcripts data type = %T", counter.Data)
	}
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	if total != 2 {
		t.Errorf("transcript count = %d, want 2", total)
	}

	hist := findMetric(rm, "glasform.transcript.duration")
	if hist == nil {
		t.Fatal("glasform.transcript.duration not found")
	}
	hd, ok := hist.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatalf("duration data type = %T", hist.Data)
	}
	if len(hd.DataPoints) == 0 || hd.DataPoints[0].Count != 2 {
		t.Errorf("duration datapoints = %+v, want 2 observations", hd.DataPoints)
	}

	failures := findMetric(rm, "glasform.validation.failures")
	if failures == nil {
		t.Fatal("glasform.validation.failures not found")
	}
	fs, ok := failures.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("failures data type = %T", failures.Data)
	}
	var failed int64
	for _, dp := range fs.DataPoints {
		failed += dp.Value
	}
	if failed != 1 {
		t.Errorf("validation failures = %d, want 1 (only the invalid outcome)", failed)
	}
}

func TestCaptureErrorCounter(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.CaptureError("no-speech")
	m.CaptureError("no-speech")
	m.CaptureError("network")

	rm := collect(t, reader)
	counter := findMetric(rm, "glasform.capture.errors")
	if counter == nil {
		t.Fatal("glasform.capture.errors not found")
	}
	sum := counter.Data.(metricdata.Sum[int64])

	byCode := make(map[string]int64)
	for _, dp := range sum.DataPoints {
		if code, ok := dp.Attributes.Value(attribute.Key("code")); ok {
			byCode[code.AsString()] = dp.Value
		}
	}
	if byCode["no-speech"] != 2 || byCode["network"] != 1 {
		t.Errorf("capture errors by code = %v", byCode)
	}
}

func TestWebhookSubmissionCounter(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordWebhookSubmission(ctx, "ok")
	m.RecordWebhookSubmission(ctx, "rejected")

	rm := collect(t, reader)
	counter := findMetric(rm, "glasform.webhook.submissions")
	if counter == nil {
		t.Fatal("glasform.webhook.submissions not found")
	}
	sum := counter.Data.(metricdata.Sum[int64])
	if len(sum.DataPoints) != 2 {
		t.Errorf("submission datapoints = %d, want 2 (ok + rejected)", len(sum.DataPoints))
	}
}

func TestDefaultMetricsSingleton(t *testing.T) {
	a := DefaultMetrics()
	b := DefaultMetrics()
	if a != b {
		t.Error("DefaultMetrics returned different instances")
	}
}
