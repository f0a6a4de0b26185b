package metrics

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsBareRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if rec == nil {
		t.Fatal("recorder is nil")
	}
	if handler != nil {
		t.Error("disabled telemetry should not expose a prometheus handler")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown failed: %v", err)
	}

	rec.RecordUpstreamAttempt("datablase", time.Millisecond, nil)
	if rec.UpstreamCalls("datablase") != 1 {
		t.Error("bare recorder should still count")
	}
}

func TestSetupEnabledWiresPrometheus(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true, ServiceName: "test"})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer shutdown(context.Background())

	if handler == nil {
		t.Fatal("expected prometheus handler")
	}

	// Instrumented paths should not panic with a live provider.
	rec.RecordHTTPRequest("GET", "/teams", 200, 5*time.Millisecond)
	rec.RecordUpstreamAttempt("datablase", time.Millisecond, errors.New("boom"))
	rec.RecordRateLimit("datablase", time.Second)
	rec.RecordSnapshotFallback("schedule")
	rec.RecordPollerCycle(time.Millisecond, nil)
}

func TestSetupPropagatesReaderErrors(t *testing.T) {
	orig := promReaderFactory
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("exporter exploded")
	}
	defer func() { promReaderFactory = orig }()

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err == nil {
		t.Fatal("expected error from reader factory")
	}
}
