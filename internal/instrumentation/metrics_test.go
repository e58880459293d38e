package instrumentation

import (
	"context"
	"testing"
	"time"
)

func newTestProvider(t *testing.T, ctx context.Context, detailedLabels bool) *Provider {
	t.Helper()

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
		DetailedLabels:  detailedLabels,
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })
	return provider
}

func TestMetrics_RecordHTTPRequest(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx, false).Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil")
	}

	// Should not panic
	metrics.RecordHTTPRequest(ctx, "GET", "/mcp", 200, 100*time.Millisecond)
	metrics.RecordHTTPRequest(ctx, "POST", "/mcp", 500, 50*time.Millisecond)
}

func TestMetrics_RecordBackendOperation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx, false).Metrics()

	// Should not panic
	metrics.RecordBackendOperation(ctx, ServiceSalesforce, OperationQuery, StatusSuccess, 200*time.Millisecond)
	metrics.RecordBackendOperation(ctx, ServiceCalendar, OperationInsert, StatusError, 500*time.Millisecond)
	metrics.RecordBackendOperation(ctx, ServiceSheets, OperationExport, StatusSuccess, 100*time.Millisecond)
}

func TestMetrics_RecordToolInvocation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx, false).Metrics()

	// Should not panic
	metrics.RecordToolInvocation(ctx, "salesforce_get_account", StatusSuccess, 100*time.Millisecond)
	metrics.RecordToolInvocation(ctx, "followup_schedule", StatusError, 500*time.Millisecond)
}

func TestMetrics_RecordToolInvocationWithAccount(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Without detailed labels the account label is dropped.
	metrics := newTestProvider(t, ctx, false).Metrics()

	// Should not panic - account should be ignored
	metrics.RecordToolInvocationWithAccount(ctx, "salesforce_get_account", StatusSuccess, "001xx000003DGb1AAG", 100*time.Millisecond)
}

func TestMetrics_RecordToolInvocationWithAccount_DetailedLabels(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx, true).Metrics()

	// Should not panic - account should be included
	metrics.RecordToolInvocationWithAccount(ctx, "salesforce_get_account", StatusSuccess, "001xx000003DGb1AAG", 100*time.Millisecond)
}

func TestMetrics_ActiveSessions(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx, false).Metrics()

	// Should not panic
	metrics.IncrementActiveSessions(ctx)
	metrics.IncrementActiveSessions(ctx)
	metrics.DecrementActiveSessions(ctx)
}

func TestMetrics_NoOp_WhenDisabled(t *testing.T) {
	ctx := context.Background()

	provider, err := NewProvider(ctx, Config{
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
		Enabled:        false,
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}

	metrics := provider.Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil even when disabled")
	}

	// All these should not panic even with nil underlying metrics
	metrics.RecordHTTPRequest(ctx, "GET", "/mcp", 200, 100*time.Millisecond)
	metrics.RecordBackendOperation(ctx, ServiceSalesforce, OperationQuery, StatusSuccess, 200*time.Millisecond)
	metrics.RecordToolInvocation(ctx, "test_tool", StatusSuccess, 100*time.Millisecond)
	metrics.RecordToolInvocationWithAccount(ctx, "test_tool", StatusSuccess, "001xx000003DGb1AAG", 100*time.Millisecond)
	metrics.IncrementActiveSessions(ctx)
	metrics.DecrementActiveSessions(ctx)
}
