package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/luisesc/salesbridge/internal/config"
	"github.com/luisesc/salesbridge/internal/instrumentation"
	"github.com/luisesc/salesbridge/internal/server"
)

func newTestServerContext(t *testing.T, ctx context.Context) *server.ServerContext {
	t.Helper()

	sc, err := server.NewServerContext(ctx, config.Config{})
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func TestInstrumentedToolHandler_Success(t *testing.T) {
	ctx := context.Background()

	// Server context without metrics (nil metrics)
	sc := newTestServerContext(t, ctx)

	// Create a handler that returns success
	called := false
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called = true
		return mcp.NewToolResultText("success"), nil
	}

	// Wrap with instrumentation
	wrapped := InstrumentedToolHandler("test_tool", sc, handler)

	// Create a test request
	req := mcp.CallToolRequest{}

	// Call the wrapped handler
	result, err := wrapped(ctx, req)

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if !called {
		t.Error("expected handler to be called")
	}
	if result == nil {
		t.Error("expected result, got nil")
	}
}

func TestInstrumentedToolHandler_Error(t *testing.T) {
	ctx := context.Background()

	sc := newTestServerContext(t, ctx)

	// Create a handler that returns an error
	expectedErr := errors.New("test error")
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, expectedErr
	}

	// Wrap with instrumentation
	wrapped := InstrumentedToolHandler("test_tool", sc, handler)

	// Create a test request
	req := mcp.CallToolRequest{}

	// Call the wrapped handler
	_, err := wrapped(ctx, req)

	if err != expectedErr {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

func TestInstrumentedToolHandler_ErrorResult(t *testing.T) {
	ctx := context.Background()

	sc := newTestServerContext(t, ctx)

	// Create a handler that returns an error result (not Go error)
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultError("error message"), nil
	}

	// Wrap with instrumentation
	wrapped := InstrumentedToolHandler("test_tool", sc, handler)

	// Create a test request
	req := mcp.CallToolRequest{}

	// Call the wrapped handler
	result, err := wrapped(ctx, req)

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if result == nil {
		t.Error("expected result, got nil")
	}
	if !result.IsError {
		t.Error("expected result.IsError to be true")
	}
}

func TestInstrumentedToolHandlerWithService_Success(t *testing.T) {
	ctx := context.Background()

	sc := newTestServerContext(t, ctx)

	// Create a handler that returns success
	called := false
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called = true
		return mcp.NewToolResultText("success"), nil
	}

	// Wrap with instrumentation
	wrapped := InstrumentedToolHandlerWithService("test_tool", "salesforce", "query", sc, handler)

	// Create a test request
	req := mcp.CallToolRequest{}

	// Call the wrapped handler
	result, err := wrapped(ctx, req)

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if !called {
		t.Error("expected handler to be called")
	}
	if result == nil {
		t.Error("expected result, got nil")
	}
}

func TestInstrumentedToolHandlerWithService_WithMetrics(t *testing.T) {
	ctx := context.Background()

	sc := newTestServerContext(t, ctx)

	// Create metrics with noop meter (for testing)
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := instrumentation.NewMetrics(meter, false)
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}

	// Set metrics on server context
	sc.SetMetrics(metrics)

	// Create a handler that simulates some work
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// Simulate some work
		time.Sleep(1 * time.Millisecond)
		return mcp.NewToolResultText("success"), nil
	}

	// Wrap with instrumentation including service info
	wrapped := InstrumentedToolHandlerWithService("salesforce_search_accounts", "salesforce", "search", sc, handler)

	// Create a test request
	req := mcp.CallToolRequest{}

	// Call the wrapped handler
	result, err := wrapped(ctx, req)

	// Verify the call succeeded
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if result == nil {
		t.Error("expected result, got nil")
	}

	// Note: With noop meter, we can't verify actual metric values,
	// but we verify the code path executes without panics.
	// The metrics are recorded via:
	// - metrics.RecordToolInvocation(ctx, "salesforce_search_accounts", "success", duration)
	// - metrics.RecordBackendOperation(ctx, "salesforce", "search", "success", duration)
}

func TestInstrumentedToolHandlerWithService_ErrorWithMetrics(t *testing.T) {
	ctx := context.Background()

	sc := newTestServerContext(t, ctx)

	// Create metrics with noop meter
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := instrumentation.NewMetrics(meter, false)
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}

	// Set metrics on server context
	sc.SetMetrics(metrics)

	// Create a handler that returns an error
	expectedErr := errors.New("calendar API error")
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, expectedErr
	}

	// Wrap with instrumentation including service info
	wrapped := InstrumentedToolHandlerWithService("followup_schedule", "calendar", "insert", sc, handler)

	// Create a test request
	req := mcp.CallToolRequest{}

	// Call the wrapped handler
	_, err = wrapped(ctx, req)

	// Verify the error is propagated
	if err != expectedErr {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}

	// Note: With noop meter, we can't verify actual metric values,
	// but we verify the code path executes without panics.
	// The metrics are recorded with status "error" via:
	// - metrics.RecordToolInvocation(ctx, "followup_schedule", "error", duration)
	// - metrics.RecordBackendOperation(ctx, "calendar", "insert", "error", duration)
}
