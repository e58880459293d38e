package common

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/luisesc/salesbridge/internal/instrumentation"
	"github.com/luisesc/salesbridge/internal/server"
)

// InstrumentedToolHandler wraps a tool handler with metrics and audit logging.
// It records tool invocation metrics and logs the invocation for audit purposes.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandler("my_tool", sc, handler))
func InstrumentedToolHandler(
	toolName string,
	sc *server.ServerContext,
	handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error),
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// Get metrics and audit logger (may be nil if not configured)
		metrics := sc.Metrics()
		auditLogger := sc.AuditLogger()

		// If no instrumentation configured, just call the handler
		if metrics == nil && auditLogger == nil {
			return handler(ctx, request)
		}

		// Start timing and create invocation record
		start := time.Now()
		invocation := instrumentation.NewToolInvocation(toolName).
			WithSpanContext(ctx)

		// Extract the target account from request arguments
		args := request.GetArguments()
		accountID := GetAccountIDFromArgs(args)
		if accountID != "" {
			invocation.WithAccountID(accountID)
		}

		// Call the actual handler
		result, err := handler(ctx, request)
		duration := time.Since(start)

		// Determine status
		status := instrumentation.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = instrumentation.StatusError
			if err != nil {
				invocation.CompleteWithError(err)
			} else {
				invocation.Complete(false, nil)
			}
		} else {
			invocation.CompleteSuccess()
		}

		// Record metrics
		if metrics != nil {
			metrics.RecordToolInvocation(ctx, toolName, status, duration)
		}

		// Log audit
		if auditLogger != nil {
			auditLogger.LogToolInvocation(invocation)
		}

		return result, err
	}
}

// InstrumentedToolHandlerWithService is like InstrumentedToolHandler but also
// records the backend service and operation type for more detailed metrics.
//
// This handler records both:
// - MCP tool invocation metrics (mcp_tool_invocations_total, mcp_tool_duration_seconds)
// - Backend API operation metrics (backend_api_operations_total, backend_api_operation_duration_seconds)
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandlerWithService("my_tool", "salesforce", "get", sc, handler))
func InstrumentedToolHandlerWithService(
	toolName string,
	serviceName string,
	operation string,
	sc *server.ServerContext,
	handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error),
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// Get metrics and audit logger (may be nil if not configured)
		metrics := sc.Metrics()
		auditLogger := sc.AuditLogger()

		// If no instrumentation configured, just call the handler
		if metrics == nil && auditLogger == nil {
			return handler(ctx, request)
		}

		// Start timing and create invocation record
		start := time.Now()
		invocation := instrumentation.NewToolInvocation(toolName).
			WithSpanContext(ctx).
			WithService(serviceName, operation)

		// Extract the target account from request arguments
		args := request.GetArguments()
		accountID := GetAccountIDFromArgs(args)
		if accountID != "" {
			invocation.WithAccountID(accountID)
		}

		// Call the actual handler
		result, err := handler(ctx, request)
		duration := time.Since(start)

		// Determine status
		status := instrumentation.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = instrumentation.StatusError
			if err != nil {
				invocation.CompleteWithError(err)
			} else {
				invocation.Complete(false, nil)
			}
		} else {
			invocation.CompleteSuccess()
		}

		// Record metrics
		if metrics != nil {
			// Record MCP tool invocation metrics
			metrics.RecordToolInvocation(ctx, toolName, status, duration)

			// Record backend operation metrics for detailed service-level
			// observability: which backends are hit most and how they perform
			metrics.RecordBackendOperation(ctx, serviceName, operation, status, duration)
		}

		// Log audit
		if auditLogger != nil {
			auditLogger.LogToolInvocation(invocation)
		}

		return result, err
	}
}
