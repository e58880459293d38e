package instrumentation

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// ToolInvocation captures all information about a tool invocation for audit logging.
// This provides a comprehensive audit trail for all MCP tool calls.
//
// # Cardinality Considerations
//
// The AccountID field is a per-record identifier. When logging, consider:
//   - Using KeyPrefix() for metrics-compatible, bounded label values
//   - Only logging full record IDs in audit-specific log streams
//   - Ensuring audit logs have appropriate access controls
type ToolInvocation struct {
	// Tool name
	Tool string

	// AccountID is the CRM record the call targeted, when there is one.
	AccountID string

	// Target information for backend services
	ServiceName string // Backend service (salesforce, calendar, sheets)
	Operation   string // Operation type (query, get, insert, schedule, export)

	// Execution details
	StartTime time.Time
	Duration  time.Duration
	Success   bool
	Error     string

	// Tracing context
	TraceID string
	SpanID  string
}

// KeyPrefix returns the record ID's object key prefix for lower-cardinality logging.
func (ti *ToolInvocation) KeyPrefix() string {
	return RecordKeyPrefix(ti.AccountID)
}

// Status returns "success" or "error" based on the Success field.
func (ti *ToolInvocation) Status() string {
	if ti.Success {
		return StatusSuccess
	}
	return StatusError
}

// LogAttrs returns slog attributes for structured logging.
// This provides a consistent set of fields for all tool invocation logs.
//
// # Cardinality
//
// This function uses cardinality-controlled values (the record key prefix)
// for metrics-compatible logging. For full audit logging, use LogAuditAttrs.
func (ti *ToolInvocation) LogAttrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("tool", ti.Tool),
		slog.Duration("duration", ti.Duration),
		slog.Bool("success", ti.Success),
	}

	// Add optional fields only if present
	if ti.AccountID != "" {
		attrs = append(attrs, slog.String("record_prefix", ti.KeyPrefix()))
	}
	if ti.ServiceName != "" {
		attrs = append(attrs, slog.String("service", ti.ServiceName))
	}
	if ti.Operation != "" {
		attrs = append(attrs, slog.String("operation", ti.Operation))
	}
	if ti.TraceID != "" {
		attrs = append(attrs, slog.String("trace_id", ti.TraceID))
	}
	if ti.Error != "" {
		attrs = append(attrs, slog.String("error", ti.Error))
	}

	return attrs
}

// LogAuditAttrs returns slog attributes for full audit logging.
// This includes the full record ID for compliance/audit purposes.
func (ti *ToolInvocation) LogAuditAttrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("tool", ti.Tool),
		slog.Duration("duration", ti.Duration),
		slog.Bool("success", ti.Success),
	}

	// Add all optional fields
	if ti.AccountID != "" {
		attrs = append(attrs, slog.String("account_id", ti.AccountID))
	}
	if ti.ServiceName != "" {
		attrs = append(attrs, slog.String("service", ti.ServiceName))
	}
	if ti.Operation != "" {
		attrs = append(attrs, slog.String("operation", ti.Operation))
	}
	if ti.TraceID != "" {
		attrs = append(attrs, slog.String("trace_id", ti.TraceID))
	}
	if ti.SpanID != "" {
		attrs = append(attrs, slog.String("span_id", ti.SpanID))
	}
	if ti.Error != "" {
		attrs = append(attrs, slog.String("error", ti.Error))
	}

	return attrs
}

// NewToolInvocation creates a new ToolInvocation with timing started.
// Call Complete() when the tool operation finishes.
func NewToolInvocation(tool string) *ToolInvocation {
	return &ToolInvocation{
		Tool:      tool,
		StartTime: time.Now(),
	}
}

// WithAccountID sets the CRM record the call targets.
func (ti *ToolInvocation) WithAccountID(accountID string) *ToolInvocation {
	ti.AccountID = accountID
	return ti
}

// WithService sets the backend service and operation.
func (ti *ToolInvocation) WithService(serviceName, operation string) *ToolInvocation {
	ti.ServiceName = serviceName
	ti.Operation = operation
	return ti
}

// WithSpanContext extracts trace context from the current span.
func (ti *ToolInvocation) WithSpanContext(ctx context.Context) *ToolInvocation {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		ti.TraceID = span.SpanContext().TraceID().String()
		ti.SpanID = span.SpanContext().SpanID().String()
	}
	return ti
}

// Complete marks the invocation as completed and calculates duration.
// Returns the same ToolInvocation for method chaining.
func (ti *ToolInvocation) Complete(success bool, err error) *ToolInvocation {
	ti.Duration = time.Since(ti.StartTime)
	ti.Success = success
	if err != nil {
		ti.Error = err.Error()
	}
	return ti
}

// CompleteWithError marks the invocation as failed with the given error.
func (ti *ToolInvocation) CompleteWithError(err error) *ToolInvocation {
	return ti.Complete(false, err)
}

// CompleteSuccess marks the invocation as successful.
func (ti *ToolInvocation) CompleteSuccess() *ToolInvocation {
	return ti.Complete(true, nil)
}

// AuditLogger provides structured audit logging for tool invocations.
// It wraps slog.Logger with convenience methods for logging tool operations.
type AuditLogger struct {
	logger           *slog.Logger
	includeRecordIDs bool
	enabled          bool
}

// NewAuditLogger creates a new AuditLogger with the given slog.Logger.
// By default, full record IDs are not included in general logs; the
// bounded key prefix is logged instead.
func NewAuditLogger(logger *slog.Logger) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger:           logger,
		includeRecordIDs: false,
		enabled:          true,
	}
}

// NewAuditLoggerWithConfig creates a new AuditLogger with the given configuration.
func NewAuditLoggerWithConfig(logger *slog.Logger, config AuditLoggingConfig) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger:           logger,
		includeRecordIDs: config.IncludeRecordIDs,
		enabled:          config.Enabled,
	}
}

// SetIncludeRecordIDs sets whether to include full record IDs in audit logs.
func (al *AuditLogger) SetIncludeRecordIDs(include bool) {
	al.includeRecordIDs = include
}

// SetEnabled sets whether audit logging is enabled.
func (al *AuditLogger) SetEnabled(enabled bool) {
	al.enabled = enabled
}

// LogToolInvocation logs a tool invocation using the standard log attributes.
// This is suitable for general operational logging with cardinality controls.
// If the logger is configured with IncludeRecordIDs, full record IDs are
// logged; otherwise only key prefixes are used.
func (al *AuditLogger) LogToolInvocation(ti *ToolInvocation) {
	if !al.enabled {
		return
	}

	var attrs []slog.Attr
	if al.includeRecordIDs {
		attrs = ti.LogAuditAttrs()
	} else {
		attrs = ti.LogAttrs()
	}

	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}

	if ti.Success {
		al.logger.Info("tool_executed", args...)
	} else {
		al.logger.Warn("tool_failed", args...)
	}
}

// LogToolAudit logs a tool invocation with full audit details.
// This includes full record IDs for compliance/audit purposes.
//
// Note: This method respects the enabled flag but always includes record
// IDs when called, regardless of the IncludeRecordIDs configuration. Use
// LogToolInvocation for configuration-aware logging.
func (al *AuditLogger) LogToolAudit(ti *ToolInvocation) {
	if !al.enabled {
		return
	}

	attrs := ti.LogAuditAttrs()
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}

	al.logger.Info("tool_audit", args...)
}
