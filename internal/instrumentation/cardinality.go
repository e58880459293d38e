package instrumentation

// Cardinality management helpers for metrics.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// # Warning
//
// High cardinality in metrics can cause:
// - Increased memory usage in Prometheus/metrics backends
// - Slower query performance
// - Higher storage costs
//
// Always use these helpers when recording metrics with record identifiers.

// RecordKeyPrefix reduces a Salesforce record ID to its three-character
// key prefix, which identifies the object type (001 for Account, 006 for
// Opportunity). Metrics labeled by prefix stay bounded no matter how many
// records the org holds.
//
// Example:
//
//	RecordKeyPrefix("001xx000003DGb1AAG") // "001"
//	RecordKeyPrefix("00")                 // "unknown"
//	RecordKeyPrefix("")                   // "unknown"
func RecordKeyPrefix(recordID string) string {
	if len(recordID) < 3 {
		return "unknown"
	}
	return recordID[:3]
}

// Common operation types for backend API metrics.
// Status and Service constants are defined in config.go.
const (
	OperationLogin    = "login"
	OperationQuery    = "query"
	OperationGet      = "get"
	OperationInsert   = "insert"
	OperationUpdate   = "update"
	OperationDelete   = "delete"
	OperationSearch   = "search"
	OperationSchedule = "schedule"
	OperationExport   = "export"
)
