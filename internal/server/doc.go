// Package server provides the MCP server context, HTTP transport, and
// operational endpoints for the salesbridge application.
//
// # Key Components
//
// ServerContext manages backend clients (Salesforce, Google Calendar,
// Google Sheets) with lazy initialization and caching. Credentials are
// only exercised when a tool first needs a backend, so the server can
// start and serve read-only metadata without a full credential set.
//
// HTTPServer wraps the streamable MCP handler together with health
// endpoints on a single listener, for running behind a load balancer.
//
// HealthChecker provides Kubernetes-style liveness and readiness probes.
//
// MetricsServer serves Prometheus metrics on a dedicated port, isolating
// operational metrics from application traffic.
package server
