package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/luisesc/salesbridge/internal/instrumentation"
)

const (
	// DefaultHTTPReadHeaderTimeout bounds how long a client may take to send headers.
	DefaultHTTPReadHeaderTimeout = 10 * time.Second

	// DefaultHTTPIdleTimeout is kept long because streamable HTTP sessions
	// hold the connection open between messages.
	DefaultHTTPIdleTimeout = 120 * time.Second
)

// HTTPServer serves the streamable MCP transport together with the health
// endpoints on a single listener. Metrics stay on their own port; see
// MetricsServer.
type HTTPServer struct {
	mcpServer     *mcpserver.MCPServer
	httpServer    *http.Server
	healthChecker *HealthChecker
	metrics       *instrumentation.Metrics
	stateless     bool
}

// NewHTTPServer creates an HTTP server for the given MCP server.
// Set stateless to true for clients that cannot maintain MCP sessions.
func NewHTTPServer(mcpServer *mcpserver.MCPServer, stateless bool) *HTTPServer {
	return &HTTPServer{
		mcpServer: mcpServer,
		stateless: stateless,
	}
}

// SetHealthChecker attaches a health checker whose endpoints are registered
// alongside the MCP endpoint. Must be called before Start.
func (s *HTTPServer) SetHealthChecker(hc *HealthChecker) {
	s.healthChecker = hc
}

// SetMetrics enables per-request HTTP metrics. Must be called before Start.
func (s *HTTPServer) SetMetrics(m *instrumentation.Metrics) {
	s.metrics = m
}

// Start starts the HTTP server in a blocking manner.
func (s *HTTPServer) Start(addr string) error {
	mux := http.NewServeMux()

	streamable := mcpserver.NewStreamableHTTPServer(s.mcpServer,
		mcpserver.WithEndpointPath("/mcp"),
		mcpserver.WithStateLess(s.stateless),
	)
	mux.Handle("/mcp", s.instrument("/mcp", streamable))

	if s.healthChecker != nil {
		s.healthChecker.RegisterHealthEndpoints(mux)
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: DefaultHTTPReadHeaderTimeout,
		IdleTimeout:       DefaultHTTPIdleTimeout,
	}

	slog.Info("starting HTTP server", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		slog.Info("shutting down HTTP server")
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// instrument wraps a handler with HTTP request metrics when metrics are set.
// The registered route path is used as the metric label, never the raw URL,
// to keep label cardinality bounded.
func (s *HTTPServer) instrument(path string, next http.Handler) http.Handler {
	if s.metrics == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.metrics.RecordHTTPRequest(r.Context(), r.Method, path, rec.status, time.Since(start))
	})
}

// statusRecorder captures the response status code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush forwards flushing to the underlying writer so streaming responses
// are not buffered behind the recorder.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
