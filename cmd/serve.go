package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/luisesc/salesbridge/internal/config"
	"github.com/luisesc/salesbridge/internal/instrumentation"
	"github.com/luisesc/salesbridge/internal/server"
	"github.com/luisesc/salesbridge/internal/tools/followup_tools"
	"github.com/luisesc/salesbridge/internal/tools/salesforce_tools"
	"github.com/luisesc/salesbridge/internal/tools/sheets_tools"
)

// MetricsConfig holds configuration for the metrics server
type MetricsConfig struct {
	// Enabled determines whether to start the metrics server (default: true)
	Enabled bool

	// Addr is the address for the metrics server (e.g., ":9090")
	Addr string
}

func newServeCmd() *cobra.Command {
	var (
		debugMode bool
		transport string
		httpAddr  string
		yolo      bool
		stateless bool
		// Metrics server configuration
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol (MCP) server to provide Salesforce CRM
and Google Calendar/Sheets tools for AI assistants.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - streamable-http: Streamable HTTP transport

Safety Mode:
  By default, the server operates in read-only mode, providing only safe operations.
  Use --yolo to enable write operations (follow-up scheduling, spreadsheet export).

Credentials:
  Salesforce: SF_USERNAME, SF_PASSWORD, SF_SECURITY_TOKEN, SF_DOMAIN env vars
  Google: GOOGLE_CALENDAR_CREDENTIALS (service account key file),
  optionally GOOGLE_DELEGATED_USER for domain-wide delegation.
  A .env file in the working directory is loaded if present.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			metricsConfig := MetricsConfig{
				Enabled: metricsEnabled,
				Addr:    metricsAddr,
			}
			return runServe(transport, debugMode, httpAddr, yolo, stateless, metricsConfig)
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport type: stdio or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP server address (for streamable-http transport)")
	cmd.Flags().BoolVar(&yolo, "yolo", false, "Enable write operations (follow-up scheduling, spreadsheet export). Default is read-only mode.")
	cmd.Flags().BoolVar(&stateless, "stateless", false, "Run the HTTP transport without MCP sessions (for compatibility with certain clients)")

	// Metrics server flags
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

func runServe(transport string, debugMode bool, httpAddr string, yolo, stateless bool, metricsConfig MetricsConfig) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if debugMode {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	// Load metrics config from environment if not set via flags
	if !metricsConfig.Enabled {
		if os.Getenv("METRICS_ENABLED") == "true" {
			metricsConfig.Enabled = true
		}
	}
	if metricsConfig.Addr == "" || metricsConfig.Addr == server.DefaultMetricsAddr {
		if addr := os.Getenv("METRICS_ADDR"); addr != "" {
			metricsConfig.Addr = addr
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			if transport != "stdio" {
				log.Printf("Error during instrumentation shutdown: %v", err)
			}
		}
	}()

	// Start metrics server if enabled and not in stdio mode
	var metricsServer *server.MetricsServer
	if transport != "stdio" && metricsConfig.Enabled && provider.Enabled() {
		var err error
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsConfig.Addr,
			Enabled:                 true,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		// Use ready channel to confirm metrics server started successfully
		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		// Wait for metrics server to be ready or fail
		select {
		case <-metricsReady:
			log.Printf("Metrics server started on %s", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}
	}

	// Create server context
	serverContext, err := server.NewServerContext(shutdownCtx, *cfg)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}

	// Set metrics and audit logger on server context for tool instrumentation
	if provider.Enabled() {
		serverContext.SetMetrics(provider.Metrics())
		serverContext.SetAuditLogger(instrumentation.NewAuditLoggerWithConfig(nil, instrConfig.AuditLogging))
	}
	defer func() {
		// Shutdown metrics server first
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				log.Printf("Error during metrics server shutdown: %v", err)
			}
		}
		if err := serverContext.Shutdown(); err != nil {
			if transport != "stdio" {
				log.Printf("Error during server context shutdown: %v", err)
			}
		}
	}()

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("salesbridge", version,
		mcpserver.WithToolCapabilities(true),
	)

	// readOnly is the inverse of yolo
	readOnly := !yolo

	// Log the mode for visibility (only for non-stdio transports)
	if transport != "stdio" {
		if readOnly {
			log.Println("Starting server in READ-ONLY mode (use --yolo to enable write operations)")
		} else {
			log.Println("Starting server with WRITE operations enabled (--yolo flag is set)")
		}
	}

	// Register all tools
	if err := registerAllTools(mcpSrv, serverContext, readOnly); err != nil {
		return err
	}

	// Start the appropriate server based on transport type
	switch transport {
	case "stdio":
		return runStdioServer(mcpSrv)
	case "streamable-http":
		fmt.Printf("Starting salesbridge MCP server with %s transport...\n", transport)
		return runStreamableHTTPServer(mcpSrv, serverContext, httpAddr, shutdownCtx, stateless, metricsConfig, provider)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, streamable-http)", transport)
	}
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

// registerAllTools registers all MCP tools
func registerAllTools(mcpSrv *mcpserver.MCPServer, ctx *server.ServerContext, readOnly bool) error {
	// Define all tool registrations
	type toolRegistration struct {
		name     string
		register func() error
	}

	registrations := []toolRegistration{
		{
			name: "Salesforce",
			register: func() error {
				return salesforce_tools.RegisterSalesforceTools(mcpSrv, ctx)
			},
		},
		{
			name: "Follow-up",
			register: func() error {
				return followup_tools.RegisterFollowupTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Sheets",
			register: func() error {
				return sheets_tools.RegisterSheetsTools(mcpSrv, ctx, readOnly)
			},
		},
	}

	// Register all tools
	for _, reg := range registrations {
		if err := reg.register(); err != nil {
			return fmt.Errorf("failed to register %s: %w", reg.name, err)
		}
	}

	return nil
}

func runStreamableHTTPServer(mcpSrv *mcpserver.MCPServer, serverContext *server.ServerContext, addr string, ctx context.Context, stateless bool, metricsConfig MetricsConfig, instrProvider *instrumentation.Provider) error {
	httpServer := server.NewHTTPServer(mcpSrv, stateless)

	// Set up health checker for health check endpoints
	healthChecker := server.NewHealthChecker(serverContext)
	httpServer.SetHealthChecker(healthChecker)

	// Set up HTTP instrumentation for metrics
	if instrProvider != nil && instrProvider.Enabled() {
		httpServer.SetMetrics(instrProvider.Metrics())
	}

	fmt.Printf("Streamable HTTP server starting on %s\n", addr)
	fmt.Printf("  HTTP endpoint: /mcp\n")
	fmt.Printf("  Health endpoints: /healthz, /readyz\n")
	if metricsConfig.Enabled {
		fmt.Printf("  Metrics endpoint: %s/metrics\n", metricsConfig.Addr)
	}

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := httpServer.Start(addr); err != nil {
			serverDone <- err
		}
	}()

	select {
	case <-ctx.Done():
		fmt.Println("Shutdown signal received, stopping HTTP server...")
		healthChecker.SetReady(false)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
		fmt.Println("HTTP server stopped normally")
	}

	fmt.Println("HTTP server gracefully stopped")
	return nil
}
