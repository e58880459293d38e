package cmd

import (
	"context"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/luisesc/salesbridge/internal/config"
	"github.com/luisesc/salesbridge/internal/server"
)

func TestRegisterAllTools(t *testing.T) {
	tests := []struct {
		name     string
		readOnly bool
	}{
		{
			name:     "read-only mode",
			readOnly: true,
		},
		{
			name:     "write mode",
			readOnly: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			sc, err := server.NewServerContext(ctx, config.Config{})
			if err != nil {
				t.Fatalf("NewServerContext() error = %v", err)
			}
			t.Cleanup(func() {
				_ = sc.Shutdown()
			})

			mcpSrv := mcpserver.NewMCPServer("salesbridge-test", "test",
				mcpserver.WithToolCapabilities(true),
			)

			if err := registerAllTools(mcpSrv, sc, tt.readOnly); err != nil {
				t.Errorf("registerAllTools() error = %v", err)
			}
		})
	}
}
