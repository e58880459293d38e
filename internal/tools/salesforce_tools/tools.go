package salesforce_tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/luisesc/salesbridge/internal/server"
)

const (
	// defaultOpportunityLimit caps opportunity queries when the caller does
	// not provide a limit.
	defaultOpportunityLimit = 5

	// searchAccountLimit caps account search results.
	searchAccountLimit = 10
)

// getLimitFromArgs extracts the limit argument, falling back to def for
// missing, non-numeric, or non-positive values.
func getLimitFromArgs(args map[string]interface{}, def int) int {
	limitVal, ok := args["limit"].(float64)
	if !ok || limitVal <= 0 {
		return def
	}
	return int(limitVal)
}

// jsonResult marshals v and returns it as tool text content.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// RegisterSalesforceTools registers all Salesforce-related tools with the MCP server
func RegisterSalesforceTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := RegisterAccountTools(s, sc); err != nil {
		return fmt.Errorf("failed to register account tools: %w", err)
	}

	if err := RegisterOpportunityTools(s, sc); err != nil {
		return fmt.Errorf("failed to register opportunity tools: %w", err)
	}

	return nil
}
