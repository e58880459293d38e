package salesforce_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/luisesc/salesbridge/internal/salesforce"
	"github.com/luisesc/salesbridge/internal/server"
	"github.com/luisesc/salesbridge/internal/tools/common"
)

// opportunityEnvelope is the tool response for opportunity queries.
type opportunityEnvelope struct {
	Success       bool                     `json:"success"`
	Count         int                      `json:"count"`
	Opportunities []salesforce.Opportunity `json:"opportunities"`
}

// RegisterOpportunityTools registers opportunity-related tools with the MCP server
func RegisterOpportunityTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Recent opportunities tool
	recentTool := mcp.NewTool("salesforce_recent_opportunities",
		mcp.WithDescription("List the most recently created opportunities"),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of opportunities to return (default: 5)"),
		),
	)

	s.AddTool(recentTool, common.InstrumentedToolHandlerWithService(
		"salesforce_recent_opportunities", "salesforce", "query", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleRecentOpportunities(ctx, request, sc)
		}))

	// Closed-won opportunities tool
	closedWonTool := mcp.NewTool("salesforce_closed_won_opportunities",
		mcp.WithDescription("List opportunities in the Closed Won stage"),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of opportunities to return (default: 5)"),
		),
	)

	s.AddTool(closedWonTool, common.InstrumentedToolHandlerWithService(
		"salesforce_closed_won_opportunities", "salesforce", "query", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleClosedWonOpportunities(ctx, request, sc)
		}))

	return nil
}

func handleRecentOpportunities(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	limit := getLimitFromArgs(request.GetArguments(), defaultOpportunityLimit)

	client, err := sc.SalesforceClient(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create Salesforce client: %v", err)), nil
	}

	opps, total, err := client.RecentOpportunities(ctx, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to query opportunities: %v", err)), nil
	}

	return jsonResult(opportunityEnvelope{Success: true, Count: total, Opportunities: opps})
}

func handleClosedWonOpportunities(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	limit := getLimitFromArgs(request.GetArguments(), defaultOpportunityLimit)

	client, err := sc.SalesforceClient(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create Salesforce client: %v", err)), nil
	}

	opps, total, err := client.ClosedWonOpportunities(ctx, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to query opportunities: %v", err)), nil
	}

	return jsonResult(opportunityEnvelope{Success: true, Count: total, Opportunities: opps})
}
