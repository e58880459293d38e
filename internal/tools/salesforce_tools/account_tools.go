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

// accountEnvelope is the tool response for a single account lookup.
type accountEnvelope struct {
	Success bool                `json:"success"`
	Account *salesforce.Account `json:"account"`
}

// searchEnvelope is the tool response for an account search.
type searchEnvelope struct {
	Success  bool                 `json:"success"`
	Accounts []salesforce.Account `json:"accounts"`
	Count    int                  `json:"count"`
}

// RegisterAccountTools registers account-related tools with the MCP server
func RegisterAccountTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Get account tool
	getAccountTool := mcp.NewTool("salesforce_get_account",
		mcp.WithDescription("Get a Salesforce account by its record ID"),
		mcp.WithString("account_id",
			mcp.Required(),
			mcp.Description("The Salesforce account record ID (e.g., '001xx000003DGb1AAG')"),
		),
	)

	s.AddTool(getAccountTool, common.InstrumentedToolHandlerWithService(
		"salesforce_get_account", "salesforce", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetAccount(ctx, request, sc)
		}))

	// Search accounts tool
	searchAccountsTool := mcp.NewTool("salesforce_search_accounts",
		mcp.WithDescription("Search Salesforce accounts by name (substring match, up to 10 results)"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name fragment to search for"),
		),
	)

	s.AddTool(searchAccountsTool, common.InstrumentedToolHandlerWithService(
		"salesforce_search_accounts", "salesforce", "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchAccounts(ctx, request, sc)
		}))

	return nil
}

func handleGetAccount(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	accountID, ok := args["account_id"].(string)
	if !ok || accountID == "" {
		return mcp.NewToolResultError("account_id is required"), nil
	}

	client, err := sc.SalesforceClient(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create Salesforce client: %v", err)), nil
	}

	account, err := client.GetAccount(ctx, accountID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get account: %v", err)), nil
	}

	return jsonResult(accountEnvelope{Success: true, Account: account})
}

func handleSearchAccounts(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	name, ok := args["name"].(string)
	if !ok || name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	client, err := sc.SalesforceClient(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create Salesforce client: %v", err)), nil
	}

	accounts, total, err := client.SearchAccounts(ctx, name, searchAccountLimit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to search accounts: %v", err)), nil
	}

	return jsonResult(searchEnvelope{Success: true, Accounts: accounts, Count: total})
}
