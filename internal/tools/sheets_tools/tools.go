package sheets_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/luisesc/salesbridge/internal/server"
	"github.com/luisesc/salesbridge/internal/tools/common"
)

const (
	// defaultWorksheet is the worksheet title used when the caller does not
	// name one.
	defaultWorksheet = "Accounts"

	// searchAccountLimit caps how many accounts a single export writes.
	searchAccountLimit = 10
)

// exportEnvelope is the tool response for a spreadsheet export.
type exportEnvelope struct {
	Success   bool   `json:"success"`
	Worksheet string `json:"worksheet"`
	Rows      int    `json:"rows"`
}

// RegisterSheetsTools registers spreadsheet export tools with the MCP server.
// Nothing is registered in read-only mode because exporting writes to the
// spreadsheet.
func RegisterSheetsTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if readOnly {
		return nil
	}

	exportTool := mcp.NewTool("sheets_export_accounts",
		mcp.WithDescription("Search Salesforce accounts by name and export them to a Google Sheets worksheet"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name fragment to search accounts for"),
		),
		mcp.WithString("spreadsheet_id",
			mcp.Required(),
			mcp.Description("The target Google Sheets spreadsheet ID"),
		),
		mcp.WithString("worksheet",
			mcp.Description("Worksheet title (default: 'Accounts'). Created if it does not exist."),
		),
	)

	s.AddTool(exportTool, common.InstrumentedToolHandlerWithService(
		"sheets_export_accounts", "sheets", "export", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleExportAccounts(ctx, request, sc)
		}))

	return nil
}

func handleExportAccounts(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	name, ok := args["name"].(string)
	if !ok || name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	spreadsheetID, ok := args["spreadsheet_id"].(string)
	if !ok || spreadsheetID == "" {
		return mcp.NewToolResultError("spreadsheet_id is required"), nil
	}

	worksheet := getWorksheetFromArgs(args)

	sfClient, err := sc.SalesforceClient(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create Salesforce client: %v", err)), nil
	}

	accounts, _, err := sfClient.SearchAccounts(ctx, name, searchAccountLimit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to search accounts: %v", err)), nil
	}

	sheetsClient, err := sc.SheetsClient(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create Sheets client: %v", err)), nil
	}

	rows, err := sheetsClient.WriteAccounts(ctx, spreadsheetID, worksheet, accounts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to write accounts: %v", err)), nil
	}

	data, err := json.Marshal(exportEnvelope{Success: true, Worksheet: worksheet, Rows: rows})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// getWorksheetFromArgs extracts the worksheet title, defaulting when absent.
func getWorksheetFromArgs(args map[string]interface{}) string {
	if ws, ok := args["worksheet"].(string); ok && ws != "" {
		return ws
	}
	return defaultWorksheet
}
