// Package sheets_tools provides the MCP (Model Context Protocol) tool for
// exporting Salesforce accounts to Google Sheets.
//
// The sheets_export_accounts tool searches accounts by name and writes the
// results to a worksheet, creating it when missing. Because it writes to the
// spreadsheet, the tool is only registered when write operations are enabled.
package sheets_tools
