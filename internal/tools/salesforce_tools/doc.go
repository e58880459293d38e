// Package salesforce_tools provides MCP (Model Context Protocol) tools for
// Salesforce CRM operations.
//
// This package exposes account lookup and opportunity queries through a
// standardized MCP interface, allowing AI assistants to read CRM data on
// behalf of users. All tools in this package are read-only.
package salesforce_tools
