// Package cmd implements the command-line interface for salesbridge.
//
// This package provides the following commands:
//   - serve: Start the MCP server to provide tools for AI assistants
//   - export: Write a Salesforce account search to a Google Sheets worksheet
//   - guess: Play a console number-guessing game
//   - version: Display version information
//
// The serve command is the default command when no subcommand is specified.
package cmd
