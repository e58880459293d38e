package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the salesbridge application
var rootCmd = &cobra.Command{
	Use:   "salesbridge",
	Short: "Bridges Salesforce CRM data to Google Calendar and Sheets",
	Long: `salesbridge exposes Salesforce accounts and opportunities to AI assistants
through the Model Context Protocol (MCP), and schedules follow-up meetings
in Google Calendar with agendas built from open opportunities.

It can run as:
  - An MCP server for AI assistants (default)
  - A standalone exporter that writes account searches to Google Sheets
  - A console number-guessing game`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "salesbridge version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newGuessCmd())
	rootCmd.AddCommand(newVersionCmd())
}
