package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/luisesc/salesbridge/internal/config"
	"github.com/luisesc/salesbridge/internal/salesforce"
	"github.com/luisesc/salesbridge/internal/sheets"
)

// exportSearchLimit caps how many accounts a single export writes, matching
// the account search tool.
const exportSearchLimit = 10

func newExportCmd() *cobra.Command {
	var (
		name          string
		spreadsheetID string
		worksheet     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export Salesforce accounts to a Google Sheets worksheet",
		Long: `Search Salesforce accounts by name and write the results to a Google
Sheets worksheet. The worksheet is created if it does not exist.

Credentials come from the same environment variables as the serve command
(SF_USERNAME, SF_PASSWORD, SF_SECURITY_TOKEN, GOOGLE_CALENDAR_CREDENTIALS).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), name, spreadsheetID, worksheet)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name fragment to search accounts for")
	cmd.Flags().StringVar(&spreadsheetID, "spreadsheet", "", "Target spreadsheet ID")
	cmd.Flags().StringVar(&worksheet, "worksheet", "Accounts", "Worksheet title (created if missing)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("spreadsheet")

	return cmd
}

func runExport(ctx context.Context, name, spreadsheetID, worksheet string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	sfClient, err := salesforce.Login(ctx, cfg.Salesforce)
	if err != nil {
		return fmt.Errorf("failed to log in to Salesforce: %w", err)
	}

	accounts, total, err := sfClient.SearchAccounts(ctx, name, exportSearchLimit)
	if err != nil {
		return fmt.Errorf("failed to search accounts: %w", err)
	}
	log.Printf("Found %d accounts matching %q", total, name)

	sheetsClient, err := sheets.NewClient(ctx, cfg.Google)
	if err != nil {
		return fmt.Errorf("failed to create Sheets client: %w", err)
	}

	rows, err := sheetsClient.WriteAccounts(ctx, spreadsheetID, worksheet, accounts)
	if err != nil {
		return fmt.Errorf("failed to write accounts: %w", err)
	}

	log.Printf("Wrote %d rows to worksheet %q", rows, worksheet)
	return nil
}
