package sheets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/luisesc/salesbridge/internal/config"
	"github.com/luisesc/salesbridge/internal/salesforce"
)

// accountHeaders is the fixed header row of an account export.
var accountHeaders = []string{"Account ID", "Name", "BillingAddress", "Type", "Industry"}

// Client wraps the Google Sheets service.
type Client struct {
	svc *sheets.Service
}

// NewClient creates a Sheets client from a service-account key file, using
// the same credential and delegation settings as the calendar client.
func NewClient(ctx context.Context, cfg config.Google) (*Client, error) {
	data, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheets credentials: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}
	jwtConfig.Subject = cfg.DelegatedUser

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// NewClientWithService wraps an existing Sheets service. Used by tests.
func NewClientWithService(svc *sheets.Service) *Client {
	return &Client{svc: svc}
}

// EnsureWorksheet makes sure a worksheet with the given title exists in the
// spreadsheet, creating it when missing.
func (c *Client) EnsureWorksheet(ctx context.Context, spreadsheetID, title string) error {
	spreadsheet, err := c.svc.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == title {
			return nil
		}
	}

	_, err = c.svc.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{
						Title: title,
						GridProperties: &sheets.GridProperties{
							RowCount:    100,
							ColumnCount: int64(len(accountHeaders)),
						},
					},
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to add worksheet %q: %w", title, err)
	}
	return nil
}

// WriteAccounts writes the header row and one row per account to the
// worksheet, starting at A1. It returns the number of data rows written.
func (c *Client) WriteAccounts(ctx context.Context, spreadsheetID, worksheet string, accounts []salesforce.Account) (int, error) {
	if err := c.EnsureWorksheet(ctx, spreadsheetID, worksheet); err != nil {
		return 0, err
	}

	values := accountRows(accounts)
	writeRange := fmt.Sprintf("%s!A1:E%d", worksheet, len(values))

	_, err := c.svc.Spreadsheets.Values.Update(spreadsheetID, writeRange, &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to write accounts: %w", err)
	}

	return len(accounts), nil
}

// accountRows renders the header plus one row per account.
func accountRows(accounts []salesforce.Account) [][]any {
	rows := make([][]any, 0, len(accounts)+1)

	header := make([]any, len(accountHeaders))
	for i, h := range accountHeaders {
		header[i] = h
	}
	rows = append(rows, header)

	for _, account := range accounts {
		rows = append(rows, []any{
			account.ID,
			account.Name,
			account.BillingAddress.Flatten(),
			account.Type,
			account.Industry,
		})
	}
	return rows
}
