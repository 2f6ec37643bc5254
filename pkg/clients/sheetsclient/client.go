// Package sheetsclient publishes finished schedules to Google Sheets.
package sheetsclient

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client wraps the Google Sheets API client
type Client struct {
	service *sheets.Service
	ctx     context.Context
}

// NewClient creates a Sheets client authenticated with a service account key
// file. The key only needs the spreadsheets scope.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service: service,
		ctx:     ctx,
	}, nil
}

// Service returns the underlying sheets service for direct API access
func (c *Client) Service() *sheets.Service {
	return c.service
}

// UpdateValues overwrites a spreadsheet range with the given rows
func (c *Client) UpdateValues(spreadsheetID, sheetRange string, values [][]interface{}) error {
	valueRange := &sheets.ValueRange{
		Values: values,
	}

	_, err := c.service.Spreadsheets.Values.Update(spreadsheetID, sheetRange, valueRange).
		ValueInputOption("RAW").
		Do()
	if err != nil {
		return fmt.Errorf("failed to update values: %w", err)
	}

	return nil
}

// ClearRange clears all values in a spreadsheet range
func (c *Client) ClearRange(spreadsheetID, sheetRange string) error {
	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, sheetRange, &sheets.ClearValuesRequest{}).Do()
	if err != nil {
		return fmt.Errorf("failed to clear range: %w", err)
	}

	return nil
}

// EnsureSheet creates the named tab if the spreadsheet doesn't have it yet
func (c *Client) EnsureSheet(spreadsheetID, sheetTitle string) error {
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == sheetTitle {
			return nil
		}
	}

	req := &sheets.Request{
		AddSheet: &sheets.AddSheetRequest{
			Properties: &sheets.SheetProperties{
				Title: sheetTitle,
			},
		},
	}

	batchUpdateRequest := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{req},
	}

	if _, err := c.service.Spreadsheets.BatchUpdate(spreadsheetID, batchUpdateRequest).Do(); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	return nil
}
