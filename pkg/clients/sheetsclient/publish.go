package sheetsclient

import "fmt"

// PublishWeek writes a week grid to the given tab, creating the tab if
// needed and clearing any previous contents first
func (c *Client) PublishWeek(spreadsheetID, sheetTitle string, rows [][]interface{}) error {
	if err := c.EnsureSheet(spreadsheetID, sheetTitle); err != nil {
		return err
	}

	clearRange := fmt.Sprintf("%s!A:Z", sheetTitle)
	if err := c.ClearRange(spreadsheetID, clearRange); err != nil {
		return err
	}

	writeRange := fmt.Sprintf("%s!A1", sheetTitle)
	if err := c.UpdateValues(spreadsheetID, writeRange, rows); err != nil {
		return err
	}

	return nil
}
