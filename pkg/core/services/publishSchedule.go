package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jakechorley/weekshift/pkg/clients/sheetsclient"
	"github.com/jakechorley/weekshift/pkg/core/scheduler"
	"github.com/jakechorley/weekshift/pkg/db"
)

// PublishSchedule loads a persisted run and writes its grid to a Google
// Sheet tab. An empty runID publishes the most recent run.
func PublishSchedule(ctx context.Context, database db.Database, sheets *sheetsclient.Client, logger *zap.Logger, spreadsheetID, sheetTitle, runID string) error {
	if spreadsheetID == "" {
		return fmt.Errorf("no rota sheet configured")
	}

	view, err := ViewSchedule(ctx, database, logger, runID)
	if err != nil {
		return err
	}

	rows := BuildSheetRows(view)

	logger.Info("Publishing schedule",
		zap.String("run_id", view.Run.ID),
		zap.String("spreadsheet_id", spreadsheetID),
		zap.String("tab", sheetTitle))

	if err := sheets.PublishWeek(spreadsheetID, sheetTitle, rows); err != nil {
		return fmt.Errorf("failed to publish schedule: %w", err)
	}

	return nil
}

// BuildSheetRows turns a rebuilt run into sheet rows: a header plus one row
// per day with comma-joined names per shift
func BuildSheetRows(view *ViewResult) [][]interface{} {
	rows := [][]interface{}{
		{"Day", "Morning", "Afternoon", "Evening"},
	}

	for day := 0; day < scheduler.DaysPerWeek; day++ {
		row := []interface{}{scheduler.DayNames[day]}
		for _, shift := range scheduler.ShiftOrder {
			row = append(row, strings.Join(view.Schedule.Cell(day, shift), ", "))
		}
		rows = append(rows, row)
	}

	return rows
}
