package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/weekshift/pkg/core/scheduler"
	"github.com/jakechorley/weekshift/pkg/db"
)

// GenerateParams configures a scheduling run
type GenerateParams struct {
	// MaxPerShift is the per-cell capacity ceiling
	MaxPerShift int

	// Seed drives the preference pass shuffle; the same seed and roster
	// reproduce the same schedule
	Seed int64

	// DryRun skips persistence
	DryRun bool

	// ShiftDates are the week's seven concrete dates (day index order).
	// Optional; when set, assignments are stored with their dates.
	ShiftDates []time.Time
}

// GenerateResult represents the result of a scheduling run
type GenerateResult struct {
	RunID     string
	Outcome   *scheduler.Outcome
	Persisted bool
}

// GenerateSchedule runs the four-pass scheduler over the given workers and
// persists the resulting grid, unless DryRun is set or no store is available.
// Residual shortages are part of the result, never an error: an
// over-constrained roster is a legitimate input.
func GenerateSchedule(ctx context.Context, database db.RunStore, logger *zap.Logger, workers []*scheduler.Worker, params GenerateParams) (*GenerateResult, error) {
	if len(workers) == 0 {
		return nil, fmt.Errorf("no workers in roster")
	}
	if len(params.ShiftDates) != 0 && len(params.ShiftDates) != scheduler.DaysPerWeek {
		return nil, fmt.Errorf("expected %d shift dates, got %d", scheduler.DaysPerWeek, len(params.ShiftDates))
	}

	logger.Debug("Generating schedule",
		zap.Int("workers", len(workers)),
		zap.Int("max_per_shift", params.MaxPerShift),
		zap.Int64("seed", params.Seed))

	rng := rand.New(rand.NewSource(params.Seed))
	session := scheduler.NewSession(workers, params.MaxPerShift, rng)
	outcome := session.Run()

	logger.Info("Schedule generated",
		zap.Int("total_assignments", outcome.TotalAssignments()),
		zap.Int("residual_shortages", len(outcome.Shortages)),
		zap.Bool("all_cells_at_floor", outcome.Success))

	for _, shortage := range outcome.Shortages {
		logger.Warn("Unresolved shortage",
			zap.String("day", scheduler.DayNames[shortage.Day]),
			zap.String("shift", string(shortage.Shift)),
			zap.Int("missing", shortage.Missing))
	}

	result := &GenerateResult{
		RunID:   uuid.New().String(),
		Outcome: outcome,
	}

	if params.DryRun || database == nil {
		logger.Debug("Skipping persistence",
			zap.Bool("dry_run", params.DryRun),
			zap.Bool("store_configured", database != nil))
		return result, nil
	}

	if err := persistRun(database, result, params); err != nil {
		return nil, err
	}
	result.Persisted = true

	logger.Info("Schedule persisted", zap.String("run_id", result.RunID))
	return result, nil
}

// persistRun writes the run record, every filled slot and every residual
// shortage to the store
func persistRun(database db.RunStore, result *GenerateResult, params GenerateParams) error {
	run := &db.ScheduleRun{
		ID:          result.RunID,
		MaxPerShift: params.MaxPerShift,
		Seed:        params.Seed,
	}
	if len(params.ShiftDates) > 0 {
		run.WeekStart = params.ShiftDates[0].Format("2006-01-02")
	}

	if err := database.InsertScheduleRun(run); err != nil {
		return fmt.Errorf("failed to insert schedule run: %w", err)
	}

	var assignments []db.Assignment
	for day := 0; day < scheduler.DaysPerWeek; day++ {
		var shiftDate string
		if len(params.ShiftDates) > 0 {
			shiftDate = params.ShiftDates[day].Format("2006-01-02")
		}
		for _, shift := range scheduler.ShiftOrder {
			for slot, name := range result.Outcome.Schedule.Cell(day, shift) {
				assignments = append(assignments, db.Assignment{
					ID:         uuid.New().String(),
					RunID:      result.RunID,
					DayIndex:   day,
					ShiftDate:  shiftDate,
					Shift:      string(shift),
					WorkerName: name,
					Slot:       slot,
				})
			}
		}
	}
	if err := database.InsertAssignments(assignments); err != nil {
		return fmt.Errorf("failed to insert assignments: %w", err)
	}

	var shortages []db.ShortageRecord
	for _, shortage := range result.Outcome.Shortages {
		shortages = append(shortages, db.ShortageRecord{
			ID:       uuid.New().String(),
			RunID:    result.RunID,
			DayIndex: shortage.Day,
			Shift:    string(shortage.Shift),
			Missing:  shortage.Missing,
		})
	}
	if err := database.InsertShortages(shortages); err != nil {
		return fmt.Errorf("failed to insert shortages: %w", err)
	}

	return nil
}
