package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/weekshift/pkg/core/scheduler"
	"github.com/jakechorley/weekshift/pkg/db"
)

// ViewResult is a persisted run rebuilt into its in-memory grid form
type ViewResult struct {
	Run       db.ScheduleRun
	Schedule  *scheduler.Schedule
	Shortages []scheduler.Shortage
}

// ViewSchedule loads a persisted run and rebuilds the week grid from its
// assignment records. An empty runID selects the most recent run.
func ViewSchedule(ctx context.Context, database db.Database, logger *zap.Logger, runID string) (*ViewResult, error) {
	runs, err := database.GetScheduleRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule runs: %w", err)
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("no schedule runs recorded")
	}

	var run *db.ScheduleRun
	if runID == "" {
		run = &runs[0]
	} else {
		for i := range runs {
			if runs[i].ID == runID {
				run = &runs[i]
				break
			}
		}
		if run == nil {
			return nil, fmt.Errorf("schedule run %s not found", runID)
		}
	}

	logger.Debug("Loading schedule run", zap.String("run_id", run.ID))

	assignments, err := database.GetAssignments(ctx, run.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	schedule := scheduler.NewSchedule()
	for _, a := range assignments {
		if a.DayIndex < 0 || a.DayIndex >= scheduler.DaysPerWeek {
			return nil, fmt.Errorf("assignment %s has day index %d out of range", a.ID, a.DayIndex)
		}
		shift := scheduler.Shift(a.Shift)
		if !scheduler.IsValidShift(shift) {
			return nil, fmt.Errorf("assignment %s has unknown shift %q", a.ID, a.Shift)
		}
		schedule.Cells[a.DayIndex][shift] = append(schedule.Cells[a.DayIndex][shift], a.WorkerName)
	}

	records, err := database.GetShortages(ctx, run.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shortages: %w", err)
	}
	shortages := make([]scheduler.Shortage, 0, len(records))
	for _, r := range records {
		shortages = append(shortages, scheduler.Shortage{
			Day:     r.DayIndex,
			Shift:   scheduler.Shift(r.Shift),
			Missing: r.Missing,
		})
	}

	return &ViewResult{
		Run:       *run,
		Schedule:  schedule,
		Shortages: shortages,
	}, nil
}
