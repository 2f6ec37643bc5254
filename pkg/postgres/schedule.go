package postgres

import (
	"context"
	"fmt"

	"github.com/jakechorley/weekshift/pkg/db"
)

// GetScheduleRuns retrieves all schedule runs, newest first
func (d *DB) GetScheduleRuns(ctx context.Context) ([]db.ScheduleRun, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, COALESCE(week_start::text, ''), max_per_shift, seed
		FROM schedule_run
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule runs: %w", err)
	}
	defer rows.Close()

	var runs []db.ScheduleRun
	for rows.Next() {
		var r db.ScheduleRun
		if err := rows.Scan(&r.ID, &r.WeekStart, &r.MaxPerShift, &r.Seed); err != nil {
			return nil, fmt.Errorf("failed to scan schedule run: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule runs: %w", err)
	}

	return runs, nil
}

// InsertScheduleRun inserts a schedule run record
func (d *DB) InsertScheduleRun(run *db.ScheduleRun) error {
	ctx := context.Background()
	var weekStart *string
	if run.WeekStart != "" {
		weekStart = &run.WeekStart
	}
	_, err := d.pool.Exec(ctx, `
		INSERT INTO schedule_run (id, week_start, max_per_shift, seed)
		VALUES ($1, $2, $3, $4)
	`, run.ID, weekStart, run.MaxPerShift, run.Seed)
	if err != nil {
		return fmt.Errorf("failed to insert schedule run: %w", err)
	}
	return nil
}

// GetAssignments retrieves all assignments for a run, in grid walk order
func (d *DB) GetAssignments(ctx context.Context, runID string) ([]db.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, run_id, day_index, COALESCE(shift_date::text, ''), shift, worker_name, slot
		FROM assignment
		WHERE run_id = $1
		ORDER BY day_index, shift, slot
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		var a db.Assignment
		if err := rows.Scan(&a.ID, &a.RunID, &a.DayIndex, &a.ShiftDate, &a.Shift, &a.WorkerName, &a.Slot); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// InsertAssignments inserts assignment records in a single transaction
func (d *DB) InsertAssignments(assignments []db.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	ctx := context.Background()
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range assignments {
		var shiftDate *string
		if a.ShiftDate != "" {
			shiftDate = &a.ShiftDate
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO assignment (id, run_id, day_index, shift_date, shift, worker_name, slot)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, a.ID, a.RunID, a.DayIndex, shiftDate, a.Shift, a.WorkerName, a.Slot)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetShortages retrieves the residual shortages recorded for a run
func (d *DB) GetShortages(ctx context.Context, runID string) ([]db.ShortageRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, run_id, day_index, shift, missing
		FROM shortage
		WHERE run_id = $1
		ORDER BY day_index, shift
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shortages: %w", err)
	}
	defer rows.Close()

	var shortages []db.ShortageRecord
	for rows.Next() {
		var s db.ShortageRecord
		if err := rows.Scan(&s.ID, &s.RunID, &s.DayIndex, &s.Shift, &s.Missing); err != nil {
			return nil, fmt.Errorf("failed to scan shortage: %w", err)
		}
		shortages = append(shortages, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shortages: %w", err)
	}

	return shortages, nil
}

// InsertShortages inserts shortage records in a single transaction
func (d *DB) InsertShortages(shortages []db.ShortageRecord) error {
	if len(shortages) == 0 {
		return nil
	}

	ctx := context.Background()
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, s := range shortages {
		_, err := tx.Exec(ctx, `
			INSERT INTO shortage (id, run_id, day_index, shift, missing)
			VALUES ($1, $2, $3, $4, $5)
		`, s.ID, s.RunID, s.DayIndex, s.Shift, s.Missing)
		if err != nil {
			return fmt.Errorf("failed to insert shortage: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
