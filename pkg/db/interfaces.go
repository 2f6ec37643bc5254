package db

import "context"

// RunStore defines the subset of operations the generate service needs
type RunStore interface {
	InsertScheduleRun(run *ScheduleRun) error
	InsertAssignments(assignments []Assignment) error
	InsertShortages(shortages []ShortageRecord) error
}

// Database defines the interface for all schedule persistence operations.
// postgres.DB implements this interface; service tests use in-memory fakes.
type Database interface {
	RunStore
	GetScheduleRuns(ctx context.Context) ([]ScheduleRun, error)
	GetAssignments(ctx context.Context, runID string) ([]Assignment, error)
	GetShortages(ctx context.Context, runID string) ([]ShortageRecord, error)
}
