package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/weekshift/pkg/core/scheduler"
	"github.com/jakechorley/weekshift/pkg/db"
)

// fakeDatabase is an in-memory db.Database for service tests
type fakeDatabase struct {
	runs        []db.ScheduleRun
	assignments []db.Assignment
	shortages   []db.ShortageRecord
	insertErr   error
}

func (f *fakeDatabase) GetScheduleRuns(ctx context.Context) ([]db.ScheduleRun, error) {
	return f.runs, nil
}

func (f *fakeDatabase) InsertScheduleRun(run *db.ScheduleRun) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.runs = append([]db.ScheduleRun{*run}, f.runs...)
	return nil
}

func (f *fakeDatabase) GetAssignments(ctx context.Context, runID string) ([]db.Assignment, error) {
	var out []db.Assignment
	for _, a := range f.assignments {
		if a.RunID == runID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeDatabase) InsertAssignments(assignments []db.Assignment) error {
	f.assignments = append(f.assignments, assignments...)
	return nil
}

func (f *fakeDatabase) GetShortages(ctx context.Context, runID string) ([]db.ShortageRecord, error) {
	var out []db.ShortageRecord
	for _, s := range f.shortages {
		if s.RunID == runID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeDatabase) InsertShortages(shortages []db.ShortageRecord) error {
	f.shortages = append(f.shortages, shortages...)
	return nil
}

func testWorkers(names ...string) []*scheduler.Worker {
	workers := make([]*scheduler.Worker, 0, len(names))
	for _, name := range names {
		workers = append(workers, scheduler.NewWorker(name))
	}
	return workers
}

func testWeek() []time.Time {
	dates := make([]time.Time, scheduler.DaysPerWeek)
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

func TestGenerateSchedule_EmptyRoster(t *testing.T) {
	_, err := GenerateSchedule(context.Background(), &fakeDatabase{}, zap.NewNop(), nil, GenerateParams{MaxPerShift: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no workers")
}

func TestGenerateSchedule_WrongDateCount(t *testing.T) {
	workers := testWorkers("Alice")
	_, err := GenerateSchedule(context.Background(), &fakeDatabase{}, zap.NewNop(), workers, GenerateParams{
		MaxPerShift: 5,
		ShiftDates:  testWeek()[:3],
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shift dates")
}

func TestGenerateSchedule_PersistsRunAssignmentsAndShortages(t *testing.T) {
	database := &fakeDatabase{}
	workers := testWorkers("Alice", "Bob")

	result, err := GenerateSchedule(context.Background(), database, zap.NewNop(), workers, GenerateParams{
		MaxPerShift: 5,
		Seed:        42,
		ShiftDates:  testWeek(),
	})
	require.NoError(t, err)
	assert.True(t, result.Persisted)

	require.Len(t, database.runs, 1)
	run := database.runs[0]
	assert.Equal(t, result.RunID, run.ID)
	assert.Equal(t, "2026-01-05", run.WeekStart)
	assert.Equal(t, 5, run.MaxPerShift)
	assert.Equal(t, int64(42), run.Seed)

	// Two workers at the weekly cap produce ten assignment rows
	assert.Len(t, database.assignments, 10)
	for _, a := range database.assignments {
		assert.Equal(t, result.RunID, a.RunID)
		assert.NotEmpty(t, a.ShiftDate)
	}

	// Both workers alone cannot staff 21 cells at the floor of two
	assert.NotEmpty(t, database.shortages)
}

func TestGenerateSchedule_DryRunSkipsPersistence(t *testing.T) {
	database := &fakeDatabase{}
	workers := testWorkers("Alice", "Bob")

	result, err := GenerateSchedule(context.Background(), database, zap.NewNop(), workers, GenerateParams{
		MaxPerShift: 5,
		DryRun:      true,
	})
	require.NoError(t, err)

	assert.False(t, result.Persisted)
	assert.Empty(t, database.runs)
	assert.Empty(t, database.assignments)
}

func TestGenerateSchedule_NilStoreSkipsPersistence(t *testing.T) {
	workers := testWorkers("Alice")

	result, err := GenerateSchedule(context.Background(), nil, zap.NewNop(), workers, GenerateParams{MaxPerShift: 5})
	require.NoError(t, err)
	assert.False(t, result.Persisted)
	assert.NotNil(t, result.Outcome)
}

func TestGenerateSchedule_SameSeedSameGrid(t *testing.T) {
	run := func() *scheduler.Outcome {
		workers := testWorkers("Alice", "Bob", "Charlie", "Deepa")
		result, err := GenerateSchedule(context.Background(), nil, zap.NewNop(), workers, GenerateParams{
			MaxPerShift: 2,
			Seed:        7,
		})
		require.NoError(t, err)
		return result.Outcome
	}

	first := run()
	second := run()
	for day := 0; day < scheduler.DaysPerWeek; day++ {
		for _, shift := range scheduler.ShiftOrder {
			assert.Equal(t, first.Schedule.Cell(day, shift), second.Schedule.Cell(day, shift))
		}
	}
}

func TestViewSchedule_RebuildsGrid(t *testing.T) {
	database := &fakeDatabase{}
	workers := testWorkers("Alice", "Bob", "Charlie")

	result, err := GenerateSchedule(context.Background(), database, zap.NewNop(), workers, GenerateParams{
		MaxPerShift: 5,
		Seed:        3,
		ShiftDates:  testWeek(),
	})
	require.NoError(t, err)

	view, err := ViewSchedule(context.Background(), database, zap.NewNop(), "")
	require.NoError(t, err)

	assert.Equal(t, result.RunID, view.Run.ID)
	for day := 0; day < scheduler.DaysPerWeek; day++ {
		for _, shift := range scheduler.ShiftOrder {
			assert.Equal(t, result.Outcome.Schedule.Cell(day, shift), view.Schedule.Cell(day, shift),
				"Rebuilt grid differs at day %d %s", day, shift)
		}
	}
	assert.Equal(t, result.Outcome.Shortages, view.Shortages)
}

func TestViewSchedule_NoRuns(t *testing.T) {
	_, err := ViewSchedule(context.Background(), &fakeDatabase{}, zap.NewNop(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no schedule runs")
}

func TestViewSchedule_UnknownRunID(t *testing.T) {
	database := &fakeDatabase{runs: []db.ScheduleRun{{ID: "abc"}}}
	_, err := ViewSchedule(context.Background(), database, zap.NewNop(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
