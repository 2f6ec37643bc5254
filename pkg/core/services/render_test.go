package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/weekshift/pkg/core/scheduler"
	"github.com/jakechorley/weekshift/pkg/db"
)

func TestRenderSchedule_EmptyGrid(t *testing.T) {
	out := RenderSchedule(scheduler.NewSchedule(), nil)

	assert.Contains(t, out, "Final Schedule for the Week:")
	assert.Contains(t, out, "Monday:\n")
	assert.Contains(t, out, "Sunday:\n")
	assert.Equal(t, 21, strings.Count(out, "(none)"), "All 21 empty cells render as (none)")
}

func TestRenderSchedule_NamesJoinedInAssignmentOrder(t *testing.T) {
	schedule := scheduler.NewSchedule()
	schedule.Cells[0][scheduler.ShiftMorning] = []string{"Alice", "Bob"}

	out := RenderSchedule(schedule, nil)

	assert.Contains(t, out, "Morning  : Alice, Bob")
}

func TestRenderSchedule_WithDates(t *testing.T) {
	dates := make([]time.Time, scheduler.DaysPerWeek)
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}

	out := RenderSchedule(scheduler.NewSchedule(), dates)

	assert.Contains(t, out, "Monday (2026-01-05):")
	assert.Contains(t, out, "Sunday (2026-01-11):")
}

func TestRenderSummary_ListsEveryWorker(t *testing.T) {
	workers := testWorkers("Alice", "Bob")
	workers[0].DaysAssigned = 3

	out := RenderSummary(workers, scheduler.NewSchedule())

	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "3 day(s)")
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "0 day(s)")
}

func TestRenderSummary_WarnsOnUnderFloorCells(t *testing.T) {
	out := RenderSummary(testWorkers("Alice"), scheduler.NewSchedule())

	assert.Contains(t, out, "Warnings / Issues detected:")
	assert.Contains(t, out, "Monday morning has fewer than 2 staff (0)")
}

func TestRenderSummary_CleanWhenFloorMet(t *testing.T) {
	schedule := scheduler.NewSchedule()
	for day := 0; day < scheduler.DaysPerWeek; day++ {
		for _, shift := range scheduler.ShiftOrder {
			schedule.Cells[day][shift] = []string{"Alice", "Bob"}
		}
	}

	out := RenderSummary(testWorkers("Alice", "Bob"), schedule)

	assert.Contains(t, out, "No issues detected")
	assert.NotContains(t, out, "Warnings")
}

func TestBuildSheetRows_HeaderAndSevenDays(t *testing.T) {
	schedule := scheduler.NewSchedule()
	schedule.Cells[2][scheduler.ShiftEvening] = []string{"Alice", "Bob"}

	rows := BuildSheetRows(&ViewResult{
		Run:      db.ScheduleRun{ID: "run1"},
		Schedule: schedule,
	})

	require.Len(t, rows, 8)
	assert.Equal(t, []interface{}{"Day", "Morning", "Afternoon", "Evening"}, rows[0])
	assert.Equal(t, []interface{}{"Wednesday", "", "", "Alice, Bob"}, rows[3])
}
