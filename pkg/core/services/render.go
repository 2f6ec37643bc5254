package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/jakechorley/weekshift/pkg/core/scheduler"
)

// RenderSchedule renders the week grid as plain text, one block per day.
// shiftDates may be nil; when present each day heading carries its date.
func RenderSchedule(schedule *scheduler.Schedule, shiftDates []time.Time) string {
	var b strings.Builder
	b.WriteString("Final Schedule for the Week:\n\n")

	for day := 0; day < scheduler.DaysPerWeek; day++ {
		if len(shiftDates) == scheduler.DaysPerWeek {
			fmt.Fprintf(&b, "%s (%s):\n", scheduler.DayNames[day], shiftDates[day].Format("2006-01-02"))
		} else {
			fmt.Fprintf(&b, "%s:\n", scheduler.DayNames[day])
		}
		for _, shift := range scheduler.ShiftOrder {
			names := schedule.Cell(day, shift)
			display := "(none)"
			if len(names) > 0 {
				display = strings.Join(names, ", ")
			}
			fmt.Fprintf(&b, "  %-9s: %s\n", titleShift(shift), display)
		}
		b.WriteString(strings.Repeat("-", 40) + "\n")
	}

	return b.String()
}

// RenderSummary renders the per-worker assignment counts and any detected
// issues: weekly cap breaches (which indicate a scheduler bug) and cells
// below the staffing floor.
func RenderSummary(workers []*scheduler.Worker, schedule *scheduler.Schedule) string {
	var b strings.Builder
	b.WriteString("Worker assignment summary (days assigned):\n")
	for _, w := range workers {
		fmt.Fprintf(&b, " - %-12s: %d day(s)\n", w.Name, w.DaysAssigned)
	}

	var issues []string
	for _, w := range workers {
		if w.DaysAssigned > scheduler.MaxDaysPerWeek {
			issues = append(issues, fmt.Sprintf("%s assigned > %d days (%d)", w.Name, scheduler.MaxDaysPerWeek, w.DaysAssigned))
		}
	}
	for day := 0; day < scheduler.DaysPerWeek; day++ {
		for _, shift := range scheduler.ShiftOrder {
			if occ := schedule.Occupancy(day, shift); occ < scheduler.MinPerShift {
				issues = append(issues, fmt.Sprintf("%s %s has fewer than %d staff (%d)",
					scheduler.DayNames[day], shift, scheduler.MinPerShift, occ))
			}
		}
	}

	if len(issues) > 0 {
		b.WriteString("\nWarnings / Issues detected:\n")
		for _, issue := range issues {
			b.WriteString(" - " + issue + "\n")
		}
	} else {
		b.WriteString("\nNo issues detected. All constraints satisfied.\n")
	}

	return b.String()
}

// titleShift capitalizes a shift name for display
func titleShift(shift scheduler.Shift) string {
	s := string(shift)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
