package db

// ScheduleRun represents one completed scheduling run
type ScheduleRun struct {
	ID          string
	WeekStart   string // Date format
	MaxPerShift int
	Seed        int64
}

// Assignment represents one worker placed in one shift cell
type Assignment struct {
	ID         string
	RunID      string
	DayIndex   int
	ShiftDate  string // Date format
	Shift      string
	WorkerName string
	Slot       int // position within the cell, preserves assignment order
}

// ShortageRecord represents a cell left below the staffing floor by a run
type ShortageRecord struct {
	ID       string
	RunID    string
	DayIndex int
	Shift    string
	Missing  int
}
