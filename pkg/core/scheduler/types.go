package scheduler

// Week dimensions and run limits. MinPerShift and MaxDaysPerWeek are fixed
// properties of the rota, not configuration.
const (
	DaysPerWeek    = 7
	MaxDaysPerWeek = 5
	MinPerShift    = 2

	DefaultMaxPerShift = 5
)

// Shift is one of the three fixed daily slots
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftEvening   Shift = "evening"
)

// ShiftOrder is the canonical shift order used whenever shifts are walked
// outside a worker's own ranking
var ShiftOrder = []Shift{ShiftMorning, ShiftAfternoon, ShiftEvening}

// DayNames maps day index 0-6 to its display name
var DayNames = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// IsValidShift reports whether s is one of the three known shifts
func IsValidShift(s Shift) bool {
	return s == ShiftMorning || s == ShiftAfternoon || s == ShiftEvening
}

// Worker is a rostered worker with ranked per-day shift preferences.
// Name is the sole key in all output collections, so two workers in one run
// must not share a name (the roster layer enforces this).
type Worker struct {
	Name string

	// Preferences holds the ranked shift list for each day.
	// An empty list means no preference.
	Preferences [DaysPerWeek][]Shift

	// AssignedShifts maps day index to the shift the worker got that day.
	// At most one entry per day.
	AssignedShifts map[int]Shift

	// DaysAssigned mirrors len(AssignedShifts). Never exceeds MaxDaysPerWeek.
	DaysAssigned int
}

// NewWorker creates a worker with empty assignment state
func NewWorker(name string) *Worker {
	return &Worker{
		Name:           name,
		AssignedShifts: make(map[int]Shift),
	}
}

// Schedule is the fixed 7x3 grid being filled. Each cell holds worker names
// in assignment order.
type Schedule struct {
	Cells [DaysPerWeek]map[Shift][]string
}

// NewSchedule allocates an empty week grid
func NewSchedule() *Schedule {
	s := &Schedule{}
	for day := 0; day < DaysPerWeek; day++ {
		s.Cells[day] = map[Shift][]string{
			ShiftMorning:   {},
			ShiftAfternoon: {},
			ShiftEvening:   {},
		}
	}
	return s
}

// Cell returns the names assigned to the given day and shift
func (s *Schedule) Cell(day int, shift Shift) []string {
	return s.Cells[day][shift]
}

// Occupancy returns the current number of workers in the given cell
func (s *Schedule) Occupancy(day int, shift Shift) int {
	return len(s.Cells[day][shift])
}

// Shortage records a cell still below the minimum floor after a staffing pass
type Shortage struct {
	Day     int
	Shift   Shift
	Missing int
}

// Outcome is the result of a full scheduling run
type Outcome struct {
	// Schedule is the completed week grid
	Schedule *Schedule

	// Workers is the worker set after all passes, with final assignment state
	Workers []*Worker

	// Shortages are the cells still below MinPerShift after the resolver.
	// Always non-nil; empty when every cell reached the floor.
	Shortages []Shortage

	// Success indicates no residual shortages remain
	Success bool
}

// TotalAssignments returns the number of filled slots across the grid
func (o *Outcome) TotalAssignments() int {
	total := 0
	for day := 0; day < DaysPerWeek; day++ {
		for _, shift := range ShiftOrder {
			total += o.Schedule.Occupancy(day, shift)
		}
	}
	return total
}
