// Package scheduler assigns a worker roster to a fixed weekly grid of shifts
// (7 days x 3 shifts) under ranked preferences, a weekly workload cap, a
// per-shift capacity ceiling and a minimum staffing floor.
//
// The run is a strict sequence of four passes over one mutable session:
// preference-driven placement, minimum-staffing backfill, same-day shortage
// resolution, and a final coverage-maximizing sweep. Every pass only adds
// assignments; nothing is ever removed.
package scheduler

import (
	"math/rand"
	"time"
)

// Session owns the worker set and schedule for the duration of one run.
// Not safe for concurrent use; a run is single-threaded.
type Session struct {
	workers     []*Worker
	schedule    *Schedule
	maxPerShift int
	rng         *rand.Rand
}

// NewSession creates a session over the given workers. maxPerShift values
// below 1 fall back to DefaultMaxPerShift. A nil rng is seeded from the
// clock; tests inject a fixed-seed rng for reproducible schedules.
func NewSession(workers []*Worker, maxPerShift int, rng *rand.Rand) *Session {
	if maxPerShift < 1 {
		maxPerShift = DefaultMaxPerShift
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		workers:     workers,
		schedule:    NewSchedule(),
		maxPerShift: maxPerShift,
		rng:         rng,
	}
}

// Schedule exposes the session's grid (used by passes' tests and the outcome)
func (s *Session) Schedule() *Schedule {
	return s.schedule
}

// Run executes the four passes in order and builds the outcome report
func (s *Session) Run() *Outcome {
	s.assignByPreference()
	shortages := s.ensureMinimumStaffing()
	residual := s.resolveShortages(shortages)
	s.fillRemaining()

	if residual == nil {
		residual = []Shortage{}
	}
	return &Outcome{
		Schedule:  s.schedule,
		Workers:   s.workers,
		Shortages: residual,
		Success:   len(residual) == 0,
	}
}

// CanAssign reports whether the worker may take the given day: not already
// assigned that day and under the weekly cap. Every pass consults this
// predicate rather than re-deriving eligibility.
func (s *Session) CanAssign(w *Worker, day int) bool {
	if _, taken := w.AssignedShifts[day]; taken {
		return false
	}
	return w.DaysAssigned < MaxDaysPerWeek
}

// assign commits a worker to a cell. Callers must have verified eligibility
// and capacity first; there is no undo.
func (s *Session) assign(w *Worker, day int, shift Shift) {
	s.schedule.Cells[day][shift] = append(s.schedule.Cells[day][shift], w.Name)
	w.AssignedShifts[day] = shift
	w.DaysAssigned++
}

// hasCapacity reports whether the cell can take one more worker
func (s *Session) hasCapacity(day int, shift Shift) bool {
	return s.schedule.Occupancy(day, shift) < s.maxPerShift
}

// eligibleWorkers gathers workers that may still take the given day,
// preserving roster order
func (s *Session) eligibleWorkers(day int) []*Worker {
	eligible := make([]*Worker, 0, len(s.workers))
	for _, w := range s.workers {
		if s.CanAssign(w, day) {
			eligible = append(eligible, w)
		}
	}
	return eligible
}
