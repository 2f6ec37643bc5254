package scheduler

import "slices"

// assignByPreference is the first pass. For each day it walks the workers in
// a freshly shuffled order (randomized tie-break for fairness) and places
// each eligible worker on the highest-ranked preferred shift with capacity,
// falling back to any non-preferred shift in canonical order. Workers left
// unassigned here get another chance in later passes.
func (s *Session) assignByPreference() {
	order := make([]*Worker, len(s.workers))
	copy(order, s.workers)

	for day := 0; day < DaysPerWeek; day++ {
		s.rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		for _, w := range order {
			if !s.CanAssign(w, day) {
				continue
			}
			prefs := w.Preferences[day]

			if s.tryAssignPreferred(w, day, prefs) {
				continue
			}
			s.tryAssignFallback(w, day, prefs)
		}
	}
}

// tryAssignPreferred places the worker on the first ranked shift with
// capacity, returning whether an assignment was made
func (s *Session) tryAssignPreferred(w *Worker, day int, prefs []Shift) bool {
	for _, shift := range prefs {
		if s.hasCapacity(day, shift) {
			s.assign(w, day, shift)
			return true
		}
	}
	return false
}

// tryAssignFallback places the worker on the first non-preferred shift with
// capacity, walking shifts in canonical order
func (s *Session) tryAssignFallback(w *Worker, day int, prefs []Shift) bool {
	for _, shift := range ShiftOrder {
		if slices.Contains(prefs, shift) {
			continue
		}
		if s.hasCapacity(day, shift) {
			s.assign(w, day, shift)
			return true
		}
	}
	return false
}
