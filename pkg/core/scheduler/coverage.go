package scheduler

// fillRemaining is the final pass. It gives every worker with spare weekly
// capacity an assignment on days they are still free, preferences first, then
// any shift in canonical order. Day-major and unshuffled: this pass is the
// last opportunity to place anyone, so it favours total coverage over
// fairness of ordering.
func (s *Session) fillRemaining() {
	for day := 0; day < DaysPerWeek; day++ {
		for _, w := range s.workers {
			if !s.CanAssign(w, day) {
				continue
			}
			prefs := w.Preferences[day]

			assigned := false
			for _, shift := range prefs {
				if s.hasCapacity(day, shift) {
					s.assign(w, day, shift)
					assigned = true
					break
				}
			}
			if assigned {
				continue
			}
			for _, shift := range ShiftOrder {
				if s.hasCapacity(day, shift) {
					s.assign(w, day, shift)
					break
				}
			}
		}
	}
}
