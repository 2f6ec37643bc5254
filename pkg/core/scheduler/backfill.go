package scheduler

import "slices"

// ensureMinimumStaffing is the second pass. It walks every cell in canonical
// order and tops up under-floor cells from the least-loaded eligible workers,
// spreading load by sorting on DaysAssigned (stable, so ties keep their
// pre-sort relative order). Returns a shortage record for every cell that
// could not reach MinPerShift.
func (s *Session) ensureMinimumStaffing() []Shortage {
	var shortages []Shortage

	for day := 0; day < DaysPerWeek; day++ {
		for _, shift := range ShiftOrder {
			need := MinPerShift - s.schedule.Occupancy(day, shift)
			if need <= 0 {
				continue
			}

			eligible := s.eligibleWorkers(day)
			slices.SortStableFunc(eligible, func(a, b *Worker) int {
				return a.DaysAssigned - b.DaysAssigned
			})

			// Select before committing so the batch never overfills the cell
			chosen := make([]*Worker, 0, need)
			for _, w := range eligible {
				if len(chosen) >= need {
					break
				}
				if s.schedule.Occupancy(day, shift)+len(chosen) < s.maxPerShift {
					chosen = append(chosen, w)
				}
			}
			for _, w := range chosen {
				s.assign(w, day, shift)
			}

			if missing := need - len(chosen); missing > 0 {
				shortages = append(shortages, Shortage{Day: day, Shift: shift, Missing: missing})
			}
		}
	}

	return shortages
}

// resolveShortages is the third pass: a second attempt at clearing recorded
// shortages from the same day's remaining eligible pool. The pool is
// re-gathered per shortage because assignments made for other shortages on
// the same day may have shrunk it. Cross-day moves are never attempted; a
// shortage on day D can only be fixed by workers eligible on day D. Residual
// unmet need is returned as data, never an error.
func (s *Session) resolveShortages(shortages []Shortage) []Shortage {
	if len(shortages) == 0 {
		return nil
	}

	var residual []Shortage
	for _, shortage := range shortages {
		eligible := s.eligibleWorkers(shortage.Day)
		slices.SortStableFunc(eligible, func(a, b *Worker) int {
			return a.DaysAssigned - b.DaysAssigned
		})

		placed := 0
		for _, w := range eligible {
			if placed >= shortage.Missing {
				break
			}
			if !s.hasCapacity(shortage.Day, shortage.Shift) {
				break
			}
			s.assign(w, shortage.Day, shortage.Shift)
			placed++
		}

		if still := shortage.Missing - placed; still > 0 {
			residual = append(residual, Shortage{Day: shortage.Day, Shift: shortage.Shift, Missing: still})
		}
	}

	return residual
}
