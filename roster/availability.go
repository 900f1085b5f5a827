package roster

// =============================================================================
// AVAILABILITY RESOLVER
// =============================================================================

// IsAvailable reports whether the employee may occupy the candidate window on
// the date: true iff at least one of their preference windows on that date
// admits the candidate. An employee with no preference on the date is
// unavailable for any window that day; absence of a stated preference
// excludes participation entirely.
func IsAvailable(prefs PreferenceIndex, id EmployeeID, d Date, candidate Window) bool {
	for _, pref := range prefs.Windows(id, d) {
		if pref.Admits(candidate) {
			return true
		}
	}
	return false
}

// Available returns the employees eligible for the candidate window on the
// date, preserving roster order. Roster order is the tie-break for selection,
// so the ordering here is part of the engine's determinism contract.
func Available(employees []*Employee, prefs PreferenceIndex, d Date, candidate Window) []*Employee {
	var out []*Employee
	for _, e := range employees {
		if IsAvailable(prefs, e.ID, d, candidate) {
			out = append(out, e)
		}
	}
	return out
}

// MatchingPreference returns the first preference window on the date that
// admits the candidate, in declaration order.
func MatchingPreference(prefs PreferenceIndex, id EmployeeID, d Date, candidate Window) (Window, bool) {
	for _, pref := range prefs.Windows(id, d) {
		if pref.Admits(candidate) {
			return pref, true
		}
	}
	return Window{}, false
}
