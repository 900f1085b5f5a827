/*
rules.go - Labor-rule validation over the schedule built so far

PURPOSE:
  Pure functions over the in-progress Schedule. The weekly-hour,
  consecutive-day, and rest checks for a later date depend on assignments
  already committed for earlier dates, which is why the engine processes
  dates strictly in chronological order.

HARD VS SOFT:
  CanAssign enforces the hard caps (daily, weekly, consecutive days); a
  violation suppresses the assignment. Minimum rest is soft: a shortfall is
  recorded as a warning by the engine but never blocks.

SEE ALSO:
  - engine.go:  Calls CanAssign before committing
  - scoring.go: Reuses WeeklyMinutes and ConsecutiveDays for score terms
*/
package roster

import "fmt"

// Rules evaluates labor thresholds against a schedule.
type Rules struct {
	Limits LaborLimits
}

// DailyMinutes sums the employee's assigned minutes on the date. Break
// minutes are not deducted; caps apply to the assigned window.
func (r Rules) DailyMinutes(s *Schedule, id EmployeeID, d Date) int {
	total := 0
	for _, a := range s.For(id, d) {
		total += a.Window.Minutes()
	}
	return total
}

// WeeklyMinutes sums the employee's assigned minutes in the Monday-Sunday
// week containing the date.
func (r Rules) WeeklyMinutes(s *Schedule, id EmployeeID, d Date) int {
	total := 0
	day := d.StartOfWeek()
	for i := 0; i < 7; i++ {
		total += r.DailyMinutes(s, id, day)
		day = day.AddDays(1)
	}
	return total
}

// ConsecutiveDays counts the immediately preceding unbroken calendar days
// with at least one assignment for the employee. The date itself is not
// counted.
func (r Rules) ConsecutiveDays(s *Schedule, id EmployeeID, d Date) int {
	count := 0
	for day := d.AddDays(-1); len(s.For(id, day)) > 0; day = day.AddDays(-1) {
		count++
	}
	return count
}

// MinimumRestOK reports whether the gap between the end of the employee's
// latest assignment on the prior calendar day and the proposed start meets
// the minimum rest. Only the immediately preceding day is checked.
func (r Rules) MinimumRestOK(s *Schedule, id EmployeeID, d Date, start Clock) bool {
	prev := s.For(id, d.AddDays(-1))
	if len(prev) == 0 {
		return true
	}
	latest := prev[0].Window.End
	for _, a := range prev[1:] {
		if a.Window.End > latest {
			latest = a.Window.End
		}
	}
	// Rest spans midnight: minutes left in the prior day plus the start
	// offset into this one.
	rest := (24*60 - int(latest)) + int(start)
	return rest >= r.Limits.MinimumRestMinutes
}

// ExtensionWarnings evaluates a proposed window against every soft
// threshold and returns the findings. The engine records these for each
// committed assignment; callers can also probe a hypothetical extension
// (e.g., holding an employee past their preference) without committing it.
// The Slot field of the returned warnings is left for the caller to fill.
func ExtensionWarnings(r Rules, s *Schedule, prefs PreferenceIndex, id EmployeeID, d Date, w Window) []Warning {
	var out []Warning
	warn := func(code WarningCode, msg string) {
		out = append(out, Warning{Date: d, EmployeeID: id, Code: code, Message: msg})
	}

	add := w.Minutes()
	if r.Limits.WarnDailyMinutes > 0 && r.DailyMinutes(s, id, d)+add > r.Limits.WarnDailyMinutes {
		warn(WarnDailyHours, fmt.Sprintf("daily hours would exceed %dh", r.Limits.WarnDailyMinutes/60))
	}
	if r.WeeklyMinutes(s, id, d)+add > r.Limits.WeeklyCapMinutes {
		warn(WarnWeeklyHours, fmt.Sprintf("weekly hours would exceed %dh", r.Limits.WeeklyCapMinutes/60))
	}
	if r.Limits.WarnConsecutiveDays > 0 && r.ConsecutiveDays(s, id, d) >= r.Limits.WarnConsecutiveDays {
		warn(WarnConsecutiveDays, fmt.Sprintf("worked %d consecutive days", r.ConsecutiveDays(s, id, d)))
	}
	if !r.MinimumRestOK(s, id, d, w.Start) {
		warn(WarnRestShortfall, fmt.Sprintf("less than %dh rest since the previous day's shift", r.Limits.MinimumRestMinutes/60))
	}
	if !IsAvailable(prefs, id, d, w) {
		warn(WarnPreferenceMismatch, "window falls outside the employee's stated preferences")
	}
	return out
}

// CanAssign reports whether committing the window would keep the employee
// within every hard cap. Rest and preference-match findings are soft and do
// not factor in here.
func (r Rules) CanAssign(s *Schedule, id EmployeeID, d Date, w Window) bool {
	add := w.Minutes()
	if r.DailyMinutes(s, id, d)+add > r.Limits.DailyCapMinutes {
		return false
	}
	if r.WeeklyMinutes(s, id, d)+add > r.Limits.WeeklyCapMinutes {
		return false
	}
	if r.ConsecutiveDays(s, id, d) >= r.Limits.MaxConsecutiveDays {
		return false
	}
	return true
}
