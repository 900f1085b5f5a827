/*
Package roster provides the core shift rostering engine.

PURPOSE:
  This package contains the types and algorithms for assigning named retail
  employees to time-bounded shift slots across a rostering period, subject to
  employee time preferences, per-slot skill requirements, and labor rules.

KEY CONCEPTS IN THIS FILE (types.go):
  - Employee: A roster member with a skill set and a preference rate
  - PreferenceIndex: Declared desired windows per employee per date
  - Assignment: A committed (employee, date, slot, window) placement
  - Schedule: The append-only result of a generation run
  - Warning: A soft labor-rule finding that never blocks assignment

DESIGN PRINCIPLES:
  1. Immutability: Employees and preferences are loaded once per run;
     the Schedule is append-only during generation, read-only after
  2. Determinism: The only randomness is the injected acceptance gate;
     a fixed seed reproduces a run exactly
  3. Type Safety: Typed IDs, skills, and clock values instead of
     string-keyed records
  4. Pure core: The engine never performs file, database, or network I/O

USAGE:
  engine, err := roster.NewEngine(roster.DefaultConfig(), cal, roster.NewSeededRand(1))
  result, err := engine.Generate(ctx, employees, prefs, period)
  for _, day := range result.Schedule.Dates() { ... }

SEE ALSO:
  - config.go: Slot tables, scoring weights, labor limits
  - engine.go: The greedy assignment loop
  - rules.go:  Labor-rule validation
  - scoring.go: Candidate scoring and selection
*/
package roster

import "sort"

// =============================================================================
// SKILLS
// =============================================================================

// Skill is a store competency an employee can hold.
type Skill string

const (
	SkillCashier       Skill = "cashier"
	SkillRefrigeration Skill = "refrigeration"
	SkillStocking      Skill = "stocking"
)

// KnownSkills lists every skill the engine scores, in canonical order.
var KnownSkills = []Skill{SkillCashier, SkillRefrigeration, SkillStocking}

// SkillSet is an employee's set of skills, in declaration order.
type SkillSet []Skill

// Has reports whether the set contains the skill.
func (s SkillSet) Has(skill Skill) bool {
	for _, have := range s {
		if have == skill {
			return true
		}
	}
	return false
}

// =============================================================================
// EMPLOYEE
// =============================================================================

// EmployeeID identifies an employee across the roster, preferences, and store.
type EmployeeID string

// Employee is one roster member. PreferenceRate is the probability (0-100)
// that an assignable preferred slot is actually accepted; it feeds the
// engine's optional randomized acceptance gate.
type Employee struct {
	ID             EmployeeID
	Name           string
	Skills         SkillSet
	PreferenceRate int
}

// =============================================================================
// PREFERENCES
// =============================================================================

// PreferenceIndex maps employee -> date -> declared desired windows.
// Windows are kept in declaration order; an employee may declare zero or
// more windows per date, and the windows are not validated on insert.
type PreferenceIndex map[EmployeeID]map[Date][]Window

// Add records a desired window for an employee on a date.
func (idx PreferenceIndex) Add(id EmployeeID, d Date, w Window) {
	byDate, ok := idx[id]
	if !ok {
		byDate = make(map[Date][]Window)
		idx[id] = byDate
	}
	byDate[d] = append(byDate[d], w)
}

// Windows returns the declared windows for an employee on a date.
func (idx PreferenceIndex) Windows(id EmployeeID, d Date) []Window {
	return idx[id][d]
}

// AnyOn reports whether any employee declared a preference for the date.
func (idx PreferenceIndex) AnyOn(d Date) bool {
	for _, byDate := range idx {
		if len(byDate[d]) > 0 {
			return true
		}
	}
	return false
}

// Validate checks the index against the roster. It returns a data
// inconsistency error for a window with start >= end or for a preference
// referencing an unknown employee id. The engine requires a validated index
// and aborts the run, rather than silently skipping records, if this
// precondition is violated.
func (idx PreferenceIndex) Validate(employees []*Employee) error {
	known := make(map[EmployeeID]bool, len(employees))
	for _, e := range employees {
		known[e.ID] = true
	}
	for id, byDate := range idx {
		if !known[id] {
			return &DataError{EmployeeID: id, Reason: "preference references unknown employee", Err: ErrUnknownEmployee}
		}
		for d, windows := range byDate {
			for _, w := range windows {
				if !w.Valid() {
					return &DataError{
						EmployeeID: id,
						Reason:     "preference window " + w.String() + " on " + d.String() + " has start >= end",
						Err:        ErrInvalidWindow,
					}
				}
			}
		}
	}
	return nil
}

// =============================================================================
// ASSIGNMENT & SCHEDULE
// =============================================================================

// SlotName names a configured shift slot (e.g., "morning").
type SlotName string

// Assignment places an employee into a slot on a date with an effective
// window. The effective window is the intersection of store hours, the slot's
// nominal window, and the employee's matching preference window; it is never
// wider than any of the three.
type Assignment struct {
	EmployeeID   EmployeeID
	Date         Date
	Slot         SlotName
	Window       Window
	BreakMinutes int
}

// Schedule is the result of a generation run: date -> slot -> assignments in
// commit order. It is append-only during generation and read-only after.
type Schedule struct {
	days map[Date]map[SlotName][]Assignment
}

// NewSchedule returns an empty schedule.
func NewSchedule() *Schedule {
	return &Schedule{days: make(map[Date]map[SlotName][]Assignment)}
}

// Append commits an assignment. Generation is the only writer.
func (s *Schedule) Append(a Assignment) {
	slots, ok := s.days[a.Date]
	if !ok {
		slots = make(map[SlotName][]Assignment)
		s.days[a.Date] = slots
	}
	slots[a.Slot] = append(slots[a.Slot], a)
}

// Slot returns the assignments committed for a (date, slot), in order.
func (s *Schedule) Slot(d Date, slot SlotName) []Assignment {
	return s.days[d][slot]
}

// On returns every assignment on a date across all slots.
func (s *Schedule) On(d Date) []Assignment {
	var out []Assignment
	for _, assignments := range s.days[d] {
		out = append(out, assignments...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Window.Start != out[j].Window.Start {
			return out[i].Window.Start < out[j].Window.Start
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out
}

// For returns an employee's assignments on a date.
func (s *Schedule) For(id EmployeeID, d Date) []Assignment {
	var out []Assignment
	for _, a := range s.On(d) {
		if a.EmployeeID == id {
			out = append(out, a)
		}
	}
	return out
}

// Holds reports whether the employee is already assigned to the (date, slot).
// An employee appears at most once per (date, slot).
func (s *Schedule) Holds(id EmployeeID, d Date, slot SlotName) bool {
	for _, a := range s.days[d][slot] {
		if a.EmployeeID == id {
			return true
		}
	}
	return false
}

// Dates returns every scheduled date in chronological order.
func (s *Schedule) Dates() []Date {
	out := make([]Date, 0, len(s.days))
	for d := range s.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// =============================================================================
// WARNINGS - Soft labor-rule findings
// =============================================================================

// WarningCode classifies a soft labor-rule finding.
type WarningCode string

const (
	WarnRestShortfall      WarningCode = "rest_shortfall"
	WarnDailyHours         WarningCode = "daily_hours"
	WarnWeeklyHours        WarningCode = "weekly_hours"
	WarnConsecutiveDays    WarningCode = "consecutive_days"
	WarnPreferenceMismatch WarningCode = "preference_mismatch"
)

// Warning records a soft violation observed while committing an assignment.
// Warnings never abort assignment; only hard cap violations suppress one.
type Warning struct {
	Date       Date
	Slot       SlotName
	EmployeeID EmployeeID
	Code       WarningCode
	Message    string
}
