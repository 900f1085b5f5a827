/*
engine.go - The constraint-driven greedy assignment engine

PURPOSE:
  Fills each (date, slot) request up to its target headcount by repeatedly
  selecting the best-scoring available employee, clamping their shift to the
  narrowest legal window, and committing the assignment unless a hard labor
  cap or the randomized acceptance gate rejects it.

DETERMINISM:
  Dates are processed strictly in chronological order; later dates depend on
  assignments already committed. The acceptance gate is the sole source of
  non-determinism and draws from an explicitly injected Rand, so identical
  inputs plus an identical seed reproduce a run exactly. A nil Rand disables
  the gate entirely.

CANCELLATION:
  The context is checked between dates only. A run that completes produces
  the same output whether or not cancellation checks happen.

SEE ALSO:
  - availability.go: Candidate pool construction
  - scoring.go:      Candidate ranking
  - rules.go:        Hard caps and soft findings
  - coverage.go:     Shortage and skill-shortage reports
*/
package roster

import (
	"context"
	"fmt"
	"math/rand"
)

// =============================================================================
// RANDOM SOURCE - Injected port, never ambient
// =============================================================================

// Rand is the engine's pseudo-random port. Only the acceptance gate draws
// from it.
type Rand interface {
	Float64() float64
}

// NewSeededRand returns a Rand with a fixed seed, making runs reproducible.
func NewSeededRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// =============================================================================
// ENGINE
// =============================================================================

// Engine generates schedules. Construct with NewEngine; the zero value is
// not usable.
type Engine struct {
	cfg    Config
	cal    HolidayCalendar
	rnd    Rand
	rules  Rules
	scorer Scorer
}

// NewEngine validates the configuration and builds an engine. cal may be nil
// (no recognized holidays); rnd may be nil (acceptance gate disabled).
func NewEngine(cfg Config, cal HolidayCalendar, rnd Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rules := Rules{Limits: cfg.Limits}
	return &Engine{
		cfg:    cfg,
		cal:    cal,
		rnd:    rnd,
		rules:  rules,
		scorer: Scorer{Weights: cfg.Weights, Rules: rules},
	}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Result is the complete outcome of a generation run. A completed run always
// carries a full schedule plus both reports and the warning list; there is
// no partial-failure mode mid-range.
type Result struct {
	Period         DateRange
	Schedule       *Schedule
	Shortages      ShortageReport
	SkillShortages SkillShortageReport
	Warnings       []Warning
}

// Generate assigns employees to every configured slot across the period.
// Input must already be validated by the loader; Generate re-checks the
// engine's preconditions and aborts the run if they are violated rather than
// silently skipping records.
func (e *Engine) Generate(ctx context.Context, employees []*Employee, prefs PreferenceIndex, period DateRange) (*Result, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPeriod, period)
	}
	if err := ValidateEmployees(employees); err != nil {
		return nil, err
	}
	if err := prefs.Validate(employees); err != nil {
		return nil, err
	}

	result := &Result{
		Period:         period,
		Schedule:       NewSchedule(),
		Shortages:      NewShortageReport(),
		SkillShortages: NewSkillShortageReport(),
	}

	for _, date := range period.Days() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dayType := DayTypeOf(date, e.cal)
		fallback := !prefs.AnyOn(date)

		for i, slot := range e.cfg.Slots {
			window := slot.Window
			if fallback && i < len(e.cfg.FallbackWindows) {
				// Nobody stated a preference for this date: roster the day
				// against the default slot windows so it still shows up in
				// the schedule and reports.
				window = e.cfg.FallbackWindows[i]
			}
			e.fillSlot(result, employees, prefs, date, dayType, slot, window)
		}
	}

	return result, nil
}

// fillSlot runs the greedy loop for one (date, slot) request.
func (e *Engine) fillSlot(result *Result, employees []*Employee, prefs PreferenceIndex, date Date, dayType DayType, slot SlotConfig, window Window) {
	levels := slot.Levels(dayType)
	target := levels.Min
	if dayType == DayBusy {
		target += e.cfg.BusyHeadcountBonus
	}

	available := Available(employees, prefs, date, window)
	assigned := len(result.Schedule.Slot(date, slot.Name))

	for len(available) > 0 && assigned < levels.StrictMax {
		best := e.scorer.SelectBest(result.Schedule, prefs, available, date, window, assigned, levels)
		if best == nil {
			break
		}

		effective, ok := e.effectiveWindow(prefs, best.ID, date, window)
		if !ok || effective.Minutes() < e.cfg.MinShiftMinutes || result.Schedule.Holds(best.ID, date, slot.Name) {
			available = drop(available, best.ID)
			continue
		}

		// Hard caps suppress the assignment; softer findings below only warn.
		if !e.rules.CanAssign(result.Schedule, best.ID, date, effective) {
			available = drop(available, best.ID)
			continue
		}

		if e.rnd != nil && e.rnd.Float64()*100 >= float64(best.PreferenceRate) {
			available = drop(available, best.ID)
			continue
		}

		for _, warning := range ExtensionWarnings(e.rules, result.Schedule, prefs, best.ID, date, effective) {
			warning.Slot = slot.Name
			result.Warnings = append(result.Warnings, warning)
		}

		result.Schedule.Append(Assignment{
			EmployeeID:   best.ID,
			Date:         date,
			Slot:         slot.Name,
			Window:       effective,
			BreakMinutes: e.cfg.Breaks.Minutes(effective.Minutes()),
		})
		assigned++
		available = drop(available, best.ID)
	}

	MeasureSlot(result, date, slot, target, result.Schedule.Slot(date, slot.Name), employees)
}

// effectiveWindow computes the narrowest legal window for a candidate:
// store hours intersected with the slot window intersected with the matching
// preference window.
func (e *Engine) effectiveWindow(prefs PreferenceIndex, id EmployeeID, date Date, window Window) (Window, bool) {
	clamped, ok := e.cfg.StoreHours.Intersect(window)
	if !ok {
		return Window{}, false
	}
	pref, ok := MatchingPreference(prefs, id, date, window)
	if !ok {
		return Window{}, false
	}
	return clamped.Intersect(pref)
}

func drop(employees []*Employee, id EmployeeID) []*Employee {
	out := employees[:0]
	for _, e := range employees {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}
