/*
config.go - Externally injectable engine configuration

PURPOSE:
  Every constant the engine depends on lives here: the per-slot headcount
  table (by day type), required-skill table, scoring weights, break-duration
  table, labor thresholds, minimum shift duration, fallback slot windows,
  and store open/close times.

  The source system carried several divergent copies of these constants
  across reimplementations. This package collapses them into one canonical
  default per constant (DefaultConfig); every variant remains representable
  by constructing a different Config.

CANONICAL DEFAULTS:
  Store hours        09:00-20:00
  Slots              morning 09-14, afternoon 14-17, evening 17-20
  Break table        <5h: 0, [5,6h): 30, [6,8h): 45, >=8h: 60
                     (the alternate 15/30/45 table stays representable
                     through the Breaks field)
  Labor caps         daily 8h (warn at 10h), weekly 40h,
                     5 consecutive days (warn at 6), min rest 11h
  Min shift          2h
  Required skill     refrigeration in "evening"
  Busy-day bonus     +1 target headcount on weekends/holidays

SEE ALSO:
  - factory/: JSON representation of this configuration
  - scoring.go: Consumes Weights and Breaks
  - rules.go:   Consumes Limits
*/
package roster

import "fmt"

// =============================================================================
// HEADCOUNT TABLE
// =============================================================================

// Headcount holds a slot's staffing levels. Min and Max are planning targets
// that shape scoring; StrictMin and StrictMax are hard bounds, with StrictMax
// capping how many employees the engine will ever commit to the slot.
type Headcount struct {
	Min       int
	Max       int
	StrictMin int
	StrictMax int
}

// SlotConfig describes one named shift slot.
type SlotConfig struct {
	Name   SlotName
	Window Window

	// Staffing levels by day type.
	Ordinary Headcount
	Busy     Headcount

	// RequiredSkill, when non-empty, flags a skill shortage if no assignee
	// in the slot carries it.
	RequiredSkill Skill
}

// Levels returns the staffing levels for a day type.
func (sc SlotConfig) Levels(dt DayType) Headcount {
	if dt == DayBusy {
		return sc.Busy
	}
	return sc.Ordinary
}

// =============================================================================
// SCORING WEIGHTS
// =============================================================================

// ScoreWeights parameterizes candidate scoring. All contributions are
// additive integers; higher scores win.
type ScoreWeights struct {
	// PreferenceMatch is added when the candidate window matches a declared
	// preference window.
	PreferenceMatch int

	// Skill is the per-skill bonus table.
	Skill map[Skill]int

	// WeeklyFit is added when projected weekly minutes stay within the
	// weekly cap; WeeklyOverPerHour is subtracted per whole hour over it.
	WeeklyFit         int
	WeeklyOverPerHour int

	// ConsecutivePenaltyFrom is the streak length at which the consecutive-day
	// penalty starts; ConsecutivePerDay is subtracted per day past the
	// streak baseline (penalty = ConsecutivePerDay * (streak - baseline),
	// baseline = ConsecutivePenaltyFrom - 1).
	ConsecutivePenaltyFrom int
	ConsecutivePerDay      int

	// BelowMin is added while the slot is under its planning minimum;
	// AboveMax is subtracted once it reaches its planning maximum.
	BelowMin int
	AboveMax int
}

// =============================================================================
// BREAK TABLE
// =============================================================================

// BreakTier maps shift durations of at least FromMinutes to a break length.
type BreakTier struct {
	FromMinutes  int
	BreakMinutes int
}

// BreakTable is a deterministic step function from shift duration to break
// minutes. Tiers must be sorted by ascending FromMinutes; the last tier whose
// threshold is met wins.
type BreakTable []BreakTier

// Minutes returns the break length for a shift of the given duration.
func (bt BreakTable) Minutes(shiftMinutes int) int {
	out := 0
	for _, tier := range bt {
		if shiftMinutes >= tier.FromMinutes {
			out = tier.BreakMinutes
		}
	}
	return out
}

// =============================================================================
// LABOR LIMITS
// =============================================================================

// LaborLimits holds the hard caps that suppress assignment and the softer
// thresholds that only produce warnings.
type LaborLimits struct {
	// Hard caps. Exceeding any of these makes CanAssign return false.
	DailyCapMinutes    int
	WeeklyCapMinutes   int
	MaxConsecutiveDays int

	// MinimumRestMinutes is the required gap after the previous day's last
	// shift. A shortfall is a warning, not a hard block.
	MinimumRestMinutes int

	// Soft warning thresholds (the 10h-day / 6th-day reporting variant).
	WarnDailyMinutes    int
	WarnConsecutiveDays int
}

// =============================================================================
// CONFIG
// =============================================================================

// Config is the full externally injectable engine configuration.
type Config struct {
	StoreHours Window
	Slots      []SlotConfig
	Weights    ScoreWeights
	Breaks     BreakTable
	Limits     LaborLimits

	// MinShiftMinutes drops candidates whose effective window would be
	// shorter than this.
	MinShiftMinutes int

	// FallbackWindows are used as the day's slot windows when no employee
	// declared any preference for the date, so the date still appears in the
	// schedule and reports instead of being skipped.
	FallbackWindows []Window

	// BusyHeadcountBonus is added to each slot's target on busy days
	// (weekends and recognized holidays).
	BusyHeadcountBonus int
}

// Slot looks up a slot configuration by name.
func (c Config) Slot(name SlotName) (SlotConfig, error) {
	for _, sc := range c.Slots {
		if sc.Name == name {
			return sc, nil
		}
	}
	return SlotConfig{}, &ConfigError{Field: "slots", Reason: fmt.Sprintf("no slot named %q", name), Err: ErrUnknownSlot}
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if !c.StoreHours.Valid() {
		return &ConfigError{Field: "store_hours", Reason: "open must be before close", Err: ErrInvalidConfig}
	}
	if len(c.Slots) == 0 {
		return &ConfigError{Field: "slots", Reason: "at least one slot is required", Err: ErrInvalidConfig}
	}
	seen := make(map[SlotName]bool, len(c.Slots))
	for _, sc := range c.Slots {
		if sc.Name == "" {
			return &ConfigError{Field: "slots", Reason: "slot name must not be empty", Err: ErrInvalidConfig}
		}
		if seen[sc.Name] {
			return &ConfigError{Field: "slots", Reason: fmt.Sprintf("duplicate slot %q", sc.Name), Err: ErrInvalidConfig}
		}
		seen[sc.Name] = true
		if !sc.Window.Valid() {
			return &ConfigError{Field: "slots", Reason: fmt.Sprintf("slot %q window %s is empty", sc.Name, sc.Window), Err: ErrInvalidConfig}
		}
		for _, hc := range []Headcount{sc.Ordinary, sc.Busy} {
			if hc.Min < 0 || hc.Max < hc.Min || hc.StrictMax < hc.Max {
				return &ConfigError{Field: "slots", Reason: fmt.Sprintf("slot %q headcount must satisfy 0 <= min <= max <= strict max", sc.Name), Err: ErrInvalidConfig}
			}
		}
	}
	for i, tier := range c.Breaks {
		if i > 0 && tier.FromMinutes <= c.Breaks[i-1].FromMinutes {
			return &ConfigError{Field: "breaks", Reason: "tiers must have ascending thresholds", Err: ErrInvalidConfig}
		}
	}
	if c.MinShiftMinutes < 0 {
		return &ConfigError{Field: "min_shift_minutes", Reason: "must not be negative", Err: ErrInvalidConfig}
	}
	if c.Limits.DailyCapMinutes <= 0 || c.Limits.WeeklyCapMinutes <= 0 || c.Limits.MaxConsecutiveDays <= 0 {
		return &ConfigError{Field: "limits", Reason: "caps must be positive", Err: ErrInvalidConfig}
	}
	return nil
}

// ValidateEmployees checks roster-level input the engine assumes valid.
func ValidateEmployees(employees []*Employee) error {
	for _, e := range employees {
		if e.PreferenceRate < 0 || e.PreferenceRate > 100 {
			return &ConfigError{
				Field:  "employees",
				Reason: fmt.Sprintf("employee %s preference rate %d outside [0,100]", e.ID, e.PreferenceRate),
				Err:    ErrInvalidPreferenceRate,
			}
		}
	}
	return nil
}

// DefaultConfig returns the canonical configuration.
func DefaultConfig() Config {
	return Config{
		StoreHours: NewWindow(9, 20),
		Slots: []SlotConfig{
			{
				Name:     "morning",
				Window:   NewWindow(9, 14),
				Ordinary: Headcount{Min: 5, Max: 7, StrictMin: 3, StrictMax: 10},
				Busy:     Headcount{Min: 5, Max: 7, StrictMin: 3, StrictMax: 10},
			},
			{
				Name:     "afternoon",
				Window:   NewWindow(14, 17),
				Ordinary: Headcount{Min: 5, Max: 8, StrictMin: 3, StrictMax: 12},
				Busy:     Headcount{Min: 5, Max: 8, StrictMin: 3, StrictMax: 12},
			},
			{
				Name:          "evening",
				Window:        NewWindow(17, 20),
				Ordinary:      Headcount{Min: 3, Max: 6, StrictMin: 3, StrictMax: 10},
				Busy:          Headcount{Min: 3, Max: 6, StrictMin: 3, StrictMax: 10},
				RequiredSkill: SkillRefrigeration,
			},
		},
		Weights: ScoreWeights{
			PreferenceMatch: 100,
			Skill: map[Skill]int{
				SkillRefrigeration: 30,
				SkillCashier:       20,
				SkillStocking:      20,
			},
			WeeklyFit:              50,
			WeeklyOverPerHour:      10,
			ConsecutivePenaltyFrom: 5,
			ConsecutivePerDay:      20,
			BelowMin:               30,
			AboveMax:               30,
		},
		Breaks: BreakTable{
			{FromMinutes: 5 * 60, BreakMinutes: 30},
			{FromMinutes: 6 * 60, BreakMinutes: 45},
			{FromMinutes: 8 * 60, BreakMinutes: 60},
		},
		Limits: LaborLimits{
			DailyCapMinutes:     8 * 60,
			WeeklyCapMinutes:    40 * 60,
			MaxConsecutiveDays:  5,
			MinimumRestMinutes:  11 * 60,
			WarnDailyMinutes:    10 * 60,
			WarnConsecutiveDays: 6,
		},
		MinShiftMinutes: 2 * 60,
		FallbackWindows: []Window{
			NewWindow(9, 14),
			NewWindow(14, 17),
			NewWindow(17, 20),
		},
		BusyHeadcountBonus: 1,
	}
}
