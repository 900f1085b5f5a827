/*
Package factory provides JSON to Go engine-configuration conversion.

PURPOSE:
  Converts JSON configuration documents into roster.Config values. This
  enables staffing tables, scoring weights, break tables, and labor
  thresholds to change without code changes - store managers can keep the
  configuration in version control or an admin UI and feed it in at run time.

JSON SCHEMA:
  {
    "store_hours": "09:00-20:00",
    "min_shift_minutes": 120,
    "busy_headcount_bonus": 1,
    "fallback_windows": ["09:00-14:00", "14:00-17:00", "17:00-20:00"],
    "slots": [
      {
        "name": "evening",
        "window": "17:00-20:00",
        "required_skill": "refrigeration",
        "ordinary": {"min": 3, "max": 6, "strict_min": 3, "strict_max": 10},
        "busy":     {"min": 3, "max": 6, "strict_min": 3, "strict_max": 10}
      }
    ],
    "weights": {
      "preference_match": 100,
      "skill": {"refrigeration": 30, "cashier": 20, "stocking": 20},
      "weekly_fit": 50,
      "weekly_over_per_hour": 10,
      "consecutive_penalty_from": 5,
      "consecutive_per_day": 20,
      "below_min": 30,
      "above_max": 30
    },
    "breaks": [
      {"from_minutes": 300, "break_minutes": 15},
      {"from_minutes": 360, "break_minutes": 30},
      {"from_minutes": 480, "break_minutes": 45}
    ],
    "limits": {
      "daily_cap_minutes": 480,
      "weekly_cap_minutes": 2400,
      "max_consecutive_days": 5,
      "minimum_rest_minutes": 660,
      "warn_daily_minutes": 600,
      "warn_consecutive_days": 6
    }
  }

KEY FEATURES:
  - Validates the JSON structure and every window string
  - Omitted sections fall back to the canonical defaults
  - Round-trips: MarshalConfig(ParseConfig(doc)) preserves meaning

USAGE:
  cfg, err := factory.ParseConfig(jsonDoc)
  engine, err := roster.NewEngine(cfg, cal, rnd)

SEE ALSO:
  - roster/config.go: The Go-side configuration and its validation
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/warp/roster-engine/roster"
)

// ConfigJSON is the wire representation of roster.Config.
type ConfigJSON struct {
	StoreHours         string          `json:"store_hours"`
	Slots              []SlotJSON      `json:"slots"`
	Weights            *WeightsJSON    `json:"weights,omitempty"`
	Breaks             []BreakTierJSON `json:"breaks,omitempty"`
	Limits             *LimitsJSON     `json:"limits,omitempty"`
	MinShiftMinutes    int             `json:"min_shift_minutes"`
	FallbackWindows    []string        `json:"fallback_windows,omitempty"`
	BusyHeadcountBonus int             `json:"busy_headcount_bonus"`
}

// SlotJSON is one slot row.
type SlotJSON struct {
	Name          string        `json:"name"`
	Window        string        `json:"window"`
	RequiredSkill string        `json:"required_skill,omitempty"`
	Ordinary      HeadcountJSON `json:"ordinary"`
	Busy          HeadcountJSON `json:"busy"`
}

// HeadcountJSON mirrors roster.Headcount.
type HeadcountJSON struct {
	Min       int `json:"min"`
	Max       int `json:"max"`
	StrictMin int `json:"strict_min"`
	StrictMax int `json:"strict_max"`
}

// WeightsJSON mirrors roster.ScoreWeights.
type WeightsJSON struct {
	PreferenceMatch        int            `json:"preference_match"`
	Skill                  map[string]int `json:"skill"`
	WeeklyFit              int            `json:"weekly_fit"`
	WeeklyOverPerHour      int            `json:"weekly_over_per_hour"`
	ConsecutivePenaltyFrom int            `json:"consecutive_penalty_from"`
	ConsecutivePerDay      int            `json:"consecutive_per_day"`
	BelowMin               int            `json:"below_min"`
	AboveMax               int            `json:"above_max"`
}

// BreakTierJSON mirrors roster.BreakTier.
type BreakTierJSON struct {
	FromMinutes  int `json:"from_minutes"`
	BreakMinutes int `json:"break_minutes"`
}

// LimitsJSON mirrors roster.LaborLimits.
type LimitsJSON struct {
	DailyCapMinutes     int `json:"daily_cap_minutes"`
	WeeklyCapMinutes    int `json:"weekly_cap_minutes"`
	MaxConsecutiveDays  int `json:"max_consecutive_days"`
	MinimumRestMinutes  int `json:"minimum_rest_minutes"`
	WarnDailyMinutes    int `json:"warn_daily_minutes"`
	WarnConsecutiveDays int `json:"warn_consecutive_days"`
}

// ParseConfig converts a JSON document into a validated roster.Config.
// Omitted weights, breaks, and limits fall back to the canonical defaults.
func ParseConfig(doc []byte) (roster.Config, error) {
	var cj ConfigJSON
	if err := json.Unmarshal(doc, &cj); err != nil {
		return roster.Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cj.ToConfig()
}

// ToConfig converts the wire form into a validated roster.Config.
func (cj ConfigJSON) ToConfig() (roster.Config, error) {
	cfg := roster.DefaultConfig()

	if cj.StoreHours != "" {
		w, err := roster.ParseWindow(cj.StoreHours)
		if err != nil {
			return roster.Config{}, fmt.Errorf("store_hours: %w", err)
		}
		cfg.StoreHours = w
	}

	if len(cj.Slots) > 0 {
		cfg.Slots = nil
		for _, sj := range cj.Slots {
			w, err := roster.ParseWindow(sj.Window)
			if err != nil {
				return roster.Config{}, fmt.Errorf("slot %q: %w", sj.Name, err)
			}
			cfg.Slots = append(cfg.Slots, roster.SlotConfig{
				Name:          roster.SlotName(sj.Name),
				Window:        w,
				RequiredSkill: roster.Skill(sj.RequiredSkill),
				Ordinary:      sj.Ordinary.toHeadcount(),
				Busy:          sj.Busy.toHeadcount(),
			})
		}
	}

	if cj.Weights != nil {
		skill := make(map[roster.Skill]int, len(cj.Weights.Skill))
		for name, weight := range cj.Weights.Skill {
			skill[roster.Skill(name)] = weight
		}
		cfg.Weights = roster.ScoreWeights{
			PreferenceMatch:        cj.Weights.PreferenceMatch,
			Skill:                  skill,
			WeeklyFit:              cj.Weights.WeeklyFit,
			WeeklyOverPerHour:      cj.Weights.WeeklyOverPerHour,
			ConsecutivePenaltyFrom: cj.Weights.ConsecutivePenaltyFrom,
			ConsecutivePerDay:      cj.Weights.ConsecutivePerDay,
			BelowMin:               cj.Weights.BelowMin,
			AboveMax:               cj.Weights.AboveMax,
		}
	}

	if len(cj.Breaks) > 0 {
		cfg.Breaks = nil
		for _, tier := range cj.Breaks {
			cfg.Breaks = append(cfg.Breaks, roster.BreakTier{
				FromMinutes:  tier.FromMinutes,
				BreakMinutes: tier.BreakMinutes,
			})
		}
	}

	if cj.Limits != nil {
		cfg.Limits = roster.LaborLimits{
			DailyCapMinutes:     cj.Limits.DailyCapMinutes,
			WeeklyCapMinutes:    cj.Limits.WeeklyCapMinutes,
			MaxConsecutiveDays:  cj.Limits.MaxConsecutiveDays,
			MinimumRestMinutes:  cj.Limits.MinimumRestMinutes,
			WarnDailyMinutes:    cj.Limits.WarnDailyMinutes,
			WarnConsecutiveDays: cj.Limits.WarnConsecutiveDays,
		}
	}

	if cj.MinShiftMinutes > 0 {
		cfg.MinShiftMinutes = cj.MinShiftMinutes
	}
	if len(cj.FallbackWindows) > 0 {
		cfg.FallbackWindows = nil
		for _, s := range cj.FallbackWindows {
			w, err := roster.ParseWindow(s)
			if err != nil {
				return roster.Config{}, fmt.Errorf("fallback_windows: %w", err)
			}
			cfg.FallbackWindows = append(cfg.FallbackWindows, w)
		}
	}
	if cj.BusyHeadcountBonus > 0 {
		cfg.BusyHeadcountBonus = cj.BusyHeadcountBonus
	}

	if err := cfg.Validate(); err != nil {
		return roster.Config{}, err
	}
	return cfg, nil
}

// MarshalConfig renders a roster.Config as its wire form.
func MarshalConfig(cfg roster.Config) ([]byte, error) {
	cj := ConfigJSON{
		StoreHours:         cfg.StoreHours.String(),
		MinShiftMinutes:    cfg.MinShiftMinutes,
		BusyHeadcountBonus: cfg.BusyHeadcountBonus,
	}
	for _, slot := range cfg.Slots {
		cj.Slots = append(cj.Slots, SlotJSON{
			Name:          string(slot.Name),
			Window:        slot.Window.String(),
			RequiredSkill: string(slot.RequiredSkill),
			Ordinary:      headcountJSON(slot.Ordinary),
			Busy:          headcountJSON(slot.Busy),
		})
	}
	skill := make(map[string]int, len(cfg.Weights.Skill))
	for name, weight := range cfg.Weights.Skill {
		skill[string(name)] = weight
	}
	cj.Weights = &WeightsJSON{
		PreferenceMatch:        cfg.Weights.PreferenceMatch,
		Skill:                  skill,
		WeeklyFit:              cfg.Weights.WeeklyFit,
		WeeklyOverPerHour:      cfg.Weights.WeeklyOverPerHour,
		ConsecutivePenaltyFrom: cfg.Weights.ConsecutivePenaltyFrom,
		ConsecutivePerDay:      cfg.Weights.ConsecutivePerDay,
		BelowMin:               cfg.Weights.BelowMin,
		AboveMax:               cfg.Weights.AboveMax,
	}
	for _, tier := range cfg.Breaks {
		cj.Breaks = append(cj.Breaks, BreakTierJSON{FromMinutes: tier.FromMinutes, BreakMinutes: tier.BreakMinutes})
	}
	for _, w := range cfg.FallbackWindows {
		cj.FallbackWindows = append(cj.FallbackWindows, w.String())
	}
	cj.Limits = &LimitsJSON{
		DailyCapMinutes:     cfg.Limits.DailyCapMinutes,
		WeeklyCapMinutes:    cfg.Limits.WeeklyCapMinutes,
		MaxConsecutiveDays:  cfg.Limits.MaxConsecutiveDays,
		MinimumRestMinutes:  cfg.Limits.MinimumRestMinutes,
		WarnDailyMinutes:    cfg.Limits.WarnDailyMinutes,
		WarnConsecutiveDays: cfg.Limits.WarnConsecutiveDays,
	}
	return json.MarshalIndent(cj, "", "  ")
}

func (h HeadcountJSON) toHeadcount() roster.Headcount {
	return roster.Headcount{Min: h.Min, Max: h.Max, StrictMin: h.StrictMin, StrictMax: h.StrictMax}
}

func headcountJSON(h roster.Headcount) HeadcountJSON {
	return HeadcountJSON{Min: h.Min, Max: h.Max, StrictMin: h.StrictMin, StrictMax: h.StrictMax}
}
