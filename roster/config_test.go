package roster_test

import (
	"errors"
	"testing"

	"github.com/warp/roster-engine/roster"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := roster.DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected the canonical configuration to validate, got %v", err)
	}
}

func TestConfigValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*roster.Config)
	}{
		{name: "reversed store hours", mutate: func(c *roster.Config) {
			c.StoreHours = window(20, 9)
		}},
		{name: "no slots", mutate: func(c *roster.Config) {
			c.Slots = nil
		}},
		{name: "unnamed slot", mutate: func(c *roster.Config) {
			c.Slots[0].Name = ""
		}},
		{name: "duplicate slot name", mutate: func(c *roster.Config) {
			c.Slots[1].Name = c.Slots[0].Name
		}},
		{name: "empty slot window", mutate: func(c *roster.Config) {
			c.Slots[0].Window = window(14, 14)
		}},
		{name: "headcount max below min", mutate: func(c *roster.Config) {
			c.Slots[0].Ordinary = roster.Headcount{Min: 5, Max: 3, StrictMin: 1, StrictMax: 6}
		}},
		{name: "strict max below max", mutate: func(c *roster.Config) {
			c.Slots[0].Busy = roster.Headcount{Min: 2, Max: 6, StrictMin: 1, StrictMax: 4}
		}},
		{name: "non-ascending break tiers", mutate: func(c *roster.Config) {
			c.Breaks = roster.BreakTable{
				{FromMinutes: 360, BreakMinutes: 45},
				{FromMinutes: 300, BreakMinutes: 30},
			}
		}},
		{name: "negative minimum shift", mutate: func(c *roster.Config) {
			c.MinShiftMinutes = -1
		}},
		{name: "zero daily cap", mutate: func(c *roster.Config) {
			c.Limits.DailyCapMinutes = 0
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := roster.DefaultConfig()
			c.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !roster.IsConfigError(err) {
				t.Errorf("expected a configuration error, got %v", err)
			}
			if !errors.Is(err, roster.ErrInvalidConfig) {
				t.Errorf("expected the error to wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestConfigSlot_Lookup(t *testing.T) {
	cfg := roster.DefaultConfig()

	slot, err := cfg.Slot("evening")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slot.RequiredSkill != roster.SkillRefrigeration {
		t.Errorf("expected the evening slot to require refrigeration, got %q", slot.RequiredSkill)
	}

	_, err = cfg.Slot("overnight")
	if !errors.Is(err, roster.ErrUnknownSlot) {
		t.Fatalf("expected ErrUnknownSlot, got %v", err)
	}
}

func TestSlotLevels_PicksDayType(t *testing.T) {
	slot := roster.SlotConfig{
		Ordinary: roster.Headcount{Min: 3, Max: 5, StrictMin: 2, StrictMax: 7},
		Busy:     roster.Headcount{Min: 5, Max: 8, StrictMin: 3, StrictMax: 10},
	}
	if got := slot.Levels(roster.DayOrdinary); got.Min != 3 {
		t.Errorf("expected the ordinary levels, got %+v", got)
	}
	if got := slot.Levels(roster.DayBusy); got.Min != 5 {
		t.Errorf("expected the busy levels, got %+v", got)
	}
}

func TestValidateEmployees_RateRange(t *testing.T) {
	over := emp("E1", "Aoki")
	over.PreferenceRate = 101

	err := roster.ValidateEmployees([]*roster.Employee{over})
	if !errors.Is(err, roster.ErrInvalidPreferenceRate) {
		t.Fatalf("expected ErrInvalidPreferenceRate, got %v", err)
	}

	edge := emp("E2", "Baba")
	edge.PreferenceRate = 0
	if err := roster.ValidateEmployees([]*roster.Employee{edge}); err != nil {
		t.Fatalf("expected rate 0 accepted, got %v", err)
	}
}
