package roster_test

import (
	"errors"
	"testing"

	"github.com/warp/roster-engine/roster"
)

func TestScheduleOn_SortedByStartThenID(t *testing.T) {
	s := roster.NewSchedule()
	s.Append(roster.Assignment{EmployeeID: "E2", Date: july(1), Slot: "afternoon", Window: window(14, 17)})
	s.Append(roster.Assignment{EmployeeID: "E2", Date: july(1), Slot: "morning", Window: window(9, 14)})
	s.Append(roster.Assignment{EmployeeID: "E1", Date: july(1), Slot: "morning", Window: window(9, 14)})

	got := s.On(july(1))
	if len(got) != 3 {
		t.Fatalf("expected 3 assignments, got %d", len(got))
	}
	if got[0].EmployeeID != "E1" || got[1].EmployeeID != "E2" || got[2].Slot != "afternoon" {
		t.Errorf("expected start-then-id order, got %v", got)
	}
}

func TestScheduleHolds(t *testing.T) {
	s := roster.NewSchedule()
	s.Append(roster.Assignment{EmployeeID: "E1", Date: july(1), Slot: "morning", Window: window(9, 14)})

	if !s.Holds("E1", july(1), "morning") {
		t.Error("expected E1 held in morning")
	}
	if s.Holds("E1", july(1), "afternoon") || s.Holds("E2", july(1), "morning") {
		t.Error("expected no phantom holdings")
	}
}

func TestScheduleDates_Chronological(t *testing.T) {
	s := roster.NewSchedule()
	s.Append(roster.Assignment{EmployeeID: "E1", Date: july(3), Slot: "morning", Window: window(9, 14)})
	s.Append(roster.Assignment{EmployeeID: "E1", Date: july(1), Slot: "morning", Window: window(9, 14)})

	dates := s.Dates()
	if len(dates) != 2 || dates[0] != july(1) || dates[1] != july(3) {
		t.Fatalf("expected chronological dates, got %v", dates)
	}
}

func TestPreferenceIndexValidate(t *testing.T) {
	e1 := emp("E1", "Aoki")

	t.Run("unknown employee", func(t *testing.T) {
		prefs := make(roster.PreferenceIndex)
		prefs.Add("ghost", july(1), window(9, 14))

		err := prefs.Validate([]*roster.Employee{e1})
		if !errors.Is(err, roster.ErrUnknownEmployee) {
			t.Fatalf("expected ErrUnknownEmployee, got %v", err)
		}
		if !roster.IsDataError(err) {
			t.Errorf("expected a data error, got %v", err)
		}
	})

	t.Run("reversed window", func(t *testing.T) {
		prefs := make(roster.PreferenceIndex)
		prefs.Add(e1.ID, july(1), window(14, 9))

		err := prefs.Validate([]*roster.Employee{e1})
		if !errors.Is(err, roster.ErrInvalidWindow) {
			t.Fatalf("expected ErrInvalidWindow, got %v", err)
		}
	})

	t.Run("clean index", func(t *testing.T) {
		prefs := make(roster.PreferenceIndex)
		prefs.Add(e1.ID, july(1), window(9, 14))

		if err := prefs.Validate([]*roster.Employee{e1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSkillSetHas(t *testing.T) {
	skills := roster.SkillSet{roster.SkillCashier, roster.SkillStocking}
	if !skills.Has(roster.SkillCashier) || skills.Has(roster.SkillRefrigeration) {
		t.Error("unexpected skill membership")
	}
}
