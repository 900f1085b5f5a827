package roster_test

import (
	"testing"

	"github.com/warp/roster-engine/roster"
)

func TestIsAvailable_OverlapSemantics(t *testing.T) {
	// GIVEN: A single stated preference of 10:00-12:00 on July 1st
	prefs := make(roster.PreferenceIndex)
	prefs.Add("E1", july(1), window(10, 12))

	cases := []struct {
		name      string
		candidate roster.Window
		want      bool
	}{
		{name: "candidate contains the preference", candidate: window(9, 14), want: true},
		{name: "candidate starts inside", candidate: window(11, 13), want: true},
		{name: "candidate ends inside", candidate: window(9, 11), want: true},
		{name: "exact match", candidate: window(10, 12), want: true},
		{name: "abutting after", candidate: window(12, 14), want: false},
		{name: "abutting before", candidate: window(8, 10), want: false},
		{name: "disjoint", candidate: window(14, 17), want: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := roster.IsAvailable(prefs, "E1", july(1), c.candidate); got != c.want {
				t.Errorf("expected %v for %s", c.want, c.candidate)
			}
		})
	}
}

func TestIsAvailable_NoPreferenceThatDay(t *testing.T) {
	prefs := make(roster.PreferenceIndex)
	prefs.Add("E1", july(1), window(9, 14))

	if roster.IsAvailable(prefs, "E1", july(2), window(9, 14)) {
		t.Error("expected unavailability on a day with no stated preference")
	}
	if roster.IsAvailable(prefs, "E2", july(1), window(9, 14)) {
		t.Error("expected unavailability for an employee with no preferences at all")
	}
}

func TestAvailable_PreservesRosterOrder(t *testing.T) {
	prefs := make(roster.PreferenceIndex)
	prefs.Add("E3", july(1), window(9, 14))
	prefs.Add("E1", july(1), window(9, 14))

	employees := []*roster.Employee{emp("E1", "Aoki"), emp("E2", "Baba"), emp("E3", "Chiba")}
	got := roster.Available(employees, prefs, july(1), window(9, 14))

	if len(got) != 2 || got[0].ID != "E1" || got[1].ID != "E3" {
		t.Fatalf("expected [E1 E3] in roster order, got %v", got)
	}
}

func TestMatchingPreference_FirstDeclaredWins(t *testing.T) {
	// GIVEN: Two overlapping preference windows that both admit the candidate
	prefs := make(roster.PreferenceIndex)
	prefs.Add("E1", july(1), window(9, 12))
	prefs.Add("E1", july(1), window(9, 17))

	pref, ok := roster.MatchingPreference(prefs, "E1", july(1), window(9, 14))
	if !ok {
		t.Fatal("expected a matching preference")
	}
	if pref != window(9, 12) {
		t.Errorf("expected the first declared window 09:00-12:00, got %s", pref)
	}
}

func TestMatchingPreference_NoMatch(t *testing.T) {
	prefs := make(roster.PreferenceIndex)
	prefs.Add("E1", july(1), window(9, 12))

	if _, ok := roster.MatchingPreference(prefs, "E1", july(1), window(14, 17)); ok {
		t.Error("expected no match for a disjoint candidate")
	}
}
