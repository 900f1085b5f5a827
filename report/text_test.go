package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/warp/roster-engine/report"
	"github.com/warp/roster-engine/roster"
)

func july(day int) roster.Date { return roster.NewDate(2024, time.July, day) }

func TestMergeAdjacent(t *testing.T) {
	cases := []struct {
		name string
		in   []roster.Window
		want []roster.Window
	}{
		{
			name: "back-to-back slots merge",
			in:   []roster.Window{roster.NewWindow(9, 14), roster.NewWindow(14, 17)},
			want: []roster.Window{roster.NewWindow(9, 17)},
		},
		{
			name: "gap keeps spans apart",
			in:   []roster.Window{roster.NewWindow(9, 12), roster.NewWindow(14, 17)},
			want: []roster.Window{roster.NewWindow(9, 12), roster.NewWindow(14, 17)},
		},
		{
			name: "unsorted input",
			in:   []roster.Window{roster.NewWindow(14, 17), roster.NewWindow(9, 14)},
			want: []roster.Window{roster.NewWindow(9, 17)},
		},
		{
			name: "three-way chain",
			in:   []roster.Window{roster.NewWindow(17, 20), roster.NewWindow(9, 14), roster.NewWindow(14, 17)},
			want: []roster.Window{roster.NewWindow(9, 20)},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := report.MergeAdjacent(c.in)
			if len(got) != len(c.want) {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Errorf("span %d: expected %s, got %s", i, c.want[i], got[i])
				}
			}
		})
	}
}

func TestRender_MergedShiftWithRecomputedBreak(t *testing.T) {
	// GIVEN: Tanaka works morning straight through afternoon (09:00-17:00)
	result := &roster.Result{
		Period:         roster.DateRange{Start: july(1), End: july(1)},
		Schedule:       roster.NewSchedule(),
		Shortages:      roster.NewShortageReport(),
		SkillShortages: roster.NewSkillShortageReport(),
	}
	result.Schedule.Append(roster.Assignment{EmployeeID: "1", Date: july(1), Slot: "morning", Window: roster.NewWindow(9, 14), BreakMinutes: 30})
	result.Schedule.Append(roster.Assignment{EmployeeID: "1", Date: july(1), Slot: "afternoon", Window: roster.NewWindow(14, 17), BreakMinutes: 0})

	renderer := report.Renderer{Breaks: roster.DefaultConfig().Breaks}
	employees := []*roster.Employee{{ID: "1", Name: "Tanaka", PreferenceRate: 100}}
	out := renderer.Render(result, employees)

	// WHEN rendered, the two slots read as one 8h span with a 60min break
	if !strings.Contains(out, "Tanaka: 09:00-17:00 (break 60min)") {
		t.Errorf("expected a merged 09:00-17:00 line, got:\n%s", out)
	}
	if strings.Contains(out, "09:00-14:00") {
		t.Errorf("expected no unmerged span, got:\n%s", out)
	}
}

func TestRender_ShortageWarnings(t *testing.T) {
	result := &roster.Result{
		Period:         roster.DateRange{Start: july(1), End: july(1)},
		Schedule:       roster.NewSchedule(),
		Shortages:      roster.NewShortageReport(),
		SkillShortages: roster.NewSkillShortageReport(),
	}
	result.Shortages.Record(july(1), "evening", 2)
	result.SkillShortages.Record(july(1), "evening")

	out := report.Renderer{}.Render(result, nil)

	if !strings.Contains(out, "no assignments") {
		t.Errorf("expected an empty-day marker, got:\n%s", out)
	}
	if !strings.Contains(out, "warning: evening short 2") {
		t.Errorf("expected a shortage warning, got:\n%s", out)
	}
	if !strings.Contains(out, "warning: evening has no required-skill cover") {
		t.Errorf("expected a skill warning, got:\n%s", out)
	}
}

func TestRenderReflection(t *testing.T) {
	e1 := &roster.Employee{ID: "1", Name: "Tanaka", PreferenceRate: 100}
	e2 := &roster.Employee{ID: "2", Name: "Suzuki", PreferenceRate: 100}
	prefs := make(roster.PreferenceIndex)
	prefs.Add("1", july(1), roster.NewWindow(9, 17))

	s := roster.NewSchedule()
	s.Append(roster.Assignment{EmployeeID: "1", Date: july(1), Slot: "morning", Window: roster.NewWindow(9, 13)})

	summary := roster.CalculateReflection(s, []*roster.Employee{e1, e2}, prefs,
		roster.DateRange{Start: july(1), End: july(1)})
	out := report.Renderer{}.RenderReflection(summary)

	if !strings.Contains(out, "Tanaka: 50.00%") {
		t.Errorf("expected Tanaka at 50.00%%, got:\n%s", out)
	}
	if !strings.Contains(out, "overall: 50.00% (1 with stated preferences)") {
		t.Errorf("expected the stated-group overall, got:\n%s", out)
	}
	if !strings.Contains(out, "1 without stated preferences") {
		t.Errorf("expected the unstated count, got:\n%s", out)
	}
}
