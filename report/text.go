/*
Package report renders generation results as day-grouped text.

PURPOSE:
  Presentation only: turns a roster.Result (plus the reflection summary)
  into the human-readable listing managers print and pin up. Adjacent
  windows for the same employee are merged for display, with the break
  recomputed for the merged span, so someone working morning straight into
  afternoon reads as one 09:00-17:00 shift.

  Pure string building; no I/O and no engine state.
*/
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/warp/roster-engine/roster"
)

// Renderer formats generation results.
type Renderer struct {
	// Breaks recomputes break minutes for merged display spans. Use the same
	// table the engine was configured with.
	Breaks roster.BreakTable
}

// Render produces the day-grouped text listing for a completed run.
func (r Renderer) Render(result *roster.Result, employees []*roster.Employee) string {
	names := make(map[roster.EmployeeID]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}

	var b strings.Builder
	b.WriteString("Generated roster " + result.Period.String() + "\n")

	for _, date := range result.Period.Days() {
		fmt.Fprintf(&b, "\n%s (%s)\n", date, date.Weekday().String()[:3])

		assignments := result.Schedule.On(date)
		if len(assignments) == 0 {
			b.WriteString("  no assignments\n")
		}
		for _, line := range r.employeeLines(assignments, names) {
			b.WriteString("  " + line + "\n")
		}

		for _, slot := range slotsOn(result, date) {
			if n := result.Shortages.At(date, slot); n > 0 {
				fmt.Fprintf(&b, "  warning: %s short %d\n", slot, n)
			}
			if result.SkillShortages.At(date, slot) {
				fmt.Fprintf(&b, "  warning: %s has no required-skill cover\n", slot)
			}
		}
	}

	return b.String()
}

// RenderReflection produces the preference-satisfaction summary block.
func (r Renderer) RenderReflection(summary roster.ReflectionSummary) string {
	var b strings.Builder
	b.WriteString("Preference reflection\n")
	for _, rate := range summary.PerEmployee {
		if !rate.Stated {
			continue
		}
		fmt.Fprintf(&b, "  %s: %s%%\n", rate.Name, rate.Rate.StringFixed(2))
	}
	if summary.StatedCount > 0 {
		fmt.Fprintf(&b, "  overall: %s%% (%d with stated preferences)\n",
			summary.OverallStated.StringFixed(2), summary.StatedCount)
	}
	if summary.UnstatedCount > 0 {
		fmt.Fprintf(&b, "  %d without stated preferences (reported at 100%%)\n", summary.UnstatedCount)
	}
	return b.String()
}

// employeeLines groups a day's assignments per employee, merges adjacent
// windows, and formats one line per employee in first-appearance order.
func (r Renderer) employeeLines(assignments []roster.Assignment, names map[roster.EmployeeID]string) []string {
	var order []roster.EmployeeID
	byEmployee := make(map[roster.EmployeeID][]roster.Window)
	for _, a := range assignments {
		if _, ok := byEmployee[a.EmployeeID]; !ok {
			order = append(order, a.EmployeeID)
		}
		byEmployee[a.EmployeeID] = append(byEmployee[a.EmployeeID], a.Window)
	}

	var lines []string
	for _, id := range order {
		spans := MergeAdjacent(byEmployee[id])
		var parts []string
		for _, w := range spans {
			parts = append(parts, fmt.Sprintf("%s (break %dmin)", w, r.Breaks.Minutes(w.Minutes())))
		}
		name := names[id]
		if name == "" {
			name = string(id)
		}
		lines = append(lines, name+": "+strings.Join(parts, ", "))
	}
	return lines
}

// MergeAdjacent coalesces back-to-back windows (end of one equals start of
// the next) into single display spans.
func MergeAdjacent(windows []roster.Window) []roster.Window {
	if len(windows) == 0 {
		return nil
	}
	sorted := make([]roster.Window, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	merged := []roster.Window{sorted[0]}
	for _, w := range sorted[1:] {
		last := &merged[len(merged)-1]
		if w.Start == last.End {
			last.End = w.End
			continue
		}
		merged = append(merged, w)
	}
	return merged
}

func slotsOn(result *roster.Result, date roster.Date) []roster.SlotName {
	seen := make(map[roster.SlotName]bool)
	var out []roster.SlotName
	add := func(slot roster.SlotName) {
		if !seen[slot] {
			seen[slot] = true
			out = append(out, slot)
		}
	}
	for slot := range result.Shortages[date] {
		add(slot)
	}
	for slot := range result.SkillShortages[date] {
		add(slot)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
