/*
reflection.go - Post-hoc preference satisfaction measurement

PURPOSE:
  Measures how closely the generated schedule matched declared preferences.
  Per employee over the period:

    preferred minutes = total declared preference-window minutes on dates
                        with at least one preference
    reflected minutes = total overlap between each assignment on those dates
                        and the union of that day's preference windows

    rate = min(100, reflected / preferred * 100)   when preferred > 0
    rate = 100                                     when nothing was stated
           ("no preference stated => fully satisfied")

  Employees with zero stated preference are reported separately from those
  with stated preferences; the overall rate averages the stated group only.

PRECISION:
  Rates are decimal.Decimal percentages, not floats, matching how the rest
  of the system reports fractional quantities.
*/
package roster

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ReflectionRate is one employee's preference satisfaction over a period.
type ReflectionRate struct {
	EmployeeID       EmployeeID
	Name             string
	PreferredMinutes int
	ReflectedMinutes int

	// Stated is false when the employee declared no preference in range; the
	// rate then takes the documented default of 100.
	Stated bool
	Rate   decimal.Decimal
}

// ReflectionSummary aggregates reflection rates across the roster.
type ReflectionSummary struct {
	PerEmployee []ReflectionRate

	// OverallStated averages the rates of employees who stated at least one
	// preference in range. Zero when nobody did.
	OverallStated decimal.Decimal

	// StatedCount and UnstatedCount split the roster by whether any
	// preference was declared in range.
	StatedCount   int
	UnstatedCount int
}

// CalculateReflection measures preference satisfaction for every employee
// over the period, in roster order.
func CalculateReflection(s *Schedule, employees []*Employee, prefs PreferenceIndex, period DateRange) ReflectionSummary {
	var summary ReflectionSummary
	statedTotal := decimal.Zero

	for _, e := range employees {
		rate := reflectionFor(s, e, prefs, period)
		summary.PerEmployee = append(summary.PerEmployee, rate)
		if rate.Stated {
			summary.StatedCount++
			statedTotal = statedTotal.Add(rate.Rate)
		} else {
			summary.UnstatedCount++
		}
	}

	if summary.StatedCount > 0 {
		summary.OverallStated = statedTotal.Div(decimal.NewFromInt(int64(summary.StatedCount))).Round(2)
	}
	return summary
}

func reflectionFor(s *Schedule, e *Employee, prefs PreferenceIndex, period DateRange) ReflectionRate {
	out := ReflectionRate{EmployeeID: e.ID, Name: e.Name}

	for _, d := range period.Days() {
		windows := prefs.Windows(e.ID, d)
		if len(windows) == 0 {
			continue
		}
		merged := mergeWindows(windows)
		for _, w := range merged {
			out.PreferredMinutes += w.Minutes()
		}
		for _, a := range s.For(e.ID, d) {
			for _, w := range merged {
				out.ReflectedMinutes += a.Window.OverlapMinutes(w)
			}
		}
	}

	if out.PreferredMinutes == 0 {
		out.Rate = hundred
		return out
	}
	out.Stated = true
	out.Rate = decimal.NewFromInt(int64(out.ReflectedMinutes)).
		Div(decimal.NewFromInt(int64(out.PreferredMinutes))).
		Mul(hundred).Round(2)
	if out.Rate.GreaterThan(hundred) {
		out.Rate = hundred
	}
	return out
}

// mergeWindows coalesces overlapping or touching windows so overlap minutes
// are never counted twice against duplicate declarations.
func mergeWindows(windows []Window) []Window {
	if len(windows) <= 1 {
		return windows
	}
	sorted := make([]Window, len(windows))
	copy(sorted, windows)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Start < sorted[j-1].Start; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	merged := []Window{sorted[0]}
	for _, w := range sorted[1:] {
		last := &merged[len(merged)-1]
		if w.Start <= last.End {
			if w.End > last.End {
				last.End = w.End
			}
			continue
		}
		merged = append(merged, w)
	}
	return merged
}
