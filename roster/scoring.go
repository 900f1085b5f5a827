/*
scoring.go - Candidate scoring and selection

PURPOSE:
  Ranks available employees for a slot request and picks the best. The score
  is an additive integer; higher is better. Terms, with canonical weights:

    +100  candidate window matches a declared preference window
     +30  refrigeration skill (+20 cashier, +20 stocking)
     +50  projected weekly minutes stay within the weekly cap
     -10  per whole hour projected over the weekly cap
     -20  per consecutive day past the baseline once the streak reaches 5
     +30  slot still below its planning minimum
     -30  slot at or past its planning maximum

  Ties break by roster order: SelectBest is a stable argmax.

SEE ALSO:
  - config.go: ScoreWeights and BreakTable definitions
  - engine.go: Drives selection per slot request
*/
package roster

// Scorer ranks candidates for slot requests.
type Scorer struct {
	Weights ScoreWeights
	Rules   Rules
}

// Score rates one candidate for the window on the date, given how many
// employees the slot already holds.
func (sc Scorer) Score(s *Schedule, prefs PreferenceIndex, e *Employee, d Date, w Window, assignedCount int, levels Headcount) int {
	score := 0

	if IsAvailable(prefs, e.ID, d, w) {
		score += sc.Weights.PreferenceMatch
	}

	for _, skill := range e.Skills {
		score += sc.Weights.Skill[skill]
	}

	projected := sc.Rules.WeeklyMinutes(s, e.ID, d) + w.Minutes()
	if projected <= sc.Rules.Limits.WeeklyCapMinutes {
		score += sc.Weights.WeeklyFit
	} else {
		overHours := (projected - sc.Rules.Limits.WeeklyCapMinutes) / 60
		score -= sc.Weights.WeeklyOverPerHour * overHours
	}

	if streak := sc.Rules.ConsecutiveDays(s, e.ID, d); streak >= sc.Weights.ConsecutivePenaltyFrom {
		baseline := sc.Weights.ConsecutivePenaltyFrom - 1
		score -= sc.Weights.ConsecutivePerDay * (streak - baseline)
	}

	if assignedCount < levels.Min {
		score += sc.Weights.BelowMin
	} else if assignedCount >= levels.Max {
		score -= sc.Weights.AboveMax
	}

	return score
}

// SelectBest returns the candidate with the highest score, ties broken by
// position in the candidate list (roster order). It returns nil when the
// list is empty.
func (sc Scorer) SelectBest(s *Schedule, prefs PreferenceIndex, candidates []*Employee, d Date, w Window, assignedCount int, levels Headcount) *Employee {
	var best *Employee
	bestScore := 0
	for _, e := range candidates {
		score := sc.Score(s, prefs, e, d, w, assignedCount, levels)
		if best == nil || score > bestScore {
			best = e
			bestScore = score
		}
	}
	return best
}
