package roster

import "sort"

// =============================================================================
// COVERAGE & SHORTAGE REPORTING
// =============================================================================

// ShortageReport records, per date and slot, how many employees short of the
// target headcount the slot ended up. Only positive shortfalls are recorded.
type ShortageReport map[Date]map[SlotName]int

// NewShortageReport returns an empty report.
func NewShortageReport() ShortageReport { return make(ShortageReport) }

// Record stores a positive shortfall for a (date, slot).
func (r ShortageReport) Record(d Date, slot SlotName, shortfall int) {
	if shortfall <= 0 {
		return
	}
	if r[d] == nil {
		r[d] = make(map[SlotName]int)
	}
	r[d][slot] = shortfall
}

// At returns the shortfall recorded for a (date, slot), zero when covered.
func (r ShortageReport) At(d Date, slot SlotName) int { return r[d][slot] }

// Total sums every recorded shortfall across the period.
func (r ShortageReport) Total() int {
	total := 0
	for _, slots := range r {
		for _, n := range slots {
			total += n
		}
	}
	return total
}

// Dates returns the dates with at least one shortfall, in order.
func (r ShortageReport) Dates() []Date {
	out := make([]Date, 0, len(r))
	for d := range r {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// SkillShortageReport flags, per date and slot, that no assigned employee
// carries the slot's required skill.
type SkillShortageReport map[Date]map[SlotName]bool

// NewSkillShortageReport returns an empty report.
func NewSkillShortageReport() SkillShortageReport { return make(SkillShortageReport) }

// Record flags a missing required skill for a (date, slot).
func (r SkillShortageReport) Record(d Date, slot SlotName) {
	if r[d] == nil {
		r[d] = make(map[SlotName]bool)
	}
	r[d][slot] = true
}

// At reports whether the (date, slot) lacks its required skill.
func (r SkillShortageReport) At(d Date, slot SlotName) bool { return r[d][slot] }

// MeasureSlot computes the coverage of one filled (date, slot) request and
// records shortfalls into the result's reports: staffing shortage is
// max(0, target - assigned), and a skill shortage is flagged when the slot
// requires a skill no assignee carries.
func MeasureSlot(result *Result, d Date, slot SlotConfig, target int, assigned []Assignment, employees []*Employee) {
	if shortfall := target - len(assigned); shortfall > 0 {
		result.Shortages.Record(d, slot.Name, shortfall)
	}

	if slot.RequiredSkill == "" {
		return
	}
	byID := make(map[EmployeeID]*Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}
	for _, a := range assigned {
		if e := byID[a.EmployeeID]; e != nil && e.Skills.Has(slot.RequiredSkill) {
			return
		}
	}
	result.SkillShortages.Record(d, slot.Name)
}
