// Package calendar provides HolidayCalendar implementations for the
// rostering engine. The engine treats the calendar as an injected port keyed
// by country/year fixtures; weekend detection stays in the engine's own
// day-type classifier.
package calendar

import "github.com/warp/roster-engine/roster"

// Fixed is a holiday calendar backed by an explicit set of dates.
type Fixed struct {
	dates map[roster.Date]string
}

// NewFixed builds a calendar from named holiday dates.
func NewFixed(holidays map[roster.Date]string) *Fixed {
	dates := make(map[roster.Date]string, len(holidays))
	for d, name := range holidays {
		dates[d] = name
	}
	return &Fixed{dates: dates}
}

// IsHoliday reports whether the date is in the fixture set.
func (f *Fixed) IsHoliday(d roster.Date) bool {
	_, ok := f.dates[d]
	return ok
}

// Name returns the holiday's name, empty when the date is not a holiday.
func (f *Fixed) Name(d roster.Date) string {
	return f.dates[d]
}

// Add registers another holiday.
func (f *Fixed) Add(d roster.Date, name string) {
	f.dates[d] = name
}

// None is a no-op calendar for when holidays are disabled: only weekends
// count as busy days.
type None struct{}

func (None) IsHoliday(roster.Date) bool { return false }
