package roster

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Calendar day value type (comparable, usable as a map key)
// =============================================================================

// Date is a calendar day. It is a plain comparable value so it can key the
// schedule and report maps directly.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf truncates a time.Time to its calendar day.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns the date as UTC midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date        { return DateOf(d.Time().AddDate(0, 0, n)) }
func (d Date) Weekday() time.Weekday     { return d.Time().Weekday() }
func (d Date) Before(o Date) bool        { return d.Time().Before(o.Time()) }
func (d Date) After(o Date) bool         { return d.Time().After(o.Time()) }
func (d Date) BeforeOrEqual(o Date) bool { return !d.After(o) }

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// StartOfWeek returns the Monday of the week containing d. Labor weeks run
// Monday through Sunday.
func (d Date) StartOfWeek() Date {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

// =============================================================================
// DATE RANGE
// =============================================================================

// DateRange is an inclusive [Start, End] span of days.
type DateRange struct {
	Start Date
	End   Date
}

// Valid reports whether the range spans at least one day.
func (r DateRange) Valid() bool { return r.Start.BeforeOrEqual(r.End) }

// Days returns every day in the range in chronological order.
func (r DateRange) Days() []Date {
	var days []Date
	for d := r.Start; d.BeforeOrEqual(r.End); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether the date falls within the range.
func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

func (r DateRange) String() string {
	return "[" + r.Start.String() + ", " + r.End.String() + "]"
}

// =============================================================================
// DAY TYPE - Weekday vs busy (weekend/holiday) classification
// =============================================================================

// DayType partitions days for staffing purposes: ordinary weekdays versus
// busy days (weekends and recognized holidays), which carry higher targets.
type DayType int

const (
	DayOrdinary DayType = iota
	DayBusy
)

func (dt DayType) String() string {
	if dt == DayBusy {
		return "busy"
	}
	return "weekday"
}

// HolidayCalendar answers whether a date is a recognized public holiday.
// Weekend detection is not the calendar's job; DayTypeOf handles it.
type HolidayCalendar interface {
	IsHoliday(d Date) bool
}

// DayTypeOf classifies a date using weekend rules plus an optional holiday
// calendar. A nil calendar means holidays are not recognized.
func DayTypeOf(d Date, cal HolidayCalendar) DayType {
	if d.IsWeekend() {
		return DayBusy
	}
	if cal != nil && cal.IsHoliday(d) {
		return DayBusy
	}
	return DayOrdinary
}
