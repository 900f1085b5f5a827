package roster

import (
	"fmt"
	"time"
)

// =============================================================================
// CLOCK - Minute-of-day time abstraction (store days never cross midnight)
// =============================================================================

// Clock is a time of day expressed as minutes from midnight.
// Shift windows are half-open [Start, End) ranges of Clock values, so all
// window arithmetic is integer arithmetic and timezone-free.
type Clock int

// NewClock builds a Clock from an hour and minute.
func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// ParseClock parses "HH:MM" (24-hour) into a Clock.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return NewClock(t.Hour(), t.Minute()), nil
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) Before(o Clock) bool { return c < o }
func (c Clock) After(o Clock) bool  { return c > o }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// =============================================================================
// WINDOW - Half-open [Start, End) time-of-day range
// =============================================================================

// Window is a half-open [Start, End) range within a single day.
type Window struct {
	Start Clock
	End   Clock
}

// NewWindow builds a window from whole hours, the common case for slot
// definitions (e.g., NewWindow(9, 14) for a 09:00-14:00 slot).
func NewWindow(startHour, endHour int) Window {
	return Window{Start: NewClock(startHour, 0), End: NewClock(endHour, 0)}
}

// ParseWindow parses "HH:MM-HH:MM" into a Window.
func ParseWindow(s string) (Window, error) {
	var startS, endS string
	if _, err := fmt.Sscanf(s, "%5s-%5s", &startS, &endS); err != nil {
		return Window{}, fmt.Errorf("invalid window %q: %w", s, err)
	}
	start, err := ParseClock(startS)
	if err != nil {
		return Window{}, err
	}
	end, err := ParseClock(endS)
	if err != nil {
		return Window{}, err
	}
	w := Window{Start: start, End: end}
	if !w.Valid() {
		return Window{}, fmt.Errorf("invalid window %q: %w", s, ErrInvalidWindow)
	}
	return w, nil
}

// Valid reports whether the window is non-empty (start strictly before end).
func (w Window) Valid() bool { return w.Start < w.End }

// Minutes returns the window length in minutes.
func (w Window) Minutes() int { return int(w.End - w.Start) }

// Admits reports whether this window, treated as a preference window, admits
// the candidate window. It does when either candidate bound falls strictly
// inside the preference window, or the candidate fully contains it.
func (w Window) Admits(candidate Window) bool {
	if w.Start <= candidate.Start && candidate.Start < w.End {
		return true
	}
	if w.Start < candidate.End && candidate.End <= w.End {
		return true
	}
	return candidate.Start <= w.Start && w.End <= candidate.End
}

// Intersect returns the overlap of two windows. ok is false when the
// intersection is empty.
func (w Window) Intersect(o Window) (Window, bool) {
	out := Window{Start: maxClock(w.Start, o.Start), End: minClock(w.End, o.End)}
	return out, out.Valid()
}

// OverlapMinutes returns the number of minutes the two windows share.
func (w Window) OverlapMinutes(o Window) int {
	if out, ok := w.Intersect(o); ok {
		return out.Minutes()
	}
	return 0
}

func (w Window) String() string {
	return w.Start.String() + "-" + w.End.String()
}

func minClock(a, b Clock) Clock {
	if a < b {
		return a
	}
	return b
}

func maxClock(a, b Clock) Clock {
	if a > b {
		return a
	}
	return b
}
