// File: boundary.go
// Title: Unit Boundaries
// Description: Start and end of a second, minute, hour, day, week (Monday
//              start), month, quarter or year as observed in a timezone. UTC
//              is computed in closed form. Hours and minutes are truncated at
//              the offset in effect at the instant, longer units truncate the
//              wall-clock reading and convert it back by bisection.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-03
// Modified: 2025-08-04
//
// Change History:
// - 2025-08-03 v0.1.0: Initial implementation
// - 2025-08-04 v0.2.0: Offset based hour and minute boundaries, correct
//                      across a repeated DST hour

package chronal

import (
	"github.com/msto63/chronal/internal/zone"
)

// wall is a truncated wall-clock reading down to seconds
type wall struct {
	year, month, day, hour, minute, second int
}

// truncate zeroes every field below unit
func truncate(w zone.Fields, unit Unit) (wall, bool) {
	t := wall{w.Year, w.Month, w.Day, w.Hour, w.Minute, w.Second}
	switch unit {
	case Second:
	case Minute:
		t.second = 0
	case Hour:
		t.minute, t.second = 0, 0
	case Day:
		t.hour, t.minute, t.second = 0, 0, 0
	case Week:
		t.day -= zone.MondayIndex(int(w.Weekday))
		t.hour, t.minute, t.second = 0, 0, 0
	case Month:
		t.day, t.hour, t.minute, t.second = 1, 0, 0, 0
	case Quarter:
		t.month = (t.month-1)/3*3 + 1
		t.day, t.hour, t.minute, t.second = 1, 0, 0, 0
	case Year:
		t.month, t.day, t.hour, t.minute, t.second = 1, 1, 0, 0, 0
	default:
		return wall{}, false
	}
	return t, true
}

// next advances a truncated reading by one unit, relying on normalization
func (t wall) next(unit Unit) wall {
	switch unit {
	case Second:
		t.second++
	case Minute:
		t.minute++
	case Hour:
		t.hour++
	case Day:
		t.day++
	case Week:
		t.day += 7
	case Month:
		t.month++
	case Quarter:
		t.month += 3
	case Year:
		t.year++
	}
	return t
}

// span is the fixed length of the sub-day units truncated by offset
func span(unit Unit) (int64, bool) {
	switch unit {
	case Minute:
		return MillisPerMinute, true
	case Hour:
		return MillisPerHour, true
	}
	return 0, false
}

// overshoot is added to a start so the result falls inside the next unit
// whatever the DST transitions and month lengths in between
func overshoot(unit Unit) int64 {
	switch unit {
	case Day:
		return 26 * MillisPerHour
	case Week:
		return 8 * MillisPerDay
	case Month:
		return 32 * MillisPerDay
	case Quarter:
		return 93 * MillisPerDay
	default:
		return 367 * MillisPerDay
	}
}

func localize(f *zone.Formatter, t wall) int64 {
	return f.Localize(t.year, t.month, t.day, t.hour, t.minute, t.second)
}

func startOf(f *zone.Formatter, i Instant, unit Unit) (Instant, error) {
	ms := int64(i)
	if unit == Second {
		return Instant(ms - zone.FloorMod(ms, MillisPerSecond)), nil
	}
	if n, ok := span(unit); ok {
		return Instant(f.TruncateLocal(ms, n)), nil
	}
	t, ok := truncate(f.Fields(ms), unit)
	if !ok {
		return 0, unsupportedUnit("chronal.StartOf", unit)
	}
	return Instant(localize(f, t)), nil
}

func endOf(f *zone.Formatter, i Instant, unit Unit) (Instant, error) {
	start, err := startOf(f, i, unit)
	if err != nil {
		return 0, unsupportedUnit("chronal.EndOf", unit)
	}
	if unit == Second {
		return start + Instant(MillisPerSecond-1), nil
	}
	if n, ok := span(unit); ok {
		return Instant(f.TruncateLocal(int64(start)+n, n) - 1), nil
	}
	if f.IsUTC() {
		t, _ := truncate(f.Fields(int64(start)), unit)
		return Instant(localize(f, t.next(unit)) - 1), nil
	}
	next, err := startOf(f, start+Instant(overshoot(unit)), unit)
	if err != nil {
		return 0, err
	}
	return next - 1, nil
}

// StartOf returns the first millisecond of the unit containing i in the
// call's timezone. Weeks start on Monday.
func (e *Engine) StartOf(i Instant, unit Unit, opts ...CallOption) (Instant, error) {
	f, _, err := e.formatter(opts)
	if err != nil {
		return 0, err
	}
	return startOf(f, i, unit)
}

// EndOf returns the last millisecond of the unit containing i in the call's
// timezone
func (e *Engine) EndOf(i Instant, unit Unit, opts ...CallOption) (Instant, error) {
	f, _, err := e.formatter(opts)
	if err != nil {
		return 0, err
	}
	return endOf(f, i, unit)
}

// StartOf uses the default engine
func StartOf(i Instant, unit Unit, opts ...CallOption) (Instant, error) {
	return Default().StartOf(i, unit, opts...)
}

// EndOf uses the default engine
func EndOf(i Instant, unit Unit, opts ...CallOption) (Instant, error) {
	return Default().EndOf(i, unit, opts...)
}
