// File: getters.go
// Title: Calendar Getters and Setters
// Description: Reads and replaces single calendar fields of an instant as
//              observed in a timezone, plus derived values such as the
//              quarter, the week of the year and the length of the month.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-03
// Modified: 2025-08-03
//
// Change History:
// - 2025-08-03 v0.1.0: Initial implementation

package chronal

import (
	"time"

	"github.com/msto63/chronal/internal/zone"
)

// Parts are the calendar fields of an instant in one timezone. Month is 1-12.
type Parts struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
	Weekday     time.Weekday
}

func partsOf(w zone.Fields) Parts {
	return Parts{
		Year:        w.Year,
		Month:       w.Month,
		Day:         w.Day,
		Hour:        w.Hour,
		Minute:      w.Minute,
		Second:      w.Second,
		Millisecond: w.Millisecond,
		Weekday:     w.Weekday,
	}
}

// Quarter returns 1-4
func (p Parts) Quarter() int {
	return (p.Month-1)/3 + 1
}

// DaysInMonth returns the length of the month the parts fall into
func (p Parts) DaysInMonth() int {
	return zone.DaysIn(p.Year, p.Month)
}

// WeekOfYear numbers weeks from Monday, the week holding January 1 is week 1
func (p Parts) WeekOfYear() int {
	jan1 := time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	dayOfYear := time.Date(p.Year, time.Month(p.Month), p.Day, 0, 0, 0, 0, time.UTC).YearDay()
	return (dayOfYear + zone.MondayIndex(int(jan1.Weekday())) + 6) / 7
}

// PartsOf decomposes i in the call's timezone
func (e *Engine) PartsOf(i Instant, opts ...CallOption) (Parts, error) {
	f, _, err := e.formatter(opts)
	if err != nil {
		return Parts{}, err
	}
	return partsOf(f.Fields(int64(i))), nil
}

// Get returns one field of i. Month is 1-12, Weekday is 0 for Sunday. Week
// has no single field value and is UNSUPPORTED_UNIT.
func (e *Engine) Get(i Instant, unit Unit, opts ...CallOption) (int, error) {
	p, err := e.PartsOf(i, opts...)
	if err != nil {
		return 0, err
	}
	switch unit {
	case Year:
		return p.Year, nil
	case Quarter:
		return p.Quarter(), nil
	case Month:
		return p.Month, nil
	case Day:
		return p.Day, nil
	case Weekday:
		return int(p.Weekday), nil
	case Hour:
		return p.Hour, nil
	case Minute:
		return p.Minute, nil
	case Second:
		return p.Second, nil
	case Millisecond:
		return p.Millisecond, nil
	}
	return 0, unsupportedUnit("chronal.Get", unit)
}

// Set replaces one field of i in the call's timezone. Values outside the
// field's range roll over: month 13 is January of the next year, day 0 the
// last day of the previous month.
func (e *Engine) Set(i Instant, unit Unit, value int, opts ...CallOption) (Instant, error) {
	f, _, err := e.formatter(opts)
	if err != nil {
		return 0, err
	}
	w := f.Fields(int64(i))
	switch unit {
	case Year:
		w.Year = value
	case Month:
		w.Month = value
	case Day:
		w.Day = value
	case Hour:
		w.Hour = value
	case Minute:
		w.Minute = value
	case Second:
		w.Second = value
	case Millisecond:
		w.Second += int(zone.FloorDiv(int64(value), MillisPerSecond))
		w.Millisecond = int(zone.FloorMod(int64(value), MillisPerSecond))
	default:
		return 0, unsupportedUnit("chronal.Set", unit)
	}
	return Instant(f.LocalizeFields(w)), nil
}

// Quarter returns 1-4 for i in the call's timezone
func (e *Engine) Quarter(i Instant, opts ...CallOption) (int, error) {
	p, err := e.PartsOf(i, opts...)
	if err != nil {
		return 0, err
	}
	return p.Quarter(), nil
}

// DaysInMonth returns the length of the month holding i
func (e *Engine) DaysInMonth(i Instant, opts ...CallOption) (int, error) {
	p, err := e.PartsOf(i, opts...)
	if err != nil {
		return 0, err
	}
	return p.DaysInMonth(), nil
}

// WeekOfYear returns the Monday based week number of i
func (e *Engine) WeekOfYear(i Instant, opts ...CallOption) (int, error) {
	p, err := e.PartsOf(i, opts...)
	if err != nil {
		return 0, err
	}
	return p.WeekOfYear(), nil
}

// IsLeapYear reports whether i falls into a leap year
func (e *Engine) IsLeapYear(i Instant, opts ...CallOption) (bool, error) {
	p, err := e.PartsOf(i, opts...)
	if err != nil {
		return false, err
	}
	return zone.IsLeap(p.Year), nil
}

// =============================================================================
// Default engine shortcuts
// =============================================================================

// PartsOf uses the default engine
func PartsOf(i Instant, opts ...CallOption) (Parts, error) {
	return Default().PartsOf(i, opts...)
}

// Get uses the default engine
func Get(i Instant, unit Unit, opts ...CallOption) (int, error) {
	return Default().Get(i, unit, opts...)
}

// Set uses the default engine
func Set(i Instant, unit Unit, value int, opts ...CallOption) (Instant, error) {
	return Default().Set(i, unit, value, opts...)
}

// YearOf returns the year of i
func YearOf(i Instant, opts ...CallOption) (int, error) { return Get(i, Year, opts...) }

// MonthOf returns the month (1-12) of i
func MonthOf(i Instant, opts ...CallOption) (int, error) { return Get(i, Month, opts...) }

// DayOf returns the day of month of i
func DayOf(i Instant, opts ...CallOption) (int, error) { return Get(i, Day, opts...) }

// HourOf returns the hour of i
func HourOf(i Instant, opts ...CallOption) (int, error) { return Get(i, Hour, opts...) }

// MinuteOf returns the minute of i
func MinuteOf(i Instant, opts ...CallOption) (int, error) { return Get(i, Minute, opts...) }

// SecondOf returns the second of i
func SecondOf(i Instant, opts ...CallOption) (int, error) { return Get(i, Second, opts...) }

// QuarterOf uses the default engine
func QuarterOf(i Instant, opts ...CallOption) (int, error) {
	return Default().Quarter(i, opts...)
}

// DaysInMonth uses the default engine
func DaysInMonth(i Instant, opts ...CallOption) (int, error) {
	return Default().DaysInMonth(i, opts...)
}

// WeekOfYear uses the default engine
func WeekOfYear(i Instant, opts ...CallOption) (int, error) {
	return Default().WeekOfYear(i, opts...)
}

// IsLeapYear uses the default engine
func IsLeapYear(i Instant, opts ...CallOption) (bool, error) {
	return Default().IsLeapYear(i, opts...)
}

// IsLeapYearNumber applies the Gregorian rule to a year number
func IsLeapYearNumber(year int) bool {
	return zone.IsLeap(year)
}
