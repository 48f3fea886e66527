// File: date.go
// Title: Chainable Date
// Description: Date is an immutable value wrapping an Instant together with a
//              timezone and the engine that evaluates it. Every method returns
//              a new Date. The first failing step is remembered and turns the
//              rest of the chain into no-ops, Err reports it. A failed Date
//              passed as an argument fails the operation as well.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-03
// Modified: 2025-08-04
//
// Change History:
// - 2025-08-03 v0.1.0: Initial implementation
// - 2025-08-04 v0.2.0: Errors of Date arguments propagate

package chronal

import (
	"time"
)

// Date is a chainable, immutable date value
type Date struct {
	instant Instant
	tz      string
	engine  *Engine
	err     error
}

// New wraps an Instant using the default engine and its timezone
func New(i Instant) Date {
	return Date{instant: i, engine: Default()}
}

// Of wraps a time.Time
func Of(t time.Time) Date {
	return New(FromTime(t))
}

// Parse parses text with the default engine. On failure the returned Date
// carries the error.
func Parse(text string, opts ...CallOption) Date {
	d := New(0)
	d.instant, d.err = d.eng().ParseDate(text, opts...)
	return d
}

// Today is the start of the current day in the default timezone
func Today() Date {
	return New(Now()).StartOf(Day)
}

// For wraps an Instant evaluated by e
func (e *Engine) For(i Instant) Date {
	return Date{instant: i, engine: e}
}

// eng lets the zero Date work against the default engine
func (d Date) eng() *Engine {
	if d.engine == nil {
		return Default()
	}
	return d.engine
}

func (d Date) opts() []CallOption {
	if d.tz == "" {
		return nil
	}
	return []CallOption{WithTimezone(d.tz)}
}

// firstErr returns the first sticky error among d and the arguments
func (d Date) firstErr(args ...Date) error {
	if d.err != nil {
		return d.err
	}
	for _, a := range args {
		if a.err != nil {
			return a.err
		}
	}
	return nil
}

func (d Date) with(i Instant, err error) Date {
	if err != nil {
		d.err = err
		return d
	}
	d.instant = i
	return d
}

// In returns the same instant evaluated in another timezone
func (d Date) In(tz string) Date {
	if d.err != nil {
		return d
	}
	if _, err := d.eng().zones.Get(d.eng().Settings().Locale, tz); err != nil {
		d.err = err
		return d
	}
	d.tz = tz
	return d
}

// Add applies a Duration
func (d Date) Add(delta Duration) Date {
	if d.err != nil {
		return d
	}
	return d.with(AddTime(d.instant, delta), nil)
}

// Sub applies the negation of a Duration
func (d Date) Sub(delta Duration) Date {
	if d.err != nil {
		return d
	}
	return d.with(SubTime(d.instant, delta), nil)
}

// StartOf moves to the start of unit in the Date's timezone
func (d Date) StartOf(unit Unit) Date {
	if d.err != nil {
		return d
	}
	return d.with(d.eng().StartOf(d.instant, unit, d.opts()...))
}

// EndOf moves to the end of unit in the Date's timezone
func (d Date) EndOf(unit Unit) Date {
	if d.err != nil {
		return d
	}
	return d.with(d.eng().EndOf(d.instant, unit, d.opts()...))
}

// Set replaces one calendar field
func (d Date) Set(unit Unit, value int) Date {
	if d.err != nil {
		return d
	}
	return d.with(d.eng().Set(d.instant, unit, value, d.opts()...))
}

// Clamp limits the Date to [lo, hi]
func (d Date) Clamp(lo, hi Date) Date {
	if err := d.firstErr(lo, hi); err != nil {
		d.err = err
		return d
	}
	return d.with(Clamp(d.instant, lo.instant, hi.instant), nil)
}

// Format renders the Date with a token pattern
func (d Date) Format(pattern string, opts ...CallOption) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	return d.eng().FormatDate(d.instant, pattern, append(d.opts(), opts...)...)
}

// FromNow describes the Date relative to now
func (d Date) FromNow(opts ...CallOption) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	return d.eng().FromNow(d.instant, append(d.opts(), opts...)...)
}

// ToNow describes the distance from now to the Date
func (d Date) ToNow(opts ...CallOption) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	return d.eng().ToNow(d.instant, append(d.opts(), opts...)...)
}

// Diff counts complete units from other to d
func (d Date) Diff(other Date, unit Unit) (int64, error) {
	if err := d.firstErr(other); err != nil {
		return 0, err
	}
	return DateDiff(d.instant, other.instant, unit)
}

// IsAfter reports whether d is later than other. It is false when either
// carries an error.
func (d Date) IsAfter(other Date) bool {
	return d.firstErr(other) == nil && IsAfter(d.instant, other.instant)
}

// IsBefore reports whether d is earlier than other. It is false when either
// carries an error.
func (d Date) IsBefore(other Date) bool {
	return d.firstErr(other) == nil && IsBefore(d.instant, other.instant)
}

// IsEqual reports whether d and other are the same millisecond. It is false
// when either carries an error.
func (d Date) IsEqual(other Date) bool {
	return d.firstErr(other) == nil && IsEqual(d.instant, other.instant)
}

// IsBetween reports whether d lies between start and end. It is false when
// any of them carries an error.
func (d Date) IsBetween(start, end Date, inclusivity Inclusivity) bool {
	return d.firstErr(start, end) == nil && IsBetween(d.instant, start.instant, end.instant, inclusivity)
}

// IsSame reports whether d and other share unit in d's timezone
func (d Date) IsSame(other Date, unit Unit) (bool, error) {
	if err := d.firstErr(other); err != nil {
		return false, err
	}
	return d.eng().IsSame(d.instant, other.instant, unit, d.opts()...)
}

// IsToday reports whether d falls on the current day
func (d Date) IsToday() (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.eng().IsToday(d.instant, d.opts()...)
}

// IsTomorrow reports whether d falls on the next day
func (d Date) IsTomorrow() (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.eng().IsTomorrow(d.instant, d.opts()...)
}

// IsYesterday reports whether d falls on the previous day
func (d Date) IsYesterday() (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.eng().IsYesterday(d.instant, d.opts()...)
}

// IsLeapYear reports whether d falls into a leap year
func (d Date) IsLeapYear() (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.eng().IsLeapYear(d.instant, d.opts()...)
}

// Get returns one calendar field
func (d Date) Get(unit Unit) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	return d.eng().Get(d.instant, unit, d.opts()...)
}

// Parts returns all calendar fields
func (d Date) Parts() (Parts, error) {
	if d.err != nil {
		return Parts{}, d.err
	}
	return d.eng().PartsOf(d.instant, d.opts()...)
}

// Quarter returns 1-4
func (d Date) Quarter() (int, error) {
	return d.Get(Quarter)
}

// DaysInMonth returns the length of d's month
func (d Date) DaysInMonth() (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	return d.eng().DaysInMonth(d.instant, d.opts()...)
}

// Week returns the Monday based week of the year
func (d Date) Week() (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	return d.eng().WeekOfYear(d.instant, d.opts()...)
}

// Until returns the series from d to end inclusive, keeping d's timezone
func (d Date) Until(end Date, step Duration) ([]Date, error) {
	if err := d.firstErr(end); err != nil {
		return nil, err
	}
	instants, err := DateRange(d.instant, end.instant, step)
	if err != nil {
		return nil, err
	}
	out := make([]Date, len(instants))
	for n, i := range instants {
		out[n] = d.with(i, nil)
	}
	return out, nil
}

// Instant returns the wrapped Instant
func (d Date) Instant() Instant { return d.instant }

// Time returns the Date as a time.Time in its timezone
func (d Date) Time() time.Time {
	f, _, err := d.eng().formatter(d.opts())
	if err != nil {
		return d.instant.Time()
	}
	return f.Time(int64(d.instant))
}

// Zone returns the Date's timezone, the engine default when none was set
func (d Date) Zone() string {
	if d.tz != "" {
		return d.tz
	}
	return d.eng().Settings().Timezone
}

// Err returns the first error of the chain
func (d Date) Err() error { return d.err }

// String renders the instant in ISO-8601 UTC
func (d Date) String() string { return d.instant.String() }
