// File: relative.go
// Title: Now-Relative Helpers
// Description: Calendar day checks against the engine clock and humanized
//              distances such as "3 days ago" or "in 2 hours" in the call's
//              locale. These helpers read the clock and are therefore not
//              deterministic unless the engine has a fixed clock.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-03
// Modified: 2025-08-03
//
// Change History:
// - 2025-08-03 v0.1.0: Initial implementation

package chronal

import (
	"github.com/msto63/chronal/internal/locale"
)

// NumericMode selects numeric ("in 1 day") or idiomatic ("tomorrow") phrases
type NumericMode = locale.NumericMode

const (
	NumericAlways = locale.Always
	NumericAuto   = locale.Auto
)

// ParseNumericMode accepts "always" or "auto"; empty means always
func ParseNumericMode(s string) (NumericMode, error) {
	return locale.ParseNumericMode(s)
}

// dayOffset reports whether i falls on the calendar day offset days away
// from today in the call's timezone
func (e *Engine) dayOffset(i Instant, offset int, opts []CallOption) (bool, error) {
	f, _, err := e.formatter(opts)
	if err != nil {
		return false, err
	}
	now := f.Fields(int64(e.Now()))
	target := f.Fields(f.Localize(now.Year, now.Month, now.Day+offset, 12, 0, 0))
	w := f.Fields(int64(i))
	return w.Year == target.Year && w.Month == target.Month && w.Day == target.Day, nil
}

// IsToday reports whether i falls on the current calendar day
func (e *Engine) IsToday(i Instant, opts ...CallOption) (bool, error) {
	return e.dayOffset(i, 0, opts)
}

// IsTomorrow reports whether i falls on the next calendar day
func (e *Engine) IsTomorrow(i Instant, opts ...CallOption) (bool, error) {
	return e.dayOffset(i, 1, opts)
}

// IsYesterday reports whether i falls on the previous calendar day
func (e *Engine) IsYesterday(i Instant, opts ...CallOption) (bool, error) {
	return e.dayOffset(i, -1, opts)
}

// Relative renders amount units as a phrase, negative amounts lie in the past
func (e *Engine) Relative(amount int64, unit Unit, numeric NumericMode, opts ...CallOption) (string, error) {
	s, _ := e.resolve(opts)
	rf, err := e.relativeFormatter(s.Locale, numeric)
	if err != nil {
		return "", err
	}
	return rf.Format(amount, string(unit))
}

// humanize picks the largest whole unit of a signed distance in
// milliseconds, positive distances lie in the future
func (e *Engine) humanize(distance int64, opts []CallOption) (string, error) {
	abs := distance
	if abs < 0 {
		abs = -abs
	}
	seconds := abs / MillisPerSecond
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24
	months := days / 30
	years := days / 365

	if seconds < 60 {
		return e.Relative(0, Second, NumericAuto, opts...)
	}

	amount, unit := max(years, 1), Year
	switch {
	case minutes < 60:
		amount, unit = minutes, Minute
	case hours < 24:
		amount, unit = hours, Hour
	case days < 30:
		amount, unit = days, Day
	case months < 12:
		amount, unit = months, Month
	}
	if distance < 0 {
		amount = -amount
	}
	return e.Relative(amount, unit, NumericAlways, opts...)
}

// FromNow describes i relative to now: "3 days ago", "in 2 hours". Anything
// within a minute is "just now" in English.
func (e *Engine) FromNow(i Instant, opts ...CallOption) (string, error) {
	return e.humanize(int64(i-e.Now()), opts)
}

// ToNow measures from now to i and phrases the result like FromNow
func (e *Engine) ToNow(i Instant, opts ...CallOption) (string, error) {
	return e.humanize(int64(i-e.Now()), opts)
}

// IsToday uses the default engine
func IsToday(i Instant, opts ...CallOption) (bool, error) { return Default().IsToday(i, opts...) }

// IsTomorrow uses the default engine
func IsTomorrow(i Instant, opts ...CallOption) (bool, error) { return Default().IsTomorrow(i, opts...) }

// IsYesterday uses the default engine
func IsYesterday(i Instant, opts ...CallOption) (bool, error) { return Default().IsYesterday(i, opts...) }

// FromNow uses the default engine
func FromNow(i Instant, opts ...CallOption) (string, error) { return Default().FromNow(i, opts...) }

// ToNow uses the default engine
func ToNow(i Instant, opts ...CallOption) (string, error) { return Default().ToNow(i, opts...) }

// Relative uses the default engine
func Relative(amount int64, unit Unit, numeric NumericMode, opts ...CallOption) (string, error) {
	return Default().Relative(amount, unit, numeric, opts...)
}
