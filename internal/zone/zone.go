// File: zone.go
// Title: Zone Wall-Clock Formatter
// Description: Renders epoch milliseconds as wall-clock fields in an IANA zone
//              and converts wall-clock fields back to an instant. The reverse
//              conversion bisects a 48 hour window and only relies on the
//              forward rendering. A wall time skipped by a DST gap resolves to
//              the first instant after the gap, a repeated wall time to its
//              earlier occurrence. Sub-day truncation uses the offset in
//              effect at the instant itself.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-02
// Modified: 2025-08-04
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation
// - 2025-08-04 v0.2.0: Repeated wall times resolve to the earlier occurrence,
//                      TruncateLocal for hour and minute spans

package zone

import (
	"strings"
	"time"

	chronerror "github.com/msto63/chronal/core/error"
)

// UTC is the privileged zone name with closed-form fast paths
const UTC = "UTC"

const (
	msPerSecond = int64(1000)
	msPerHour   = 3600 * msPerSecond
	msPerMinute = 60 * msPerSecond
	msPerDay    = 24 * msPerHour

	// searchHalfWindow covers every real UTC offset (-12h..+14h) on both sides
	searchHalfWindow = msPerDay

	// shiftReach bounds the distance between two occurrences of a wall time
	shiftReach = 3 * msPerHour
)

// Fields is a wall-clock reading of an instant in one zone. Month is 1-12.
type Fields struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
	Weekday     time.Weekday
}

// Encode packs the fields down to second precision into one comparable integer
func (f Fields) Encode() int64 {
	return Encode(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second)
}

// Encode packs wall-clock fields as year*1e10 + month*1e8 + day*1e6 +
// hour*1e4 + minute*100 + second. Ordering of the result follows wall-clock
// ordering for normalized fields.
func Encode(year, month, day, hour, minute, second int) int64 {
	return int64(year)*1e10 + int64(month)*1e8 + int64(day)*1e6 +
		int64(hour)*1e4 + int64(minute)*100 + int64(second)
}

// FieldsOf decomposes a time.Time in its own location
func FieldsOf(t time.Time) Fields {
	return Fields{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
		Weekday:     t.Weekday(),
	}
}

// UTCFields decomposes epoch milliseconds in UTC
func UTCFields(ms int64) Fields {
	return FieldsOf(time.UnixMilli(ms).UTC())
}

// Formatter renders instants in one (locale, zone) pair
type Formatter struct {
	locale string
	name   string
	loc    *time.Location
}

// NewFormatter loads the named zone. An empty name means UTC.
func NewFormatter(locale, name string) (*Formatter, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == UTC {
		return &Formatter{locale: locale, name: UTC, loc: time.UTC}, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, chronerror.Wrap(err, "unknown timezone").
			WithCode(chronerror.CodeInvalidTimezone).
			WithOperation("zone.NewFormatter").
			WithDetail("timezone", name)
	}
	return &Formatter{locale: locale, name: name, loc: loc}, nil
}

// Name returns the zone name
func (f *Formatter) Name() string { return f.name }

// Locale returns the locale the formatter was built for
func (f *Formatter) Locale() string { return f.locale }

// Location returns the loaded zone
func (f *Formatter) Location() *time.Location { return f.loc }

// IsUTC reports whether the formatter can use UTC fast paths
func (f *Formatter) IsUTC() bool { return f.name == UTC }

// Time returns the instant as a time.Time in the formatter's zone
func (f *Formatter) Time(ms int64) time.Time {
	return time.UnixMilli(ms).In(f.loc)
}

// Fields renders the instant as wall-clock fields in the zone
func (f *Formatter) Fields(ms int64) Fields {
	return FieldsOf(f.Time(ms))
}

// Offset returns the UTC offset in effect at ms, in milliseconds
func (f *Formatter) Offset(ms int64) int64 {
	if f.IsUTC() {
		return 0
	}
	_, off := f.Time(ms).Zone()
	return int64(off) * msPerSecond
}

// Localize returns the instant whose wall-clock reading in the zone matches
// the given fields. A repeated wall time yields its earlier occurrence, a
// skipped one the first instant after the gap. Out of range fields are
// normalized first (month 13 is January of the next year).
func (f *Formatter) Localize(year, month, day, hour, minute, second int) int64 {
	norm := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	if f.IsUTC() {
		return norm.UnixMilli()
	}

	target := FieldsOf(norm).Encode()
	estimate := norm.UnixMilli()
	lo, hi := estimate-searchHalfWindow, estimate+searchHalfWindow

	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if f.Fields(mid).Encode() < target {
			lo = mid
		} else {
			hi = mid
		}
	}

	// the bisection may have settled on the later of two matches
	wall := norm.UnixMilli()
	best := hi
	for _, near := range []int64{hi - shiftReach, hi + shiftReach} {
		c := wall - f.Offset(near)
		if c < best && f.Fields(c).Encode() == target {
			best = c
		}
	}
	return best
}

// TruncateLocal returns the start of the span (an hour, a minute) containing
// ms, measured on the wall clock at the offset in effect at ms. When the
// offset changes inside that span the span starts at the transition, so the
// result never lies after ms.
func (f *Formatter) TruncateLocal(ms, span int64) int64 {
	off := f.Offset(ms)
	start := ms - FloorMod(ms+off, span)
	if f.Offset(start) == off {
		return start
	}

	lo, hi := start, ms
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if f.Offset(mid) == off {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi
}

// LocalizeFields is Localize for a Fields value, carrying its milliseconds
func (f *Formatter) LocalizeFields(w Fields) int64 {
	return f.Localize(w.Year, w.Month, w.Day, w.Hour, w.Minute, w.Second) + int64(w.Millisecond)
}
