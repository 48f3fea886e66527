// File: instant.go
// Title: Instant Value Type
// Description: Instant is the single representation of a point in time passed
//              between all engine functions: milliseconds since the Unix epoch
//              in UTC. Every operation returns a new Instant.
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
)

// ISOLayout renders an Instant as ISO-8601 UTC with milliseconds
const ISOLayout = "2006-01-02T15:04:05.000Z"

// Instant is a count of milliseconds since 1970-01-01T00:00:00Z
type Instant int64

// UnixMilli returns the Instant for ms milliseconds since the epoch
func UnixMilli(ms int64) Instant {
	return Instant(ms)
}

// FromTime converts a time.Time, truncating to millisecond precision
func FromTime(t time.Time) Instant {
	return Instant(t.UnixMilli())
}

// DateUTC returns the Instant of a UTC wall-clock reading. Out of range values
// roll over the way time.Date normalizes them.
func DateUTC(year, month, day, hour, minute, second, millisecond int) Instant {
	return FromTime(time.Date(year, time.Month(month), day, hour, minute, second,
		millisecond*int(time.Millisecond), time.UTC))
}

// Now returns the current Instant from the default engine clock
func Now() Instant {
	return Default().Now()
}

// UnixMilli returns the raw millisecond count
func (i Instant) UnixMilli() int64 {
	return int64(i)
}

// Time returns the Instant as a UTC time.Time
func (i Instant) Time() time.Time {
	return time.UnixMilli(int64(i)).UTC()
}

// In returns the Instant as a time.Time in loc
func (i Instant) In(loc *time.Location) time.Time {
	return time.UnixMilli(int64(i)).In(loc)
}

// String renders the Instant as "2006-01-02T15:04:05.000Z"
func (i Instant) String() string {
	return i.Time().Format(ISOLayout)
}

// Add returns the Instant shifted by a fixed number of milliseconds
func (i Instant) Add(ms int64) Instant {
	return i + Instant(ms)
}

// Before reports whether i is strictly earlier than other
func (i Instant) Before(other Instant) bool { return i < other }

// After reports whether i is strictly later than other
func (i Instant) After(other Instant) bool { return i > other }
