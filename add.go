// File: add.go
// Title: Calendar Arithmetic
// Description: Adds and subtracts Durations. Years and months are resolved on
//              the UTC calendar first with the day clamped to the target
//              month, the fixed part is then added as plain milliseconds.
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

// AddTime applies d to i. Jan 31 plus one month is the last day of February,
// the time of day is kept. The calendar step always runs before the fixed
// step, so {Months: 1, Days: 3} from Jan 31 2024 lands on Mar 3.
func AddTime(i Instant, d Duration) Instant {
	ms := int64(i)
	if d.HasCalendar() {
		ms = addMonths(ms, d.Years*12+d.Months)
	}
	return Instant(ms + d.FixedMillis())
}

// SubTime applies the negation of d. Because of day clamping a round trip is
// not guaranteed: Jan 31 + 1 month - 1 month is Jan 29 in a leap year.
func SubTime(i Instant, d Duration) Instant {
	return AddTime(i, d.Negate())
}

// addMonths moves ms by a number of calendar months on the UTC calendar
func addMonths(ms int64, months int64) int64 {
	w := zone.UTCFields(ms)

	total := int64(w.Month-1) + months
	year := int64(w.Year) + zone.FloorDiv(total, 12)
	month := int(zone.FloorMod(total, 12)) + 1

	day := w.Day
	if last := zone.DaysIn(int(year), month); day > last {
		day = last
	}

	return time.Date(int(year), time.Month(month), day,
		w.Hour, w.Minute, w.Second, w.Millisecond*int(time.Millisecond), time.UTC).UnixMilli()
}
