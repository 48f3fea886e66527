// File: diff.go
// Title: Date Differences
// Description: Counts complete units between two instants. Years and months
//              are calendar units counted on the UTC calendar, shorter units
//              divide the millisecond delta.
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

// DateDiff returns the number of complete units from b to a (a - b). Years,
// quarters and months truncate toward zero: from Jan 31 to Feb 15 is 0
// months. Fixed units use floor division of the millisecond delta.
func DateDiff(a, b Instant, unit Unit) (int64, error) {
	switch unit {
	case Year:
		return calendarDiff(a, b, 12), nil
	case Quarter:
		return calendarDiff(a, b, 3), nil
	case Month:
		return calendarDiff(a, b, 1), nil
	}

	size := unit.fixedMillis()
	if size == 0 {
		return 0, unsupportedUnit("chronal.DateDiff", unit)
	}
	return zone.FloorDiv(int64(a-b), size), nil
}

// calendarDiff counts complete blocks of monthsPerUnit months from b to a
func calendarDiff(a, b Instant, monthsPerUnit int64) int64 {
	wa, wb := zone.UTCFields(int64(a)), zone.UTCFields(int64(b))

	months := int64(wa.Year-wb.Year)*12 + int64(wa.Month-wb.Month)
	units := months / monthsPerUnit

	shifted := func(n int64) int64 {
		return time.Date(wb.Year, time.Month(int64(wb.Month)+n*monthsPerUnit), wb.Day,
			wb.Hour, wb.Minute, wb.Second, wb.Millisecond*int(time.Millisecond), time.UTC).UnixMilli()
	}

	switch {
	case units > 0 && shifted(units) > int64(a):
		units--
	case units < 0 && shifted(units) < int64(a):
		units++
	}
	return units
}
