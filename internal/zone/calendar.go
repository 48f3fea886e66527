// File: calendar.go
// Title: Proleptic Gregorian Helpers
// Description: Leap year and month length rules shared by arithmetic,
//              boundaries and getters.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package zone

// IsLeap reports whether year is a Gregorian leap year
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysIn returns the number of days in month (1-12) of year
func DaysIn(year, month int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	if month < 1 || month > 12 {
		return 0
	}
	return monthDays[month]
}

// MondayIndex maps a weekday to 0 for Monday through 6 for Sunday
func MondayIndex(wd int) int {
	return (wd + 6) % 7
}

// FloorDiv divides rounding toward negative infinity
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod is the remainder matching FloorDiv, always in [0, b) for b > 0
func FloorMod(a, b int64) int64 {
	return a - FloorDiv(a, b)*b
}
