// File: unit.go
// Title: Time Units
// Description: The closed set of units accepted by boundaries, differences,
//              getters and setters, with parsing of singular, plural and
//              short spellings.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-03
// Modified: 2025-08-03
//
// Change History:
// - 2025-08-03 v0.1.0: Initial implementation

package chronal

import (
	"strings"

	chronerror "github.com/msto63/chronal/core/error"
)

// Unit names a calendar or clock unit
type Unit string

const (
	Millisecond Unit = "millisecond"
	Second      Unit = "second"
	Minute      Unit = "minute"
	Hour        Unit = "hour"
	Day         Unit = "day"
	Week        Unit = "week"
	Month       Unit = "month"
	Quarter     Unit = "quarter"
	Year        Unit = "year"

	// Weekday is only understood by getters (0 = Sunday)
	Weekday Unit = "weekday"
)

var unitAliases = map[string]Unit{
	"ms": Millisecond, "millisecond": Millisecond, "milliseconds": Millisecond,
	"s": Second, "sec": Second, "second": Second, "seconds": Second,
	"m": Minute, "min": Minute, "minute": Minute, "minutes": Minute,
	"h": Hour, "hr": Hour, "hour": Hour, "hours": Hour,
	"d": Day, "day": Day, "days": Day, "date": Day,
	"w": Week, "week": Week, "weeks": Week,
	"M": Month, "mo": Month, "month": Month, "months": Month,
	"q": Quarter, "quarter": Quarter, "quarters": Quarter,
	"y": Year, "yr": Year, "year": Year, "years": Year,
	"weekday": Weekday, "dow": Weekday,
}

// ParseUnit accepts "day", "days", "d" and similar spellings. Lookup is
// case-insensitive except for the single letters "M" (month) and "m"
// (minute).
func ParseUnit(s string) (Unit, error) {
	trimmed := strings.TrimSpace(s)
	if u, ok := unitAliases[trimmed]; ok {
		return u, nil
	}
	if u, ok := unitAliases[strings.ToLower(trimmed)]; ok && len(trimmed) > 1 {
		return u, nil
	}
	return "", unsupportedUnit("chronal.ParseUnit", Unit(s))
}

// String returns the unit name
func (u Unit) String() string {
	return string(u)
}

// fixedMillis is the length of units that never vary; 0 for calendar units
func (u Unit) fixedMillis() int64 {
	switch u {
	case Millisecond:
		return 1
	case Second:
		return MillisPerSecond
	case Minute:
		return MillisPerMinute
	case Hour:
		return MillisPerHour
	case Day:
		return MillisPerDay
	case Week:
		return MillisPerWeek
	}
	return 0
}

func unsupportedUnit(operation string, u Unit) error {
	return chronerror.New("unsupported unit").
		WithCode(chronerror.CodeUnsupportedUnit).
		WithOperation(operation).
		WithDetail("unit", string(u))
}
