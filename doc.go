// Package chronal implements calendar arithmetic, timezone aware unit
// boundaries, pattern formatting and parsing for millisecond instants.
//
// Package: chronal
// Title: Date and Time Utilities
// Description: A functional API over epoch millisecond Instants plus an
//              immutable chainable Date. Calendar steps clamp the day of
//              month, boundaries are computed in any IANA zone and patterns
//              use the familiar YYYY-MM-DD token set.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-03
// Modified: 2025-08-03
//
// Change History:
// - 2025-08-03 v0.1.0: Initial implementation
//
// Package Overview:
//
// # Instants and Durations
//
// An Instant counts milliseconds since the Unix epoch in UTC. A Duration holds
// a calendar part (years, months) and a fixed part (weeks down to
// milliseconds):
//
//	i := chronal.DateUTC(2024, 1, 31, 12, 0, 0, 0)
//	chronal.AddTime(i, chronal.Duration{Months: 1})          // 2024-02-29T12:00:00.000Z
//	chronal.AddTime(i, chronal.Duration{Months: 1, Days: 3}) // 2024-03-03T12:00:00.000Z
//
// The calendar part is applied first and clamps the day to the target month.
// SubTime adds the negated Duration, so a month forward and back from Jan 31
// ends on Jan 29.
//
// # Boundaries
//
// StartOf and EndOf accept Second, Minute, Hour, Day, Week, Month, Quarter
// and Year. Weeks start on Monday. UTC uses closed form arithmetic, every
// other zone converts the truncated wall clock back to an instant by
// bisection, which handles DST gaps without an offset table:
//
//	start, _ := chronal.StartOf(i, chronal.Day, chronal.WithTimezone("America/Sao_Paulo"))
//
// # Formatting and Parsing
//
// Pattern tokens:
//
//	YYYY YY        year, two digit year
//	M MM MMM MMMM  month, padded, short name, long name
//	D DD Do        day of month, padded, ordinal
//	ddd dddd       short and long weekday name
//	H HH m mm s ss hour, minute, second (plain and padded)
//	SSS            milliseconds
//
// Text in [brackets] is copied verbatim. ParseDate understands YYYY MM DD HH
// mm ss SSS with WithPattern and otherwise tries common layouts, reading
// offset-less input as wall clock time in the configured zone. ParseNatural
// resolves English phrases such as "next friday at 5pm".
//
// # Configuration
//
// Package functions use Default(), an Engine with en-US and UTC. SetConfig
// changes its defaults, NewEngine and EngineFromConfig build independent
// engines with their own bounded caches:
//
//	cfg, _ := config.Load("chronal.toml")
//	engine, _ := chronal.EngineFromConfig(cfg)
//	s, _ := engine.FormatDate(i, "dddd, MMMM Do YYYY", chronal.WithLocale("de-DE"))
//
// # Errors
//
// Failures are *chronerror.Error values with a code: INVALID_DATE for text
// that cannot be parsed, UNSUPPORTED_UNIT for a unit an operation does not
// accept, EMPTY_INPUT for Min and Max without arguments, INVALID_TIMEZONE and
// INVALID_LOCALE for bad settings. IsInvalidDate and friends test for them.
//
// # Chainable Dates
//
//	d := chronal.New(i).In("Europe/Berlin").StartOf(chronal.Month).Add(chronal.Duration{Days: 14})
//	if err := d.Err(); err != nil { ... }
//	s, _ := d.Format(chronal.PatternDateTime)
package chronal
