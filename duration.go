// File: duration.go
// Title: Calendar Duration
// Description: Duration is a semantic delta split into a calendar part (years
//              and months, resolved against the calendar with day clamping) and
//              a fixed part (weeks down to milliseconds, plain millisecond
//              arithmetic). Includes the compact "+1y2M3d" notation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-03
// Modified: 2025-08-03
//
// Change History:
// - 2025-08-03 v0.1.0: Initial implementation

package chronal

import (
	"regexp"
	"strconv"
	"strings"

	chronerror "github.com/msto63/chronal/core/error"
)

// Fixed unit lengths in milliseconds
const (
	MillisPerSecond int64 = 1000
	MillisPerMinute       = 60 * MillisPerSecond
	MillisPerHour         = 60 * MillisPerMinute
	MillisPerDay          = 24 * MillisPerHour
	MillisPerWeek         = 7 * MillisPerDay
)

// Duration is a delta to apply to an Instant. Unset fields are zero.
type Duration struct {
	Years        int64
	Months       int64
	Weeks        int64
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
}

// Negate returns the Duration with every field negated
func (d Duration) Negate() Duration {
	return Duration{
		Years:        -d.Years,
		Months:       -d.Months,
		Weeks:        -d.Weeks,
		Days:         -d.Days,
		Hours:        -d.Hours,
		Minutes:      -d.Minutes,
		Seconds:      -d.Seconds,
		Milliseconds: -d.Milliseconds,
	}
}

// IsZero reports whether every field is zero
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// HasCalendar reports whether years or months are set
func (d Duration) HasCalendar() bool {
	return d.Years != 0 || d.Months != 0
}

// FixedMillis sums weeks down to milliseconds into one millisecond delta
func (d Duration) FixedMillis() int64 {
	return d.Weeks*MillisPerWeek +
		d.Days*MillisPerDay +
		d.Hours*MillisPerHour +
		d.Minutes*MillisPerMinute +
		d.Seconds*MillisPerSecond +
		d.Milliseconds
}

// String renders the Duration in compact notation, "0d" when zero
func (d Duration) String() string {
	if d.IsZero() {
		return "0d"
	}

	var b strings.Builder
	write := func(n int64, suffix string) {
		if n == 0 {
			return
		}
		if n > 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.FormatInt(n, 10))
		b.WriteString(suffix)
	}
	write(d.Years, "y")
	write(d.Months, "M")
	write(d.Weeks, "w")
	write(d.Days, "d")
	write(d.Hours, "h")
	write(d.Minutes, "m")
	write(d.Seconds, "s")
	write(d.Milliseconds, "ms")
	return b.String()
}

// compactDurationRe matches one compact component: optional sign, digits, unit
var compactDurationRe = regexp.MustCompile(`([+-]?)(\d+)(ms|[yMwdhms])`)

// ParseDuration parses compact notation such as "+1y2M", "-3d" or
// "1w2d3h4m5s6ms". M is months, m is minutes. A sign applies to its
// component and every following one until the next sign.
func ParseDuration(s string) (Duration, error) {
	input := strings.TrimSpace(s)
	fail := func(msg string) (Duration, error) {
		return Duration{}, chronerror.New(msg).
			WithCode(chronerror.CodeInvalidInput).
			WithOperation("chronal.ParseDuration").
			WithDetail("input", s)
	}
	if input == "" {
		return fail("empty duration")
	}

	matches := compactDurationRe.FindAllStringSubmatchIndex(input, -1)
	if matches == nil {
		return fail("not a compact duration")
	}

	var d Duration
	sign := int64(1)
	pos := 0
	for _, m := range matches {
		if m[0] != pos {
			return fail("unexpected characters in duration")
		}
		pos = m[1]

		switch input[m[2]:m[3]] {
		case "-":
			sign = -1
		case "+":
			sign = 1
		}
		n, err := strconv.ParseInt(input[m[4]:m[5]], 10, 64)
		if err != nil {
			return fail("duration amount out of range")
		}
		n *= sign

		switch input[m[6]:m[7]] {
		case "y":
			d.Years += n
		case "M":
			d.Months += n
		case "w":
			d.Weeks += n
		case "d":
			d.Days += n
		case "h":
			d.Hours += n
		case "m":
			d.Minutes += n
		case "s":
			d.Seconds += n
		case "ms":
			d.Milliseconds += n
		}
	}
	if pos != len(input) {
		return fail("unexpected characters in duration")
	}
	return d, nil
}
