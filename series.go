// File: series.go
// Title: Date Series
// Description: Generates the instants from a start to an end (inclusive) at a
//              fixed or calendar step. Calendar steps are recomputed from the
//              start each time, so a monthly series from Jan 31 visits the
//              last day of every shorter month without drifting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-03
// Modified: 2025-08-04
//
// Change History:
// - 2025-08-03 v0.1.0: Initial implementation
// - 2025-08-04 v0.2.0: Documented mixed step semantics

package chronal

import (
	chronerror "github.com/msto63/chronal/core/error"
)

// MaxRangeLength bounds the number of instants DateRange produces
const MaxRangeLength = 1 << 20

// DateRange returns start, start+step, ... up to and including end. A zero
// step means one day. Element n is start moved by n times the calendar part
// of step, then by n times its fixed part, so a step of one month and one
// day yields Jan 31, Mar 1 (Feb 29 plus one day), Apr 2. An end before start yields an empty series. A step
// that does not move forward, or a series longer than MaxRangeLength, is
// INVALID_INPUT.
func DateRange(start, end Instant, step Duration) ([]Instant, error) {
	if step.IsZero() {
		step = Duration{Days: 1}
	}
	fail := func(msg string) ([]Instant, error) {
		return nil, chronerror.New(msg).
			WithCode(chronerror.CodeInvalidInput).
			WithOperation("chronal.DateRange").
			WithDetail("step", step.String())
	}

	months := step.Years*12 + step.Months
	fixed := step.FixedMillis()
	if months < 0 || (months == 0 && fixed <= 0) {
		return fail("step does not advance")
	}

	out := []Instant{}
	current := start
	for n := int64(1); current <= end; n++ {
		if len(out) >= MaxRangeLength {
			return fail("series too long")
		}
		out = append(out, current)

		next := Instant(addMonths(int64(start), n*months) + n*fixed)
		if next <= current {
			return fail("step does not advance")
		}
		current = next
	}
	return out, nil
}
