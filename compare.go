// File: compare.go
// Title: Comparisons
// Description: Ordering, range membership, unit granular equality and
//              reductions over instants.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-03
// Modified: 2025-08-03
//
// Change History:
// - 2025-08-03 v0.1.0: Initial implementation

package chronal

import (
	chronerror "github.com/msto63/chronal/core/error"
)

// Inclusivity selects open or closed bounds for IsBetween
type Inclusivity string

const (
	Closed     Inclusivity = "[]"
	Open       Inclusivity = "()"
	ClosedOpen Inclusivity = "[)"
	OpenClosed Inclusivity = "(]"
)

// ParseInclusivity accepts "[]", "()", "[)" and "(]"; empty means "[]"
func ParseInclusivity(s string) (Inclusivity, error) {
	switch Inclusivity(s) {
	case "", Closed:
		return Closed, nil
	case Open, ClosedOpen, OpenClosed:
		return Inclusivity(s), nil
	}
	return "", chronerror.New("unknown inclusivity").
		WithCode(chronerror.CodeInvalidInput).
		WithOperation("chronal.ParseInclusivity").
		WithDetail("inclusivity", s)
}

// IsAfter reports whether a is strictly later than b
func IsAfter(a, b Instant) bool { return a > b }

// IsBefore reports whether a is strictly earlier than b
func IsBefore(a, b Instant) bool { return a < b }

// IsEqual reports whether a and b are the same millisecond
func IsEqual(a, b Instant) bool { return a == b }

// IsBetween reports whether d lies between start and end. Reversed bounds
// are swapped. Unknown inclusivity values behave as Closed.
func IsBetween(d, start, end Instant, inclusivity Inclusivity) bool {
	lo, hi := start, end
	if lo > hi {
		lo, hi = hi, lo
	}
	switch inclusivity {
	case Open:
		return d > lo && d < hi
	case ClosedOpen:
		return d >= lo && d < hi
	case OpenClosed:
		return d > lo && d <= hi
	default:
		return d >= lo && d <= hi
	}
}

// IsSame reports whether a and b fall into the same unit in the call's
// timezone. Weeks start on Monday.
func (e *Engine) IsSame(a, b Instant, unit Unit, opts ...CallOption) (bool, error) {
	if unit == Millisecond {
		return a == b, nil
	}
	f, _, err := e.formatter(opts)
	if err != nil {
		return false, err
	}
	sa, err := startOf(f, a, unit)
	if err != nil {
		return false, unsupportedUnit("chronal.IsSame", unit)
	}
	sb, _ := startOf(f, b, unit)
	return sa == sb, nil
}

// IsSame uses the default engine
func IsSame(a, b Instant, unit Unit, opts ...CallOption) (bool, error) {
	return Default().IsSame(a, b, unit, opts...)
}

// Min returns the earliest instant. No arguments is EMPTY_INPUT.
func Min(instants ...Instant) (Instant, error) {
	if len(instants) == 0 {
		return 0, emptyInput("chronal.Min")
	}
	m := instants[0]
	for _, i := range instants[1:] {
		if i < m {
			m = i
		}
	}
	return m, nil
}

// Max returns the latest instant. No arguments is EMPTY_INPUT.
func Max(instants ...Instant) (Instant, error) {
	if len(instants) == 0 {
		return 0, emptyInput("chronal.Max")
	}
	m := instants[0]
	for _, i := range instants[1:] {
		if i > m {
			m = i
		}
	}
	return m, nil
}

// ClosestTo returns the candidate nearest to target, the first one on a tie.
// The bool is false when candidates is empty.
func ClosestTo(target Instant, candidates []Instant) (Instant, bool) {
	if len(candidates) == 0 {
		return 0, false
	}
	best := candidates[0]
	bestDiff := absDiff(best, target)
	for _, c := range candidates[1:] {
		if d := absDiff(c, target); d < bestDiff {
			best, bestDiff = c, d
		}
	}
	return best, true
}

// Clamp limits d to [lo, hi]
func Clamp(d, lo, hi Instant) Instant {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}

func absDiff(a, b Instant) int64 {
	if a > b {
		return int64(a - b)
	}
	return int64(b - a)
}

func emptyInput(operation string) error {
	return chronerror.New("at least one instant is required").
		WithCode(chronerror.CodeEmptyInput).
		WithOperation(operation)
}
