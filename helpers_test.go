// File: helpers_test.go
// Title: Shared Test Helpers
// Description: Instant parsing and engine construction helpers used across
//              the package tests.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-03
// Modified: 2025-08-03
//
// Change History:
// - 2025-08-03 v0.1.0: Initial implementation

package chronal

import (
	"testing"
	"time"
)

// at parses an RFC 3339 timestamp into an Instant
func at(t *testing.T, s string) Instant {
	t.Helper()
	tm, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return FromTime(tm)
}

// newTestEngine builds an isolated engine with default settings
func newTestEngine(t *testing.T, opts ...EngineOption) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultSettings(), opts...)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

// fixedClock returns a clock frozen at s
func fixedClock(t *testing.T, s string) func() time.Time {
	t.Helper()
	tm, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return func() time.Time { return tm }
}
