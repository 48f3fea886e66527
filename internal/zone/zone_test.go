// File: zone_test.go
// Title: Zone Formatter Tests
// Description: Tests for wall-clock rendering, binary search localization
//              across offsets and DST transitions, calendar helpers and the
//              formatter cache.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-02
// Modified: 2025-08-04
//
// Change History:
// - 2025-08-02 v0.1.0: Initial test implementation
// - 2025-08-04 v0.2.0: Earlier occurrence of repeated wall times, offset
//                      based truncation

package zone

import (
	"testing"
	"time"
	_ "time/tzdata"

	chronerror "github.com/msto63/chronal/core/error"
)

func mustMs(t *testing.T, s string) int64 {
	t.Helper()
	tm, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return tm.UnixMilli()
}

func TestEncodeOrdering(t *testing.T) {
	a := Encode(2024, 6, 15, 23, 59, 59)
	b := Encode(2024, 6, 16, 0, 0, 0)
	if a >= b {
		t.Errorf("Encode ordering broken: %d >= %d", a, b)
	}
	if got := Encode(2024, 1, 2, 3, 4, 5); got != 20240102030405 {
		t.Errorf("Encode = %d", got)
	}
}

func TestFormatterFields(t *testing.T) {
	f, err := NewFormatter("en-US", "America/Sao_Paulo")
	if err != nil {
		t.Fatalf("NewFormatter: %v", err)
	}

	got := f.Fields(mustMs(t, "2024-06-15T03:30:00.250Z"))
	want := Fields{Year: 2024, Month: 6, Day: 15, Hour: 0, Minute: 30, Second: 0, Millisecond: 250, Weekday: time.Saturday}
	if got != want {
		t.Errorf("Fields = %+v, want %+v", got, want)
	}
	if f.IsUTC() {
		t.Error("Sao_Paulo formatter reports UTC")
	}
}

func TestLocalize(t *testing.T) {
	testCases := []struct {
		name   string
		zone   string
		fields [6]int
		want   string
	}{
		{"utc fast path", "UTC", [6]int{2024, 6, 15, 0, 0, 0}, "2024-06-15T00:00:00Z"},
		{"sao paulo midnight", "America/Sao_Paulo", [6]int{2024, 6, 15, 0, 0, 0}, "2024-06-15T03:00:00Z"},
		{"tokyo", "Asia/Tokyo", [6]int{2024, 1, 1, 9, 0, 0}, "2024-01-01T00:00:00Z"},
		{"kiritimati +14", "Pacific/Kiritimati", [6]int{2024, 1, 1, 0, 0, 0}, "2023-12-31T10:00:00Z"},
		{"berlin summer", "Europe/Berlin", [6]int{2024, 7, 1, 12, 0, 0}, "2024-07-01T10:00:00Z"},
		{"berlin spring gap", "Europe/Berlin", [6]int{2024, 3, 31, 2, 30, 0}, "2024-03-31T01:00:00Z"},
		{"normalizes month 13", "UTC", [6]int{2024, 13, 1, 0, 0, 0}, "2025-01-01T00:00:00Z"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewFormatter("en-US", tc.zone)
			if err != nil {
				t.Fatalf("NewFormatter(%s): %v", tc.zone, err)
			}
			got := f.Localize(tc.fields[0], tc.fields[1], tc.fields[2], tc.fields[3], tc.fields[4], tc.fields[5])
			if want := mustMs(t, tc.want); got != want {
				t.Errorf("Localize = %s, want %s", time.UnixMilli(got).UTC().Format(time.RFC3339Nano), tc.want)
			}
		})
	}
}

func TestLocalizeRepeatedWallTime(t *testing.T) {
	testCases := []struct {
		zone   string
		fields [6]int
		want   string
	}{
		{"Europe/Berlin", [6]int{2024, 10, 27, 2, 30, 0}, "2024-10-27T00:30:00Z"},
		{"America/New_York", [6]int{2024, 11, 3, 1, 0, 0}, "2024-11-03T05:00:00Z"},
		{"America/New_York", [6]int{2024, 11, 3, 1, 59, 59}, "2024-11-03T05:59:59Z"},
		{"Australia/Lord_Howe", [6]int{2024, 4, 7, 1, 45, 0}, "2024-04-06T14:45:00Z"},
	}

	for _, tc := range testCases {
		t.Run(tc.zone, func(t *testing.T) {
			f, err := NewFormatter("en-US", tc.zone)
			if err != nil {
				t.Fatalf("NewFormatter: %v", err)
			}
			got := f.Localize(tc.fields[0], tc.fields[1], tc.fields[2], tc.fields[3], tc.fields[4], tc.fields[5])
			if want := mustMs(t, tc.want); got != want {
				t.Errorf("Localize(%v) = %s, want %s", tc.fields, time.UnixMilli(got).UTC().Format(time.RFC3339Nano), tc.want)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	f, _ := NewFormatter("en-US", "America/New_York")
	if got := f.Offset(mustMs(t, "2024-11-03T05:59:59.999Z")); got != -4*msPerHour {
		t.Errorf("Offset before fall back = %d", got)
	}
	if got := f.Offset(mustMs(t, "2024-11-03T06:00:00Z")); got != -5*msPerHour {
		t.Errorf("Offset after fall back = %d", got)
	}
	utc, _ := NewFormatter("en-US", "")
	if got := utc.Offset(mustMs(t, "2024-06-15T12:00:00Z")); got != 0 {
		t.Errorf("UTC offset = %d", got)
	}
}

func TestTruncateLocal(t *testing.T) {
	testCases := []struct {
		name string
		zone string
		at   string
		span int64
		want string
	}{
		{"first pass of repeated hour", "America/New_York", "2024-11-03T05:30:30Z", msPerHour, "2024-11-03T05:00:00Z"},
		{"second pass of repeated hour", "America/New_York", "2024-11-03T06:30:30Z", msPerHour, "2024-11-03T06:00:00Z"},
		{"minute in repeated hour", "America/New_York", "2024-11-03T05:30:30Z", msPerMinute, "2024-11-03T05:30:00Z"},
		{"hour after spring forward", "America/New_York", "2024-03-10T07:30:00Z", msPerHour, "2024-03-10T07:00:00Z"},
		{"quarter hour offset", "Asia/Kathmandu", "2024-06-15T03:30:00Z", msPerHour, "2024-06-15T03:15:00Z"},
		{"half hour shift starts at the transition", "Australia/Lord_Howe", "2024-04-06T15:15:00Z", msPerHour, "2024-04-06T15:00:00Z"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewFormatter("en-US", tc.zone)
			if err != nil {
				t.Fatalf("NewFormatter: %v", err)
			}
			ms := mustMs(t, tc.at)
			got := f.TruncateLocal(ms, tc.span)
			if want := mustMs(t, tc.want); got != want {
				t.Errorf("TruncateLocal = %s, want %s", time.UnixMilli(got).UTC().Format(time.RFC3339Nano), tc.want)
			}
			if got > ms {
				t.Errorf("TruncateLocal result lies after the input")
			}
		})
	}
}

func TestLocalizeRoundTrip(t *testing.T) {
	for _, name := range []string{"America/New_York", "Australia/Lord_Howe", "Asia/Kathmandu", "America/Sao_Paulo"} {
		f, err := NewFormatter("en-US", name)
		if err != nil {
			t.Fatalf("NewFormatter(%s): %v", name, err)
		}
		start := mustMs(t, "2024-01-01T00:00:00Z")
		for ms := start; ms < start+365*msPerDay; ms += 7*msPerHour + 13*60*1000 {
			w := f.Fields(ms)
			got := f.LocalizeFields(w)
			if f.Fields(got) != w {
				t.Fatalf("%s: round trip of %+v gave %+v", name, w, f.Fields(got))
			}
		}
	}
}

func TestNewFormatterErrors(t *testing.T) {
	if _, err := NewFormatter("en-US", "Mars/Olympus"); !chronerror.HasCode(err, chronerror.CodeInvalidTimezone) {
		t.Errorf("unknown zone error = %v", err)
	}
	f, err := NewFormatter("en-US", "")
	if err != nil || !f.IsUTC() {
		t.Errorf("empty zone should be UTC, got %v %v", f, err)
	}
}

func TestCalendarHelpers(t *testing.T) {
	for year, want := range map[int]bool{2000: true, 2024: true, 1900: false, 2023: false, 2100: false, 2400: true} {
		if got := IsLeap(year); got != want {
			t.Errorf("IsLeap(%d) = %v, want %v", year, got, want)
		}
	}

	testCases := []struct{ year, month, want int }{
		{2024, 2, 29}, {2023, 2, 28}, {2024, 4, 30}, {2024, 12, 31}, {2024, 13, 0},
	}
	for _, tc := range testCases {
		if got := DaysIn(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysIn(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}

	if FloorDiv(-1, 1000) != -1 || FloorDiv(1999, 1000) != 1 || FloorMod(-1, 7) != 6 {
		t.Error("floor helpers disagree with floor semantics")
	}
	if MondayIndex(int(time.Monday)) != 0 || MondayIndex(int(time.Sunday)) != 6 {
		t.Error("MondayIndex mapping broken")
	}
}

func TestCache(t *testing.T) {
	c, err := NewCache(2, nil)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	a, err := c.Get("en-US", "Asia/Tokyo")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	b, _ := c.Get("en-US", "Asia/Tokyo")
	if a != b {
		t.Error("second Get returned a different formatter")
	}
	if s := c.Stats(); s.Hits != 1 || s.Misses != 1 {
		t.Errorf("Stats = %+v", s)
	}

	if _, err := c.Get("en-US", "Nowhere/Special"); !chronerror.HasCode(err, chronerror.CodeInvalidTimezone) {
		t.Errorf("bad zone error = %v", err)
	}
	if f, _ := c.Get("de", ""); f.Name() != UTC || f.Locale() != "de" {
		t.Errorf("empty zone resolved to %s/%s", f.Name(), f.Locale())
	}
}
