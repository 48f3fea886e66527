// File: relative_test.go
// Title: Relative Phrase Tests
// Description: Tests for humanized distances, explicit relative phrases in
//              several languages and the today, tomorrow and yesterday
//              checks.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-03
// Modified: 2025-08-03
//
// Change History:
// - 2025-08-03 v0.1.0: Initial test implementation

package chronal

import (
	"testing"
)

const relativeNow = "2024-06-15T12:00:00Z"

func TestFromNow(t *testing.T) {
	e := newTestEngine(t, WithClock(fixedClock(t, relativeNow)))
	now := at(t, relativeNow)

	testCases := []struct {
		name   string
		offset int64
		want   string
	}{
		{"seconds ahead", 30 * MillisPerSecond, "just now"},
		{"seconds behind", -59 * MillisPerSecond, "just now"},
		{"exactly now", 0, "just now"},
		{"minutes behind", -5 * MillisPerMinute, "5 minutes ago"},
		{"one minute ahead", MillisPerMinute, "in 1 minute"},
		{"hours behind", -3 * MillisPerHour, "3 hours ago"},
		{"almost a day", 23*MillisPerHour + 59*MillisPerMinute, "in 23 hours"},
		{"one day behind", -MillisPerDay, "1 day ago"},
		{"days ahead", 3 * MillisPerDay, "in 3 days"},
		{"month behind", -45 * MillisPerDay, "1 month ago"},
		{"months ahead", 200 * MillisPerDay, "in 6 months"},
		{"short of a year", 362 * MillisPerDay, "in 1 year"},
		{"year behind", -400 * MillisPerDay, "1 year ago"},
		{"years ahead", 3 * 365 * MillisPerDay, "in 3 years"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.FromNow(now.Add(tc.offset))
			if err != nil {
				t.Fatalf("FromNow: %v", err)
			}
			if got != tc.want {
				t.Errorf("FromNow(now%+dms) = %q, want %q", tc.offset, got, tc.want)
			}
			same, _ := e.ToNow(now.Add(tc.offset))
			if same != got {
				t.Errorf("ToNow = %q, FromNow = %q", same, got)
			}
		})
	}
}

func TestFromNowLocalized(t *testing.T) {
	e := newTestEngine(t, WithClock(fixedClock(t, relativeNow)))
	now := at(t, relativeNow)

	testCases := []struct {
		locale string
		offset int64
		want   string
	}{
		{"de-DE", -3 * MillisPerHour, "vor 3 Stunden"},
		{"de", 2 * MillisPerDay, "in 2 Tagen"},
		{"es-MX", -14 * MillisPerDay, "hace 14 días"},
		{"pt-BR", 10 * MillisPerSecond, "agora"},
		{"pt", -MillisPerDay, "há 1 dia"},
	}

	for _, tc := range testCases {
		t.Run(tc.locale, func(t *testing.T) {
			got, err := e.FromNow(now.Add(tc.offset), WithLocale(tc.locale))
			if err != nil {
				t.Fatalf("FromNow: %v", err)
			}
			if got != tc.want {
				t.Errorf("FromNow in %s = %q, want %q", tc.locale, got, tc.want)
			}
		})
	}
}

func TestRelative(t *testing.T) {
	e := newTestEngine(t)

	testCases := []struct {
		amount  int64
		unit    Unit
		numeric NumericMode
		locale  string
		want    string
	}{
		{-1, Day, NumericAuto, "en", "yesterday"},
		{1, Day, NumericAuto, "en", "tomorrow"},
		{1, Day, NumericAlways, "en", "in 1 day"},
		{2, Week, NumericAuto, "en", "in 2 weeks"},
		{0, Year, NumericAuto, "en", "this year"},
		{3, Quarter, NumericAlways, "en", "in 3 quarters"},
		{-2, Week, NumericAlways, "es", "hace 2 semanas"},
		{1, Week, NumericAuto, "de", "nächste Woche"},
		{-1, Day, NumericAuto, "pt", "ontem"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			got, err := e.Relative(tc.amount, tc.unit, tc.numeric, WithLocale(tc.locale))
			if err != nil {
				t.Fatalf("Relative: %v", err)
			}
			if got != tc.want {
				t.Errorf("Relative(%d, %s, %s) = %q, want %q", tc.amount, tc.unit, tc.numeric, got, tc.want)
			}
		})
	}

	if _, err := e.Relative(1, Millisecond, NumericAlways); !IsUnsupportedUnit(err) {
		t.Errorf("Relative(millisecond) error = %v", err)
	}
}

func TestParseNumericMode(t *testing.T) {
	for input, want := range map[string]NumericMode{"": NumericAlways, "always": NumericAlways, "AUTO": NumericAuto} {
		got, err := ParseNumericMode(input)
		if err != nil || got != want {
			t.Errorf("ParseNumericMode(%q) = %q, %v", input, got, err)
		}
	}
	if _, err := ParseNumericMode("sometimes"); err == nil {
		t.Error("ParseNumericMode(sometimes) should fail")
	}
}

func TestDayChecks(t *testing.T) {
	e := newTestEngine(t, WithClock(fixedClock(t, "2024-06-15T20:00:00Z")))

	testCases := []struct {
		name      string
		date      string
		zone      string
		today     bool
		tomorrow  bool
		yesterday bool
	}{
		{"same day", "2024-06-15T00:00:00Z", "UTC", true, false, false},
		{"next day", "2024-06-16T23:59:59Z", "UTC", false, true, false},
		{"previous day", "2024-06-14T00:00:00Z", "UTC", false, false, true},
		{"two days out", "2024-06-17T00:00:00Z", "UTC", false, false, false},
		{"tokyo is already tomorrow", "2024-06-16T10:00:00Z", "Asia/Tokyo", true, false, false},
		{"tokyo yesterday", "2024-06-15T10:00:00Z", "Asia/Tokyo", false, false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := at(t, tc.date)
			opt := WithTimezone(tc.zone)
			today, err := e.IsToday(d, opt)
			if err != nil {
				t.Fatalf("IsToday: %v", err)
			}
			tomorrow, _ := e.IsTomorrow(d, opt)
			yesterday, _ := e.IsYesterday(d, opt)
			if today != tc.today || tomorrow != tc.tomorrow || yesterday != tc.yesterday {
				t.Errorf("today/tomorrow/yesterday = %v/%v/%v, want %v/%v/%v",
					today, tomorrow, yesterday, tc.today, tc.tomorrow, tc.yesterday)
			}
		})
	}
}
