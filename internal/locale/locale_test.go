// File: locale_test.go
// Title: Locale Catalog Tests
// Description: Tests for embedded catalogs, BCP 47 matching, name lookups,
//              ordinals and relative phrasing.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial test implementation

package locale

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	chronerror "github.com/msto63/chronal/core/error"
)

func TestEmbeddedLanguages(t *testing.T) {
	got := Default().Languages()
	want := []string{"de", "en", "es", "pt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Languages() = %v, want %v", got, want)
	}
}

func TestResolve(t *testing.T) {
	testCases := []struct {
		locale  string
		tag     string
		matched bool
	}{
		{"en-US", "en", true},
		{"pt-BR", "pt", true},
		{"de-AT", "de", true},
		{"es-MX", "es", true},
		{"", "en", true},
		{"ja-JP", "en", false},
	}

	for _, tc := range testCases {
		t.Run(tc.locale, func(t *testing.T) {
			data, matched, err := Default().Resolve(tc.locale)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tc.locale, err)
			}
			if data.Tag != tc.tag || matched != tc.matched {
				t.Errorf("Resolve(%q) = %s/%v, want %s/%v", tc.locale, data.Tag, matched, tc.tag, tc.matched)
			}
		})
	}

	if _, _, err := Default().Resolve("not a locale!"); !chronerror.HasCode(err, chronerror.CodeInvalidLocale) {
		t.Errorf("malformed locale error = %v", err)
	}
}

func TestNames(t *testing.T) {
	testCases := []struct {
		unit   string
		style  Style
		locale string
		index  int
		want   string
		length int
	}{
		{"month", Long, "en-US", 0, "January", 12},
		{"month", Short, "en-US", 11, "Dec", 12},
		{"month", Narrow, "en-US", 4, "M", 12},
		{"month", Long, "pt-BR", 2, "março", 12},
		{"weekday", Long, "en-US", 0, "Monday", 7},
		{"weekday", Short, "de-DE", 6, "So.", 7},
		{"weekday", Long, "es", 2, "miércoles", 7},
	}

	for _, tc := range testCases {
		names, err := Default().Names(tc.unit, tc.style, tc.locale)
		if err != nil {
			t.Fatalf("Names(%s, %s, %s): %v", tc.unit, tc.style, tc.locale, err)
		}
		if len(names) != tc.length || names[tc.index] != tc.want {
			t.Errorf("Names(%s, %s, %s)[%d] = %q (len %d), want %q", tc.unit, tc.style, tc.locale, tc.index, names[tc.index], len(names), tc.want)
		}
	}

	names, _ := Default().Names("month", Long, "en")
	names[0] = "changed"
	again, _ := Default().Names("month", Long, "en")
	if again[0] != "January" {
		t.Error("Names returned a shared slice")
	}

	if _, err := Default().Names("year", Long, "en"); !chronerror.HasCode(err, chronerror.CodeUnsupportedUnit) {
		t.Errorf("Names(year) error = %v", err)
	}
}

func TestOrdinal(t *testing.T) {
	en, _, _ := Default().Resolve("en")
	de, _, _ := Default().Resolve("de")
	pt, _, _ := Default().Resolve("pt")

	testCases := []struct {
		data *Data
		n    int
		want string
	}{
		{en, 1, "1st"}, {en, 2, "2nd"}, {en, 3, "3rd"}, {en, 11, "11th"}, {en, 22, "22nd"},
		{de, 5, "5."},
		{pt, 1, "1º"},
	}
	for _, tc := range testCases {
		if got := tc.data.OrdinalOf(tc.n); got != tc.want {
			t.Errorf("%s OrdinalOf(%d) = %q, want %q", tc.data.Tag, tc.n, got, tc.want)
		}
	}
}

func TestRelativeFormatter(t *testing.T) {
	testCases := []struct {
		locale  string
		numeric NumericMode
		amount  int64
		unit    string
		want    string
	}{
		{"en", Always, 3, "day", "in 3 days"},
		{"en", Always, -1, "hour", "1 hour ago"},
		{"en", Always, 1, "day", "in 1 day"},
		{"en", Auto, 1, "day", "tomorrow"},
		{"en", Auto, -1, "day", "yesterday"},
		{"en", Auto, 0, "second", "just now"},
		{"en", Auto, 5, "minute", "in 5 minutes"},
		{"de", Always, -2, "day", "vor 2 Tagen"},
		{"de", Auto, 1, "year", "nächstes Jahr"},
		{"pt-BR", Always, 2, "month", "em 2 meses"},
		{"es", Always, -1, "week", "hace 1 semana"},
	}

	for _, tc := range testCases {
		f, err := Default().NewRelativeFormatter(tc.locale, tc.numeric)
		if err != nil {
			t.Fatalf("NewRelativeFormatter(%s): %v", tc.locale, err)
		}
		got, err := f.Format(tc.amount, tc.unit)
		if err != nil {
			t.Fatalf("Format(%d, %s): %v", tc.amount, tc.unit, err)
		}
		if got != tc.want {
			t.Errorf("%s/%s Format(%d, %s) = %q, want %q", tc.locale, tc.numeric, tc.amount, tc.unit, got, tc.want)
		}
	}

	f, _ := Default().NewRelativeFormatter("en", Always)
	if _, err := f.Format(1, "millisecond"); !chronerror.HasCode(err, chronerror.CodeUnsupportedUnit) {
		t.Errorf("Format(millisecond) error = %v", err)
	}
}

func TestParseStyleAndMode(t *testing.T) {
	if s, err := ParseStyle(""); err != nil || s != Long {
		t.Errorf("ParseStyle(\"\") = %s, %v", s, err)
	}
	if _, err := ParseStyle("wide"); err == nil {
		t.Error("ParseStyle(wide) should fail")
	}
	if m, err := ParseNumericMode("AUTO"); err != nil || m != Auto {
		t.Errorf("ParseNumericMode(AUTO) = %s, %v", m, err)
	}
	if _, err := ParseNumericMode("sometimes"); err == nil {
		t.Error("ParseNumericMode(sometimes) should fail")
	}
}

func TestLoadFileRegistersLanguage(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	var b strings.Builder
	b.WriteString("tag: fr\nmonths:\n  long: [janvier, février, mars, avril, mai, juin, juillet, août, septembre, octobre, novembre, décembre]\n")
	b.WriteString("  short: [janv., févr., mars, avr., mai, juin, juil., août, sept., oct., nov., déc.]\n")
	b.WriteString("  narrow: [J, F, M, A, M, J, J, A, S, O, N, D]\n")
	b.WriteString("weekdays:\n  long: [lundi, mardi, mercredi, jeudi, vendredi, samedi, dimanche]\n")
	b.WriteString("  short: [lun., mar., mer., jeu., ven., sam., dim.]\n")
	b.WriteString("  narrow: [L, M, M, J, V, S, D]\n")
	b.WriteString("relative:\n  now: maintenant\n  past: il y a %s\n  future: dans %s\n")
	b.WriteString("  units:\n    day: {one: \"%d jour\", other: \"%d jours\"}\n")

	path := filepath.Join(t.TempDir(), "fr.yaml")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := c.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	names, err := c.Names("month", Long, "fr-CA")
	if err != nil || names[0] != "janvier" {
		t.Errorf("fr-CA month names = %v, %v", names, err)
	}
	rf, _ := c.NewRelativeFormatter("fr", Always)
	if got, _ := rf.Format(-3, "day"); got != "il y a 3 jours" {
		t.Errorf("fr relative = %q", got)
	}

	if _, matched, _ := Default().Resolve("fr"); matched {
		t.Error("registering on a private catalog leaked into Default()")
	}
}

func TestRegisterRejectsIncompleteData(t *testing.T) {
	c, _ := NewCatalog()
	bad := &Data{Tag: "xx", Months: NameSet{Long: []string{"one"}}}
	if err := c.Register(bad); !chronerror.HasCode(err, chronerror.CodeInvalidLocale) {
		t.Errorf("Register(incomplete) = %v", err)
	}
	if err := c.Register(nil); !chronerror.HasCode(err, chronerror.CodeInvalidInput) {
		t.Errorf("Register(nil) = %v", err)
	}
}
