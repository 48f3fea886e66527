// File: engine_test.go
// Title: Engine Tests
// Description: Tests for engine construction, configuration updates, locale
//              files, the process-wide default and concurrent use.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-03
// Modified: 2025-08-03
//
// Change History:
// - 2025-08-03 v0.1.0: Initial test implementation

package chronal

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/msto63/chronal/core/config"
	chronerror "github.com/msto63/chronal/core/error"
	"github.com/msto63/chronal/core/log"
)

func TestNewEngine(t *testing.T) {
	testCases := []struct {
		name     string
		settings Settings
		want     Settings
		wantCode chronerror.Code
	}{
		{"defaults", Settings{}, DefaultSettings(), ""},
		{"custom", Settings{Locale: "de-DE", Timezone: "Europe/Berlin"}, Settings{Locale: "de-DE", Timezone: "Europe/Berlin"}, ""},
		{"trimmed", Settings{Locale: " pt-BR ", Timezone: " America/Sao_Paulo "}, Settings{Locale: "pt-BR", Timezone: "America/Sao_Paulo"}, ""},
		{"bad timezone", Settings{Timezone: "Mars/Base"}, Settings{}, chronerror.CodeInvalidTimezone},
		{"bad locale", Settings{Locale: "not a locale!"}, Settings{}, chronerror.CodeInvalidLocale},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := NewEngine(tc.settings)
			if tc.wantCode != "" {
				if !chronerror.HasCode(err, tc.wantCode) {
					t.Fatalf("NewEngine error = %v, want %s", err, tc.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewEngine: %v", err)
			}
			if got := e.Settings(); got != tc.want {
				t.Errorf("Settings = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSetConfigIsAtomic(t *testing.T) {
	e := newTestEngine(t)

	if err := e.SetConfig(Settings{Timezone: "Asia/Tokyo"}); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if got := e.Settings(); got.Timezone != "Asia/Tokyo" || got.Locale != DefaultLocale {
		t.Errorf("Settings = %+v", got)
	}

	err := e.SetConfig(Settings{Locale: "de", Timezone: "Nowhere/Town"})
	if !IsInvalidTimezone(err) {
		t.Fatalf("SetConfig error = %v", err)
	}
	if got := e.Settings(); got.Locale != DefaultLocale || got.Timezone != "Asia/Tokyo" {
		t.Errorf("rejected update leaked into settings: %+v", got)
	}

	s, _ := e.FormatDate(at(t, "2024-06-15T20:00:00Z"), PatternISODate)
	if s != "2024-06-16" {
		t.Errorf("FormatDate uses engine zone: got %q", s)
	}
}

func TestEngineFromConfig(t *testing.T) {
	cfg, err := config.LoadFromString(`
locale = "de-DE"
timezone = "Europe/Berlin"

[cache]
formatters = 8
patterns = 16

[log]
level = "off"
`, config.FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString: %v", err)
	}

	e, err := EngineFromConfig(cfg)
	if err != nil {
		t.Fatalf("EngineFromConfig: %v", err)
	}
	if got := e.Settings(); got.Locale != "de-DE" || got.Timezone != "Europe/Berlin" {
		t.Errorf("Settings = %+v", got)
	}

	s, err := e.FormatDate(at(t, "2024-06-05T22:30:00Z"), "dddd HH:mm")
	if err != nil || s != "Donnerstag 00:30" {
		t.Errorf("FormatDate = %q, %v", s, err)
	}
}

func TestEngineFromConfigInvalid(t *testing.T) {
	cfg, err := config.LoadFromString("timezone = \"Nowhere/Town\"\n", config.FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString: %v", err)
	}
	if _, err := EngineFromConfig(cfg); !chronerror.HasCode(err, chronerror.CodeInvalidConfig) {
		t.Errorf("EngineFromConfig error = %v, want INVALID_CONFIG", err)
	}

	e, err := EngineFromConfig(nil)
	if err != nil {
		t.Fatalf("EngineFromConfig(nil): %v", err)
	}
	if e.Settings() != DefaultSettings() {
		t.Errorf("Settings = %+v", e.Settings())
	}
}

const frenchLocale = `tag: fr
ordinal: "%de"
months:
  long: [janvier, février, mars, avril, mai, juin, juillet, août, septembre, octobre, novembre, décembre]
  short: [janv., févr., mars, avr., mai, juin, juil., août, sept., oct., nov., déc.]
  narrow: [J, F, M, A, M, J, J, A, S, O, N, D]
weekdays:
  long: [lundi, mardi, mercredi, jeudi, vendredi, samedi, dimanche]
  short: [lun., mar., mer., jeu., ven., sam., dim.]
  narrow: [L, M, M, J, V, S, D]
relative:
  now: maintenant
  past: il y a %s
  future: dans %s
  units:
    hour: {one: "%d heure", other: "%d heures"}
    day: {one: "%d jour", other: "%d jours"}
`

func TestWithLocaleFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fr.yaml")
	if err := os.WriteFile(path, []byte(frenchLocale), 0o644); err != nil {
		t.Fatal(err)
	}

	e := newTestEngine(t, WithLocaleFiles(path))
	s, err := e.FormatDate(at(t, "2024-06-05T12:00:00Z"), "dddd D MMMM", WithLocale("fr-FR"))
	if err != nil || s != "mercredi 5 juin" {
		t.Errorf("FormatDate(fr) = %q, %v", s, err)
	}
	phrase, err := e.Relative(-2, Hour, NumericAlways, WithLocale("fr"))
	if err != nil || phrase != "il y a 2 heures" {
		t.Errorf("Relative(fr) = %q, %v", phrase, err)
	}

	langs := strings.Join(e.Languages(), ",")
	if !strings.Contains(langs, "fr") {
		t.Errorf("Languages = %s", langs)
	}
	if other := strings.Join(newTestEngine(t).Languages(), ","); strings.Contains(other, "fr") {
		t.Errorf("locale file leaked into the shared catalog: %s", other)
	}

	if _, err := NewEngine(DefaultSettings(), WithLocaleFiles(filepath.Join(t.TempDir(), "missing.yaml"))); err == nil {
		t.Error("NewEngine with a missing locale file should fail")
	}
}

func TestEngineLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatJSON, Output: &buf})
	e := newTestEngine(t, WithLogger(logger))

	if err := e.SetConfig(Settings{Timezone: "Europe/Paris"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "settings updated") || !strings.Contains(out, "Europe/Paris") {
		t.Errorf("log output = %q", out)
	}
	if !strings.Contains(out, `"logger":"chronal"`) {
		t.Errorf("engine logger name missing: %q", out)
	}
}

func TestDefaultEngine(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	if err := SetConfig(Settings{Timezone: "Asia/Tokyo"}); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if CurrentConfig().Timezone != "Asia/Tokyo" {
		t.Errorf("CurrentConfig = %+v", CurrentConfig())
	}
	s, _ := FormatDate(at(t, "2024-06-15T20:00:00Z"), PatternISODate)
	if s != "2024-06-16" {
		t.Errorf("FormatDate with default engine = %q", s)
	}

	custom := newTestEngine(t, WithClock(fixedClock(t, "2024-06-15T12:00:00Z")))
	SetDefault(custom)
	if Default() != custom {
		t.Fatal("SetDefault did not replace the engine")
	}
	if Now() != at(t, "2024-06-15T12:00:00Z") {
		t.Errorf("Now = %s", Now())
	}

	SetDefault(nil)
	if CurrentConfig() != DefaultSettings() {
		t.Errorf("reset default settings = %+v", CurrentConfig())
	}
}

func TestEngineConcurrentUse(t *testing.T) {
	e := newTestEngine(t, WithCacheSize(4, 4))
	zones := []string{"UTC", "Europe/Berlin", "Asia/Tokyo", "America/New_York", "Asia/Kathmandu", "Australia/Adelaide"}
	d := at(t, "2024-06-15T12:00:00Z")

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				zone := zones[(g+n)%len(zones)]
				pattern := fmt.Sprintf("YYYY-MM-DD [%d]", n%7)
				if _, err := e.FormatDate(d, pattern, WithTimezone(zone)); err != nil {
					errs <- err
					return
				}
				if _, err := e.StartOf(d, Week, WithTimezone(zone)); err != nil {
					errs <- err
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	formatters, patterns := e.CacheStats()
	if formatters.Size > 4 || patterns.Size > 4 {
		t.Errorf("caches exceed their bounds: %+v %+v", formatters, patterns)
	}
}
