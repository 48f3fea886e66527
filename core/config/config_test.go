// File: config_test.go
// Title: Configuration Tests
// Description: Tests for TOML/YAML loading, defaults, environment overrides,
//              validation and file watching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2025-08-02 v0.2.0: Settings view, validation rules and fsnotify watch tests

package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	chronerror "github.com/msto63/chronal/core/error"
)

const sampleTOML = `
locale = "de-DE"
timezone = "Europe/Berlin"

[cache]
patterns = 64

[log]
level = "debug"
`

const sampleYAML = `
locale: pt-BR
timezone: America/Sao_Paulo
cache:
  formatters: 32
log:
  format: json
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadTOMLMergesDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "chronal.toml", sampleTOML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	s := cfg.Settings()
	want := Settings{
		Locale:         "de-DE",
		Timezone:       "Europe/Berlin",
		FormatterCache: 256,
		PatternCache:   64,
		LogLevel:       "debug",
		LogFormat:      "text",
	}
	if s != want {
		t.Errorf("Settings() = %+v, want %+v", s, want)
	}
	if cfg.Format() != FormatTOML {
		t.Errorf("Format() = %s", cfg.Format())
	}
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "chronal.yaml", sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	s := cfg.Settings()
	if s.Locale != "pt-BR" || s.Timezone != "America/Sao_Paulo" {
		t.Errorf("unexpected settings %+v", s)
	}
	if s.FormatterCache != 32 || s.PatternCache != 1024 {
		t.Errorf("cache sizes = %d/%d", s.FormatterCache, s.PatternCache)
	}
	if s.LogFormat != "json" || s.LogLevel != "warn" {
		t.Errorf("log settings = %s/%s", s.LogLevel, s.LogFormat)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); !chronerror.HasCode(err, chronerror.CodeMissingConfig) {
		t.Errorf("empty path error = %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !chronerror.HasCode(err, chronerror.CodeNotFound) {
		t.Errorf("missing file error = %v", err)
	}
	if _, err := Load(writeFile(t, "broken.toml", "locale = ")); !chronerror.HasCode(err, chronerror.CodeInvalidConfig) {
		t.Errorf("broken file error = %v", err)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("CHRONAL_TIMEZONE", "Asia/Tokyo")
	t.Setenv("CHRONAL_CACHE_PATTERNS", "9")

	cfg, err := Load(writeFile(t, "chronal.toml", sampleTOML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if tz := cfg.GetString(KeyTimezone); tz != "Asia/Tokyo" {
		t.Errorf("timezone = %s, want Asia/Tokyo", tz)
	}
	if n := cfg.GetInt(KeyCachePatterns); n != 9 {
		t.Errorf("cache.patterns = %d, want 9", n)
	}

	fromString, err := LoadFromString(sampleTOML, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString: %v", err)
	}
	if tz := fromString.GetString(KeyTimezone); tz != "Europe/Berlin" {
		t.Errorf("LoadFromString should ignore the environment, got %s", tz)
	}
}

func TestGettersAndSet(t *testing.T) {
	cfg := Empty()
	cfg.Set("watch.enabled", true)
	cfg.Set("watch.delay", "2s")

	if !cfg.GetBool("watch.enabled") {
		t.Error("GetBool(watch.enabled) = false")
	}
	if d := cfg.GetDuration("watch.delay"); d != 2*time.Second {
		t.Errorf("GetDuration = %v", d)
	}
	if got := cfg.GetString("nope", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q", got)
	}
	if !cfg.Has("cache.formatters") || cfg.Has("cache.nothing") {
		t.Error("Has reports wrong presence")
	}

	keys := strings.Join(cfg.Keys(), ",")
	if !strings.Contains(keys, "cache.patterns") || !strings.Contains(keys, "watch.delay") {
		t.Errorf("Keys() = %s", keys)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		valid   bool
		mention string
	}{
		{"valid", sampleTOML, true, ""},
		{"bad timezone", `timezone = "Mars/Olympus"`, false, "timezone"},
		{"bad locale", `locale = "!!"`, false, "locale"},
		{"bad level", "[log]\nlevel = \"loud\"", false, "log.level"},
		{"cache too small", "[cache]\npatterns = 0", false, "cache.patterns"},
		{"cache wrong type", "[cache]\nformatters = \"many\"", false, "cache.formatters"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadFromString(tc.content, FormatTOML)
			if err != nil {
				t.Fatalf("LoadFromString: %v", err)
			}
			result := cfg.Validate(DefaultRules())
			if result.Valid != tc.valid {
				t.Fatalf("Valid = %v, errors %v", result.Valid, result.Errors)
			}
			if tc.valid {
				if result.Err() != nil {
					t.Errorf("Err() = %v for valid config", result.Err())
				}
				return
			}
			if !strings.Contains(strings.Join(result.Errors, ";"), tc.mention) {
				t.Errorf("errors %v do not mention %s", result.Errors, tc.mention)
			}
			if !chronerror.HasCode(result.Err(), chronerror.CodeInvalidConfig) {
				t.Errorf("Err() = %v, want INVALID_CONFIG", result.Err())
			}
		})
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := writeFile(t, "chronal.toml", sampleTOML)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type change struct {
		oldTZ, newTZ string
		err          error
	}
	changes := make(chan change, 4)
	err = cfg.WatchWithDebounce(ctx, 50*time.Millisecond, func(old, current *Config, err error) {
		changes <- change{old.GetString(KeyTimezone), current.GetString(KeyTimezone), err}
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	updated := strings.Replace(sampleTOML, "Europe/Berlin", "Asia/Tokyo", 1)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case c := <-changes:
		if c.err != nil {
			t.Fatalf("reload error: %v", c.err)
		}
		if c.oldTZ != "Europe/Berlin" || c.newTZ != "Asia/Tokyo" {
			t.Errorf("change = %+v", c)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}
}

func TestWatchRequiresFile(t *testing.T) {
	if err := Empty().Watch(context.Background(), nil); !chronerror.HasCode(err, chronerror.CodeMissingConfig) {
		t.Errorf("Watch on in-memory config = %v", err)
	}
	if err := Empty().Reload(); !chronerror.HasCode(err, chronerror.CodeMissingConfig) {
		t.Errorf("Reload on in-memory config = %v", err)
	}
}
