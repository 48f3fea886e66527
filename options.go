// File: options.go
// Title: Engine and Call Options
// Description: Functional options for building an Engine and for overriding
//              the zone, locale or parse pattern of a single call.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-03
// Modified: 2025-08-03
//
// Change History:
// - 2025-08-03 v0.1.0: Initial implementation

package chronal

import (
	"time"

	"github.com/msto63/chronal/core/log"
)

// Default settings
const (
	DefaultLocale   = "en-US"
	DefaultTimezone = "UTC"

	DefaultFormatterCacheSize = 256
	DefaultPatternCacheSize   = 1024
)

// Settings are the defaults an engine applies when a call does not override them
type Settings struct {
	Locale   string `json:"locale" yaml:"locale" toml:"locale"`
	Timezone string `json:"timezone" yaml:"timezone" toml:"timezone"`
}

// DefaultSettings returns en-US / UTC
func DefaultSettings() Settings {
	return Settings{Locale: DefaultLocale, Timezone: DefaultTimezone}
}

// merge overlays the non-empty fields of update
func (s Settings) merge(update Settings) Settings {
	if update.Locale != "" {
		s.Locale = update.Locale
	}
	if update.Timezone != "" {
		s.Timezone = update.Timezone
	}
	return s
}

type engineOptions struct {
	logger         *log.Logger
	clock          func() time.Time
	formatterCache int
	patternCache   int
	localeFiles    []string
}

// EngineOption configures an Engine
type EngineOption func(*engineOptions)

// WithLogger sets the engine logger. Engines are silent by default.
func WithLogger(logger *log.Logger) EngineOption {
	return func(o *engineOptions) { o.logger = logger }
}

// WithClock replaces time.Now for the "now" relative helpers
func WithClock(clock func() time.Time) EngineOption {
	return func(o *engineOptions) { o.clock = clock }
}

// WithCacheSize bounds the formatter and compiled pattern caches.
// Non-positive values keep the defaults.
func WithCacheSize(formatters, patterns int) EngineOption {
	return func(o *engineOptions) {
		if formatters > 0 {
			o.formatterCache = formatters
		}
		if patterns > 0 {
			o.patternCache = patterns
		}
	}
}

// WithLocaleFiles loads additional TOML or YAML locale catalogs
func WithLocaleFiles(paths ...string) EngineOption {
	return func(o *engineOptions) { o.localeFiles = append(o.localeFiles, paths...) }
}

type callOptions struct {
	timezone string
	locale   string
	pattern  string
}

// CallOption overrides engine settings for one call
type CallOption func(*callOptions)

// WithTimezone evaluates the call in the named IANA zone
func WithTimezone(tz string) CallOption {
	return func(o *callOptions) { o.timezone = tz }
}

// WithLocale renders names and phrases in the given BCP 47 locale
func WithLocale(locale string) CallOption {
	return func(o *callOptions) { o.locale = locale }
}

// WithPattern makes ParseDate match a token pattern such as "YYYY-MM-DD"
func WithPattern(pattern string) CallOption {
	return func(o *callOptions) { o.pattern = pattern }
}

func collect(opts []CallOption) callOptions {
	var o callOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
