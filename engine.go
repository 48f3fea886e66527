// File: engine.go
// Title: Date Engine
// Description: The Engine owns the default locale and timezone together with
//              the formatter, pattern and relative phrase caches. Package level
//              functions delegate to a process-wide default engine, separate
//              engines can be created for tests or tenants with their own
//              defaults.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-03
// Modified: 2025-08-03
//
// Change History:
// - 2025-08-03 v0.1.0: Initial implementation

package chronal

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	_ "time/tzdata"

	"github.com/msto63/chronal/core/config"
	chronerror "github.com/msto63/chronal/core/error"
	"github.com/msto63/chronal/core/log"
	"github.com/msto63/chronal/internal/locale"
	"github.com/msto63/chronal/internal/memo"
	"github.com/msto63/chronal/internal/zone"
)

// Engine evaluates date operations against its settings and caches
type Engine struct {
	mu       sync.RWMutex
	settings Settings

	zones    *zone.Cache
	programs *memo.Cache[*program]
	parsers  *memo.Cache[*patternParser]
	relative *memo.Cache[*locale.RelativeFormatter]
	catalog  *locale.Catalog

	logger *log.Logger
	clock  func() time.Time
}

// NewEngine creates an engine. Empty settings fields take the defaults. An
// unknown timezone fails with INVALID_TIMEZONE, a malformed locale with
// INVALID_LOCALE.
func NewEngine(settings Settings, opts ...EngineOption) (*Engine, error) {
	o := engineOptions{
		formatterCache: DefaultFormatterCacheSize,
		patternCache:   DefaultPatternCacheSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = log.Discard()
	}
	if o.clock == nil {
		o.clock = time.Now
	}

	catalog := locale.Default()
	if len(o.localeFiles) > 0 {
		private, err := locale.NewCatalog()
		if err != nil {
			return nil, err
		}
		for _, path := range o.localeFiles {
			if err := private.LoadFile(path); err != nil {
				return nil, err
			}
		}
		catalog = private
	}

	logger := o.logger.WithName("chronal")
	zones, err := zone.NewCache(o.formatterCache, logger)
	if err != nil {
		return nil, chronerror.Wrap(err, "creating formatter cache").
			WithCode(chronerror.CodeInternal).
			WithOperation("chronal.NewEngine")
	}
	programs, err := memo.New[*program](o.patternCache)
	if err != nil {
		return nil, chronerror.Wrap(err, "creating pattern cache").
			WithCode(chronerror.CodeInternal).
			WithOperation("chronal.NewEngine")
	}
	parsers, err := memo.New[*patternParser](o.patternCache)
	if err != nil {
		return nil, chronerror.Wrap(err, "creating parser cache").
			WithCode(chronerror.CodeInternal).
			WithOperation("chronal.NewEngine")
	}
	relative, err := memo.New[*locale.RelativeFormatter](o.formatterCache)
	if err != nil {
		return nil, chronerror.Wrap(err, "creating relative formatter cache").
			WithCode(chronerror.CodeInternal).
			WithOperation("chronal.NewEngine")
	}

	e := &Engine{
		settings: DefaultSettings(),
		zones:    zones,
		programs: programs,
		parsers:  parsers,
		relative: relative,
		catalog:  catalog,
		logger:   logger,
		clock:    o.clock,
	}
	if err := e.SetConfig(settings); err != nil {
		return nil, err
	}
	return e, nil
}

// EngineFromConfig builds an engine from a loaded configuration. The logger
// follows the log.level and log.format keys unless opts supply one.
func EngineFromConfig(cfg *config.Config, opts ...EngineOption) (*Engine, error) {
	if cfg == nil {
		cfg = config.Empty()
	}
	if err := cfg.Validate(config.DefaultRules()).Err(); err != nil {
		return nil, err
	}

	s := cfg.Settings()
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		level = log.DefaultLevel()
	}
	format, err := log.ParseFormat(s.LogFormat)
	if err != nil {
		format = log.FormatText
	}
	logger := log.NewWithConfig(log.Config{Level: level, Format: format, Output: os.Stderr})

	base := []EngineOption{
		WithLogger(logger),
		WithCacheSize(s.FormatterCache, s.PatternCache),
	}
	return NewEngine(Settings{Locale: s.Locale, Timezone: s.Timezone}, append(base, opts...)...)
}

// Settings returns the current defaults
func (e *Engine) Settings() Settings {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.settings
}

// SetConfig updates the defaults. Empty fields keep their current value. The
// update is rejected as a whole when the zone or locale is invalid.
func (e *Engine) SetConfig(update Settings) error {
	update.Locale = strings.TrimSpace(update.Locale)
	update.Timezone = strings.TrimSpace(update.Timezone)

	next := e.Settings().merge(update)
	if _, _, err := e.catalog.Resolve(next.Locale); err != nil {
		return err
	}
	if _, err := e.zones.Get(next.Locale, next.Timezone); err != nil {
		return err
	}

	e.mu.Lock()
	e.settings = e.settings.merge(update)
	e.mu.Unlock()

	e.logger.Debug("settings updated", log.Locale(next.Locale), log.Zone(next.Timezone))
	return nil
}

// Now returns the engine clock reading
func (e *Engine) Now() Instant {
	return FromTime(e.clock())
}

// Logger returns the engine logger
func (e *Engine) Logger() *log.Logger {
	return e.logger
}

// CacheStats reports formatter and pattern cache usage
func (e *Engine) CacheStats() (formatters, patterns memo.Stats) {
	return e.zones.Stats(), e.programs.Stats()
}

// Languages lists the languages the engine has names and phrases for
func (e *Engine) Languages() []string {
	return e.catalog.Languages()
}

// resolve applies call options over the engine settings
func (e *Engine) resolve(opts []CallOption) (Settings, callOptions) {
	o := collect(opts)
	s := e.Settings()
	if o.locale != "" {
		s.Locale = o.locale
	}
	if o.timezone != "" {
		s.Timezone = o.timezone
	}
	return s, o
}

// formatter returns the zone formatter for a call
func (e *Engine) formatter(opts []CallOption) (*zone.Formatter, Settings, error) {
	s, _ := e.resolve(opts)
	f, err := e.zones.Get(s.Locale, s.Timezone)
	return f, s, err
}

// relativeFormatter returns the cached phrase formatter for locale and mode
func (e *Engine) relativeFormatter(loc string, numeric locale.NumericMode) (*locale.RelativeFormatter, error) {
	key := fmt.Sprintf("%s|%s", loc, numeric)
	f, _, err := e.relative.Get(key, func() (*locale.RelativeFormatter, error) {
		return e.catalog.NewRelativeFormatter(loc, numeric)
	})
	return f, err
}

// =============================================================================
// Process-wide default
// =============================================================================

var (
	defaultOnce   sync.Once
	defaultEngine atomic.Pointer[Engine]
)

// Default returns the process-wide engine used by the package functions
func Default() *Engine {
	defaultOnce.Do(func() {
		if defaultEngine.Load() != nil {
			return
		}
		e, err := NewEngine(DefaultSettings())
		if err != nil {
			panic(fmt.Sprintf("chronal: default engine: %v", err))
		}
		defaultEngine.Store(e)
	})
	return defaultEngine.Load()
}

// SetDefault replaces the process-wide engine. A nil engine restores a fresh
// engine with default settings.
func SetDefault(e *Engine) {
	Default()
	if e == nil {
		fresh, err := NewEngine(DefaultSettings())
		if err != nil {
			panic(fmt.Sprintf("chronal: default engine: %v", err))
		}
		e = fresh
	}
	defaultEngine.Store(e)
}

// SetConfig updates the defaults of the process-wide engine
func SetConfig(update Settings) error {
	return Default().SetConfig(update)
}

// CurrentConfig returns the defaults of the process-wide engine
func CurrentConfig() Settings {
	return Default().Settings()
}
