// File: cache.go
// Title: Formatter Cache
// Description: Bounded cache of zone formatters keyed by "locale|zone".
//              Loading a zone reads the tz database, so formatters are built
//              once per key and shared by every caller of an engine.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package zone

import (
	"github.com/msto63/chronal/core/log"
	"github.com/msto63/chronal/internal/memo"
)

// DefaultCacheSize is the formatter capacity used when none is configured
const DefaultCacheSize = 256

// Cache holds formatters for (locale, zone) pairs
type Cache struct {
	formatters *memo.Cache[*Formatter]
	logger     *log.Logger
}

// NewCache creates a cache of the given capacity
func NewCache(size int, logger *log.Logger) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	formatters, err := memo.New[*Formatter](size)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &Cache{formatters: formatters, logger: logger.WithName("zone")}, nil
}

// Get returns the formatter for locale and zone, building it on first use
func (c *Cache) Get(locale, name string) (*Formatter, error) {
	if name == "" {
		name = UTC
	}
	key := locale + "|" + name
	f, hit, err := c.formatters.Get(key, func() (*Formatter, error) {
		return NewFormatter(locale, name)
	})
	if err != nil {
		c.logger.Debug("formatter build failed", log.Zone(name), log.Locale(locale), log.Err(err))
		return nil, err
	}
	if !hit {
		c.logger.Debug("formatter cache miss", log.Zone(name), log.Locale(locale))
	}
	return f, nil
}

// Stats returns cache usage counters
func (c *Cache) Stats() memo.Stats {
	return c.formatters.Stats()
}
