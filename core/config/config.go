// File: config.go
// Title: Configuration Loading
// Description: Loads chronal settings from TOML or YAML files, with dot
//              notation access, environment variable overrides and defaults.
//              Settings() turns the generic key space into the typed view the
//              engine and CLI consume.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-08-02 v0.2.0: Typed Settings view, nested default merging, dropped
//                      request context and lookup caches

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	chronerror "github.com/msto63/chronal/core/error"
)

// Format represents the configuration file format
type Format int

const (
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// Well-known keys
const (
	KeyLocale          = "locale"
	KeyTimezone        = "timezone"
	KeyCacheFormatters = "cache.formatters"
	KeyCachePatterns   = "cache.patterns"
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
)

// EnvPrefix is the environment prefix used by Load and Empty
const EnvPrefix = "CHRONAL"

// Config holds configuration data with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
	defaults  map[string]interface{}
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format
	EnvPrefix string
	Defaults  map[string]interface{}
}

// Settings is the typed view of a chronal configuration
type Settings struct {
	Locale         string
	Timezone       string
	FormatterCache int
	PatternCache   int
	LogLevel       string
	LogFormat      string
}

// Defaults returns the built-in default values
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"locale":   "en-US",
		"timezone": "UTC",
		"cache": map[string]interface{}{
			"formatters": 256,
			"patterns":   1024,
		},
		"log": map[string]interface{}{
			"level":  "warn",
			"format": "text",
		},
	}
}

// Load loads configuration from a file using the CHRONAL_ prefix and defaults
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: EnvPrefix,
		Defaults:  Defaults(),
	})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, chronerror.New("config file path cannot be empty").
			WithCode(chronerror.CodeMissingConfig).
			WithOperation("config.LoadWithOptions")
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := chronerror.CodeConfigError
		if os.IsNotExist(err) {
			code = chronerror.CodeNotFound
		}
		return nil, chronerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, chronerror.Wrap(err, "failed to parse config file").
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	return &Config{
		data:      mergeDefaults(data, options.Defaults),
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
		defaults:  options.Defaults,
	}, nil
}

// LoadFromString loads configuration from a string with the given format.
// Environment overrides are not applied.
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, chronerror.Wrap(err, "failed to parse config from string").
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{
		data:     mergeDefaults(data, Defaults()),
		format:   format,
		defaults: Defaults(),
	}, nil
}

// Empty returns a configuration holding only the defaults. Environment
// overrides use the CHRONAL_ prefix.
func Empty() *Config {
	return &Config{
		data:      mergeDefaults(nil, Defaults()),
		format:    FormatTOML,
		envPrefix: EnvPrefix,
		defaults:  Defaults(),
	}
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, chronerror.Wrap(err, "TOML parse error").
				WithCode(chronerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, chronerror.Wrap(err, "YAML parse error").
				WithCode(chronerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	default:
		return nil, chronerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(chronerror.CodeInvalidConfig).
			WithOperation("config.parseContent")
	}

	return data, nil
}

// mergeDefaults overlays data onto defaults, descending into nested tables
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(defaults)+len(data))
	for k, v := range defaults {
		if sub, ok := v.(map[string]interface{}); ok {
			result[k] = mergeDefaults(nil, sub)
			continue
		}
		result[k] = v
	}
	for k, v := range data {
		sub, isMap := v.(map[string]interface{})
		existing, hasMap := result[k].(map[string]interface{})
		if isMap && hasMap {
			result[k] = mergeDefaults(sub, existing)
			continue
		}
		result[k] = v
	}
	return result
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		return envValue
	}

	if value := c.getValue(key); value != nil {
		return fmt.Sprint(value)
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if n, err := strconv.Atoi(envValue); err == nil {
			return n
		}
	}

	if n, ok := toInt(c.getValue(key)); ok {
		return n
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if b, err := strconv.ParseBool(envValue); err == nil {
			return b
		}
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetDuration returns a duration configuration value with optional default
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	raw := c.getEnvValue(key)
	if raw == "" {
		if v, ok := c.getValue(key).(string); ok {
			raw = v
		}
	}
	if raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			return d
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// Settings returns the typed view of the configuration
func (c *Config) Settings() Settings {
	return Settings{
		Locale:         c.GetString(KeyLocale, "en-US"),
		Timezone:       c.GetString(KeyTimezone, "UTC"),
		FormatterCache: c.GetInt(KeyCacheFormatters, 256),
		PatternCache:   c.GetInt(KeyCachePatterns, 1024),
		LogLevel:       c.GetString(KeyLogLevel, "warn"),
		LogFormat:      c.GetString(KeyLogFormat, "text"),
	}
}

// Has checks if a configuration key exists in the file or defaults
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.getValue(key) != nil
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setValue(key, value)
}

// Keys returns all leaf keys in dot notation, sorted
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var keys []string
	var walk func(prefix string, m map[string]interface{})
	walk = func(prefix string, m map[string]interface{}) {
		for k, v := range m {
			full := k
			if prefix != "" {
				full = prefix + "." + k
			}
			if sub, ok := v.(map[string]interface{}); ok {
				walk(full, sub)
				continue
			}
			keys = append(keys, full)
		}
	}
	walk("", c.data)
	sort.Strings(keys)
	return keys
}

// FilePath returns the file the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	return c.format
}

func (c *Config) getValue(key string) interface{} {
	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}

	return nil
}

func (c *Config) setValue(key string, value interface{}) {
	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// getEnvValue looks up the environment override for a key:
// cache.patterns with prefix CHRONAL -> CHRONAL_CACHE_PATTERNS
func (c *Config) getEnvValue(key string) string {
	if c.envPrefix == "" {
		return ""
	}
	return os.Getenv(c.formatEnvKey(key))
}

func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return strings.ToUpper(c.envPrefix) + "_" + envKey
}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	default:
		return 0, false
	}
}
