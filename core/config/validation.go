// File: validation.go
// Title: Configuration Validation
// Description: Rule based validation for configuration values: required
//              keys, types, numeric bounds, allowed values, regex patterns and
//              custom checks. DefaultRules describes a valid chronal file.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2025-08-02 v0.2.0: OneOf and Check rules, timezone and BCP 47 checks,
//                      removed struct binding

package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"

	chronerror "github.com/msto63/chronal/core/error"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool
	Type     string // "string", "int", "bool"
	Min      *int
	Max      *int
	OneOf    []string
	Pattern  string
	Check    func(value interface{}) error
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err converts a failed result into an INVALID_CONFIG error
func (r *ValidationResult) Err() error {
	if r == nil || r.Valid {
		return nil
	}
	return chronerror.New("invalid configuration: " + strings.Join(r.Errors, "; ")).
		WithCode(chronerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", len(r.Errors))
}

func intPtr(n int) *int { return &n }

// DefaultRules returns the rules for the chronal configuration keys
func DefaultRules() ValidationRules {
	return ValidationRules{
		KeyLocale:          {Required: true, Type: "string", Check: checkLocale},
		KeyTimezone:        {Required: true, Type: "string", Check: checkTimezone},
		KeyCacheFormatters: {Type: "int", Min: intPtr(1), Max: intPtr(1 << 16)},
		KeyCachePatterns:   {Type: "int", Min: intPtr(1), Max: intPtr(1 << 20)},
		KeyLogLevel:        {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error", "off"}},
		KeyLogFormat:       {Type: "string", OneOf: []string{"json", "text", "console", "logfmt"}},
	}
}

// Validate validates the configuration against the provided rules. Keys are
// checked in sorted order so error lists are stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	value := c.effectiveValue(key)

	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	if rule.Type != "" {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	if n, ok := toInt(value); ok {
		if rule.Min != nil && n < *rule.Min {
			return fmt.Errorf("field '%s' value %d is less than minimum %d", key, n, *rule.Min)
		}
		if rule.Max != nil && n > *rule.Max {
			return fmt.Errorf("field '%s' value %d exceeds maximum %d", key, n, *rule.Max)
		}
	}

	if len(rule.OneOf) > 0 {
		s := strings.ToLower(fmt.Sprint(value))
		found := false
		for _, allowed := range rule.OneOf {
			if s == allowed {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("field '%s' must be one of %s, got %q", key, strings.Join(rule.OneOf, ", "), s)
		}
	}

	if rule.Pattern != "" {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return fmt.Errorf("field '%s' has invalid pattern: %v", key, err)
		}
		if !re.MatchString(fmt.Sprint(value)) {
			return fmt.Errorf("field '%s' does not match pattern %s", key, rule.Pattern)
		}
	}

	if rule.Check != nil {
		if err := rule.Check(value); err != nil {
			return fmt.Errorf("field '%s': %v", key, err)
		}
	}

	return nil
}

// effectiveValue returns the environment override if set, else the stored value
func (c *Config) effectiveValue(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if env := c.getEnvValue(key); env != "" {
		return env
	}
	return c.getValue(key)
}

func validateType(key string, value interface{}, expected string) error {
	switch expected {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}
	case "int":
		if _, ok := toInt(value); !ok {
			return fmt.Errorf("field '%s' must be an integer, got %T", key, value)
		}
	case "bool":
		switch value.(type) {
		case bool, string:
		default:
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}
	default:
		return fmt.Errorf("field '%s' has unknown type rule %q", key, expected)
	}
	return nil
}

func checkTimezone(value interface{}) error {
	name, _ := value.(string)
	if name == "" {
		return fmt.Errorf("timezone must not be empty")
	}
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("unknown timezone %q", name)
	}
	return nil
}

func checkLocale(value interface{}) error {
	tag, _ := value.(string)
	if _, err := language.Parse(tag); err != nil {
		return fmt.Errorf("malformed locale %q", tag)
	}
	return nil
}
