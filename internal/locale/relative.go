// File: relative.go
// Title: Relative Time Phrases
// Description: Renders (amount, unit) pairs as "in 3 days" / "3 days ago" in
//              the catalog language. In auto mode, words such as "yesterday"
//              or "next month" replace the numeric form where the language
//              defines them.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package locale

import (
	"fmt"
	"strconv"
	"strings"

	chronerror "github.com/msto63/chronal/core/error"
)

// NumericMode selects between numeric and idiomatic phrasing
type NumericMode string

const (
	// Always renders every amount numerically ("in 1 day")
	Always NumericMode = "always"
	// Auto prefers words where available ("tomorrow")
	Auto NumericMode = "auto"
)

// ParseNumericMode parses "always" or "auto"; empty means always
func ParseNumericMode(s string) (NumericMode, error) {
	switch NumericMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", Always:
		return Always, nil
	case Auto:
		return Auto, nil
	}
	return "", chronerror.New("unknown numeric mode").
		WithCode(chronerror.CodeInvalidInput).
		WithOperation("locale.ParseNumericMode").
		WithDetail("numeric", s)
}

// RelativeFormatter renders relative phrases for one language and mode
type RelativeFormatter struct {
	data    *Data
	numeric NumericMode
}

// NewRelativeFormatter creates a formatter for the best match of locale
func (c *Catalog) NewRelativeFormatter(locale string, numeric NumericMode) (*RelativeFormatter, error) {
	data, _, err := c.Resolve(locale)
	if err != nil {
		return nil, err
	}
	if numeric == "" {
		numeric = Always
	}
	return &RelativeFormatter{data: data, numeric: numeric}, nil
}

// Language returns the resolved language tag
func (f *RelativeFormatter) Language() string { return f.data.Tag }

// Format renders amount units relative to now. Negative amounts are in the
// past. Supported units: second, minute, hour, day, week, month, quarter,
// year.
func (f *RelativeFormatter) Format(amount int64, unit string) (string, error) {
	plural, ok := f.data.Relative.Units[unit]
	if !ok {
		return "", chronerror.New("unit has no relative phrasing").
			WithCode(chronerror.CodeUnsupportedUnit).
			WithOperation("locale.RelativeFormatter.Format").
			WithDetail("unit", unit)
	}

	if f.numeric == Auto {
		if unit == "second" && amount == 0 && f.data.Relative.Now != "" {
			return f.data.Relative.Now, nil
		}
		if word, ok := f.data.Relative.Auto[unit][strconv.FormatInt(amount, 10)]; ok {
			return word, nil
		}
	}

	abs := amount
	if abs < 0 {
		abs = -abs
	}
	template := plural.Other
	if abs == 1 {
		template = plural.One
	}
	quantity := fmt.Sprintf(template, abs)

	if amount < 0 {
		return fmt.Sprintf(f.data.Relative.Past, quantity), nil
	}
	return fmt.Sprintf(f.data.Relative.Future, quantity), nil
}

// Now returns the phrase for the present moment
func (f *RelativeFormatter) Now() string {
	return f.data.Relative.Now
}
