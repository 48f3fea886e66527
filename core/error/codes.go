// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across chronal so callers can
//              classify failures (invalid dates, unsupported units, empty
//              inputs, bad zones or locales, configuration problems) without
//              matching on message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-08-02 v0.2.0: Replaced platform codes with date/time domain codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Date/time domain
	CodeInvalidDate     Code = "INVALID_DATE"
	CodeUnsupportedUnit Code = "UNSUPPORTED_UNIT"
	CodeEmptyInput      Code = "EMPTY_INPUT"
	CodeInvalidTimezone Code = "INVALID_TIMEZONE"
	CodeInvalidLocale   Code = "INVALID_LOCALE"
	CodeInvalidFormat   Code = "INVALID_FORMAT"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidDate, CodeUnsupportedUnit, CodeEmptyInput, CodeInvalidTimezone,
		CodeInvalidLocale, CodeInvalidFormat,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidDate, CodeInvalidFormat:
		return "parse"
	case CodeUnsupportedUnit, CodeEmptyInput, CodeInvalidInput:
		return "usage"
	case CodeInvalidTimezone, CodeInvalidLocale:
		return "locale"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
