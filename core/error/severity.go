// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so the logger can pick an
//              appropriate level when an error is reported.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-08-02 v0.2.0: Severity mapping for date/time codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad caller input (unparseable text, empty lists)
	SeverityLow Severity = iota

	// SeverityMedium indicates an error with a workaround (unknown locale, fallback used)
	SeverityMedium

	// SeverityHigh indicates a misconfiguration that prevents operation
	SeverityHigh

	// SeverityCritical indicates a broken invariant inside the library
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	case CodeInvalidTimezone, CodeInvalidLocale, CodeUnsupportedUnit:
		return SeverityMedium

	case CodeInvalidDate, CodeInvalidFormat, CodeEmptyInput, CodeInvalidInput, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
