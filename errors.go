// File: errors.go
// Title: Error Predicates
// Description: Convenience checks for the error kinds callers usually branch
//              on. All chronal errors are *chronerror.Error values carrying a
//              code, so the predicates also see through wrapping.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-03
// Modified: 2025-08-03
//
// Change History:
// - 2025-08-03 v0.1.0: Initial implementation

package chronal

import (
	chronerror "github.com/msto63/chronal/core/error"
)

// IsInvalidDate reports whether err is an INVALID_DATE error
func IsInvalidDate(err error) bool {
	return chronerror.HasCode(err, chronerror.CodeInvalidDate)
}

// IsUnsupportedUnit reports whether err is an UNSUPPORTED_UNIT error
func IsUnsupportedUnit(err error) bool {
	return chronerror.HasCode(err, chronerror.CodeUnsupportedUnit)
}

// IsEmptyInput reports whether err is an EMPTY_INPUT error
func IsEmptyInput(err error) bool {
	return chronerror.HasCode(err, chronerror.CodeEmptyInput)
}

// IsInvalidTimezone reports whether err is an INVALID_TIMEZONE error
func IsInvalidTimezone(err error) bool {
	return chronerror.HasCode(err, chronerror.CodeInvalidTimezone)
}

func invalidDate(operation, input string) *chronerror.Error {
	return chronerror.New("invalid date").
		WithCode(chronerror.CodeInvalidDate).
		WithOperation(operation).
		WithDetail("input", input)
}
