// Package error provides the structured error type shared by chronal packages.
//
// Package: error
// Title: chronal Error Handling
// Description: Errors carry a Code (INVALID_DATE, UNSUPPORTED_UNIT, EMPTY_INPUT,
//              INVALID_TIMEZONE, ...), a Severity derived from the code, the
//              operation that failed and free-form details. They wrap their
//              cause, so the standard errors.Is/As helpers keep working.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-08-02 v0.2.0: Date/time domain codes
//
// Usage:
//
//	import chronerror "github.com/msto63/chronal/core/error"
//
//	err := chronerror.New("text does not match pattern").
//		WithCode(chronerror.CodeInvalidDate).
//		WithOperation("chronal.ParseDate").
//		WithDetail("pattern", "YYYY-MM-DD")
//
//	if chronerror.HasCode(err, chronerror.CodeInvalidDate) {
//		// report bad input
//	}
package error
