// Package error provides structured error handling for the chronos library.
//
// Package: error
// Title: chronos Error Handling
// Description: Implements a structured error type carrying a code, a severity,
//              key/value details, the failing operation and a captured stack
//              trace. Every validation failure raised by the datetime and timex
//              packages is an *Error, so callers can classify failures by code
//              instead of matching message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-10-19 v0.2.0: Reduced code table to date/time validation kinds,
//                       HasCode/GetCode now walk wrapped chains
//
// Usage:
//
//	err := error.New("zone must not be \"local\"").
//		WithCode(error.CodeInvalidTimeZone).
//		WithDetail("field", "zone").
//		WithOperation("datetime.New")
//
//	if error.HasCode(err, error.CodeInvalidTimeZone) {
//		// reject input
//	}
//
// Codes map to severities through GetSeverityFromCode; validation codes are
// SeverityLow, configuration and serialization failures SeverityMedium and
// internal failures SeverityHigh.
package error
