// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to pick a log level for an error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-10-19 v0.2.0: Severity mapping for date/time codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates rejected input; the caller can correct it
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure with a workaround (bad config, undecodable payload)
	SeverityMedium

	// SeverityHigh indicates a broken invariant inside the library
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
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
		return SeverityHigh

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeEncodeFailed, CodeDecodeFailed, CodeTypeMismatch:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeRequiredField,
		CodeInvalidFormat, CodeValueOutOfRange,
		CodeInvalidDate, CodeInvalidTimeZone, CodeInvalidOrder, CodeInvalidArgument:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
