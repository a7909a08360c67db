// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes raised across chronos. Codes classify
//              failures by kind so callers never have to parse messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-10-19 v0.2.0: Date/time validation kinds

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"

	// Date and time
	CodeInvalidDate     Code = "INVALID_DATE"
	CodeInvalidTimeZone Code = "INVALID_TIMEZONE"
	CodeInvalidOrder    Code = "INVALID_ORDER"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Serialization
	CodeEncodeFailed Code = "ENCODE_FAILED"
	CodeDecodeFailed Code = "DECODE_FAILED"
	CodeTypeMismatch Code = "TYPE_MISMATCH"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange,
		CodeInvalidDate, CodeInvalidTimeZone, CodeInvalidOrder, CodeInvalidArgument,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeEncodeFailed, CodeDecodeFailed, CodeTypeMismatch:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	case CodeInvalidDate, CodeInvalidTimeZone, CodeInvalidOrder, CodeInvalidArgument:
		return "datetime"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeEncodeFailed, CodeDecodeFailed, CodeTypeMismatch:
		return "serialization"
	default:
		return "generic"
	}
}
