// File: standards.go
// Title: Error Standards for chronos Modules
// Description: Module identifiers, an error builder and one constructor per
//              error kind raised by the date/time packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-10-19 v0.2.0: Date/time kinds, field detail

package errors

import (
	"errors"
	"fmt"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleDatetime = "datetime"
	ModuleDuration = "duration"
	ModuleTimex    = "timex"
	ModuleSerial   = "serial"
	ModuleConfig   = "config"
	ModuleCLI      = "chronos"
)

// ErrorBuilder assembles an error step by step
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	code      mdwerror.Code
	severity  *mdwerror.Severity
	details   map[string]interface{}
}

// NewErrorBuilder creates a builder for the given module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		code:    mdwerror.CodeUnknown,
		details: make(map[string]interface{}),
	}
}

// Operation sets the failing operation
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets a formatted error message
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the wrapped cause
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = &severity
	return eb
}

// Detail adds a detail
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Field records the offending input field and its value
func (eb *ErrorBuilder) Field(field string, value interface{}) *ErrorBuilder {
	eb.details["field"] = field
	eb.details["value"] = value
	return eb
}

// Build creates the error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	message := eb.message
	if message == "" {
		message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, message)
	} else {
		err = mdwerror.New(message)
	}

	err = err.WithCode(eb.code).
		WithOperation(eb.module + "." + eb.operation).
		WithDetails(eb.details).
		WithDetail("module", eb.module)

	if eb.severity != nil {
		err = err.WithSeverity(*eb.severity)
	}

	return err
}

func kindError(code mdwerror.Code, module, operation, field string, value interface{}, message string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(code).
		Field(field, value).
		Message(message).
		Build()
}

// Required reports a missing mandatory field
func Required(module, operation, field string) *mdwerror.Error {
	return kindError(mdwerror.CodeRequiredField, module, operation, field, "",
		fmt.Sprintf("%s is required", field))
}

// InvalidFormat reports text that does not match the expected shape
func InvalidFormat(module, operation, field string, value interface{}, expected string) *mdwerror.Error {
	err := kindError(mdwerror.CodeInvalidFormat, module, operation, field, value,
		fmt.Sprintf("invalid %s %q: expected %s", field, fmt.Sprint(value), expected))
	return err.WithDetail("expected", expected)
}

// InvalidDate reports a well-formed value that is not a real calendar moment
func InvalidDate(module, operation, field string, value interface{}, reason string) *mdwerror.Error {
	return kindError(mdwerror.CodeInvalidDate, module, operation, field, value,
		fmt.Sprintf("invalid %s %q: %s", field, fmt.Sprint(value), reason))
}

// InvalidZone reports an unknown, disallowed or out-of-range zone
func InvalidZone(module, operation, zone, reason string) *mdwerror.Error {
	return kindError(mdwerror.CodeInvalidTimeZone, module, operation, "zone", zone,
		fmt.Sprintf("invalid zone %q: %s", zone, reason))
}

// InvalidOrder reports a range whose end lies before its start
func InvalidOrder(module, operation string, start, end interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mdwerror.CodeInvalidOrder).
		Detail("field", "end").
		Detail("start", fmt.Sprint(start)).
		Detail("end", fmt.Sprint(end)).
		Messagef("end %s must not be before start %s", fmt.Sprint(end), fmt.Sprint(start)).
		Build()
}

// InvalidArgument reports an arithmetic argument outside its domain
func InvalidArgument(module, operation, field string, value interface{}, reason string) *mdwerror.Error {
	return kindError(mdwerror.CodeInvalidArgument, module, operation, field, value,
		fmt.Sprintf("invalid %s %v: %s", field, value, reason))
}

// OperationFailed wraps a cause with module context
func OperationFailed(module, operation string, code mdwerror.Code, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(code).
		Cause(cause).
		Build()
}

// ExtractModule returns the module detail of a chronos error
func ExtractModule(err error) string {
	return extractString(err, "module")
}

// ExtractField returns the field detail of a chronos error
func ExtractField(err error) string {
	return extractString(err, "field")
}

func extractString(err error, key string) string {
	var e *mdwerror.Error
	if !errors.As(err, &e) {
		return ""
	}
	if v, ok := e.Detail(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
