// File: errors.go
// Title: DateTime Error Classification
// Description: Predicates that classify chronos date/time errors by kind.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package datetime

import (
	mdwerror "github.com/msto63/chronos/foundation/core/error"
	mdwerrors "github.com/msto63/chronos/foundation/core/errors"
)

// IsMalformed reports text that does not match the expected shape
func IsMalformed(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidFormat)
}

// IsInvalidDate reports a well-formed value that is not a real calendar moment
func IsInvalidDate(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidDate)
}

// IsInvalidZone reports an unknown, disallowed or out-of-range zone
func IsInvalidZone(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidTimeZone)
}

// IsInvalidOrder reports a range whose end lies before its start
func IsInvalidOrder(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidOrder)
}

// IsInvalidArgument reports an arithmetic argument outside its domain
func IsInvalidArgument(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidArgument)
}

// IsRequired reports a missing mandatory input
func IsRequired(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeRequiredField)
}

// Field returns the name of the input that caused err, if recorded
func Field(err error) string {
	return mdwerrors.ExtractField(err)
}

// rewrap attributes an engine error to a datetime operation while keeping
// its code
func rewrap(operation, field string, value interface{}, err error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleDatetime).
		Operation(operation).
		Code(mdwerror.GetCode(err)).
		Cause(err).
		Field(field, value).
		Message("invalid " + field).
		Build()
}
