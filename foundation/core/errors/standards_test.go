// File: standards_test.go
// Title: Error Standards Tests
// Description: Tests for the error builder and the per-kind constructors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19

package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder(ModuleTimex).
			Operation("LoadZone").
			Message("zone not found").
			Code(mdwerror.CodeInvalidTimeZone).
			Detail("key", "value").
			Build()

		details := err.Details()
		if details["module"] != ModuleTimex {
			t.Errorf("module = %v", details["module"])
		}
		if details["key"] != "value" {
			t.Errorf("key = %v", details["key"])
		}
		if err.Operation() != "timex.LoadZone" {
			t.Errorf("Operation() = %q", err.Operation())
		}
		if err.Severity() != mdwerror.SeverityLow {
			t.Errorf("Severity() = %v", err.Severity())
		}
	})

	t.Run("default message and cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewErrorBuilder(ModuleSerial).
			Operation("Marshal").
			Code(mdwerror.CodeEncodeFailed).
			Cause(cause).
			Severity(mdwerror.SeverityHigh).
			Build()

		if err.Error() != "serial.Marshal failed: boom" {
			t.Errorf("Error() = %q", err.Error())
		}
		if !errors.Is(err, cause) {
			t.Error("cause not reachable")
		}
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Severity() = %v", err.Severity())
		}
	})
}

func TestKindConstructors(t *testing.T) {
	tests := []struct {
		name      string
		err       *mdwerror.Error
		wantCode  mdwerror.Code
		wantField string
	}{
		{"required", Required(ModuleDatetime, "New", "value"), mdwerror.CodeRequiredField, "value"},
		{"format", InvalidFormat(ModuleDatetime, "New", "value", "2024/01/01", "YYYY-MM-DD hh:mm"), mdwerror.CodeInvalidFormat, "value"},
		{"date", InvalidDate(ModuleDatetime, "New", "value", "2024-02-30 10:00", "day out of range"), mdwerror.CodeInvalidDate, "value"},
		{"zone", InvalidZone(ModuleDatetime, "New", "local", "not allowed"), mdwerror.CodeInvalidTimeZone, "zone"},
		{"order", InvalidOrder(ModuleDatetime, "IsBetween", "b", "a"), mdwerror.CodeInvalidOrder, "end"},
		{"argument", InvalidArgument(ModuleDatetime, "AddDays", "days", -1, "must not be negative"), mdwerror.CodeInvalidArgument, "days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.wantCode)
			}
			wrapped := fmt.Errorf("outer: %w", tt.err)
			if got := ExtractField(wrapped); got != tt.wantField {
				t.Errorf("ExtractField() = %q, want %q", got, tt.wantField)
			}
			if got := ExtractModule(wrapped); got != ModuleDatetime {
				t.Errorf("ExtractModule() = %q", got)
			}
		})
	}
}

func TestInvalidFormatMessage(t *testing.T) {
	err := InvalidFormat(ModuleDatetime, "CreateFromCodes", "dateCode", "2024011", "8 digits YYYYMMDD")
	if !strings.Contains(err.Error(), `"2024011"`) || !strings.Contains(err.Error(), "8 digits") {
		t.Errorf("Error() = %q", err.Error())
	}
	if v, _ := err.Detail("expected"); v != "8 digits YYYYMMDD" {
		t.Errorf("expected detail = %v", v)
	}
}

func TestExtractFromPlainError(t *testing.T) {
	if ExtractField(errors.New("plain")) != "" {
		t.Error("plain errors carry no field")
	}
}
