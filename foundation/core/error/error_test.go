// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              chain-aware classification.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2025-10-19 v0.2.0: Chain-aware HasCode/GetCode cases

package error

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	trace := err.StackTrace()
	if len(trace) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(trace[0].Function, "TestNew") {
		t.Errorf("first frame = %q, want the caller of New", trace[0].Function)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap chronos error keeps code",
			err:      New("bad zone").WithCode(CodeInvalidTimeZone),
			message:  "decode failed",
			wantMsg:  "decode failed: bad zone",
			wantCode: CodeInvalidTimeZone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if result != nil {
					t.Errorf("Wrap() = %v, want nil", result)
				}
				return
			}

			if result.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", result.Error(), tt.wantMsg)
			}
			if result.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", result.Code(), tt.wantCode)
			}
			if !errors.Is(result, tt.err) {
				t.Error("errors.Is should find the wrapped error")
			}
		})
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidDate, SeverityLow},
		{CodeInvalidTimeZone, SeverityLow},
		{CodeInvalidConfig, SeverityMedium},
		{CodeInternal, SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidDate)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestShouldAlertAndNewf(t *testing.T) {
	tests := []struct {
		severity Severity
		want     bool
	}{
		{SeverityLow, false},
		{SeverityMedium, false},
		{SeverityHigh, true},
		{SeverityCritical, true},
	}
	for _, tt := range tests {
		if got := tt.severity.ShouldAlert(); got != tt.want {
			t.Errorf("%s.ShouldAlert() = %v, want %v", tt.severity, got, tt.want)
		}
	}

	err := Newf("calendar returned %d days", 0).WithCode(CodeInternal)
	if err.Error() != "calendar returned 0 days" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !GetSeverity(err).ShouldAlert() {
		t.Error("internal errors should alert")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("Newf should capture a stack trace")
	}
}

func TestDetails(t *testing.T) {
	err := New("x").
		WithDetail("field", "zone").
		WithDetails(map[string]interface{}{"value": "local"}).
		WithOperation("datetime.New")

	if v, ok := err.Detail("field"); !ok || v != "zone" {
		t.Errorf("Detail(field) = %v, %v", v, ok)
	}

	details := err.Details()
	details["field"] = "mutated"
	if v, _ := err.Detail("field"); v != "zone" {
		t.Error("Details() must return a copy")
	}

	if err.Operation() != "datetime.New" {
		t.Errorf("Operation() = %q", err.Operation())
	}

	s := err.String()
	for _, want := range []string{"Operation: datetime.New", "field=zone", "value=local"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestHasCodeWalksChain(t *testing.T) {
	inner := New("bad date").WithCode(CodeInvalidDate)
	outer := fmt.Errorf("loading schedule: %w", inner)

	if !HasCode(outer, CodeInvalidDate) {
		t.Error("HasCode should find code through fmt wrapping")
	}
	if HasCode(outer, CodeInvalidTimeZone) {
		t.Error("HasCode reported a code that is not present")
	}
	if GetCode(outer) != CodeInvalidDate {
		t.Errorf("GetCode() = %v", GetCode(outer))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode of a plain error should be CodeUnknown")
	}
	if GetSeverity(outer) != SeverityLow {
		t.Errorf("GetSeverity() = %v", GetSeverity(outer))
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrap(root, "middle"), "top")

	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}

	single := New("alone")
	if single.RootCause() != single {
		t.Error("RootCause of an unwrapped error is itself")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "top").
		WithCode(CodeDecodeFailed).
		WithOperation("serial.Unmarshal").
		WithDetail("type", "DateTime")

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("MarshalJSON() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("unmarshal: %v", jsonErr)
	}

	if decoded["code"] != string(CodeDecodeFailed) {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["cause"] != "cause" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	if decoded["operation"] != "serial.Unmarshal" {
		t.Errorf("operation = %v", decoded["operation"])
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeInvalidFormat, "validation"},
		{CodeInvalidOrder, "datetime"},
		{CodeMissingConfig, "configuration"},
		{CodeTypeMismatch, "serialization"},
		{CodeUnknown, "generic"},
	}

	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Errorf("%s.Category() = %q, want %q", tt.code, got, tt.want)
		}
		if !tt.code.IsValid() {
			t.Errorf("%s.IsValid() = false", tt.code)
		}
	}

	if Code("NOPE").IsValid() {
		t.Error("unknown code reported as valid")
	}
}
