// File: duration_test.go
// Title: Duration Tests
// Description: Unit conversion, rounding, rejection of invalid amounts and
//              JSON encoding.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package datetime

import (
	"math"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func mustDuration(t *testing.T) func(Duration, error) Duration {
	return func(d Duration, err error) Duration {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return d
	}
}

func TestDurationConversions(t *testing.T) {
	testCases := []struct {
		name  string
		build func() (Duration, error)
		get   func(Duration) float64
		want  float64
	}{
		{"hours to minutes", func() (Duration, error) { return FromHours(1) }, func(d Duration) float64 { return d.ToMinutes() }, 60},
		{"seconds to minutes", func() (Duration, error) { return FromSeconds(90) }, func(d Duration) float64 { return d.ToMinutes() }, 1.5},
		{"seconds to minutes rounded", func() (Duration, error) { return FromSeconds(90) }, func(d Duration) float64 { return d.ToMinutes(true) }, 2},
		{"half second rounds up", func() (Duration, error) { return FromMilliSeconds(1500) }, func(d Duration) float64 { return d.ToSeconds(true) }, 2},
		{"below half rounds down", func() (Duration, error) { return FromMilliSeconds(1499) }, func(d Duration) float64 { return d.ToSeconds(true) }, 1},
		{"explicit false keeps fraction", func() (Duration, error) { return FromMilliSeconds(1499) }, func(d Duration) float64 { return d.ToSeconds(false) }, 1.499},
		{"weeks to days", func() (Duration, error) { return FromWeeks(1) }, func(d Duration) float64 { return d.ToDays() }, 7},
		{"days to hours", func() (Duration, error) { return FromDays(1.5) }, func(d Duration) float64 { return d.ToHours() }, 36},
		{"minutes to ms", func() (Duration, error) { return FromMinutes(2) }, func(d Duration) float64 { return d.ToMilliSeconds() }, 120000},
		{"days to weeks", func() (Duration, error) { return FromDays(14) }, func(d Duration) float64 { return d.ToWeeks() }, 2},
		{"fractional ms", func() (Duration, error) { return FromMilliSeconds(0.1) }, func(d Duration) float64 { return d.ToMilliSeconds() }, 0.1},
		{"zero", func() (Duration, error) { return FromSeconds(0) }, func(d Duration) float64 { return d.ToHours() }, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := tc.build()
			d = mustDuration(t)(d, err)
			if got := tc.get(d); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDurationRejects(t *testing.T) {
	testCases := []struct {
		name  string
		build func() (Duration, error)
	}{
		{"negative", func() (Duration, error) { return FromMinutes(-1) }},
		{"negative fraction", func() (Duration, error) { return FromMilliSeconds(-0.5) }},
		{"NaN", func() (Duration, error) { return FromHours(math.NaN()) }},
		{"positive infinity", func() (Duration, error) { return FromDays(math.Inf(1)) }},
		{"negative infinity", func() (Duration, error) { return FromWeeks(math.Inf(-1)) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			if !IsInvalidArgument(err) {
				t.Errorf("expected invalid argument, got %v", err)
			}
		})
	}
}

func TestDurationStd(t *testing.T) {
	d := mustDuration(t)(FromSeconds(1.5))
	if got := d.Std(); got != 1500*time.Millisecond {
		t.Errorf("Std() = %v", got)
	}
	if d.IsZero() {
		t.Error("IsZero() should be false")
	}
	if !(Duration{}).IsZero() {
		t.Error("zero value should be zero")
	}
	if got := d.String(); got != "1500ms" {
		t.Errorf("String() = %q", got)
	}

	huge := mustDuration(t)(FromWeeks(1e9))
	if got := huge.Std(); got != time.Duration(math.MaxInt64) {
		t.Errorf("Std() should saturate, got %v", got)
	}
}

func TestDurationJSON(t *testing.T) {
	d := mustDuration(t)(FromSeconds(1.5))
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal unexpected error: %v", err)
	}
	if string(data) != "1500" {
		t.Errorf("Marshal = %s, want 1500", data)
	}

	var back Duration
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal unexpected error: %v", err)
	}
	if back.ToSeconds() != 1.5 {
		t.Errorf("round trip = %v", back)
	}

	if err := json.Unmarshal([]byte("-5"), &back); !IsInvalidArgument(err) {
		t.Errorf("negative JSON: expected invalid argument, got %v", err)
	}
	if err := json.Unmarshal([]byte(`"soon"`), &back); !IsMalformed(err) {
		t.Errorf("string JSON: expected malformed, got %v", err)
	}
}
