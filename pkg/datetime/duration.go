// File: duration.go
// Title: Duration Value Type
// Description: Immutable, non-negative elapsed-time magnitude stored in
//              milliseconds as a decimal. Factories convert from larger units
//              and reject non-finite or negative input; accessors divide back
//              with optional half-up rounding.
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
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	mdwerrors "github.com/msto63/chronos/foundation/core/errors"
)

// Milliseconds per unit
const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
	msPerWeek   = 7 * msPerDay
)

// Duration is a non-negative span of time. The zero value is a zero-length
// duration.
type Duration struct {
	ms decimal.Decimal
}

var (
	_ json.Marshaler   = Duration{}
	_ json.Unmarshaler = (*Duration)(nil)
)

// FromMilliSeconds creates a duration of n milliseconds
func FromMilliSeconds(n float64) (Duration, error) {
	return fromUnit("FromMilliSeconds", n, 1)
}

// FromSeconds creates a duration of n seconds
func FromSeconds(n float64) (Duration, error) {
	return fromUnit("FromSeconds", n, msPerSecond)
}

// FromMinutes creates a duration of n minutes
func FromMinutes(n float64) (Duration, error) {
	return fromUnit("FromMinutes", n, msPerMinute)
}

// FromHours creates a duration of n hours
func FromHours(n float64) (Duration, error) {
	return fromUnit("FromHours", n, msPerHour)
}

// FromDays creates a duration of n 24-hour days
func FromDays(n float64) (Duration, error) {
	return fromUnit("FromDays", n, msPerDay)
}

// FromWeeks creates a duration of n 7-day weeks
func FromWeeks(n float64) (Duration, error) {
	return fromUnit("FromWeeks", n, msPerWeek)
}

func fromUnit(operation string, n float64, factor int64) (Duration, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Duration{}, mdwerrors.InvalidArgument(mdwerrors.ModuleDuration, operation, "amount", n, "must be a finite number")
	}
	ms := decimal.NewFromFloat(n).Mul(decimal.NewFromInt(factor))
	if ms.IsNegative() {
		return Duration{}, mdwerrors.InvalidArgument(mdwerrors.ModuleDuration, operation, "amount", n, "must not be negative")
	}
	return Duration{ms: ms}, nil
}

// fromMillis builds a duration from a known non-negative millisecond count
func fromMillis(ms int64) Duration {
	if ms < 0 {
		ms = -ms
	}
	return Duration{ms: decimal.NewFromInt(ms)}
}

// ToMilliSeconds returns the duration in milliseconds
func (d Duration) ToMilliSeconds(round ...bool) float64 {
	return d.in(1, round)
}

// ToSeconds returns the duration in seconds
func (d Duration) ToSeconds(round ...bool) float64 {
	return d.in(msPerSecond, round)
}

// ToMinutes returns the duration in minutes
func (d Duration) ToMinutes(round ...bool) float64 {
	return d.in(msPerMinute, round)
}

// ToHours returns the duration in hours
func (d Duration) ToHours(round ...bool) float64 {
	return d.in(msPerHour, round)
}

// ToDays returns the duration in 24-hour days
func (d Duration) ToDays(round ...bool) float64 {
	return d.in(msPerDay, round)
}

// ToWeeks returns the duration in 7-day weeks
func (d Duration) ToWeeks(round ...bool) float64 {
	return d.in(msPerWeek, round)
}

func (d Duration) in(factor int64, round []bool) float64 {
	v := d.ms.Div(decimal.NewFromInt(factor))
	if len(round) > 0 && round[0] {
		// half away from zero equals half-up for non-negative values
		v = v.Round(0)
	}
	f, _ := v.Float64()
	return f
}

// Millis returns the exact millisecond count
func (d Duration) Millis() decimal.Decimal {
	return d.ms
}

// IsZero reports a zero-length duration
func (d Duration) IsZero() bool {
	return d.ms.IsZero()
}

// Std converts to time.Duration, truncating below one nanosecond and
// saturating at the time.Duration range
func (d Duration) Std() time.Duration {
	ns := d.ms.Mul(decimal.NewFromInt(int64(time.Millisecond)))
	if ns.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ns.IntPart())
}

// String renders the millisecond count, e.g. "90000ms"
func (d Duration) String() string {
	return d.ms.String() + "ms"
}

// MarshalJSON encodes the duration as a millisecond number
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(d.ms.String()), nil
}

// UnmarshalJSON decodes a millisecond number
func (d *Duration) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return mdwerrors.InvalidFormat(mdwerrors.ModuleDuration, "UnmarshalJSON", "milliseconds", string(data), "number")
	}
	ms, err := decimal.NewFromString(n.String())
	if err != nil {
		return mdwerrors.InvalidFormat(mdwerrors.ModuleDuration, "UnmarshalJSON", "milliseconds", string(data), "number")
	}
	if ms.IsNegative() {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleDuration, "UnmarshalJSON", "milliseconds", n.String(), "must not be negative")
	}
	d.ms = ms
	return nil
}
