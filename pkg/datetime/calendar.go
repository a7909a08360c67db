// File: calendar.go
// Title: Calendar Engine Contract
// Description: The narrow capability set DateTime needs from a zone-aware
//              calendar engine. foundation/utils/timex provides the default.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package datetime

import (
	"time"

	"github.com/msto63/chronos/foundation/utils/timex"
)

// Calendar converts between instants and wall clocks in a zone and performs
// calendar-unit arithmetic. Times passed in carry the location they should be
// interpreted in.
type Calendar interface {
	// LoadZone resolves an IANA zone name
	LoadZone(name string) (*time.Location, error)
	// FixedZone returns a location with a constant offset east of UTC
	FixedZone(name string, offsetSeconds int) *time.Location
	// ParseWallClock parses "YYYY-MM-DD hh:mm" in loc
	ParseWallClock(value string, loc *time.Location) (time.Time, error)
	// RenderWallClock renders t as "YYYY-MM-DD hh:mm" in loc
	RenderWallClock(t time.Time, loc *time.Location) string
	// AddDays shifts t by calendar days keeping the wall-clock time
	AddDays(t time.Time, days int) time.Time
	// DiffDays returns a - b in fractional calendar days
	DiffDays(a, b time.Time) float64
	// StartOfMonth returns the first instant of t's month
	StartOfMonth(t time.Time) time.Time
	// EndOfMonth returns the last millisecond of t's month
	EndOfMonth(t time.Time) time.Time
	// SplitByDay returns the start of every one-day step in [start, end)
	SplitByDay(start, end time.Time) []time.Time
}

var _ Calendar = (*timex.Engine)(nil)

// DefaultCalendar returns the process-wide timex engine
func DefaultCalendar() Calendar {
	return timex.Default()
}
