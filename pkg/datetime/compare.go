// File: compare.go
// Title: DateTime Comparison and Differences
// Description: Instant-based ordering, textual equality and elapsed or
//              calendar-day differences between two DateTime values.
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

	mdwerrors "github.com/msto63/chronos/foundation/core/errors"
)

// ValueOf returns milliseconds since the Unix epoch. All ordering uses it.
func (d *DateTime) ValueOf() int64 {
	return d.instant.UnixMilli()
}

// IsSame reports the same absolute instant, regardless of zone
func (d *DateTime) IsSame(other *DateTime) bool {
	return d.ValueOf() == other.ValueOf()
}

// IsBefore reports d strictly before other
func (d *DateTime) IsBefore(other *DateTime) bool {
	return d.ValueOf() < other.ValueOf()
}

// IsSameOrBefore reports d at or before other
func (d *DateTime) IsSameOrBefore(other *DateTime) bool {
	return d.ValueOf() <= other.ValueOf()
}

// IsAfter reports d strictly after other
func (d *DateTime) IsAfter(other *DateTime) bool {
	return d.ValueOf() > other.ValueOf()
}

// IsSameOrAfter reports d at or after other
func (d *DateTime) IsSameOrAfter(other *DateTime) bool {
	return d.ValueOf() >= other.ValueOf()
}

// IsBetween reports start <= d <= end. It fails when end lies before start.
func (d *DateTime) IsBetween(start, end *DateTime) (bool, error) {
	if start == nil {
		return false, mdwerrors.Required(mdwerrors.ModuleDatetime, "IsBetween", "start")
	}
	if end == nil {
		return false, mdwerrors.Required(mdwerrors.ModuleDatetime, "IsBetween", "end")
	}
	if !end.IsSameOrAfter(start) {
		return false, mdwerrors.InvalidOrder(mdwerrors.ModuleDatetime, "IsBetween", start, end)
	}
	return d.IsSameOrAfter(start) && d.IsSameOrBefore(end), nil
}

// Equals compares the textual value and zone. Two values denoting the same
// instant in different zones are not equal.
func (d *DateTime) Equals(other *DateTime) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.value == other.value && d.zone == other.zone
}

// TimeDiff returns the absolute elapsed time between d and other
func (d *DateTime) TimeDiff(other *DateTime) Duration {
	return fromMillis(d.ValueOf() - other.ValueOf())
}

// DaysDiff returns the absolute calendar-day difference, truncated toward
// zero. The diff is measured in d's zone.
func (d *DateTime) DaysDiff(other *DateTime) int {
	return int(math.Abs(math.Trunc(d.daysBetween(other))))
}

// IsSameDay reports a calendar-day difference below one whole day
func (d *DateTime) IsSameDay(other *DateTime) bool {
	return math.Abs(d.daysBetween(other)) < 1
}

func (d *DateTime) daysBetween(other *DateTime) float64 {
	return d.calendar().DiffDays(d.instant, other.instant)
}

// Min returns the earlier of a and b; on a tie it returns b
func Min(a, b *DateTime) *DateTime {
	if a.ValueOf() < b.ValueOf() {
		return a
	}
	return b
}

// Max returns the later of a and b; on a tie it returns b
func Max(a, b *DateTime) *DateTime {
	if a.ValueOf() > b.ValueOf() {
		return a
	}
	return b
}
