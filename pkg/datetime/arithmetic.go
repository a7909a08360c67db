// File: arithmetic.go
// Title: DateTime Arithmetic
// Description: Instant-based and calendar-based shifting, zone conversion,
//              month enumeration and time-of-day range checks.
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

	"github.com/shopspring/decimal"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	mdwerrors "github.com/msto63/chronos/foundation/core/errors"
)

// AddTime shifts the instant forward by dur and re-renders it in the same
// zone. Across a DST transition the wall clock moves by more or less than
// dur.
func (d *DateTime) AddTime(dur Duration) (*DateTime, error) {
	return d.shift("AddTime", dur.ms)
}

// SubtractTime shifts the instant backward by dur
func (d *DateTime) SubtractTime(dur Duration) (*DateTime, error) {
	return d.shift("SubtractTime", dur.ms.Neg())
}

func (d *DateTime) shift(operation string, deltaMs decimal.Decimal) (*DateTime, error) {
	target := decimal.NewFromInt(d.ValueOf()).Add(deltaMs).Floor()
	if target.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || target.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleDatetime, operation, "duration", deltaMs.String()+"ms", "result out of range")
	}
	return d.derive(operation, time.UnixMilli(target.IntPart()), d.zone)
}

// AddDays moves forward by whole calendar days keeping the wall-clock time
// of day. days must not be negative.
func (d *DateTime) AddDays(days int) (*DateTime, error) {
	if days < 0 {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleDatetime, "AddDays", "days", days, "must not be negative")
	}
	return d.derive("AddDays", d.calendar().AddDays(d.instant, days), d.zone)
}

// SubtractDays moves backward by whole calendar days keeping the wall-clock
// time of day. days must not be negative.
func (d *DateTime) SubtractDays(days int) (*DateTime, error) {
	if days < 0 {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleDatetime, "SubtractDays", "days", days, "must not be negative")
	}
	return d.derive("SubtractDays", d.calendar().AddDays(d.instant, -days), d.zone)
}

// GetDaysOfMonth returns one value per day of d's month in d's zone. The
// first is day 1 00:00, the last is the last day at 23:59 and every other
// entry is a 00:00 day boundary.
func (d *DateTime) GetDaysOfMonth() ([]*DateTime, error) {
	cal := d.calendar()
	start := cal.StartOfMonth(d.instant)
	end := cal.EndOfMonth(d.instant)

	points := cal.SplitByDay(start, end)
	if len(points) == 0 {
		cause := mdwerror.Newf("calendar returned no days between %s and %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
		return nil, mdwerrors.OperationFailed(mdwerrors.ModuleDatetime, "GetDaysOfMonth", mdwerror.CodeInternal, cause)
	}
	points[0] = start
	points[len(points)-1] = end

	days := make([]*DateTime, 0, len(points))
	for _, p := range points {
		day, err := d.derive("GetDaysOfMonth", p, d.zone)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

// ConvertToZone returns the same instant in another zone. Converting to the
// current zone returns d itself.
func (d *DateTime) ConvertToZone(zone string) (*DateTime, error) {
	zi, err := resolveZone(d.calendar(), "ConvertToZone", zone)
	if err != nil {
		return nil, err
	}
	if zi.name == d.zone {
		return d, nil
	}
	return d.derive("ConvertToZone", d.instant, zi.name)
}

// IsWithinTimeRange reports whether d lies between startCode and endCode
// ("hhmm", inclusive) on d's own date
func (d *DateTime) IsWithinTimeRange(startCode, endCode string) (bool, error) {
	const op = "IsWithinTimeRange"
	start, err := parseTimeCode(op, "startCode", startCode)
	if err != nil {
		return false, err
	}
	end, err := parseTimeCode(op, "endCode", endCode)
	if err != nil {
		return false, err
	}
	if end < start {
		return false, mdwerrors.InvalidOrder(mdwerrors.ModuleDatetime, op, startCode, endCode)
	}

	from, err := CreateFromCodes(d.dateCode, startCode, d.zone, WithCalendar(d.calendar()))
	if err != nil {
		return false, err
	}
	to, err := CreateFromCodes(d.dateCode, endCode, d.zone, WithCalendar(d.calendar()))
	if err != nil {
		return false, err
	}
	return d.IsBetween(from, to)
}

// parseTimeCode checks a 4-digit "hhmm" code within 0000..2359
func parseTimeCode(operation, field, code string) (int, error) {
	if !isDigits(code, 4) {
		return 0, mdwerrors.InvalidFormat(mdwerrors.ModuleDatetime, operation, field, code, "hhmm")
	}
	n := int(code[0]-'0')*1000 + int(code[1]-'0')*100 + int(code[2]-'0')*10 + int(code[3]-'0')
	if n > 2359 {
		return 0, mdwerrors.InvalidArgument(mdwerrors.ModuleDatetime, operation, field, code, "must be within 0000 and 2359")
	}
	return n, nil
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
