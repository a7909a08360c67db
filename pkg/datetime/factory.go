// File: factory.go
// Title: DateTime Factories and Format Checks
// Description: Construction from the clock, epochs, codes and split values,
//              plus boolean checks over the validation pipeline.
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

	mdwerrors "github.com/msto63/chronos/foundation/core/errors"
)

// Now returns the current minute in zone. An empty zone means "utc".
func Now(zone string, opts ...Option) (*DateTime, error) {
	o := buildOptions(opts)
	if normalizeZone(zone) == "" {
		zone = UTC
	}
	return fromInstant("Now", o.clock(), zone, o.calendar)
}

// CreateFromTimestamp builds a value from seconds since the Unix epoch
func CreateFromTimestamp(sec int64, zone string, opts ...Option) (*DateTime, error) {
	o := buildOptions(opts)
	return fromInstant("CreateFromTimestamp", time.Unix(sec, 0), zone, o.calendar)
}

// CreateFromMilliSecondsSinceEpoch builds a value from milliseconds since
// the Unix epoch
func CreateFromMilliSecondsSinceEpoch(ms int64, zone string, opts ...Option) (*DateTime, error) {
	o := buildOptions(opts)
	return fromInstant("CreateFromMilliSecondsSinceEpoch", time.UnixMilli(ms), zone, o.calendar)
}

// fromInstant renders an instant in zone and runs it through the same
// validation as New. Instants outside years 0000..9999 fail there.
func fromInstant(operation string, instant time.Time, zone string, cal Calendar) (*DateTime, error) {
	zi, err := resolveZone(cal, operation, zone)
	if err != nil {
		return nil, err
	}
	return build(operation, cal.RenderWallClock(instant, zi.loc), zi.name, cal)
}

// CreateFromCodes builds a value from "YYYYMMDD" and "hhmm"
func CreateFromCodes(dateCode, timeCode, zone string, opts ...Option) (*DateTime, error) {
	const op = "CreateFromCodes"
	if !isDigits(dateCode, 8) {
		return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleDatetime, op, "dateCode", dateCode, "YYYYMMDD")
	}
	if !isDigits(timeCode, 4) {
		return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleDatetime, op, "timeCode", timeCode, "hhmm")
	}
	value := dateCode[:4] + "-" + dateCode[4:6] + "-" + dateCode[6:] + " " + timeCode[:2] + ":" + timeCode[2:]

	o := buildOptions(opts)
	return build(op, value, zone, o.calendar)
}

// CreateFromValues builds a value from "YYYY-MM-DD" and "hh:mm"
func CreateFromValues(dateValue, timeValue, zone string, opts ...Option) (*DateTime, error) {
	const op = "CreateFromValues"
	if !isDateValue(dateValue) {
		return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleDatetime, op, "dateValue", dateValue, "YYYY-MM-DD")
	}
	if !isTimeValue(timeValue) {
		return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleDatetime, op, "timeValue", timeValue, "hh:mm")
	}

	o := buildOptions(opts)
	return build(op, dateValue+" "+timeValue, zone, o.calendar)
}

func isDateValue(s string) bool {
	return len(s) == 10 && s[4] == '-' && s[7] == '-' &&
		isDigits(s[:4], 4) && isDigits(s[5:7], 2) && isDigits(s[8:], 2)
}

func isTimeValue(s string) bool {
	return len(s) == 5 && s[2] == ':' && isDigits(s[:2], 2) && isDigits(s[3:], 2)
}

// ValidateDateTimeFormat reports whether value is a valid "YYYY-MM-DD hh:mm"
func ValidateDateTimeFormat(value string) bool {
	_, err := New(value, UTC)
	return err == nil
}

// ValidateDateFormat reports whether dateValue is a valid "YYYY-MM-DD"
func ValidateDateFormat(dateValue string) bool {
	_, err := CreateFromValues(dateValue, "00:00", UTC)
	return err == nil
}

// ValidateTimeFormat reports whether timeValue is a valid "hh:mm"
func ValidateTimeFormat(timeValue string) bool {
	_, err := CreateFromValues("2000-01-01", timeValue, UTC)
	return err == nil
}

// ValidateTimeZone reports whether zone is accepted
func ValidateTimeZone(zone string) bool {
	_, err := resolveZone(DefaultCalendar(), "ValidateTimeZone", zone)
	return err == nil
}
