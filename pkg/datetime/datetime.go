// File: datetime.go
// Title: Zoned DateTime Value Type
// Description: Immutable zoned calendar moment built from a validated
//              "YYYY-MM-DD hh:mm" wall clock and a validated zone. The
//              absolute instant and the derived codes are computed once.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package datetime

import (
	"strings"
	"time"

	mdwerrors "github.com/msto63/chronos/foundation/core/errors"
)

// ISOLayout renders instants with millisecond precision and a numeric offset
const ISOLayout = "2006-01-02T15:04:05.000-07:00"

// DateTime is an immutable wall-clock moment in a zone. Every method that
// looks like a mutation returns a new value.
type DateTime struct {
	value string
	zone  string
	loc   *time.Location

	instant   time.Time
	timestamp int64
	dateCode  string
	timeCode  string
	dateValue string
	timeValue string

	cal Calendar
}

// Payload is the construction record of a DateTime
type Payload struct {
	Value string `json:"value" yaml:"value" toml:"value" msgpack:"value"`
	Zone  string `json:"zone" yaml:"zone" toml:"zone" msgpack:"zone"`
}

// New validates value ("YYYY-MM-DD hh:mm") and zone and builds a DateTime.
// Wall clocks inside a DST gap move forward by the gap; wall clocks inside
// an overlap resolve to the earlier instant.
func New(value, zone string, opts ...Option) (*DateTime, error) {
	o := buildOptions(opts)
	return build("New", value, zone, o.calendar)
}

// FromPayload builds a DateTime from its construction record
func FromPayload(p Payload, opts ...Option) (*DateTime, error) {
	o := buildOptions(opts)
	return build("FromPayload", p.Value, p.Zone, o.calendar)
}

func build(operation, value, zone string, cal Calendar) (*DateTime, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, mdwerrors.Required(mdwerrors.ModuleDatetime, operation, "value")
	}

	zi, err := resolveZone(cal, operation, zone)
	if err != nil {
		return nil, err
	}

	instant, err := cal.ParseWallClock(value, zi.loc)
	if err != nil {
		return nil, rewrap(operation, "value", value, err)
	}

	// the text stays as given; only the instant reflects a DST gap
	return &DateTime{
		value:     value,
		zone:      zi.name,
		loc:       zi.loc,
		instant:   instant,
		timestamp: instant.Unix(),
		dateCode:  strings.ReplaceAll(value[:10], "-", ""),
		timeCode:  strings.ReplaceAll(value[11:], ":", ""),
		dateValue: value[:10],
		timeValue: value[11:],
		cal:       cal,
	}, nil
}

// derive builds a value in zone from an instant, keeping the receiver's
// calendar
func (d *DateTime) derive(operation string, instant time.Time, zone string) (*DateTime, error) {
	cal := d.calendar()
	zi, err := resolveZone(cal, operation, zone)
	if err != nil {
		return nil, err
	}
	return build(operation, cal.RenderWallClock(instant, zi.loc), zi.name, cal)
}

// calendar returns the engine that built d; zero values use the default
func (d *DateTime) calendar() Calendar {
	if d.cal == nil {
		return DefaultCalendar()
	}
	return d.cal
}

// Zone returns the normalized zone identifier
func (d *DateTime) Zone() string { return d.zone }

// Timestamp returns whole seconds since the Unix epoch
func (d *DateTime) Timestamp() int64 { return d.timestamp }

// DateCode returns the date as "YYYYMMDD"
func (d *DateTime) DateCode() string { return d.dateCode }

// TimeCode returns the time as "hhmm"
func (d *DateTime) TimeCode() string { return d.timeCode }

// DateValue returns the date as "YYYY-MM-DD"
func (d *DateTime) DateValue() string { return d.dateValue }

// TimeValue returns the time as "hh:mm"
func (d *DateTime) TimeValue() string { return d.timeValue }

// Time returns the absolute instant in the value's location
func (d *DateTime) Time() time.Time { return d.instant }

// Location returns the resolved location of the zone
func (d *DateTime) Location() *time.Location { return d.loc }

// String renders "<value> <zone>"
func (d *DateTime) String() string {
	if d == nil {
		return "<nil>"
	}
	return d.value + " " + d.zone
}

// DateTimeString returns the "YYYY-MM-DD hh:mm" wall clock as given
func (d *DateTime) DateTimeString() string {
	return d.value
}

// ISOString renders ISO-8601 with milliseconds and a numeric offset, e.g.
// 2024-01-01T10:00:00.000+05:30 or 2024-01-01T10:00:00.000+00:00
func (d *DateTime) ISOString() string {
	return d.instant.Format(ISOLayout)
}

// Payload returns the construction record
func (d *DateTime) Payload() Payload {
	return Payload{Value: d.value, Zone: d.zone}
}
