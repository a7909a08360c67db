// Package datetime provides zoned wall-clock DateTime values and a
// non-negative Duration.
//
// A DateTime is built from "YYYY-MM-DD hh:mm" and a zone: "utc", an IANA
// name such as "Europe/Berlin", or a fixed offset "UTC+5:30" within
// UTC-12:00 and UTC+14:00. "local" is never accepted.
//
//	d, err := datetime.New("2024-03-10 00:00", "America/Los_Angeles")
//	if err != nil {
//		return err
//	}
//	two, _ := datetime.FromHours(2)
//	later, _ := d.AddTime(two) // 2024-03-10 03:00, the 02:00 hour is skipped
//	next, _ := d.AddDays(1)    // 2024-03-11 00:00, 23 hours later
//
// Ordering (IsBefore, IsSame, ...) compares absolute instants. Equals
// compares the text: the same instant in two zones is IsSame but not Equals.
//
// Errors carry a code from foundation/core/error; use IsMalformed,
// IsInvalidDate, IsInvalidZone, IsInvalidOrder and IsInvalidArgument to
// classify them and Field to find the offending input.
//
// The zone database and calendar arithmetic come from a Calendar, by
// default the foundation/utils/timex engine. WithCalendar swaps it for every
// value derived from the result.
package datetime
