// Package timex implements the calendar engine behind chronos date/time values.
//
// Package: timex
// Title: Calendar Engine and Duration Helpers
// Description: Zone resolution on the embedded IANA database, strict
//              wall-clock parsing, calendar-day arithmetic and diffing,
//              month bounds, day splitting and extended duration parsing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2025-01-26 v0.1.1: Enhanced documentation
// - 2025-10-19 v0.2.0: Engine type for zoned wall clocks
//
// # Engine
//
// An Engine converts between absolute instants and "YYYY-MM-DD hh:mm" wall
// clocks in a location. Zones are loaded once and cached behind a RWMutex:
//
//	engine := timex.NewEngine(timex.WithLogger(logger))
//	loc, err := engine.LoadZone("America/Los_Angeles")
//	if err != nil {
//		return err
//	}
//	t, err := engine.ParseWallClock("2024-03-10 02:30", loc)
//	// t is 2024-03-10 03:30 PDT: the gap moves the wall clock forward
//
// Wall clocks that occur twice on a fall-back day resolve to the earlier
// instant. Calendar arithmetic (AddDays, StartOfMonth, EndOfMonth) keeps the
// wall-clock time of day and re-resolves it, so a day is not always 24 hours.
//
// # Day Differences
//
// DiffDays counts whole calendar days first and adds the remaining time as a
// fraction of 24 hours. Callers decide how to truncate.
//
// # Durations
//
// ParseDuration accepts Go syntax ("1h30m") as well as "<n> <unit>" forms
// such as "2 hours", "3 days" and "1 week". FormatDurationCompact renders
// "1d 2h 30m 0s".
package timex
