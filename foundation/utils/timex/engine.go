// File: engine.go
// Title: Calendar Engine
// Description: Implements the zone-database backed calendar engine used by
//              pkg/datetime: cached zone resolution, strict wall-clock
//              parsing with deterministic DST handling, calendar-day
//              arithmetic and diffing, month bounds and day splitting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-10-19 v0.2.0: Reworked into the Engine type for zoned wall clocks

package timex

import (
	"fmt"
	"strings"
	"sync"
	"time"

	// the engine must not depend on the host zoneinfo files
	_ "time/tzdata"

	mdwerrors "github.com/msto63/chronos/foundation/core/errors"
	mdwlog "github.com/msto63/chronos/foundation/core/log"
)

// WallClockLayout is the only accepted wall-clock shape
const WallClockLayout = "2006-01-02 15:04"

const secondsPerDay = 86400

// Engine resolves zones and converts between instants and wall clocks
type Engine struct {
	mu     sync.RWMutex
	zones  map[string]*time.Location
	logger *mdwlog.Logger
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithLogger sets the logger used for zone loading diagnostics
func WithLogger(logger *mdwlog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger.WithName("timex")
		}
	}
}

// NewEngine creates an engine with an empty zone cache
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		zones:  make(map[string]*time.Location),
		logger: mdwlog.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewEngine()

// Default returns the process-wide engine
func Default() *Engine {
	return defaultEngine
}

// LoadZone resolves an IANA zone name. "utc" in any case maps to time.UTC;
// the empty name and "local" are rejected.
func (e *Engine) LoadZone(name string) (*time.Location, error) {
	if name == "" {
		return nil, mdwerrors.Required(mdwerrors.ModuleTimex, "LoadZone", "zone")
	}
	if strings.EqualFold(name, "local") {
		return nil, mdwerrors.InvalidZone(mdwerrors.ModuleTimex, "LoadZone", name, "local zone is not allowed")
	}
	if strings.EqualFold(name, "utc") {
		return time.UTC, nil
	}

	e.mu.RLock()
	if loc, exists := e.zones[name]; exists {
		e.mu.RUnlock()
		e.logger.Trace("zone cache hit", mdwlog.Fields{"zone": name})
		return loc, nil
	}
	e.mu.RUnlock()

	loc, err := time.LoadLocation(name)
	if err != nil {
		e.logger.Debug("zone lookup failed", mdwlog.Fields{"zone": name}.Merge(mdwlog.Err(err)))
		return nil, mdwerrors.InvalidZone(mdwerrors.ModuleTimex, "LoadZone", name, "unknown zone")
	}

	e.mu.Lock()
	e.zones[name] = loc
	e.mu.Unlock()

	e.logger.Debug("zone loaded", mdwlog.Field("zone", name))
	return loc, nil
}

// FixedZone returns a location with a constant offset east of UTC
func (e *Engine) FixedZone(name string, offsetSeconds int) *time.Location {
	return time.FixedZone(name, offsetSeconds)
}

// ParseWallClock parses exactly "YYYY-MM-DD hh:mm" as a wall clock in loc.
// Wall clocks inside a DST gap move forward by the gap length; wall clocks
// inside an overlap resolve to the earlier instant.
func (e *Engine) ParseWallClock(value string, loc *time.Location) (time.Time, error) {
	const op = "ParseWallClock"
	if loc == nil {
		return time.Time{}, mdwerrors.Required(mdwerrors.ModuleTimex, op, "zone")
	}
	if len(value) != len(WallClockLayout) || value[4] != '-' || value[7] != '-' || value[10] != ' ' || value[13] != ':' {
		return time.Time{}, mdwerrors.InvalidFormat(mdwerrors.ModuleTimex, op, "value", value, "YYYY-MM-DD hh:mm")
	}

	var fields [5]int
	spans := [5][2]int{{0, 4}, {5, 7}, {8, 10}, {11, 13}, {14, 16}}
	for i, span := range spans {
		n, ok := digits(value[span[0]:span[1]])
		if !ok {
			return time.Time{}, mdwerrors.InvalidFormat(mdwerrors.ModuleTimex, op, "value", value, "YYYY-MM-DD hh:mm")
		}
		fields[i] = n
	}
	year, month, day, hour, minute := fields[0], fields[1], fields[2], fields[3], fields[4]

	switch {
	case month < 1 || month > 12:
		return time.Time{}, mdwerrors.InvalidDate(mdwerrors.ModuleTimex, op, "value", value, "month out of range")
	case day < 1 || day > DaysIn(year, time.Month(month)):
		return time.Time{}, mdwerrors.InvalidDate(mdwerrors.ModuleTimex, op, "value", value, "day out of range")
	case hour > 23:
		return time.Time{}, mdwerrors.InvalidDate(mdwerrors.ModuleTimex, op, "value", value, "hour out of range")
	case minute > 59:
		return time.Time{}, mdwerrors.InvalidDate(mdwerrors.ModuleTimex, op, "value", value, "minute out of range")
	}

	wall := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	return resolveWall(wall, loc), nil
}

// RenderWallClock renders t as "YYYY-MM-DD hh:mm" in loc
func (e *Engine) RenderWallClock(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}

// AddDays moves t by whole calendar days in its own location, keeping the
// wall-clock time of day
func (e *Engine) AddDays(t time.Time, days int) time.Time {
	y, m, d := t.Date()
	h, mi, s := t.Clock()
	wall := time.Date(y, m, d+days, h, mi, s, t.Nanosecond(), time.UTC)
	return resolveWall(wall, t.Location())
}

// DiffDays returns a - b in calendar days measured in a's location: whole
// days first, then the remainder as a fraction of 24 hours
func (e *Engine) DiffDays(a, b time.Time) float64 {
	loc := a.Location()
	later, earlier := a, b.In(loc)
	sign := 1.0
	if later.Before(earlier) {
		later, earlier = earlier, later
		sign = -1
	}

	days := int((civilUnix(later) - civilUnix(earlier)) / secondsPerDay)
	cursor := e.AddDays(earlier, days)
	for days > 0 && cursor.After(later) {
		days--
		cursor = e.AddDays(earlier, days)
	}

	remainder := later.Sub(cursor).Hours() / 24
	return sign * (float64(days) + remainder)
}

// StartOfMonth returns day 1 00:00 of t's month in t's location
func (e *Engine) StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return resolveWall(time.Date(y, m, 1, 0, 0, 0, 0, time.UTC), t.Location())
}

// EndOfMonth returns the last millisecond of t's month in t's location
func (e *Engine) EndOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	last := time.Date(y, m+1, 0, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	return resolveWall(last, t.Location())
}

// SplitByDay returns the start of every one-day step from start while
// before end
func (e *Engine) SplitByDay(start, end time.Time) []time.Time {
	var points []time.Time
	for i, cur := 0, start; cur.Before(end); {
		points = append(points, cur)
		i++
		cur = e.AddDays(start, i)
	}
	return points
}

// DaysIn returns the number of days in the given month
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// resolveWall maps a wall clock (carried as a UTC time) to an instant in loc
func resolveWall(wall time.Time, loc *time.Location) time.Time {
	if loc == time.UTC {
		return wall
	}
	local := wall.Unix()
	offsetAt := func(unix int64) int64 {
		_, offset := time.Unix(unix, 0).In(loc).Zone()
		return int64(offset)
	}

	before := offsetAt(local - secondsPerDay)
	after := offsetAt(local + secondsPerDay)
	first, second := local-before, local-after
	firstValid := offsetAt(first) == before
	secondValid := offsetAt(second) == after

	var unix int64
	switch {
	case firstValid && secondValid:
		unix = min(first, second)
	case firstValid:
		unix = first
	case secondValid:
		unix = second
	default:
		// gap: the pre-transition offset lands past the transition
		unix = first
	}
	return time.Unix(unix, int64(wall.Nanosecond())).In(loc)
}

// civilUnix returns the unix seconds of t's civil date at UTC midnight
func civilUnix(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
}

func digits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
