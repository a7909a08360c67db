// File: zone.go
// Title: Zone Normalization and Validation
// Description: Normalizes zone identifiers and resolves them to locations:
//              "utc", fixed "UTC±H[:MM]" offsets and IANA names.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package datetime

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	mdwerrors "github.com/msto63/chronos/foundation/core/errors"
)

// UTC is the normalized name of the UTC zone
const UTC = "utc"

// Fixed offset bounds in minutes
const (
	maxEastMinutes = 14 * 60
	maxWestMinutes = 12 * 60
)

var offsetPattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?$`)

type zoneInfo struct {
	name string
	loc  *time.Location
}

// normalizeZone trims the zone and folds any casing of "utc" to "utc"
func normalizeZone(zone string) string {
	zone = strings.TrimSpace(zone)
	if strings.EqualFold(zone, UTC) {
		return UTC
	}
	return zone
}

// resolveZone validates a zone identifier and returns its location
func resolveZone(cal Calendar, operation, zone string) (zoneInfo, error) {
	name := normalizeZone(zone)
	switch {
	case name == "":
		return zoneInfo{}, mdwerrors.Required(mdwerrors.ModuleDatetime, operation, "zone")
	case strings.EqualFold(name, "local"):
		return zoneInfo{}, mdwerrors.InvalidZone(mdwerrors.ModuleDatetime, operation, zone, "local zone is not allowed")
	case name == UTC:
		return zoneInfo{name: UTC, loc: time.UTC}, nil
	}

	if len(name) > 3 && strings.EqualFold(name[:3], UTC) && (name[3] == '+' || name[3] == '-') {
		offset, err := parseOffset(operation, name)
		if err != nil {
			return zoneInfo{}, err
		}
		return zoneInfo{name: name, loc: cal.FixedZone(name, offset)}, nil
	}

	loc, err := cal.LoadZone(name)
	if err != nil {
		return zoneInfo{}, rewrap(operation, "zone", zone, err)
	}
	return zoneInfo{name: name, loc: loc}, nil
}

// parseOffset parses "UTC+H", "UTC+HH:MM" or the negative forms into
// seconds east of UTC
func parseOffset(operation, zone string) (int, error) {
	sign := 1
	if zone[3] == '-' {
		sign = -1
	}

	m := offsetPattern.FindStringSubmatch(zone[4:])
	if m == nil {
		return 0, mdwerrors.InvalidZone(mdwerrors.ModuleDatetime, operation, zone, "offset must be H or H:MM")
	}
	hours, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}
	if minutes >= 60 {
		return 0, mdwerrors.InvalidZone(mdwerrors.ModuleDatetime, operation, zone, "offset minutes must be below 60")
	}

	total := hours*60 + minutes
	if (sign > 0 && total > maxEastMinutes) || (sign < 0 && total > maxWestMinutes) {
		return 0, mdwerrors.InvalidZone(mdwerrors.ModuleDatetime, operation, zone, "offset must be within -12:00 and +14:00")
	}
	return sign * total * 60, nil
}
