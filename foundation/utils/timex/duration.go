// File: duration.go
// Title: Duration Parsing and Formatting
// Description: Extended duration parsing ("2 hours", "3 days") and compact
//              rendering used by the chronos CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-07-26 v0.1.1: Added FormatDurationCompact, rejected negative input
// - 2025-10-19 v0.2.0: Structured errors, dropped approximate months/years

package timex

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	mdwerrors "github.com/msto63/chronos/foundation/core/errors"
)

// ParseDuration parses Go duration syntax or "<n> <unit>" with units from
// seconds up to weeks. Negative durations are rejected.
func ParseDuration(value string) (time.Duration, error) {
	const op = "ParseDuration"
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, mdwerrors.Required(mdwerrors.ModuleTimex, op, "duration")
	}
	if strings.HasPrefix(value, "-") {
		return 0, mdwerrors.InvalidArgument(mdwerrors.ModuleTimex, op, "duration", value, "negative durations are not supported")
	}

	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}

	parts := strings.Fields(strings.ToLower(value))
	if len(parts) == 2 {
		if num, err := strconv.ParseFloat(parts[0], 64); err == nil && num >= 0 {
			unit := parts[1]
			if unit != "ms" {
				unit = strings.TrimSuffix(unit, "s")
			}
			switch unit {
			case "millisecond", "ms":
				return time.Duration(num * float64(time.Millisecond)), nil
			case "second", "sec":
				return time.Duration(num * float64(time.Second)), nil
			case "minute", "min":
				return time.Duration(num * float64(time.Minute)), nil
			case "hour", "hr":
				return time.Duration(num * float64(time.Hour)), nil
			case "day":
				return time.Duration(num * float64(24*time.Hour)), nil
			case "week":
				return time.Duration(num * float64(7*24*time.Hour)), nil
			}
		}
	}

	return 0, mdwerrors.InvalidFormat(mdwerrors.ModuleTimex, op, "duration", value, "Go duration or \"<n> <unit>\"")
}

// FormatDurationCompact formats a duration in compact format (1d 2h 30m 45s)
func FormatDurationCompact(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	if d < 0 {
		return "-" + FormatDurationCompact(-d)
	}

	var parts []string

	if days := int(d / (24 * time.Hour)); days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
		d -= time.Duration(days) * 24 * time.Hour
	}

	if hours := int(d / time.Hour); hours > 0 || (len(parts) > 0 && d > 0) {
		parts = append(parts, fmt.Sprintf("%dh", hours))
		d -= time.Duration(hours) * time.Hour
	}

	if minutes := int(d / time.Minute); minutes > 0 || (len(parts) > 0 && d > 0) {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
		d -= time.Duration(minutes) * time.Minute
	}

	if seconds := int(d / time.Second); seconds > 0 || (len(parts) > 0 && d > 0) {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
		d -= time.Duration(seconds) * time.Second
	}

	if ms := d / time.Millisecond; ms > 0 {
		parts = append(parts, fmt.Sprintf("%dms", ms))
		d -= ms * time.Millisecond
	}

	if micros := d / time.Microsecond; micros > 0 {
		parts = append(parts, fmt.Sprintf("%dμs", micros))
	}

	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, " ")
}
