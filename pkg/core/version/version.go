// ============================================================================
// chronos - zoned wall-clock date and time
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      msto63
// Created:     2025-10-19
// License:     MIT
// ============================================================================

package version

// Version constants for all chronos components
const (
	// Platform version
	Platform = "0.1.0"

	// Component versions
	Library = "0.1.0"
	CLI     = "0.1.0"
	Serial  = "0.1.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "datetime", "library":
		return Library
	case "chronos", "cli":
		return CLI
	case "serial":
		return Serial
	default:
		return Platform
	}
}
