// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration files with
//              defaults and environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-10-19 v0.2.0: Trimmed to the loader used by the chronos CLI

/*
Package config provides configuration loading for chronos.

Load a file and read typed values with dot notation:

	cfg, err := mdwconfig.LoadWithOptions("chronos.toml", mdwconfig.LoadOptions{
		Format:    mdwconfig.FormatAuto,
		EnvPrefix: "CHRONOS",
		Optional:  true,
		Defaults: map[string]interface{}{
			"default_zone": "utc",
			"log.level":    "info",
		},
	})
	if err != nil {
		return err
	}

	zone := cfg.GetString("default_zone")
	styled := cfg.GetBool("output.styled", true)

# Environment Overrides

When an EnvPrefix is set, every getter first consults the environment.
The key log.level with prefix CHRONOS maps to CHRONOS_LOG_LEVEL. Empty
variables are ignored.

# Errors

Missing files fail with CodeMissingConfig unless Optional is set. Parse
failures carry CodeInvalidConfig together with the file path and format.
*/
package config
