// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML parsing, defaults, environment overrides
//              and typed getters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2025-10-19 v0.2.0: Optional loading and dotted defaults

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
)

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "chronos.toml")
		configContent := `
default_zone = "Europe/Berlin"

[log]
level = "debug"
format = "json"

[output]
styled = false
timeout = "30s"
zones = ["utc", "Asia/Tokyo"]
`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if got := cfg.GetString("default_zone"); got != "Europe/Berlin" {
			t.Errorf("default_zone = %q", got)
		}
		if got := cfg.GetString("log.level"); got != "debug" {
			t.Errorf("log.level = %q", got)
		}
		if cfg.GetBool("output.styled", true) {
			t.Error("output.styled should be false")
		}
		if got := cfg.GetDuration("output.timeout"); got != 30*time.Second {
			t.Errorf("output.timeout = %v", got)
		}
		zones := cfg.GetStringSlice("output.zones")
		if len(zones) != 2 || zones[1] != "Asia/Tokyo" {
			t.Errorf("output.zones = %v", zones)
		}
		if cfg.Format() != FormatTOML {
			t.Errorf("format = %v", cfg.Format())
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "chronos.yaml")
		configContent := `
default_zone: Asia/Tokyo
log:
  level: warn
retries: 3
ratio: 0.5
`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if cfg.Format() != FormatYAML {
			t.Errorf("format = %v", cfg.Format())
		}
		if got := cfg.GetString("log.level"); got != "warn" {
			t.Errorf("log.level = %q", got)
		}
		if got := cfg.GetInt("retries"); got != 3 {
			t.Errorf("retries = %d", got)
		}
		if got := cfg.GetFloat("ratio"); got != 0.5 {
			t.Errorf("ratio = %v", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "absent.toml"))
		if !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
			t.Errorf("expected CodeMissingConfig, got %v", err)
		}
	})

	t.Run("missing optional file", func(t *testing.T) {
		cfg, err := LoadWithOptions(filepath.Join(tempDir, "absent.toml"), LoadOptions{
			Format:   FormatAuto,
			Optional: true,
			Defaults: map[string]interface{}{"default_zone": "utc"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := cfg.GetString("default_zone"); got != "utc" {
			t.Errorf("default_zone = %q", got)
		}
	})

	t.Run("invalid content", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "broken.toml")
		if err := os.WriteFile(configPath, []byte("[log\nlevel ="), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		_, err := Load(configPath)
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
			t.Errorf("expected CodeInvalidConfig, got %v", err)
		}
	})
}

func TestDefaults(t *testing.T) {
	cfg, err := LoadWithOptions("", LoadOptions{
		Optional: true,
		Defaults: map[string]interface{}{
			"log.level":     "info",
			"log.format":    "text",
			"output.styled": true,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := cfg.GetString("log.level"); got != "info" {
		t.Errorf("log.level = %q", got)
	}
	if !cfg.GetBool("output.styled") {
		t.Error("output.styled should default to true")
	}

	t.Run("file values win over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "c.toml")
		if err := os.WriteFile(path, []byte("[log]\nlevel = \"error\"\n"), 0644); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadWithOptions(path, LoadOptions{
			Format:   FormatAuto,
			Defaults: map[string]interface{}{"log.level": "info", "log.format": "text"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := cfg.GetString("log.level"); got != "error" {
			t.Errorf("log.level = %q", got)
		}
		if got := cfg.GetString("log.format"); got != "text" {
			t.Errorf("log.format = %q", got)
		}
	})
}

func TestEnvironmentOverride(t *testing.T) {
	cfg, err := LoadFromString("[log]\nlevel = \"info\"\n", FormatTOML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.envPrefix = "chronos"
	cfg.lookupEnv = func(key string) (string, bool) {
		env := map[string]string{
			"CHRONOS_LOG_LEVEL":     "trace",
			"CHRONOS_OUTPUT_STYLED": "false",
			"CHRONOS_EMPTY":         "",
		}
		v, ok := env[key]
		return v, ok
	}

	if got := cfg.GetString("log.level"); got != "trace" {
		t.Errorf("log.level = %q, want env override", got)
	}
	if cfg.GetBool("output.styled", true) {
		t.Error("output.styled should be overridden to false")
	}
	if got := cfg.GetString("empty", "fallback"); got != "fallback" {
		t.Errorf("empty env value should be ignored, got %q", got)
	}
	if !cfg.Has("output.styled") {
		t.Error("Has should see env overrides")
	}
}

func TestFormatEnvKey(t *testing.T) {
	tests := []struct {
		prefix string
		key    string
		want   string
	}{
		{"", "log.level", "LOG_LEVEL"},
		{"chronos", "log.level", "CHRONOS_LOG_LEVEL"},
		{"CHRONOS", "default_zone", "CHRONOS_DEFAULT_ZONE"},
	}
	for _, tt := range tests {
		c := &Config{envPrefix: tt.prefix}
		if got := c.formatEnvKey(tt.key); got != tt.want {
			t.Errorf("formatEnvKey(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
		}
	}
}

func TestSetAndGetAll(t *testing.T) {
	cfg, err := LoadFromString("a = 1\n", FormatTOML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Set("output.styled", false)

	all := cfg.GetAll()
	output, ok := all["output"].(map[string]interface{})
	if !ok || output["styled"] != false {
		t.Fatalf("GetAll = %v", all)
	}

	output["styled"] = true
	if cfg.GetBool("output.styled", true) {
		t.Error("GetAll must return a copy")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"chronos.toml": FormatTOML,
		"chronos.yaml": FormatYAML,
		"chronos.YML":  FormatYAML,
		"chronos":      FormatTOML,
	}
	for path, want := range tests {
		if got := detectFormat(path); got != want {
			t.Errorf("detectFormat(%q) = %v, want %v", path, got, want)
		}
	}
}
