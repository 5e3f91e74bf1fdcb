// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for devconsole.
//
// Configuration file locations (in order of precedence):
//   - DEVCONSOLE_* environment variables
//   - ~/.devconsole/config.toml
//   - Built-in defaults
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/fdick/Console/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete devconsole configuration.
type Config struct {
	Console ConsoleConfig `toml:"console"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// ConsoleConfig bounds the session and the views that render it.
type ConsoleConfig struct {
	// HistoryCapacity is the number of submitted lines kept for recall
	HistoryCapacity int `toml:"history_capacity"`

	// MaxPredictions caps the autocomplete list
	MaxPredictions int `toml:"max_predictions"`

	// MaxInputLength is the edit field character limit
	MaxInputLength int `toml:"max_input_length"`

	// TranscriptCapacity is the number of transcript lines a view keeps
	TranscriptCapacity int `toml:"transcript_capacity"`
}

// UIConfig contains terminal rendering preferences.
type UIConfig struct {
	// Theme is "auto", "dark" or "light"
	Theme string `toml:"theme"`

	// NoColor forces the ASCII color profile
	NoColor bool `toml:"no_color"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`

	// File is the log destination; empty means <config dir>/devconsole.log
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Console: ConsoleConfig{
			HistoryCapacity:    10,
			MaxPredictions:     10,
			MaxInputLength:     100,
			TranscriptCapacity: 300,
		},
		UI: UIConfig{
			Theme: "auto",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the devconsole configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".devconsole"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the file logs are written to.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "devconsole.log"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads the default config file, falling back to built-in defaults when
// it does not exist. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg. Keys absent from the file keep
// their current values.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML saves the configuration to a TOML file, creating its directory.
// The file is replaced atomically so a running Watch never reads half of it.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# devconsole configuration file\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// WriteDefault writes the built-in configuration, with environment overrides
// applied, to path (ConfigPath when empty) and returns the path written.
// An existing file is never overwritten.
func WriteDefault(path string) (string, error) {
	cfg := Default()
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return "", fmt.Errorf("invalid config: %w", err)
	}

	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return "", err
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists: %s", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to check config file: %w", err)
	}

	if err := SaveTOML(cfg, path); err != nil {
		return "", err
	}
	return path, nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var (
	validThemes    = map[string]bool{"auto": true, "dark": true, "light": true}
	validLevels    = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormat = map[string]bool{"text": true, "json": true}
)

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	positive := []struct {
		field string
		value int
	}{
		{"console.history_capacity", c.Console.HistoryCapacity},
		{"console.max_predictions", c.Console.MaxPredictions},
		{"console.max_input_length", c.Console.MaxInputLength},
		{"console.transcript_capacity", c.Console.TranscriptCapacity},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, ValidationError{
				Field:   p.field,
				Message: fmt.Sprintf("must be positive, got %d", p.value),
			})
		}
	}

	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light", c.UI.Theme),
		})
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}
	if !validLogFormat[strings.ToLower(c.Log.Format)] {
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Message: fmt.Sprintf("invalid format '%s', must be one of: text, json", c.Log.Format),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills empty string settings and normalizes case.
func (c *Config) SetDefaults() {
	d := Default()
	if c.UI.Theme == "" {
		c.UI.Theme = d.UI.Theme
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
	c.UI.Theme = strings.ToLower(c.UI.Theme)
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - DEVCONSOLE_HISTORY_CAPACITY: overrides console.history_capacity
//   - DEVCONSOLE_MAX_PREDICTIONS: overrides console.max_predictions
//   - DEVCONSOLE_LOG_LEVEL: overrides log.level
//   - DEVCONSOLE_LOG_FORMAT: overrides log.format
//   - DEVCONSOLE_THEME: overrides ui.theme
//   - NO_COLOR: any non-empty value sets ui.no_color
//
// Integer variables that do not parse are ignored.
func (c *Config) ApplyEnvOverrides() {
	if n, ok := envInt("DEVCONSOLE_HISTORY_CAPACITY"); ok {
		c.Console.HistoryCapacity = n
	}
	if n, ok := envInt("DEVCONSOLE_MAX_PREDICTIONS"); ok {
		c.Console.MaxPredictions = n
	}
	if level := os.Getenv("DEVCONSOLE_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if format := os.Getenv("DEVCONSOLE_LOG_FORMAT"); format != "" {
		c.Log.Format = format
	}
	if theme := os.Getenv("DEVCONSOLE_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if os.Getenv("NO_COLOR") != "" {
		c.UI.NoColor = true
	}
}

func envInt(name string) (int, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}
