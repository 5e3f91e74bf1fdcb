// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for devconsole.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - ConsoleConfig: History, prediction and view bounds
//   - UIConfig: Theme and color preferences
//   - LogConfig: Diagnostic log level, format and destination
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (DEVCONSOLE_*, NO_COLOR)
//   - ~/.devconsole/config.toml
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Write a starter file (never overwrites):
//
//	path, err := config.WriteDefault("")
//
// Follow edits to the file:
//
//	err := config.Watch(ctx, path, func(cfg *config.Config) {
//	    session.SetMaxPredictions(cfg.Console.MaxPredictions)
//	}, nil)
package config
