// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading for the Haven TUI.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - APIConfig: Backend connection settings
//   - SessionConfig: Session persistence settings
//   - UIConfig: Chat layout and message pacing settings
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (HAVEN_*)
//   - ~/.haven/config.toml
//   - ~/.haven/config.json
//   - Built-in defaults
//
// A .env file in the working directory is loaded before environment
// overrides are read, so HAVEN_* vars can live alongside the binary
// during development.
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
// Access settings:
//
//	baseURL := cfg.API.BaseURL
//	pacing := cfg.UI.PacingEnabled
package config
