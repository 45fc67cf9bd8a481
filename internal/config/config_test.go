// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
	if cfg.API.BaseURL == "" {
		t.Error("default config missing API base URL")
	}
	if !cfg.UI.PacingEnabled {
		t.Error("message pacing should be on by default")
	}
}

func TestLoadTOMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	raw := "[api]\nbase_url = \"http://example.test:9000\"\n\n[ui]\npacing_delay_ms = 250\n"
	if err := os.WriteFile(path, []byte(raw), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	loaded := Default()
	if err := LoadTOML(loaded, path); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}
	if loaded.API.BaseURL != "http://example.test:9000" {
		t.Errorf("expected overridden base URL, got %q", loaded.API.BaseURL)
	}
	if loaded.UI.PacingDelayMs != 250 {
		t.Errorf("expected pacing delay 250, got %d", loaded.UI.PacingDelayMs)
	}
}

func TestLoadTOMLFixesPermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("version = \"0.1.0\"\n"), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected permissions fixed to 0600, got %o", perm)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad url", func(c *Config) { c.API.BaseURL = "not a url" }},
		{"zero timeout", func(c *Config) { c.API.TimeoutSecs = 0 }},
		{"huge timeout", func(c *Config) { c.API.TimeoutSecs = 9999 }},
		{"negative pacing", func(c *Config) { c.UI.PacingDelayMs = -1 }},
		{"huge pacing", func(c *Config) { c.UI.PacingDelayMs = 60000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("HAVEN_API_URL", "http://staging.test:8000")
	t.Setenv("HAVEN_API_TIMEOUT_SECS", "30")
	t.Setenv("HAVEN_PACING", "false")
	t.Setenv("HAVEN_COMPACT", "1")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.API.BaseURL != "http://staging.test:8000" {
		t.Errorf("expected env base URL, got %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSecs != 30 {
		t.Errorf("expected timeout 30, got %d", cfg.API.TimeoutSecs)
	}
	if cfg.UI.PacingEnabled {
		t.Error("expected pacing disabled via env")
	}
	if !cfg.UI.CompactMode {
		t.Error("expected compact mode enabled via env")
	}
}

func TestSetDefaultsFillsZeroValues(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()
	if cfg.API.BaseURL == "" || cfg.API.TimeoutSecs == 0 || cfg.UI.PacingDelayMs == 0 {
		t.Errorf("SetDefaults left zero values: %+v", cfg)
	}
}

// TestConfig_ConcurrentAccess verifies Global() and SetGlobal() are safe to
// call concurrently. Run with: go test -race -v ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()

		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}
