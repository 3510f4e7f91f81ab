// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Precision != 3 {
		t.Errorf("default precision = %d, want 3", cfg.Precision)
	}
	if cfg.UI.Theme != "auto" {
		t.Errorf("default theme = %q, want \"auto\"", cfg.UI.Theme)
	}
	if !cfg.UI.ShowPreview {
		t.Error("default show_preview = false, want true")
	}
	if cfg.UI.HistoryLimit != 0 {
		t.Errorf("default history_limit = %d, want 0", cfg.UI.HistoryLimit)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"precision upper bound", func(c *Config) { c.Precision = 10 }, false},
		{"precision too large", func(c *Config) { c.Precision = 11 }, true},
		{"precision negative", func(c *Config) { c.Precision = -1 }, true},
		{"dark theme", func(c *Config) { c.UI.Theme = "dark" }, false},
		{"theme case-insensitive", func(c *Config) { c.UI.Theme = "Light" }, false},
		{"unknown theme", func(c *Config) { c.UI.Theme = "solarized" }, true},
		{"negative history limit", func(c *Config) { c.UI.HistoryLimit = -1 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
version = "1.0.0"
precision = 5

[ui]
theme = "dark"
show_preview = false
history_limit = 100
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}

	if cfg.Precision != 5 {
		t.Errorf("precision = %d, want 5", cfg.Precision)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("theme = %q, want \"dark\"", cfg.UI.Theme)
	}
	if cfg.UI.ShowPreview {
		t.Error("show_preview = true, want false")
	}
	if cfg.UI.HistoryLimit != 100 {
		t.Errorf("history_limit = %d, want 100", cfg.UI.HistoryLimit)
	}
}

func TestLoadFromPathInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte("precision = 99\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Error("LoadFromPath() accepted out-of-range precision")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.Precision = 2
	cfg.UI.Theme = "light"

	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML() error = %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if loaded.Precision != 2 {
		t.Errorf("round-tripped precision = %d, want 2", loaded.Precision)
	}
	if loaded.UI.Theme != "light" {
		t.Errorf("round-tripped theme = %q, want \"light\"", loaded.UI.Theme)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("CALCPAD_THEME", "dark")
	t.Setenv("CALCPAD_PRECISION", "6")
	t.Setenv("CALCPAD_HISTORY_LIMIT", "50")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.UI.Theme != "dark" {
		t.Errorf("theme = %q, want \"dark\"", cfg.UI.Theme)
	}
	if cfg.Precision != 6 {
		t.Errorf("precision = %d, want 6", cfg.Precision)
	}
	if cfg.UI.HistoryLimit != 50 {
		t.Errorf("history_limit = %d, want 50", cfg.UI.HistoryLimit)
	}
}

func TestApplyEnvOverridesIgnoresGarbage(t *testing.T) {
	t.Setenv("CALCPAD_PRECISION", "banana")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Precision != 3 {
		t.Errorf("precision = %d after garbage override, want 3", cfg.Precision)
	}
}

// TestConfig_ConcurrentAccess tests that Global(), SetGlobal(), and
// ReloadGlobal() can be safely called concurrently without race conditions.
// Run with: go test -race -v ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	ResetGlobalForTesting()

	var wg sync.WaitGroup

	// 50 writers using SetGlobal, 50 readers using Global
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
