// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Model.OllamaURL != "http://127.0.0.1:11434" {
		t.Errorf("unexpected default URL: %s", cfg.Model.OllamaURL)
	}
	if cfg.Generation.MaxTokens != 200 {
		t.Errorf("unexpected default max_tokens: %d", cfg.Generation.MaxTokens)
	}
}

func TestLoadFromPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[model]
name = "llama3.2:1b"

[generation]
max_tokens = 128
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Model.Name != "llama3.2:1b" {
		t.Errorf("file value not applied: %s", cfg.Model.Name)
	}
	if cfg.Generation.MaxTokens != 128 {
		t.Errorf("file value not applied: %d", cfg.Generation.MaxTokens)
	}
	// Unset values fall back to defaults
	if cfg.Generation.Temperature != 0.2 {
		t.Errorf("default temperature not filled: %g", cfg.Generation.Temperature)
	}
	if cfg.UI.WordWrap != 76 {
		t.Errorf("default word_wrap not filled: %d", cfg.UI.WordWrap)
	}
}

func TestExplicitZeroTemperatureSurvivesLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[generation]
temperature = 0.0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	// temperature = 0 is greedy decoding, not "unset"; it must not be
	// replaced by the default.
	if cfg.Generation.Temperature != 0 {
		t.Errorf("explicit zero temperature overwritten: %g", cfg.Generation.Temperature)
	}
	// Untouched parameters keep their defaults.
	if cfg.Generation.MaxTokens != 200 || cfg.Generation.TopP != 0.9 {
		t.Errorf("unset sampling defaults lost: %+v", cfg.Generation)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CRUISEBOT_MODEL", "phi3:mini")
	t.Setenv("CRUISEBOT_MAX_TOKENS", "64")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Model.Name != "phi3:mini" {
		t.Errorf("env override not applied: %s", cfg.Model.Name)
	}
	if cfg.Generation.MaxTokens != 64 {
		t.Errorf("env override not applied: %d", cfg.Generation.MaxTokens)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Generation.MaxTokens = 100000
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for out-of-range max_tokens")
	}

	cfg = Default()
	cfg.Generation.TopP = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for out-of-range top_p")
	}
}
