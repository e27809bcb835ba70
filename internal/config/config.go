// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for cruisebot.
//
// Configuration is TOML with sensible defaults and environment
// variable overrides. File location: ~/.cruisebot/config.toml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete cruisebot configuration.
type Config struct {
	// Model settings
	Model ModelConfig `toml:"model"`

	// Generation sampling settings
	Generation GenerationConfig `toml:"generation"`

	// Booking state persistence
	Booking BookingConfig `toml:"booking"`

	// UI settings
	UI UIConfig `toml:"ui"`
}

// ModelConfig selects the generation backend and model.
type ModelConfig struct {
	// OllamaURL is the Ollama server base URL.
	OllamaURL string `toml:"ollama_url"`
	// Name is the model used for catalog-grounded generation.
	Name string `toml:"name"`
	// AutoPull pulls the model on first use when it is not present
	// locally. Pull progress is surfaced in the chat widget.
	AutoPull bool `toml:"auto_pull"`
}

// GenerationConfig holds the sampling parameters for generation.
// Defaults favor determinism: the assistant answers from supplied
// catalog data, so creative sampling only invites invented facts.
type GenerationConfig struct {
	// MaxTokens bounds the length of a generated answer.
	MaxTokens int `toml:"max_tokens"`
	// Temperature for sampling.
	Temperature float64 `toml:"temperature"`
	// TopP nucleus sampling parameter.
	TopP float64 `toml:"top_p"`
}

// BookingConfig controls booking-state persistence.
type BookingConfig struct {
	// StatePath is the booking state file. Empty means the default
	// ~/.cruisebot/booking.json.
	StatePath string `toml:"state_path"`
	// WatchExternal reloads the state file when another process
	// modifies it.
	WatchExternal bool `toml:"watch_external"`
}

// UIConfig holds chat widget settings.
type UIConfig struct {
	// OpenOnStart opens the chat widget immediately instead of
	// starting minimized.
	OpenOnStart bool `toml:"open_on_start"`
	// WordWrap is the markdown rendering width for bot messages.
	WordWrap int `toml:"word_wrap"`
	// SendsPerMinute caps how fast messages can be submitted.
	SendsPerMinute int `toml:"sends_per_minute"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			// Explicit IPv4 avoids IPv6 resolution issues on Windows
			OllamaURL: "http://127.0.0.1:11434",
			Name:      "qwen2.5:3b",
			AutoPull:  true,
		},
		Generation: GenerationConfig{
			MaxTokens:   200,
			Temperature: 0.2,
			TopP:        0.9,
		},
		Booking: BookingConfig{
			StatePath:     "",
			WatchExternal: true,
		},
		UI: UIConfig{
			OpenOnStart:    false,
			WordWrap:       76,
			SendsPerMinute: 30,
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Dir returns the cruisebot configuration directory (~/.cruisebot).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".cruisebot"), nil
}

// Load reads the configuration file, applies defaults for missing
// values and environment overrides on top. A missing file is not an
// error; defaults are returned.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(filepath.Join(dir, "config.toml"))
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv applies CRUISEBOT_* environment overrides.
func (c *Config) applyEnv() {
	if v := os.Getenv("CRUISEBOT_OLLAMA_URL"); v != "" {
		c.Model.OllamaURL = v
	}
	if v := os.Getenv("CRUISEBOT_MODEL"); v != "" {
		c.Model.Name = v
	}
	if v := os.Getenv("CRUISEBOT_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Generation.MaxTokens = n
		}
	}
	if v := os.Getenv("CRUISEBOT_BOOKING_STATE"); v != "" {
		c.Booking.StatePath = v
	}
}

// fillDefaults fills values a caller may have blanked after Load.
// The sampling parameters are left alone: decoding happens over
// Default(), so a zero there is an explicit setting (temperature 0 is
// valid greedy decoding; invalid zeros are rejected by Validate).
func (c *Config) fillDefaults() {
	def := Default()
	if c.Model.OllamaURL == "" {
		c.Model.OllamaURL = def.Model.OllamaURL
	}
	if c.Model.Name == "" {
		c.Model.Name = def.Model.Name
	}
	if c.UI.WordWrap == 0 {
		c.UI.WordWrap = def.UI.WordWrap
	}
	if c.UI.SendsPerMinute == 0 {
		c.UI.SendsPerMinute = def.UI.SendsPerMinute
	}
}

// Validate rejects configurations the rest of the program cannot use.
func (c *Config) Validate() error {
	if c.Generation.MaxTokens < 1 || c.Generation.MaxTokens > 4096 {
		return fmt.Errorf("generation.max_tokens must be in [1, 4096], got %d", c.Generation.MaxTokens)
	}
	if c.Generation.Temperature < 0 || c.Generation.Temperature > 2 {
		return fmt.Errorf("generation.temperature must be in [0, 2], got %g", c.Generation.Temperature)
	}
	if c.Generation.TopP <= 0 || c.Generation.TopP > 1 {
		return fmt.Errorf("generation.top_p must be in (0, 1], got %g", c.Generation.TopP)
	}
	if c.UI.SendsPerMinute < 1 {
		return fmt.Errorf("ui.sends_per_minute must be positive, got %d", c.UI.SendsPerMinute)
	}
	return nil
}

// BookingStatePath resolves the booking state file path, applying the
// default location when unset.
func (c *Config) BookingStatePath() (string, error) {
	if c.Booking.StatePath != "" {
		return c.Booking.StatePath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "booking.json"), nil
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalMu  sync.RWMutex
	globalCfg *Config
)

// SetGlobal installs the process-wide configuration.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = cfg
}

// Global returns the process-wide configuration, or defaults when
// none has been installed.
func Global() *Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalCfg == nil {
		return Default()
	}
	return globalCfg
}
