// Package config loads and saves the budgetwise TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all budgetwise configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	AI         AIConfig         `toml:"ai"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Currency    string `toml:"currency"`
	DefaultDays int    `toml:"default_days"`
	DataDir     string `toml:"data_dir,omitempty"`
}

// AIConfig holds the advice service settings.
type AIConfig struct {
	APIKey    string `toml:"api_key,omitempty"`
	Model     string `toml:"model,omitempty"`
	BaseURL   string `toml:"base_url,omitempty"`
	MaxTokens int    `toml:"max_tokens,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency:    "$",
			DefaultDays: 7,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "budgetwise")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "budgetwise")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// GetAPIKey returns the advice service key from env var or config, in
// that order.
func GetAPIKey(cfg Config) string {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return key
	}
	return cfg.AI.APIKey
}

// StatePath returns the location of the state database, honoring the
// data_dir override.
func StatePath(cfg Config) string {
	if cfg.General.DataDir != "" {
		return filepath.Join(cfg.General.DataDir, "state.db")
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "budgetwise", "state.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "budgetwise", "state.db")
}
