// Package config loads the application configuration from the user's
// config directory, falling back to defaults when no file exists.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Config represents the application configuration
type Config struct {
	// StorePath overrides the location of the store database.
	// Empty means ~/.tablero/tablero.db.
	StorePath string `yaml:"store_path"`

	Seed  SeedConfig   `yaml:"seed"`
	Theme models.Theme `yaml:"theme"`
}

// SeedConfig controls the one-time initial task fetch.
type SeedConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	// TimeoutSeconds bounds the fetch; 0 uses the built-in default.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Timeout returns the configured fetch timeout as a duration.
func (s SeedConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme: models.ThemeLight,
		Seed: SeedConfig{
			Enabled:        false,
			TimeoutSeconds: 10,
		},
	}
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return Default(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	config.applyDefaults()
	return &config, nil
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// applyDefaults fills in any missing values with defaults
func (c *Config) applyDefaults() {
	if !c.Theme.Valid() {
		c.Theme = models.ThemeLight
	}
	if c.Seed.TimeoutSeconds <= 0 {
		c.Seed.TimeoutSeconds = 10
	}
	if c.Seed.URL == "" {
		c.Seed.Enabled = false
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tablero", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tablero", "config.yaml"), nil
}
