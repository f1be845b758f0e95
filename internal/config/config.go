// Package config loads runtime settings from the config file,
// JOULE_* environment variables, and CLI flags, in that order of
// increasing precedence.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// SoundConfig controls the feedback chimes.
type SoundConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DatabaseConfig controls where progress is stored.
type DatabaseConfig struct {
	// Path overrides the default XDG location when set.
	Path string `mapstructure:"path"`
}

// UpdateConfig controls the self-update check.
type UpdateConfig struct {
	Check bool `mapstructure:"check"`
}

// Config holds all runtime configuration.
type Config struct {
	Sound    SoundConfig    `mapstructure:"sound"`
	Database DatabaseConfig `mapstructure:"database"`
	Update   UpdateConfig   `mapstructure:"update"`
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("sound.enabled", true)
	viper.SetDefault("database.path", "")
	viper.SetDefault("update.check", true)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// DefaultConfigDir returns the directory searched for config.toml:
// $XDG_CONFIG_HOME/joule, falling back to ~/.config/joule.
func DefaultConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "joule")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "joule")
}
