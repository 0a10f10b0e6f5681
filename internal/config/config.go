// Package config handles global craft settings from ~/.craft/config.yaml.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// GlobalConfig holds settings from ~/.craft/config.yaml.
type GlobalConfig struct {
	Debug  DebugConfig  `yaml:"debug"`
	Client ClientConfig `yaml:"client"`
}

// DebugConfig controls debug log files.
type DebugConfig struct {
	// RetentionDays is how many days of debug logs to keep.
	RetentionDays int `yaml:"retention_days"`
}

// ClientConfig configures the AI client craft wraps.
type ClientConfig struct {
	// Command is the client binary run by `craft run`.
	Command string `yaml:"command"`
}

// DefaultGlobalConfig returns the default global configuration.
func DefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Debug:  DebugConfig{RetentionDays: 7},
		Client: ClientConfig{Command: "claude"},
	}
}

// LoadGlobal reads ~/.craft/config.yaml and applies environment
// overrides. A missing or malformed file falls back to defaults.
func LoadGlobal() (*GlobalConfig, error) {
	cfg := DefaultGlobalConfig()

	if data, err := os.ReadFile(filepath.Join(GlobalConfigDir(), "config.yaml")); err == nil {
		_ = yaml.Unmarshal(data, cfg) // Ignore unmarshal errors, use defaults
	}

	if cmd := os.Getenv("CRAFT_CLIENT_COMMAND"); cmd != "" {
		cfg.Client.Command = cmd
	}
	if days := os.Getenv("CRAFT_DEBUG_RETENTION_DAYS"); days != "" {
		if n, err := strconv.Atoi(days); err == nil && n >= 0 {
			cfg.Debug.RetentionDays = n
		}
	}

	return cfg, nil
}

// GlobalConfigDir returns the path to ~/.craft.
func GlobalConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".craft")
	}
	return filepath.Join(homeDir, ".craft")
}
