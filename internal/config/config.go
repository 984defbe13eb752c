// Package config loads the optional presentation preferences file. The file
// is read if present and never written; it cannot change what a scan finds
// or what a deletion does.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cachehound/cachehound/internal/platform"
)

// Config represents the application configuration
type Config struct {
	Color           string `yaml:"color"`             // auto, always, never
	Progress        string `yaml:"progress"`          // auto, always, never
	ListLimit       int    `yaml:"list_limit"`        // 0 = unlimited
	ShowVolumeUsage bool   `yaml:"show_volume_usage"` // print the volume line
	LogLevel        string `yaml:"log_level"`         // disabled, error, info, debug
}

// Load loads configuration from the default path, falling back to defaults
// when no file exists
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return GetDefault(), nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads configuration from a file
func LoadFrom(configPath string) (*Config, error) {
	// If config doesn't exist, return default config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefault(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := GetDefault()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !oneOf(c.Color, "auto", "always", "never") {
		return fmt.Errorf("color must be one of auto, always, never: %s", c.Color)
	}

	if !oneOf(c.Progress, "auto", "always", "never") {
		return fmt.Errorf("progress must be one of auto, always, never: %s", c.Progress)
	}

	if c.ListLimit < 0 {
		return fmt.Errorf("list_limit must be >= 0: %d", c.ListLimit)
	}

	if !oneOf(c.LogLevel, "disabled", "error", "info", "debug") {
		return fmt.Errorf("log_level must be one of disabled, error, info, debug: %s", c.LogLevel)
	}

	return nil
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// GetConfigPath returns the default config path
func GetConfigPath() (string, error) {
	configDir, err := platform.GetUserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "cachehound", "config.yaml"), nil
}
