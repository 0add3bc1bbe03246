// Package config provides configuration loading and management for ReserveMate.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/reservemate/storage"
)

// Config represents the complete ReserveMate configuration
type Config struct {
	Storage StorageConfig       `yaml:"storage"`
	Watch   storage.WatchConfig `yaml:"watch"`
	Log     LogConfig           `yaml:"log"`
	Metrics MetricsConfig       `yaml:"metrics"`
}

// StorageConfig configures where reservations are persisted
type StorageConfig struct {
	// DataFile is the JSON data file (default: data/reservemate.json)
	DataFile string `yaml:"data_file"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// MetricsConfig configures the metrics textfile export
type MetricsConfig struct {
	// File receives Prometheus text format on exit (empty = disabled)
	File string `yaml:"file"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			DataFile: filepath.Join("data", "reservemate.json"),
		},
		Watch: storage.DefaultWatchConfig(),
		Log: LogConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			File: "", // Disabled
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Storage.DataFile == "" {
		return fmt.Errorf("storage.data_file is required")
	}
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	if c.Metrics.File != "" && filepath.Clean(c.Metrics.File) == filepath.Clean(c.Storage.DataFile) {
		return fmt.Errorf("metrics.file must differ from storage.data_file")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Storage.DataFile != "" {
		c.Storage.DataFile = other.Storage.DataFile
	}

	// Watching can only be switched on by a later layer
	if other.Watch.Enabled {
		c.Watch.Enabled = true
	}
	if other.Watch.DebounceDelay != "" {
		c.Watch.DebounceDelay = other.Watch.DebounceDelay
	}

	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}

	if other.Metrics.File != "" {
		c.Metrics.File = other.Metrics.File
	}
}
