// Package config provides application configuration management.
// Economic tuning lives in the dataset; this file only controls how the
// tools find that dataset and present results.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"cargo-market/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Dataset locates settlement, cargo and flag data
	Dataset DatasetConfig `json:"dataset"`

	// Generation contains defaults for pipeline runs
	Generation GenerationConfig `json:"generation"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains HTTP API settings
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// DatasetConfig contains dataset settings
type DatasetConfig struct {
	// Path is a directory with system.yaml, flags.yaml, settlements.yaml
	// and cargo.yaml. Empty selects the built-in dataset.
	Path string `json:"path"`
}

// GenerationConfig contains run defaults
type GenerationConfig struct {
	// DefaultSeason is used when a run names no season
	DefaultSeason string `json:"default_season"`

	// Seed fixes the random source; 0 draws a fresh seed per run
	Seed uint64 `json:"seed"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (text, json)
	DefaultFormat string `json:"default_format"`

	// ShowHistory prints balance transfers and price steps
	ShowHistory bool `json:"show_history"`
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	// Address is the listen address
	Address string `json:"address"`

	// AllowedOrigins feeds the CORS middleware
	AllowedOrigins []string `json:"allowed_origins"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Generation: GenerationConfig{
			DefaultSeason: "spring",
		},
		Output: OutputConfig{
			DefaultFormat: "text",
		},
		Server: ServerConfig{
			Address:        ":8080",
			AllowedOrigins: []string{"*"},
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.cargo-market.json
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".cargo-market.json"
	}
	return filepath.Join(homeDir, ".cargo-market.json")
}

// Load loads configuration from a file, overlaying defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
