package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete run configuration
type Config struct {
	Input       string            `json:"input,omitempty" yaml:"input,omitempty"`
	Diagnostics DiagnosticsConfig `json:"diagnostics" yaml:"diagnostics"`
}

// DiagnosticsConfig controls the rejection diagnostics channel. None of
// it touches the primary snapshot output.
type DiagnosticsConfig struct {
	Verbose bool          `json:"verbose" yaml:"verbose"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
}

// JournalConfig contains rejection journaling parameters
type JournalConfig struct {
	Type string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	// Determine format by extension
	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Diagnostics.Journal.Type {
	case "none", "csv", "sqlite":
	default:
		return fmt.Errorf("diagnostics.journal.type must be 'none', 'csv' or 'sqlite'")
	}
	if c.Diagnostics.Journal.Type != "none" && c.Diagnostics.Journal.Path == "" {
		return fmt.Errorf("diagnostics.journal.path required for %s journal", c.Diagnostics.Journal.Type)
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Diagnostics: DiagnosticsConfig{
			Verbose: false,
			Journal: JournalConfig{
				Type: "none",
			},
		},
	}
}
