// Package config handles the optional configuration file.
package config

import (
	"fmt"
	"os"

	"tripmap/internal/processor"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure. Everything is
// optional; flags override the file.
type Config struct {
	// Default output filename, normalized to .geojson on write.
	Output string `yaml:"output,omitempty"`

	// Error policy for file ingestion: "skip" or "abort" apply one
	// treatment to every bad line, empty keeps the historical per-case
	// behavior.
	OnError string `yaml:"on_error,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	switch processor.Policy(cfg.OnError) {
	case processor.PolicyLegacy, processor.PolicySkip, processor.PolicyAbort:
	default:
		return nil, fmt.Errorf("invalid on_error value %q, want \"skip\" or \"abort\"", cfg.OnError)
	}

	return &cfg, nil
}

// Policy returns the configured ingestion error policy.
func (c *Config) Policy() processor.Policy {
	return processor.Policy(c.OnError)
}
