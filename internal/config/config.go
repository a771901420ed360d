// Package config provides YAML configuration loading and validation.
// Every field has a working default so the tool runs with no config
// file at all; a file only overrides what it names.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultRequestType is the on-chain struct tag of Oracle request
// objects queried when no explicit object ID is given.
const DefaultRequestType = "0xf1290fb0e7e1de7e92e616209fb628970232e85c4c1a264858ff35092e1be231::oracles::Request"

// Config holds the settings for talking to the node CLI.
type Config struct {
	Binary        string        `yaml:"binary"`         // Node CLI binary (e.g., "rooch")
	RequestType   string        `yaml:"request_type"`   // Struct tag used for "latest" queries
	Timeout       time.Duration `yaml:"timeout"`        // Subprocess deadline
	WatchInterval time.Duration `yaml:"watch_interval"` // Refresh interval for watch command
}

// Default returns the built-in configuration used when no file is given.
func Default() *Config {
	return &Config{
		Binary:        "rooch",
		RequestType:   DefaultRequestType,
		Timeout:       30 * time.Second,
		WatchInterval: 15 * time.Second,
	}
}

// Validate checks the configuration for values that would make every
// invocation fail.
func (c *Config) Validate() error {
	if c.Binary == "" {
		return fmt.Errorf("binary is required")
	}
	if c.RequestType == "" {
		return fmt.Errorf("request_type is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0")
	}
	if c.WatchInterval <= 0 {
		return fmt.Errorf("watch_interval must be > 0")
	}
	return nil
}

// Load reads and parses a YAML configuration file, expanding ${VAR}
// environment references and overlaying the result on the defaults.
// An empty path returns the defaults without touching the filesystem.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Expand environment variables in the YAML content.
	// This allows values like: binary: ${ROOCH_BIN}
	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
