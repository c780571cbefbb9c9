/*
Package config loads runtime settings for the shelf CLI.

Values come from SHELF_* environment variables (parsed with caarlos0/env) and
may then be overridden by command-line flags.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    return err
	}
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration.
type Config struct {
	// Directory the per-run addition log is created in.
	LogDir string `env:"SHELF_LOG_DIR" envDefault:"."`

	// File name prefix of the addition log.
	LogPrefix string `env:"SHELF_LOG_PREFIX" envDefault:"book_input_"`

	// Diagnostic logging (stderr).
	LogLevel  string `env:"SHELF_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"SHELF_LOG_FORMAT" envDefault:"text"`

	// ListFormat selects how the active set is printed: "table" or "yaml".
	ListFormat string `env:"SHELF_LIST_FORMAT" envDefault:"table"`
}

// Load parses environment variables into a [Config] and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown enumerated values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: invalid log level: %s", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("config: invalid log format: %s", c.LogFormat)
	}
	switch strings.ToLower(c.ListFormat) {
	case "table", "yaml":
	default:
		return fmt.Errorf("config: invalid list format: %s", c.ListFormat)
	}
	if strings.TrimSpace(c.LogDir) == "" {
		return fmt.Errorf("config: log dir must not be empty")
	}
	return nil
}
