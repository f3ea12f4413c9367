// Package config loads the merger configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"transaction-merger/internal/presenter"
)

// Config holds the application settings.
type Config struct {
	// Sources are read in this order.
	Sources []string `yaml:"sources"`

	// LogFile is appended to in addition to the console. Empty disables it.
	LogFile string `yaml:"log_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Currency is the ISO 4217 code used for the report.
	Currency string `yaml:"currency"`

	// Locale is the BCP 47 tag used for number formatting in the report.
	Locale string `yaml:"locale"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Sources: []string{
			"data/transactions1.csv",
			"data/transactions2.csv",
			"data/transactions3.csv",
			"data/transactions4.csv",
		},
		LogFile:  "logs.txt",
		LogLevel: "debug",
		Currency: "USD",
		Locale:   "en-US",
	}
}

// Load reads path on top of the defaults. When allowMissing is set, a
// nonexistent file yields the defaults.
func Load(path string, allowMissing bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a merge run.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return errors.New("at least one source is required")
	}
	for i, s := range c.Sources {
		if s == "" {
			return fmt.Errorf("source %d is empty", i)
		}
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	if _, err := presenter.NewCurrencyFormatter(c.Currency, c.Locale); err != nil {
		return err
	}
	return nil
}
