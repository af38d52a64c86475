// Package config loads tradewright settings from a YAML file under the
// user's home directory. Every field has a working default; a missing
// config file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable settings.
type Config struct {
	// TimeoutSeconds bounds element waits and navigations. Must be
	// positive.
	TimeoutSeconds int `yaml:"timeoutSeconds"`

	// Offset is the default marketable limit price offset in currency
	// units. Must be nonnegative.
	Offset string `yaml:"offset"`

	// Browser selects the engine: chromium, firefox, or webkit.
	Browser string `yaml:"browser"`

	// Headless runs the browser without a window. Login is manual, so
	// this is only useful against a prepared session.
	Headless bool `yaml:"headless"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TimeoutSeconds: 10,
		Offset:         "0.10",
		Browser:        "firefox",
		Headless:       false,
	}
}

// DefaultPath returns ~/.tradewright/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".tradewright", "config.yaml"), nil
}

// Load reads the config at path, filling unset fields with defaults. A
// missing file yields the defaults. If path is empty, DefaultPath is used.
func Load(path string) (*Config, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings invariants.
func (c *Config) Validate() error {
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeoutSeconds must be positive, got %d", c.TimeoutSeconds)
	}
	offset, err := decimal.NewFromString(c.Offset)
	if err != nil {
		return fmt.Errorf("offset must be a decimal: %w", err)
	}
	if offset.IsNegative() {
		return fmt.Errorf("offset must be nonnegative, got %s", c.Offset)
	}
	switch c.Browser {
	case "chromium", "firefox", "webkit":
	default:
		return fmt.Errorf("browser must be chromium, firefox, or webkit, got %q", c.Browser)
	}
	return nil
}

// Timeout returns the element wait bound as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// OffsetDecimal returns the marketable limit offset as a decimal. Validate
// must have accepted the config first.
func (c *Config) OffsetDecimal() decimal.Decimal {
	return decimal.RequireFromString(c.Offset)
}
