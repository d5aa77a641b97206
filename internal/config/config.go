// Package config loads rfidctl settings from RFIDCTL_* environment variables.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds rfidctl settings. Command-line flags override these.
type Config struct {
	BaseURL string        `envconfig:"BASE_URL" default:"http://localhost/rfid_api"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"0s"` // 0 means no client timeout
	Debug   bool          `envconfig:"DEBUG" default:"false"`

	LogFile       string `envconfig:"LOG_FILE" default:""`
	LogMaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"10"`
	LogMaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"3"`
}

// New parses the environment (prefix RFIDCTL_) and validates the result.
// Example: RFIDCTL_BASE_URL=http://rfid.lan/rfid_api RFIDCTL_TIMEOUT=5s
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("RFIDCTL", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values New and the flag layer produce.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base URL %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base URL %q: missing host", c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %s", c.Timeout)
	}
	if c.LogMaxSizeMB <= 0 {
		return fmt.Errorf("log max size must be > 0, got %d", c.LogMaxSizeMB)
	}
	return nil
}
