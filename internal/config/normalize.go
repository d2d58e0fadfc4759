package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
)

// envOverrides lists the environment variables that take precedence over the
// config file. Empty values leave the file setting untouched.
type envOverrides struct {
	APIBaseURL string `env:"HEALTHGPT_API_BASE_URL"`
	LogLevel   string `env:"HEALTHGPT_LOG_LEVEL"`
	LogFormat  string `env:"HEALTHGPT_LOG_FORMAT"`
	Color      string `env:"HEALTHGPT_COLOR"`
}

func (c *Config) applyEnv() error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	if value := strings.TrimSpace(overrides.APIBaseURL); value != "" {
		c.API.BaseURL = value
	}
	if value := strings.TrimSpace(overrides.LogLevel); value != "" {
		c.Logging.Level = value
	}
	if value := strings.TrimSpace(overrides.LogFormat); value != "" {
		c.Logging.Format = value
	}
	if value := strings.TrimSpace(overrides.Color); value != "" {
		c.UI.Color = value
	}
	return nil
}

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeAPI()
	c.normalizeUI()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(strings.TrimSpace(c.Paths.StateDir)); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

// NormalizeBaseURL trims whitespace and trailing slashes so endpoint paths can
// be appended directly.
func NormalizeBaseURL(value string) string {
	return strings.TrimRight(strings.TrimSpace(value), "/")
}

func (c *Config) normalizeAPI() {
	c.API.BaseURL = NormalizeBaseURL(c.API.BaseURL)
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaultAPIBaseURL
	}
}

func (c *Config) normalizeUI() {
	c.UI.Color = strings.ToLower(strings.TrimSpace(c.UI.Color))
	if c.UI.Color == "" {
		c.UI.Color = defaultColorMode
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
