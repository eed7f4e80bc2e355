package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateResources(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.TopN < 0 {
		return errors.New("analysis.top_n must be >= 0")
	}
	if c.Analysis.MinTokenLength < 0 {
		return errors.New("analysis.min_token_length must be >= 0")
	}
	return nil
}

func (c *Config) validateResources() error {
	switch c.Resources.Source {
	case SourceBundled, SourceCache:
	default:
		return fmt.Errorf("resources.source: unsupported value %q (want %q or %q)", c.Resources.Source, SourceBundled, SourceCache)
	}
	if c.Resources.DownloadTimeout < 0 {
		return errors.New("resources.download_timeout must be positive")
	}
	parsed, err := url.Parse(c.Resources.DownloadURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("resources.download_url must be an http(s) URL, got %q", c.Resources.DownloadURL)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
