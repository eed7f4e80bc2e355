package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
)

func (c *Config) normalize() error {
	c.normalizeAnalysis()
	if err := c.normalizeResources(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeAnalysis() {
	c.Analysis.Language = strings.TrimSpace(c.Analysis.Language)
	if c.Analysis.Language == "" {
		c.Analysis.Language = defaultLanguage
	}
	extras := lo.Map(c.Analysis.ExtraStopwords, func(w string, _ int) string {
		return strings.TrimSpace(w)
	})
	c.Analysis.ExtraStopwords = lo.Uniq(lo.Compact(extras))
}

func (c *Config) normalizeResources() error {
	if value, ok := os.LookupEnv("LEXSTAT_RESOURCE_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Resources.Dir = value
	}
	c.Resources.Source = strings.ToLower(strings.TrimSpace(c.Resources.Source))
	if c.Resources.Source == "" {
		c.Resources.Source = SourceBundled
	}
	if strings.TrimSpace(c.Resources.Dir) == "" {
		c.Resources.Dir = defaultResourceDir
	}
	var err error
	if c.Resources.Dir, err = expandPath(c.Resources.Dir); err != nil {
		return fmt.Errorf("resources.dir: %w", err)
	}
	c.Resources.DownloadURL = strings.TrimSpace(c.Resources.DownloadURL)
	if c.Resources.DownloadURL == "" {
		c.Resources.DownloadURL = defaultDownloadURL
	}
	if c.Resources.DownloadTimeout == 0 {
		c.Resources.DownloadTimeout = defaultDownloadTimeout
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("LEXSTAT_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		var err error
		if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	return nil
}
