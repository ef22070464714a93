package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScan() error {
	if c.Scan.ConfirmedThreshold < 0 || c.Scan.ConfirmedThreshold > 100 {
		return errors.New("scan.confirmed_threshold must be between 0 and 100")
	}
	if c.Scan.SuspectedThreshold < 0 || c.Scan.SuspectedThreshold > 100 {
		return errors.New("scan.suspected_threshold must be between 0 and 100")
	}
	if c.Scan.ChunkSize < 1 {
		return errors.New("scan.chunk_size must be at least 1")
	}
	if c.Scan.Workers < 0 {
		return errors.New("scan.workers must be zero (all CPUs) or positive")
	}
	return nil
}

func (c *Config) validateReport() error {
	if !slices.Contains(ReportFormats, c.Report.Format) {
		return fmt.Errorf("report.format must be one of %s, got %q", strings.Join(ReportFormats, ", "), c.Report.Format)
	}
	if !slices.Contains(Locales, c.Report.Locale) {
		return fmt.Errorf("report.locale must be one of %s, got %q", strings.Join(Locales, ", "), c.Report.Locale)
	}
	if c.Report.Output == "" {
		return errors.New("report.output must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
