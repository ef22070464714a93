package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeScan(); err != nil {
		return err
	}
	if err := c.normalizeReport(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeScan() error {
	if c.Scan.Workers == 0 {
		if value, ok := os.LookupEnv("PURIFIER_WORKERS"); ok && strings.TrimSpace(value) != "" {
			workers, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return fmt.Errorf("PURIFIER_WORKERS: %w", err)
			}
			c.Scan.Workers = workers
		}
	}
	if c.Scan.ChunkSize == 0 {
		c.Scan.ChunkSize = defaultChunkSize
	}
	return nil
}

func (c *Config) normalizeReport() error {
	c.Report.Format = strings.ToLower(strings.TrimSpace(c.Report.Format))
	if c.Report.Format == "" {
		c.Report.Format = defaultReportFormat
	}

	c.Report.Locale = strings.ToLower(strings.TrimSpace(c.Report.Locale))
	if c.Report.Locale == "" {
		if value, ok := os.LookupEnv("PURIFIER_LOCALE"); ok {
			c.Report.Locale = strings.ToLower(strings.TrimSpace(value))
		}
	}
	if c.Report.Locale == "" {
		c.Report.Locale = defaultReportLocale
	}

	if strings.TrimSpace(c.Report.Output) == "" {
		c.Report.Output = defaultReportOutput
	}
	var err error
	if c.Report.Output, err = ExpandPath(strings.TrimSpace(c.Report.Output)); err != nil {
		return fmt.Errorf("report.output: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = ExpandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
