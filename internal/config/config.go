package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"purifier/internal/fileutil"
)

//go:embed sample_config.toml
var sampleConfig []byte

// Scan holds the duplicate classification settings.
type Scan struct {
	// ConfirmedThreshold is validated and echoed in reports; classification
	// ignores it.
	ConfirmedThreshold int `toml:"confirmed_threshold" json:"confirmed_threshold"`
	SuspectedThreshold int `toml:"suspected_threshold" json:"suspected_threshold"`
	ChunkSize          int `toml:"chunk_size" json:"chunk_size"`
	// Workers is the pool size; 0 means one worker per CPU.
	Workers int `toml:"workers" json:"workers"`
}

type Report struct {
	Output string `toml:"output" json:"output"`
	Format string `toml:"format" json:"format"`
	Locale string `toml:"locale" json:"locale"`
}

type Logging struct {
	Format string `toml:"format" json:"format"`
	Level  string `toml:"level" json:"level"`
	File   string `toml:"file" json:"file"`
}

// Config is the full purifier configuration, one field per TOML table.
type Config struct {
	Scan    Scan    `toml:"scan" json:"scan"`
	Report  Report  `toml:"report" json:"report"`
	Logging Logging `toml:"logging" json:"logging"`
}

const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatTable  = "table"
	FormatSQLite = "sqlite"
)

// ReportFormats lists every accepted report.format value.
var ReportFormats = []string{FormatText, FormatJSON, FormatTable, FormatSQLite}

// Locales lists every accepted report.locale value.
var Locales = []string{"en", "fr"}

// Load finds the configuration file, overlays it on Default, then normalizes
// and validates the result. It returns the chosen path and whether that file
// existed; a missing file is not an error.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	source, err := locate(path)
	if err != nil {
		return nil, "", false, err
	}
	if source.exists {
		if err := decodeFile(source.path, &cfg); err != nil {
			return nil, "", false, err
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, source.path, source.exists, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Encode renders the configuration as TOML.
func (c *Config) Encode() (string, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return buf.String(), nil
}

// CreateSample writes the commented sample configuration to path, creating
// parent directories as needed.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, sampleConfig, 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
