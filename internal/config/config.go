package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/snitch/internal/report"
)

// Marks overrides the state glyphs.
type Marks struct {
	Open   string `yaml:"open,omitempty" toml:"open,omitempty" json:"open,omitempty"`
	Closed string `yaml:"closed,omitempty" toml:"closed,omitempty" json:"closed,omitempty"`
}

// Config is the effective configuration of a run.
type Config struct {
	Report    string `yaml:"report" toml:"report" json:"report"`
	FileType  string `yaml:"file_type" toml:"file_type" json:"file_type"`
	MaxLength int    `yaml:"max_length" toml:"max_length" json:"max_length"`
	Crop      bool   `yaml:"crop" toml:"crop" json:"crop"`
	Wrap      bool   `yaml:"wrap" toml:"wrap" json:"wrap"`
	Heading   string `yaml:"heading,omitempty" toml:"heading,omitempty" json:"heading,omitempty"`
	NoHeading bool   `yaml:"no_heading" toml:"no_heading" json:"no_heading"`
	Repo      string `yaml:"repo,omitempty" toml:"repo,omitempty" json:"repo,omitempty"`
	State     string `yaml:"state" toml:"state" json:"state"`
	Limit     int    `yaml:"limit" toml:"limit" json:"limit"`
	Marks     Marks  `yaml:"marks" toml:"marks" json:"marks"`
}

// Default returns the built-in configuration.
func Default() Config {
	marks := report.DefaultMarks()
	return Config{
		Report:    report.ReportList,
		FileType:  string(report.FormatText),
		MaxLength: 80,
		State:     "open",
		Limit:     100,
		Marks:     Marks{Open: marks.Open, Closed: marks.Closed},
	}
}

// Load starts from Default and merges each file in order. Later files win
// key by key. Files ending in .toml are read as TOML, all others as YAML.
// Missing files are skipped; unreadable or malformed files are errors.
func Load(paths ...string) (Config, error) {
	cfg := Default()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := unmarshal(path, data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	return cfg, nil
}

func unmarshal(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the values the renderer and gh rely on.
func (c Config) Validate() error {
	if !report.IsReportName(c.Report) {
		return &report.InvalidReportTypeError{Name: c.Report}
	}
	switch report.Format(c.FileType) {
	case report.FormatText, report.FormatMarkdown:
	default:
		return report.ErrInvalidFileType
	}
	if c.MaxLength <= 0 {
		return fmt.Errorf("max length must be positive, got %d", c.MaxLength)
	}
	switch c.State {
	case "open", "closed", "all":
	default:
		return fmt.Errorf("invalid state %q, expected open, closed or all", c.State)
	}
	if c.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", c.Limit)
	}
	return nil
}

// ReportConfig converts c into renderer settings.
func (c Config) ReportConfig() report.Config {
	return report.Config{
		Format:    report.Format(c.FileType),
		MaxLength: c.MaxLength,
		Crop:      c.Crop,
		Wrap:      c.Wrap,
		Heading:   c.Heading,
		NoHeading: c.NoHeading,
		Repo:      c.Repo,
		Marks:     report.Marks{Open: c.Marks.Open, Closed: c.Marks.Closed},
	}
}

// YAML renders c as a config file.
func (c Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	return string(data), nil
}
