// Package config loads distsurvey settings from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsawler/tabula/tables"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/distsurvey/columns"
	"github.com/tsawler/distsurvey/hazard"
	"github.com/tsawler/distsurvey/reconstruct"
	"github.com/tsawler/distsurvey/render"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "distsurvey.yaml"

// Config holds all distsurvey configuration.
type Config struct {
	Columns ColumnsConfig `yaml:"columns"`
	Rows    RowsConfig    `yaml:"rows"`
	Report  ReportConfig  `yaml:"report"`
	Hazard  HazardConfig  `yaml:"hazard"`
	Source  SourceConfig  `yaml:"source"`
	Logging LoggingConfig `yaml:"logging"`
}

// ColumnsConfig is the column layout assumed until a header row is found.
type ColumnsConfig struct {
	Group  int `yaml:"group"`
	Unit   int `yaml:"unit"`
	Factor int `yaml:"factor"`
	Worker int `yaml:"worker"`
	Form   int `yaml:"form"`
}

// RowsConfig tunes row filtering.
type RowsConfig struct {
	MinCells       int `yaml:"min_cells"`
	HeaderScanRows int `yaml:"header_scan_rows"`
}

// ReportConfig controls the report heading.
type ReportConfig struct {
	CompanyPlaceholder string `yaml:"company_placeholder"`
	ProjectPlaceholder string `yaml:"project_placeholder"`
	// Company and Project replace the values scraped from the first page
	// when set.
	Company string `yaml:"company,omitempty"`
	Project string `yaml:"project,omitempty"`
}

// HazardConfig overrides the factor classification rules. An empty list
// keeps the built-in rules.
type HazardConfig struct {
	Rules []hazard.Rule `yaml:"rules,omitempty"`
}

// SourceConfig configures PDF table extraction.
type SourceConfig struct {
	MinRows        int     `yaml:"min_rows"`
	MinCols        int     `yaml:"min_cols"`
	MinConfidence  float64 `yaml:"min_confidence"`
	ExcludeHeaders bool    `yaml:"exclude_headers"`
	ExcludeFooters bool    `yaml:"exclude_footers"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	cols := columns.Defaults()
	det := tables.DefaultConfig()
	return &Config{
		Columns: ColumnsConfig{
			Group:  cols.Index(columns.Group),
			Unit:   cols.Index(columns.Unit),
			Factor: cols.Index(columns.Factor),
			Worker: cols.Index(columns.Worker),
			Form:   cols.Index(columns.Form),
		},
		Rows: RowsConfig{
			MinCells:       reconstruct.DefaultMinCells,
			HeaderScanRows: columns.DefaultScanRows,
		},
		Report: ReportConfig{
			CompanyPlaceholder: render.DefaultCompany,
			ProjectPlaceholder: render.DefaultProject,
		},
		Source: SourceConfig{
			MinRows:       det.MinRows,
			MinCols:       det.MinCols,
			MinConfidence: det.MinConfidence,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("DISTSURVEY_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if name := os.Getenv("DISTSURVEY_COMPANY"); name != "" {
		c.Report.Company = name
	}
	if project := os.Getenv("DISTSURVEY_PROJECT"); project != "" {
		c.Report.Project = project
	}
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats lists the accepted logging encodings.
var ValidLogFormats = []string{"console", "json"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	for role, idx := range map[string]int{
		"group":  c.Columns.Group,
		"unit":   c.Columns.Unit,
		"factor": c.Columns.Factor,
		"worker": c.Columns.Worker,
		"form":   c.Columns.Form,
	} {
		if idx < 0 {
			return fmt.Errorf("columns.%s must not be negative: %d", role, idx)
		}
	}

	if c.Rows.MinCells < 1 {
		return fmt.Errorf("rows.min_cells must be at least 1: %d", c.Rows.MinCells)
	}
	if c.Rows.HeaderScanRows < 1 {
		return fmt.Errorf("rows.header_scan_rows must be at least 1: %d", c.Rows.HeaderScanRows)
	}

	for i, r := range c.Hazard.Rules {
		if !r.Category.Valid() {
			return fmt.Errorf("hazard.rules[%d]: unknown category %q", i, r.Category)
		}
		if len(r.Contains) == 0 && len(r.Suffixes) == 0 {
			return fmt.Errorf("hazard.rules[%d]: rule needs contains or suffixes", i)
		}
	}

	if c.Source.MinConfidence < 0 || c.Source.MinConfidence > 1 {
		return fmt.Errorf("source.min_confidence must be within [0, 1]: %g", c.Source.MinConfidence)
	}

	if !contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if !contains(ValidLogFormats, c.Logging.Format) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.Logging.Format, ValidLogFormats)
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ColumnMap returns the configured default column layout.
func (c *Config) ColumnMap() columns.Map {
	var m columns.Map
	m[columns.Group] = c.Columns.Group
	m[columns.Unit] = c.Columns.Unit
	m[columns.Factor] = c.Columns.Factor
	m[columns.Worker] = c.Columns.Worker
	m[columns.Form] = c.Columns.Form
	return m
}

// Classifier returns the hazard classifier for the configured rules.
func (c *Config) Classifier() *hazard.Classifier {
	if len(c.Hazard.Rules) == 0 {
		return hazard.Default
	}
	return hazard.NewClassifier(c.Hazard.Rules)
}

// DetectorConfig returns the table detector configuration, starting from
// the tabula defaults.
func (c *Config) DetectorConfig() tables.Config {
	det := tables.DefaultConfig()
	if c.Source.MinRows > 0 {
		det.MinRows = c.Source.MinRows
	}
	if c.Source.MinCols > 0 {
		det.MinCols = c.Source.MinCols
	}
	if c.Source.MinConfidence > 0 {
		det.MinConfidence = c.Source.MinConfidence
	}
	return det
}

// RenderOptions returns the renderer options.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		CompanyPlaceholder: c.Report.CompanyPlaceholder,
		ProjectPlaceholder: c.Report.ProjectPlaceholder,
	}
}
