// Package config loads the optional JSON settings file of the labyrinth
// command. Every field is optional; the Get* methods fall back to defaults
// for fields the file leaves out.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/labyrinth/escape"
	"github.com/katalvlaran/labyrinth/parser"
)

// Defaults applied when a field is not set.
const (
	DefaultEngine   = string(escape.EngineDijkstra)
	DefaultWorkers  = 1
	DefaultLanguage = "en"
	DefaultFormat   = string(escape.FormatText)
)

// Config is the root of the settings file.
type Config struct {
	Engine        *string `json:"engine,omitempty"`   // dijkstra, bfs or gonum
	Workers       *int    `json:"workers,omitempty"`  // mazes solved at once
	Language      *string `json:"language,omitempty"` // en or de
	Format        *string `json:"format,omitempty"`   // text or json
	SkipInvalid   *bool   `json:"skip_invalid,omitempty"`
	StrictRows    *bool   `json:"strict_rows,omitempty"`
	StrictRecords *bool   `json:"strict_records,omitempty"`
	MaxDimension  *int    `json:"max_dimension,omitempty"`
}

// Load reads a Config from a JSON file. The path must have a .json
// extension and the file must not exceed 1 MiB.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the fields that are set.
func (c *Config) Validate() error {
	if c.Engine != nil {
		ok := false
		for _, e := range escape.Engines() {
			ok = ok || string(e) == *c.Engine
		}
		if !ok {
			return fmt.Errorf("unknown engine %q", *c.Engine)
		}
	}
	if c.Workers != nil && *c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", *c.Workers)
	}
	if c.Language != nil {
		if _, ok := escape.MessagesFor(*c.Language); !ok {
			return fmt.Errorf("unsupported language %q", *c.Language)
		}
	}
	if c.Format != nil && *c.Format != string(escape.FormatText) && *c.Format != string(escape.FormatJSON) {
		return fmt.Errorf("unknown format %q", *c.Format)
	}
	if c.MaxDimension != nil && *c.MaxDimension < 1 {
		return fmt.Errorf("max_dimension must be positive, got %d", *c.MaxDimension)
	}
	return nil
}

// GetEngine returns the solver engine name or DefaultEngine.
func (c *Config) GetEngine() string {
	if c.Engine != nil {
		return *c.Engine
	}
	return DefaultEngine
}

// GetWorkers returns the number of concurrent solvers or DefaultWorkers.
func (c *Config) GetWorkers() int {
	if c.Workers != nil {
		return *c.Workers
	}
	return DefaultWorkers
}

// GetLanguage returns the report language or DefaultLanguage.
func (c *Config) GetLanguage() string {
	if c.Language != nil {
		return *c.Language
	}
	return DefaultLanguage
}

// GetFormat returns the report format or DefaultFormat.
func (c *Config) GetFormat() string {
	if c.Format != nil {
		return *c.Format
	}
	return DefaultFormat
}

// GetSkipInvalid reports whether invalid mazes are reported instead of
// failing the run.
func (c *Config) GetSkipInvalid() bool {
	return c.SkipInvalid != nil && *c.SkipInvalid
}

// GetStrictRows reports whether short rows are rejected instead of padded.
func (c *Config) GetStrictRows() bool {
	return c.StrictRows != nil && *c.StrictRows
}

// GetStrictRecords reports whether stray lines between records are rejected
// instead of skipped.
func (c *Config) GetStrictRecords() bool {
	return c.StrictRecords != nil && *c.StrictRecords
}

// GetMaxDimension returns the per-axis limit or parser.DefaultMaxDimension.
func (c *Config) GetMaxDimension() int {
	if c.MaxDimension != nil {
		return *c.MaxDimension
	}
	return parser.DefaultMaxDimension
}

// Options converts the configuration into pipeline options.
func (c *Config) Options() []escape.Option {
	msgs, _ := escape.MessagesFor(c.GetLanguage())
	opts := []escape.Option{
		escape.WithEngine(escape.Engine(c.GetEngine())),
		escape.WithWorkers(c.GetWorkers()),
		escape.WithMessages(msgs),
		escape.WithFormat(escape.Format(c.GetFormat())),
		escape.WithParserOptions(parser.WithMaxDimension(c.GetMaxDimension())),
	}
	if c.GetSkipInvalid() {
		opts = append(opts, escape.WithSkipInvalid())
	}
	if c.GetStrictRows() {
		opts = append(opts, escape.WithParserOptions(parser.WithStrictRows()))
	}
	if c.GetStrictRecords() {
		opts = append(opts, escape.WithParserOptions(parser.WithStrictRecords()))
	}
	return opts
}
