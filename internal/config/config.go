// Package config loads the provincegrid CLI's optional JSON config file and
// overlays CLI flag values on top of it: fields absent from the file keep
// their zero value, flags win over the file, and remaining zero values get
// defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds every tunable for one provincegrid run.
type Config struct {
	InputBMP         string  `json:"input_bmp"`
	OutputDir        string  `json:"output_dir"`
	MinShapeSize     int     `json:"min_shape_size"`
	MaxFractionDenom float64 `json:"max_fraction_denom"`
	DumpStages       bool    `json:"dump_stages"`
	Verbose          bool    `json:"verbose"`
}

// Load reads a JSON config file. Fields absent from the file keep their
// zero value. A file that cannot be read or parsed is an error; a caller
// with no config file skips Load, since flags alone are a valid way to run
// the tool.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override the config file.
type Flags struct {
	InputBMP         string
	OutputDir        string
	MinShapeSize     int
	MaxFractionDenom float64
	DumpStages       bool
	Verbose          bool
}

// Resolve overlays flags onto c, then fills any still-empty field with the
// package default. A flag only overrides when it carries a non-zero value,
// so a flag the caller never set can't stomp a value already loaded from
// the config file.
func (c *Config) Resolve(flags Flags) {
	if flags.InputBMP != "" {
		c.InputBMP = flags.InputBMP
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.MinShapeSize > 0 {
		c.MinShapeSize = flags.MinShapeSize
	}
	if flags.MaxFractionDenom > 0 {
		c.MaxFractionDenom = flags.MaxFractionDenom
	}
	if flags.DumpStages {
		c.DumpStages = true
	}
	if flags.Verbose {
		c.Verbose = true
	}

	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.MinShapeSize <= 0 {
		c.MinShapeSize = 8
	}
	if c.MaxFractionDenom <= 0 {
		c.MaxFractionDenom = 8.0
	}
}
