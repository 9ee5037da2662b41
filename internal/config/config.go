// Package config handles meshlint configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"runtime"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Configuration errors.
var (
	ErrInvalidFormat  = errors.New("invalid output format")
	ErrInvalidWorkers = errors.New("invalid worker count")
)

// Config holds all settings.
type Config struct {
	Check   CheckConfig   `yaml:"check"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// CheckConfig controls which files are validated and how.
type CheckConfig struct {
	Workers    int      `yaml:"workers"`    // Files validated in parallel; 0 = one per CPU
	Extensions []string `yaml:"extensions"` // Mesh document extensions picked up from directories
}

// OutputConfig controls how reports are printed.
type OutputConfig struct {
	Format    string `yaml:"format"`     // text or yaml
	ShowClean bool   `yaml:"show_clean"` // List files without problems in text output
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Check: CheckConfig{
			Workers:    0,
			Extensions: []string{".yaml", ".yml"},
		},
		Output: OutputConfig{
			Format:    FormatText,
			ShowClean: false,
		},
		Logging: LoggingConfig{
			Level:   "warn",
			LogFile: "",
		},
	}
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Output.Format)
	}
	if c.Check.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Check.Workers)
	}
	return nil
}

// WorkerCount resolves Workers, mapping 0 to the number of CPUs.
func (c *Config) WorkerCount() int {
	if c.Check.Workers > 0 {
		return c.Check.Workers
	}
	return runtime.NumCPU()
}
