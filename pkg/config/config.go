package config

import (
	"strconv"

	"github.com/sdejongh/reconorris/pkg/compare"
	"github.com/sdejongh/reconorris/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Jobs       []JobConfig      `yaml:"jobs"`
	Comparison ComparisonConfig `yaml:"comparison"`
	Execution  ExecutionConfig  `yaml:"execution"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// JobConfig defines one source/target pair to reconcile
type JobConfig struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// ComparisonConfig holds the equality policy settings
type ComparisonConfig struct {
	CheckLength             bool  `yaml:"check_length"`
	CheckFullContent        bool  `yaml:"check_full_content"`
	CheckPartialContent     bool  `yaml:"check_partial_content"`
	PartialContentMaxLength int64 `yaml:"partial_content_max_length"`
	SizeTolerance           int64 `yaml:"size_tolerance"`
}

// Options converts the configuration into comparison options
func (c ComparisonConfig) Options() compare.Options {
	return compare.Options{
		CheckLength:             c.CheckLength,
		CheckFullContent:        c.CheckFullContent,
		CheckPartialContent:     c.CheckPartialContent,
		PartialContentMaxLength: c.PartialContentMaxLength,
		SizeTolerance:           c.SizeTolerance,
	}
}

// ExecutionConfig holds plan application settings
type ExecutionConfig struct {
	BandwidthLimit int64 `yaml:"bandwidth_limit"` // bytes per second, 0 = unlimited
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show progress bars
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"` // "json" or "text"
	Level   string `yaml:"level"`  // "debug", "info", "warn", "error"
	File    string `yaml:"file"`   // Log file path (empty = disabled)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Comparison: ComparisonConfig{
			CheckLength:             true,
			CheckPartialContent:     true,
			PartialContentMaxLength: compare.DefaultPartialContentMaxLength,
			SizeTolerance:           compare.DefaultSizeTolerance,
		},
		Execution: ExecutionConfig{
			BandwidthLimit: 0,
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Format:  "text",
			Level:   "info",
			File:    "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	for i, job := range c.Jobs {
		if job.Source == "" {
			return &models.ValidationError{
				Field:   "jobs",
				Message: "source path is required for job " + jobLabel(job, i),
			}
		}
		if job.Target == "" {
			return &models.ValidationError{
				Field:   "jobs",
				Message: "target path is required for job " + jobLabel(job, i),
			}
		}
	}

	if c.Comparison.PartialContentMaxLength < 0 {
		return &models.ValidationError{
			Field:   "comparison.partial_content_max_length",
			Message: "must not be negative",
		}
	}
	if c.Comparison.CheckPartialContent && c.Comparison.PartialContentMaxLength == 0 {
		return &models.ValidationError{
			Field:   "comparison.partial_content_max_length",
			Message: "must be set when check_partial_content is enabled",
		}
	}
	if c.Comparison.SizeTolerance < 0 {
		return &models.ValidationError{
			Field:   "comparison.size_tolerance",
			Message: "must not be negative",
		}
	}

	if c.Execution.BandwidthLimit < 0 {
		return &models.ValidationError{
			Field:   "execution.bandwidth_limit",
			Message: "must not be negative",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}

func jobLabel(job JobConfig, index int) string {
	if job.Name != "" {
		return "'" + job.Name + "'"
	}
	return "#" + strconv.Itoa(index+1)
}
