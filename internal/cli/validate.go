package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sdejongh/reconorris/internal/platform"
	"github.com/sdejongh/reconorris/pkg/compare"
	"github.com/sdejongh/reconorris/pkg/config"
	"github.com/sdejongh/reconorris/pkg/logging"
	"github.com/sdejongh/reconorris/pkg/output"
)

// ReconFlags holds flags shared by the plan and apply commands
type ReconFlags struct {
	Source        string
	Target        string
	CreateTarget  bool
	Content       string // "none", "partial", "full"
	PartialLimit  int64
	SizeTolerance int64
	Output        string
	Report        string
	ReportFormat  string

	// apply only
	DryRun    bool
	Yes       bool
	Bandwidth string

	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var reconFlags ReconFlags

// validateReconFlags validates the shared plan/apply flags
func validateReconFlags() error {
	if err := platform.ValidatePath(reconFlags.Source); err != nil {
		return err
	}
	if err := platform.ValidatePath(reconFlags.Target); err != nil {
		return err
	}

	if _, err := os.Stat(reconFlags.Source); os.IsNotExist(err) {
		return fmt.Errorf("source path does not exist: %s", reconFlags.Source)
	}

	targetInfo, err := os.Stat(reconFlags.Target)
	if os.IsNotExist(err) {
		if reconFlags.CreateTarget {
			if err := os.MkdirAll(reconFlags.Target, 0755); err != nil {
				return fmt.Errorf("failed to create target directory: %w", err)
			}
		} else {
			return fmt.Errorf("target path does not exist: %s (use --create-target to create it)", reconFlags.Target)
		}
	} else if err != nil {
		return fmt.Errorf("failed to access target path: %w", err)
	} else if !targetInfo.IsDir() {
		return fmt.Errorf("target path exists but is not a directory: %s", reconFlags.Target)
	}

	sourceAbs, err := filepath.Abs(reconFlags.Source)
	if err != nil {
		return fmt.Errorf("failed to resolve source path: %w", err)
	}
	targetAbs, err := filepath.Abs(reconFlags.Target)
	if err != nil {
		return fmt.Errorf("failed to resolve target path: %w", err)
	}

	if sourceAbs == targetAbs {
		return fmt.Errorf("source and target cannot be the same: %s", sourceAbs)
	}
	if strings.HasPrefix(targetAbs, sourceAbs+string(filepath.Separator)) {
		return fmt.Errorf("target cannot be inside source directory")
	}
	if strings.HasPrefix(sourceAbs, targetAbs+string(filepath.Separator)) {
		return fmt.Errorf("source cannot be inside target directory")
	}

	validContent := map[string]bool{"none": true, "partial": true, "full": true}
	if !validContent[reconFlags.Content] {
		return fmt.Errorf("invalid content mode: %s (valid: none, partial, full)", reconFlags.Content)
	}

	validOutputs := map[string]bool{"human": true, "json": true}
	if !validOutputs[reconFlags.Output] {
		return fmt.Errorf("invalid output format: %s (valid: human, json)", reconFlags.Output)
	}

	return nil
}

// loadConfig loads configuration from file or returns the default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// buildOptions merges configuration and flags into comparison options
func buildOptions(cfg *config.Config) compare.Options {
	opts := cfg.Comparison.Options()
	opts.CheckLength = true

	switch reconFlags.Content {
	case "none":
		opts.CheckFullContent = false
		opts.CheckPartialContent = false
	case "partial":
		opts.CheckFullContent = false
		opts.CheckPartialContent = true
		if reconFlags.PartialLimit > 0 {
			opts.PartialContentMaxLength = reconFlags.PartialLimit
		}
		if opts.PartialContentMaxLength <= 0 {
			opts.PartialContentMaxLength = compare.DefaultPartialContentMaxLength
		}
	case "full":
		opts.CheckFullContent = true
		opts.CheckPartialContent = false
	}

	if reconFlags.SizeTolerance >= 0 {
		opts.SizeTolerance = reconFlags.SizeTolerance
	}

	return opts
}

// parseBandwidth parses a bandwidth limit such as "500K", "10M" or "1G"
// into bytes per second
func parseBandwidth(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}

	multiplier := int64(1)
	numPart := s
	switch unit := s[len(s)-1]; unit {
	case 'k', 'K':
		multiplier = 1024
		numPart = s[:len(s)-1]
	case 'm', 'M':
		multiplier = 1024 * 1024
		numPart = s[:len(s)-1]
	case 'g', 'G':
		multiplier = 1024 * 1024 * 1024
		numPart = s[:len(s)-1]
	}

	value, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid bandwidth limit: %s", s)
	}
	if value < 0 {
		return 0, fmt.Errorf("bandwidth limit cannot be negative: %s", s)
	}

	return value * multiplier, nil
}

// createLogger creates a logger based on flags, defaulting to the null logger
func createLogger(logFile, logFormat, logLevel string) (logging.Logger, error) {
	if logFile == "" {
		return logging.NewNullLogger(), nil
	}

	var format logging.Format
	switch logFormat {
	case "json":
		format = logging.FormatJSON
	default:
		format = logging.FormatText
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:       logFile,
		Format:     format,
		Level:      logging.ParseLevel(logLevel),
		MaxSize:    10 * 1024 * 1024, // 10 MB
		MaxBackups: 5,
	})
}

// newFormatter selects the output formatter for plan application
func newFormatter(cfg *config.Config) output.Formatter {
	if reconFlags.Output == "json" {
		return output.NewJSONFormatter()
	}
	if cfg.Output.Progress && !globalFlags.Quiet {
		return output.NewProgressFormatter()
	}
	return output.NewHumanFormatter()
}

// newFormatterForConfig selects a formatter from configuration alone,
// used by the jobs command where per-run flags don't apply
func newFormatterForConfig(cfg *config.Config) output.Formatter {
	if cfg.Output.Format == "json" {
		return output.NewJSONFormatter()
	}
	if cfg.Output.Progress && !globalFlags.Quiet {
		return output.NewProgressFormatter()
	}
	return output.NewHumanFormatter()
}
