package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sdejongh/reconorris/pkg/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View or modify reconorris configuration.`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			fmt.Printf("Jobs: %d\n", len(cfg.Jobs))
			for _, job := range cfg.Jobs {
				fmt.Printf("  %s: %s -> %s\n", jobName(job), job.Source, job.Target)
			}
			fmt.Printf("Check Length: %v\n", cfg.Comparison.CheckLength)
			fmt.Printf("Check Full Content: %v\n", cfg.Comparison.CheckFullContent)
			fmt.Printf("Check Partial Content: %v\n", cfg.Comparison.CheckPartialContent)
			fmt.Printf("Partial Content Max Length: %d\n", cfg.Comparison.PartialContentMaxLength)
			fmt.Printf("Size Tolerance: %d\n", cfg.Comparison.SizeTolerance)
			fmt.Printf("Bandwidth Limit: %d\n", cfg.Execution.BandwidthLimit)
			fmt.Printf("Output Format: %s\n", cfg.Output.Format)
			fmt.Printf("Log Format: %s\n", cfg.Logging.Format)
			fmt.Printf("Log Level: %s\n", cfg.Logging.Level)

			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}

			cfg := config.Default()
			if err := config.SaveToFile(cfg, path); err != nil {
				return err
			}

			fmt.Printf("Configuration file created at: %s\n", path)
			return nil
		},
	}
}
