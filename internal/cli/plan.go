package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sdejongh/reconorris/pkg/output"
	"github.com/sdejongh/reconorris/pkg/recon"
	"github.com/sdejongh/reconorris/pkg/storage"
)

// NewPlanCommand creates the plan command
func NewPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Classify two folders and show the reconciliation plan",
		Long: `Compare a source and a target directory, detect renamed files, and
report the delete/copy/move operations that would bring the target into
agreement with the source. No file operations are performed.`,
		RunE: runPlan,
	}

	addReconFlags(cmd)

	return cmd
}

// addReconFlags registers the flags shared by plan and apply
func addReconFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&reconFlags.Source, "source", "s", "", "source directory path (required)")
	cmd.Flags().StringVarP(&reconFlags.Target, "target", "t", "", "target directory path (required)")
	cmd.MarkFlagRequired("source")
	cmd.MarkFlagRequired("target")

	cmd.Flags().BoolVar(&reconFlags.CreateTarget, "create-target", false, "create target directory if it doesn't exist")
	cmd.Flags().StringVar(&reconFlags.Content, "content", "partial", "content comparison: none, partial, full")
	cmd.Flags().Int64Var(&reconFlags.PartialLimit, "partial-limit", 0, "maximum bytes compared in partial mode (default: 1 MiB)")
	cmd.Flags().Int64Var(&reconFlags.SizeTolerance, "size-tolerance", -1, "accepted size difference in bytes for rename candidates (default: 38)")
	cmd.Flags().StringVarP(&reconFlags.Output, "output", "o", "human", "output format: human, json")
	cmd.Flags().StringVar(&reconFlags.Report, "report", "", "write reconciliation report to file")
	cmd.Flags().StringVar(&reconFlags.ReportFormat, "report-format", "human", "report format: human, json")

	cmd.Flags().StringVar(&reconFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&reconFlags.LogFormat, "log-format", "text", "log format: text, json")
	cmd.Flags().StringVar(&reconFlags.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := validateReconFlags(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	source, err := storage.NewLocal(reconFlags.Source)
	if err != nil {
		return fmt.Errorf("failed to open source root: %w", err)
	}
	defer source.Close()

	target, err := storage.NewLocal(reconFlags.Target)
	if err != nil {
		return fmt.Errorf("failed to open target root: %w", err)
	}
	defer target.Close()

	logger, err := createLogger(reconFlags.LogFile, reconFlags.LogFormat, reconFlags.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	synchronizer := recon.NewSynchronizer(source, target, buildOptions(cfg), logger)

	result, err := synchronizer.Run(ctx)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	if reconFlags.Output == "json" {
		if err := output.WriteResult(result, os.Stdout, "json"); err != nil {
			return err
		}
	} else if !globalFlags.Quiet {
		fmt.Print(result.Summary())
	}

	if reconFlags.Report != "" {
		if err := output.WriteResultReport(result, reconFlags.Report, reconFlags.ReportFormat); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if len(result.Errors) > 0 {
		os.Exit(1)
	}
	return nil
}
