package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sdejongh/reconorris/pkg/output"
	"github.com/sdejongh/reconorris/pkg/plan"
	"github.com/sdejongh/reconorris/pkg/recon"
	"github.com/sdejongh/reconorris/pkg/storage"
)

// NewApplyCommand creates the apply command
func NewApplyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Reconcile two folders and apply the resulting plan",
		Long: `Compare a source and a target directory, then apply the resulting
delete/copy/move operations to the target. Each operation is confirmed
individually unless --yes is given. Conflicted renames are never applied;
they are reported for manual resolution.`,
		RunE: runApply,
	}

	addReconFlags(cmd)

	cmd.Flags().BoolVar(&reconFlags.DryRun, "dry-run", false, "show what would be done without touching the target")
	cmd.Flags().BoolVarP(&reconFlags.Yes, "yes", "y", false, "apply all operations without prompting")
	cmd.Flags().StringVarP(&reconFlags.Bandwidth, "bandwidth", "b", "", "bandwidth limit for copies (e.g. \"10M\", \"1G\")")

	return cmd
}

func runApply(cmd *cobra.Command, args []string) error {
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

	bandwidth, err := parseBandwidth(reconFlags.Bandwidth)
	if err != nil {
		return err
	}
	if bandwidth == 0 {
		bandwidth = cfg.Execution.BandwidthLimit
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

	if !globalFlags.Quiet && reconFlags.Output != "json" {
		fmt.Print(result.Summary())
	}

	p := plan.Build(result)
	if p.IsEmpty() {
		if !globalFlags.Quiet && reconFlags.Output != "json" {
			fmt.Println("Nothing to do")
		}
		return nil
	}

	confirm := plan.ConfirmAll
	if !reconFlags.Yes {
		confirm = newConfirmFunc(os.Stdin, os.Stdout)
	}

	executor := plan.NewExecutor(source, target, confirm, newFormatter(cfg), logger, plan.ExecutorConfig{
		DryRun:         reconFlags.DryRun,
		BandwidthLimit: bandwidth,
	})

	report, err := executor.Apply(ctx, p)
	if err != nil {
		return fmt.Errorf("plan application failed: %w", err)
	}

	if reconFlags.Report != "" {
		if err := output.WriteResultReport(result, reconFlags.Report, reconFlags.ReportFormat); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	os.Exit(report.Status.ExitCode())
	return nil
}

// newConfirmFunc prompts once per operation. Answering "a" accepts all
// remaining operations, "q" declines all remaining operations.
func newConfirmFunc(in io.Reader, out io.Writer) plan.ConfirmFunc {
	reader := bufio.NewReader(in)
	acceptAll := false
	declineAll := false

	return func(action plan.Action) bool {
		if acceptAll {
			return true
		}
		if declineAll {
			return false
		}

		switch action.Type {
		case plan.ActionMove:
			fmt.Fprintf(out, "move %s -> %s? [y/N/a/q] ", action.FromPath, action.Path)
		default:
			fmt.Fprintf(out, "%s %s? [y/N/a/q] ", action.Type, action.Path)
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			declineAll = true
			return false
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "a", "all":
			acceptAll = true
			return true
		case "q", "quit":
			declineAll = true
			return false
		default:
			return false
		}
	}
}
