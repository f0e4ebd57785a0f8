package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sdejongh/reconorris/pkg/config"
	"github.com/sdejongh/reconorris/pkg/logging"
	"github.com/sdejongh/reconorris/pkg/models"
	"github.com/sdejongh/reconorris/pkg/plan"
	"github.com/sdejongh/reconorris/pkg/recon"
	"github.com/sdejongh/reconorris/pkg/storage"
)

// JobsFlags holds jobs command flags
type JobsFlags struct {
	Apply     bool
	DryRun    bool
	Yes       bool
	LogFile   string
	LogFormat string
	LogLevel  string
}

var jobsFlags JobsFlags

// NewJobsCommand creates the jobs command
func NewJobsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Run all configured reconciliation jobs",
		Long: `Run every source/target pair defined in the configuration file.
A job whose roots cannot be enumerated is reported and skipped; the
remaining jobs still run.`,
		RunE: runJobs,
	}

	cmd.Flags().BoolVar(&jobsFlags.Apply, "apply", false, "apply each job's plan instead of only reporting it")
	cmd.Flags().BoolVar(&jobsFlags.DryRun, "dry-run", false, "with --apply, show what would be done without touching targets")
	cmd.Flags().BoolVarP(&jobsFlags.Yes, "yes", "y", false, "with --apply, apply all operations without prompting")
	cmd.Flags().StringVar(&jobsFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&jobsFlags.LogFormat, "log-format", "text", "log format: text, json")
	cmd.Flags().StringVar(&jobsFlags.LogLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}

func runJobs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if len(cfg.Jobs) == 0 {
		return fmt.Errorf("no jobs configured (add a jobs section to the config file)")
	}

	logger, err := createLogger(jobsFlags.LogFile, jobsFlags.LogFormat, jobsFlags.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	failed := 0
	for _, job := range cfg.Jobs {
		if err := runJob(ctx, cfg, job, logger); err != nil {
			// A failing job never aborts the remaining jobs
			fmt.Fprintf(os.Stderr, "job %s failed: %v\n", jobName(job), err)
			logger.Error(ctx, "job failed", err, logging.Fields{"job": jobName(job)})
			failed++
		}
	}

	if !globalFlags.Quiet {
		fmt.Printf("\n%d/%d jobs completed\n", len(cfg.Jobs)-failed, len(cfg.Jobs))
	}

	switch {
	case failed == len(cfg.Jobs):
		os.Exit(models.StatusFailed.ExitCode())
	case failed > 0:
		os.Exit(models.StatusPartial.ExitCode())
	}
	return nil
}

// runJob reconciles one configured pair and optionally applies its plan
func runJob(ctx context.Context, cfg *config.Config, job config.JobConfig, logger logging.Logger) error {
	source, err := storage.NewLocal(job.Source)
	if err != nil {
		return fmt.Errorf("failed to open source root: %w", err)
	}
	defer source.Close()

	target, err := storage.NewLocal(job.Target)
	if err != nil {
		return fmt.Errorf("failed to open target root: %w", err)
	}
	defer target.Close()

	jobLogger := logger.WithFields(logging.Fields{"job": jobName(job)})
	synchronizer := recon.NewSynchronizer(source, target, cfg.Comparison.Options(), jobLogger)

	result, err := synchronizer.Run(ctx)
	if err != nil {
		return err
	}

	if !globalFlags.Quiet {
		fmt.Printf("=== Job: %s\n", jobName(job))
		fmt.Print(result.Summary())
	}

	if !jobsFlags.Apply {
		return nil
	}

	p := plan.Build(result)
	if p.IsEmpty() {
		return nil
	}

	confirm := plan.ConfirmAll
	if !jobsFlags.Yes {
		confirm = newConfirmFunc(os.Stdin, os.Stdout)
	}

	executor := plan.NewExecutor(source, target, confirm, newFormatterForConfig(cfg), jobLogger, plan.ExecutorConfig{
		JobName:        jobName(job),
		DryRun:         jobsFlags.DryRun,
		BandwidthLimit: cfg.Execution.BandwidthLimit,
	})

	report, err := executor.Apply(ctx, p)
	if err != nil {
		return err
	}
	if report.Status == models.StatusFailed {
		return fmt.Errorf("all operations failed")
	}

	return nil
}

// jobName labels a job for display and logging
func jobName(job config.JobConfig) string {
	if job.Name != "" {
		return job.Name
	}
	return job.Source + " -> " + job.Target
}
