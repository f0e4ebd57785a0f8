package plan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sdejongh/reconorris/pkg/logging"
	"github.com/sdejongh/reconorris/pkg/models"
	"github.com/sdejongh/reconorris/pkg/output"
	"github.com/sdejongh/reconorris/pkg/ratelimit"
	"github.com/sdejongh/reconorris/pkg/storage"
)

// ConfirmFunc is invoked once per action before it runs; returning false
// skips the action. Sequential prompting lives in the caller, not in the
// plan data structures.
type ConfirmFunc func(action Action) bool

// ConfirmAll accepts every action without prompting
func ConfirmAll(Action) bool { return true }

// ExecutorConfig holds executor settings
type ExecutorConfig struct {
	// JobName labels the report, empty for ad-hoc runs
	JobName string

	// DryRun produces the report without touching the target
	DryRun bool

	// BandwidthLimit caps copy throughput in bytes per second, 0 = unlimited
	BandwidthLimit int64
}

// Executor applies a plan to the target tree. Each operation is confirmed,
// then executed; a failure (permission denied, path not found, disk full) is
// caught, logged and recorded, and execution continues with the next
// operation.
type Executor struct {
	source    storage.Backend
	target    storage.Backend
	confirm   ConfirmFunc
	formatter output.Formatter
	logger    logging.Logger
	limiter   *ratelimit.Limiter
	config    ExecutorConfig
}

// NewExecutor creates a plan executor
func NewExecutor(source, target storage.Backend, confirm ConfirmFunc, formatter output.Formatter, logger logging.Logger, config ExecutorConfig) *Executor {
	if confirm == nil {
		confirm = ConfirmAll
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Executor{
		source:    source,
		target:    target,
		confirm:   confirm,
		formatter: formatter,
		logger:    logger,
		limiter:   ratelimit.NewLimiter(config.BandwidthLimit),
		config:    config,
	}
}

// Apply runs the plan's delete, copy and move actions in order and returns
// a report of what happened
func (e *Executor) Apply(ctx context.Context, p *Plan) (*models.JobReport, error) {
	report := &models.JobReport{
		JobID:      uuid.New().String(),
		JobName:    e.config.JobName,
		SourceRoot: p.SourceRoot,
		TargetRoot: p.TargetRoot,
		DryRun:     e.config.DryRun,
		StartTime:  time.Now(),
		Status:     models.StatusSuccess,
	}

	for _, a := range p.Actions {
		switch a.Type {
		case ActionDelete:
			report.Stats.DeletesPlanned++
		case ActionCopy:
			report.Stats.CopiesPlanned++
		case ActionMove:
			report.Stats.MovesPlanned++
		}
	}

	if e.formatter != nil {
		e.formatter.Start(nil, len(p.Actions), p.TotalBytes())
	}

	e.logger.Info(ctx, "applying plan", logging.Fields{
		"job_id":  report.JobID,
		"actions": len(p.Actions),
		"dry_run": e.config.DryRun,
	})

	for i, action := range p.Actions {
		select {
		case <-ctx.Done():
			report.Status = models.StatusCancelled
			e.finish(report)
			return report, ctx.Err()
		default:
		}

		e.progress(output.ProgressUpdate{
			Type:          "action_start",
			Action:        string(action.Type),
			Path:          action.Path,
			FromPath:      action.FromPath,
			CurrentAction: i + 1,
			TotalActions:  len(p.Actions),
			TotalBytes:    action.Size,
		})

		if !e.confirm(action) {
			report.Stats.FilesSkipped++
			e.progress(output.ProgressUpdate{
				Type:          "action_skipped",
				Action:        string(action.Type),
				Path:          action.Path,
				CurrentAction: i + 1,
				TotalActions:  len(p.Actions),
			})
			continue
		}

		if err := e.execute(ctx, action); err != nil {
			report.Stats.FilesErrored++
			report.Errors = append(report.Errors, models.OperationError{
				Path:      action.Path,
				Operation: string(action.Type),
				Message:   err.Error(),
				Timestamp: time.Now(),
			})
			e.logger.Error(ctx, "plan operation failed", err, logging.Fields{
				"action": string(action.Type),
				"path":   action.Path,
			})
			e.progress(output.ProgressUpdate{
				Type:          "action_error",
				Action:        string(action.Type),
				Path:          action.Path,
				CurrentAction: i + 1,
				TotalActions:  len(p.Actions),
				Err:           err,
			})
			continue
		}

		switch action.Type {
		case ActionDelete:
			report.Stats.FilesDeleted++
		case ActionCopy:
			report.Stats.FilesCopied++
			report.Stats.BytesCopied += action.Size
		case ActionMove:
			report.Stats.FilesMoved++
		}

		e.progress(output.ProgressUpdate{
			Type:          "action_complete",
			Action:        string(action.Type),
			Path:          action.Path,
			CurrentAction: i + 1,
			TotalActions:  len(p.Actions),
			BytesCopied:   action.Size,
		})
	}

	e.finish(report)
	return report, nil
}

// execute performs one action against the target
func (e *Executor) execute(ctx context.Context, action Action) error {
	if e.config.DryRun {
		return nil
	}

	var err error
	switch action.Type {
	case ActionDelete:
		err = e.target.Delete(ctx, action.Path)
	case ActionCopy:
		err = e.copyFile(ctx, action)
	case ActionMove:
		err = e.target.Move(ctx, action.FromPath, action.Path)
	}

	if err != nil {
		return &models.ReconcileError{Kind: models.KindExecution, Path: action.Path, Err: err}
	}
	return nil
}

// copyFile copies one file from source to target, honoring the bandwidth limit
func (e *Executor) copyFile(ctx context.Context, action Action) error {
	reader, err := e.source.Read(ctx, action.Path)
	if err != nil {
		return err
	}
	defer reader.Close()

	limited := ratelimit.NewReader(ctx, reader, e.limiter)
	return e.target.Write(ctx, action.Path, limited, action.Size)
}

// finish closes out the report and notifies the formatter
func (e *Executor) finish(report *models.JobReport) {
	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)

	executed := report.Stats.FilesDeleted + report.Stats.FilesCopied + report.Stats.FilesMoved
	if report.Status != models.StatusCancelled && report.Stats.FilesErrored > 0 {
		if executed == 0 {
			report.Status = models.StatusFailed
		} else {
			report.Status = models.StatusPartial
		}
	}

	if e.formatter != nil {
		e.formatter.Complete(report)
	}
}

// progress forwards an update to the formatter when one is attached
func (e *Executor) progress(update output.ProgressUpdate) {
	if e.formatter != nil {
		e.formatter.Progress(update)
	}
}
