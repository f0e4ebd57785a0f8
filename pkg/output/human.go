package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sdejongh/reconorris/pkg/models"
)

// HumanFormatter formats output in human-readable format
type HumanFormatter struct {
	writer       io.Writer
	totalActions int
}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// Start initializes the formatter
func (f *HumanFormatter) Start(writer io.Writer, totalActions int, totalBytes int64) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	f.totalActions = totalActions

	if totalActions > 0 {
		fmt.Fprintf(writer, "Applying plan: %d operations, %s to transfer\n",
			totalActions, formatBytes(totalBytes))
	}

	return nil
}

// Progress reports progress during application
func (f *HumanFormatter) Progress(update ProgressUpdate) error {
	if f.writer == nil {
		return nil
	}

	switch update.Type {
	case "action_complete":
		if update.Action == "move" {
			fmt.Fprintf(f.writer, "[%d/%d] ✓ move %s -> %s\n",
				update.CurrentAction, f.totalActions, update.FromPath, update.Path)
		} else {
			fmt.Fprintf(f.writer, "[%d/%d] ✓ %s %s\n",
				update.CurrentAction, f.totalActions, update.Action, update.Path)
		}

	case "action_skipped":
		fmt.Fprintf(f.writer, "[%d/%d] - %s %s (skipped)\n",
			update.CurrentAction, f.totalActions, update.Action, update.Path)

	case "action_error":
		fmt.Fprintf(f.writer, "[%d/%d] ✗ %s %s: %v\n",
			update.CurrentAction, f.totalActions, update.Action, update.Path, update.Err)
	}

	return nil
}

// Complete finalizes output and displays the report summary
func (f *HumanFormatter) Complete(report *models.JobReport) error {
	if f.writer == nil {
		f.writer = io.Discard
	}

	fmt.Fprintf(f.writer, "\nPlan applied in %s\n", report.Duration.Round(time.Millisecond))
	if report.DryRun {
		fmt.Fprintf(f.writer, "Dry run: no changes were made\n")
	}
	fmt.Fprintf(f.writer, "\nSummary:\n")
	fmt.Fprintf(f.writer, "  Deleted: %d/%d\n", report.Stats.FilesDeleted, report.Stats.DeletesPlanned)
	fmt.Fprintf(f.writer, "  Copied:  %d/%d (%s)\n", report.Stats.FilesCopied, report.Stats.CopiesPlanned, formatBytes(report.Stats.BytesCopied))
	fmt.Fprintf(f.writer, "  Moved:   %d/%d\n", report.Stats.FilesMoved, report.Stats.MovesPlanned)
	fmt.Fprintf(f.writer, "  Skipped: %d\n", report.Stats.FilesSkipped)
	fmt.Fprintf(f.writer, "  Errored: %d\n", report.Stats.FilesErrored)
	fmt.Fprintf(f.writer, "\nStatus: %s\n", report.Status)

	if len(report.Errors) > 0 {
		fmt.Fprintf(f.writer, "\nErrors:\n")
		for _, opErr := range report.Errors {
			fmt.Fprintf(f.writer, "  %s %s: %s\n", opErr.Operation, opErr.Path, opErr.Message)
		}
	}

	return nil
}

// Error reports an error
func (f *HumanFormatter) Error(err error) error {
	w := f.writer
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}
