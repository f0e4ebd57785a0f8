package output

import (
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/sdejongh/reconorris/pkg/models"
)

// ProgressFormatter renders a progress bar while the plan is applied and a
// human-readable summary when it completes
type ProgressFormatter struct {
	writer io.Writer
	bar    *pb.ProgressBar
	human  *HumanFormatter
}

// NewProgressFormatter creates a progress-bar formatter
func NewProgressFormatter() *ProgressFormatter {
	return &ProgressFormatter{
		human: NewHumanFormatter(),
	}
}

// Start initializes the progress bar over the total action count
func (f *ProgressFormatter) Start(writer io.Writer, totalActions int, totalBytes int64) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer

	if totalActions > 0 {
		fmt.Fprintf(writer, "Applying plan: %d operations, %s to transfer\n",
			totalActions, formatBytes(totalBytes))
		f.bar = pb.New(totalActions)
		f.bar.SetWriter(writer)
		f.bar.Start()
	}

	return nil
}

// Progress advances the bar as actions finish
func (f *ProgressFormatter) Progress(update ProgressUpdate) error {
	if f.bar == nil {
		return nil
	}

	switch update.Type {
	case "action_complete", "action_skipped":
		f.bar.Increment()
	case "action_error":
		f.bar.Increment()
		// Keep the error visible above the bar
		f.bar.Write()
		fmt.Fprintf(f.writer, "✗ %s %s: %v\n", update.Action, update.Path, update.Err)
	}

	return nil
}

// Complete stops the bar and prints the summary
func (f *ProgressFormatter) Complete(report *models.JobReport) error {
	if f.bar != nil {
		f.bar.Finish()
		f.bar = nil
	}

	f.human.writer = f.writer
	return f.human.Complete(report)
}

// Error reports an error
func (f *ProgressFormatter) Error(err error) error {
	w := f.writer
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return nil
}

// Name returns the formatter name
func (f *ProgressFormatter) Name() string {
	return "progress"
}
