package output

import (
	"fmt"
	"io"

	"github.com/sdejongh/reconorris/pkg/models"
)

// ProgressUpdate represents a progress notification while a plan is applied
type ProgressUpdate struct {
	Type          string // "action_start", "action_complete", "action_skipped", "action_error"
	Action        string // "delete", "copy", "move"
	Path          string
	FromPath      string
	CurrentAction int
	TotalActions  int
	BytesCopied   int64
	TotalBytes    int64
	Err           error
}

// Formatter defines the interface for plan application output
// Implementations include human-readable, JSON and progress-bar formatters
type Formatter interface {
	// Start initializes the formatter for a new plan application.
	// A nil writer selects the formatter's default output.
	Start(writer io.Writer, totalActions int, totalBytes int64) error

	// Progress reports progress during application
	Progress(update ProgressUpdate) error

	// Complete finalizes output and displays the report summary
	Complete(report *models.JobReport) error

	// Error reports an error outside the per-action flow
	Error(err error) error

	// Name returns the formatter name
	Name() string
}

// formatBytes renders a byte count in human-readable units
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
