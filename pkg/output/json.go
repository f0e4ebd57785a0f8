package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/sdejongh/reconorris/pkg/models"
)

// JSONFormatter collects events and emits a single JSON document when the
// plan application completes, for automation and scripting
type JSONFormatter struct {
	writer io.Writer
	events []JSONEvent
}

// JSONEvent represents a single event in the JSON output
type JSONEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Action    string    `json:"action,omitempty"`
	Path      string    `json:"path,omitempty"`
	FromPath  string    `json:"from_path,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// JSONReport is the final document written on Complete
type JSONReport struct {
	JobID      string          `json:"job_id"`
	JobName    string          `json:"job_name,omitempty"`
	SourceRoot string          `json:"source_root"`
	TargetRoot string          `json:"target_root"`
	DryRun     bool            `json:"dry_run"`
	Status     string          `json:"status"`
	Duration   string          `json:"duration"`
	DurationMs int64           `json:"duration_ms"`
	Stats      JSONStats       `json:"stats"`
	Errors     []JSONErrorData `json:"errors,omitempty"`
	Events     []JSONEvent     `json:"events,omitempty"`
}

// JSONStats represents plan statistics in JSON form
type JSONStats struct {
	DeletesPlanned int   `json:"deletes_planned"`
	CopiesPlanned  int   `json:"copies_planned"`
	MovesPlanned   int   `json:"moves_planned"`
	FilesDeleted   int   `json:"files_deleted"`
	FilesCopied    int   `json:"files_copied"`
	FilesMoved     int   `json:"files_moved"`
	FilesSkipped   int   `json:"files_skipped"`
	FilesErrored   int   `json:"files_errored"`
	BytesCopied    int64 `json:"bytes_copied"`
}

// JSONErrorData represents a failed operation
type JSONErrorData struct {
	Path      string `json:"path"`
	Operation string `json:"operation"`
	Message   string `json:"message"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		events: make([]JSONEvent, 0),
	}
}

// Start initializes the formatter
func (f *JSONFormatter) Start(writer io.Writer, totalActions int, totalBytes int64) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	return nil
}

// Progress records an event
func (f *JSONFormatter) Progress(update ProgressUpdate) error {
	// Start events are implicit in the completion events
	if update.Type == "action_start" {
		return nil
	}

	event := JSONEvent{
		Timestamp: time.Now(),
		Type:      update.Type,
		Action:    update.Action,
		Path:      update.Path,
		FromPath:  update.FromPath,
	}
	if update.Err != nil {
		event.Error = update.Err.Error()
	}
	f.events = append(f.events, event)
	return nil
}

// Complete writes the final JSON document
func (f *JSONFormatter) Complete(report *models.JobReport) error {
	if f.writer == nil {
		f.writer = os.Stdout
	}

	out := JSONReport{
		JobID:      report.JobID,
		JobName:    report.JobName,
		SourceRoot: report.SourceRoot,
		TargetRoot: report.TargetRoot,
		DryRun:     report.DryRun,
		Status:     string(report.Status),
		Duration:   report.Duration.String(),
		DurationMs: report.Duration.Milliseconds(),
		Stats: JSONStats{
			DeletesPlanned: report.Stats.DeletesPlanned,
			CopiesPlanned:  report.Stats.CopiesPlanned,
			MovesPlanned:   report.Stats.MovesPlanned,
			FilesDeleted:   report.Stats.FilesDeleted,
			FilesCopied:    report.Stats.FilesCopied,
			FilesMoved:     report.Stats.FilesMoved,
			FilesSkipped:   report.Stats.FilesSkipped,
			FilesErrored:   report.Stats.FilesErrored,
			BytesCopied:    report.Stats.BytesCopied,
		},
		Events: f.events,
	}
	for _, opErr := range report.Errors {
		out.Errors = append(out.Errors, JSONErrorData{
			Path:      opErr.Path,
			Operation: opErr.Operation,
			Message:   opErr.Message,
		})
	}

	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Error records an error event
func (f *JSONFormatter) Error(err error) error {
	f.events = append(f.events, JSONEvent{
		Timestamp: time.Now(),
		Type:      "error",
		Error:     err.Error(),
	})
	return nil
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
