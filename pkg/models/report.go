package models

import (
	"time"
)

// JobReport represents the results of applying a reconciliation plan
type JobReport struct {
	// Operation details
	JobID      string
	JobName    string
	SourceRoot string
	TargetRoot string
	DryRun     bool

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Statistics
	Stats PlanStats

	// Errors encountered while applying operations
	Errors []OperationError

	// Overall status
	Status Status
}

// PlanStats holds plan application metrics
type PlanStats struct {
	// Planned operations by type
	DeletesPlanned int
	CopiesPlanned  int
	MovesPlanned   int

	// Operations performed
	FilesDeleted int
	FilesCopied  int
	FilesMoved   int

	// Operations declined at the confirmation prompt
	FilesSkipped int

	// Operations that failed
	FilesErrored int

	// Data transfer
	BytesCopied int64
}

// Status represents the overall result of a job
type Status string

const (
	// StatusSuccess indicates all operations completed successfully
	StatusSuccess Status = "success"
	// StatusPartial indicates some operations failed
	StatusPartial Status = "partial"
	// StatusFailed indicates the job failed
	StatusFailed Status = "failed"
	// StatusCancelled indicates the job was cancelled
	StatusCancelled Status = "cancelled"
)

// ExitCode returns the appropriate process exit code for the status
func (s Status) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusPartial:
		return 1
	case StatusFailed:
		return 2
	case StatusCancelled:
		return 3
	default:
		return 2
	}
}

// OperationError represents a failed plan operation
type OperationError struct {
	Path      string
	Operation string
	Message   string
	Timestamp time.Time
}
