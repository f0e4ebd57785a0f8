package models

import "fmt"

// ErrorKind categorizes reconciliation errors
type ErrorKind string

const (
	// KindEnumeration indicates a root could not be listed (fatal for that job)
	KindEnumeration ErrorKind = "enumeration"
	// KindMetadata indicates a file's size or attributes were unreadable
	KindMetadata ErrorKind = "metadata"
	// KindContentRead indicates an I/O failure during byte comparison
	KindContentRead ErrorKind = "content-read"
	// KindExecution indicates a delete/copy/move failure during plan application
	KindExecution ErrorKind = "execution"
)

// ReconcileError wraps an underlying error with the paths involved, so every
// reported failure carries enough context to diagnose
type ReconcileError struct {
	Kind      ErrorKind
	Path      string
	OtherPath string
	Err       error
}

func (e *ReconcileError) Error() string {
	if e.OtherPath != "" {
		return fmt.Sprintf("%s error comparing %q with %q: %v", e.Kind, e.Path, e.OtherPath, e.Err)
	}
	return fmt.Sprintf("%s error on %q: %v", e.Kind, e.Path, e.Err)
}

func (e *ReconcileError) Unwrap() error {
	return e.Err
}

// ValidationError represents a configuration or flag validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
