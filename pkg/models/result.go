package models

import (
	"fmt"
	"strings"
	"time"
)

// CompareError records a per-pair comparison failure. The pair's verdict is
// degraded to "different" and the run continues; nothing is silently dropped.
type CompareError struct {
	SourcePath string
	TargetPath string
	Err        error
}

// ReconcileResult holds the outcome of one reconciliation run.
//
// The six collections are rebuilt from scratch on every run; the result
// object is immutable once returned and stable for its lifetime. Identical,
// Different and Missing partition the source paths; Identical, Different and
// Extra partition the target paths. Similar pairs map missing paths to the
// extra path they were relocated to, and Conflicted tracks missing files
// whose rename candidates were ambiguous.
type ReconcileResult struct {
	// RunID uniquely identifies this run
	RunID string

	// SourceRoot and TargetRoot are the reconciled directories
	SourceRoot string
	TargetRoot string

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Classification sets
	Identical FileSet
	Different FileSet
	Missing   FileSet
	Extra     FileSet

	// Similar holds resolved rename pairs (missing -> extra)
	Similar []CandidatePair

	// Conflicted holds missing files with more than one rename candidate
	Conflicted FileSet

	// Errors holds per-pair comparison failures encountered during the run
	Errors []CompareError
}

// InSync reports whether the target already agrees with the source
func (r *ReconcileResult) InSync() bool {
	return len(r.Different) == 0 && len(r.Missing) == 0 &&
		len(r.Extra) == 0 && len(r.Similar) == 0 && len(r.Conflicted) == 0
}

// Summary returns a human-readable account of the run
func (r *ReconcileResult) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Reconciliation of %s against %s (%s)\n",
		r.TargetRoot, r.SourceRoot, r.Duration.Round(time.Millisecond))
	fmt.Fprintf(&b, "  Identical:  %d\n", len(r.Identical))
	fmt.Fprintf(&b, "  Different:  %d\n", len(r.Different))
	fmt.Fprintf(&b, "  Missing:    %d\n", len(r.Missing))
	fmt.Fprintf(&b, "  Extra:      %d\n", len(r.Extra))
	fmt.Fprintf(&b, "  Renamed:    %d\n", len(r.Similar))
	fmt.Fprintf(&b, "  Conflicted: %d\n", len(r.Conflicted))

	for _, pair := range r.Similar {
		fmt.Fprintf(&b, "    rename: %s -> %s\n", pair.Extra.RelativePath, pair.Missing.RelativePath)
	}
	for _, p := range r.Conflicted.Paths() {
		fmt.Fprintf(&b, "    conflict: %s matches several extra files\n", p)
	}
	if len(r.Errors) > 0 {
		fmt.Fprintf(&b, "  Comparison errors: %d\n", len(r.Errors))
		for _, ce := range r.Errors {
			fmt.Fprintf(&b, "    %s / %s: %v\n", ce.SourcePath, ce.TargetPath, ce.Err)
		}
	}

	if r.InSync() {
		b.WriteString("  Target is in sync with source\n")
	}

	return b.String()
}
