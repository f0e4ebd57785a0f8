package models

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// TestFileEntryName tests the final path segment accessor
func TestFileEntryName(t *testing.T) {
	tests := []struct {
		relativePath string
		want         string
	}{
		{"report.csv", "report.csv"},
		{"archive/report.csv", "report.csv"},
		{"a/b/c/deep.txt", "deep.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.relativePath, func(t *testing.T) {
			e := &FileEntry{RelativePath: tt.relativePath}
			if got := e.Name(); got != tt.want {
				t.Errorf("Name() = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestFileSet tests set operations keyed on relative path
func TestFileSet(t *testing.T) {
	a := &FileEntry{RelativePath: "a.txt", Size: 10}
	b := &FileEntry{RelativePath: "dir/b.txt", Size: 20}

	t.Run("NewFileSet", func(t *testing.T) {
		s := NewFileSet(a, b)
		if len(s) != 2 {
			t.Errorf("len = %d, want 2", len(s))
		}
		if !s.Contains("a.txt") || !s.Contains("dir/b.txt") {
			t.Error("set should contain both entries")
		}
	})

	t.Run("AddReplacesSamePath", func(t *testing.T) {
		s := NewFileSet(a)
		replacement := &FileEntry{RelativePath: "a.txt", Size: 99}
		s.Add(replacement)
		if len(s) != 1 {
			t.Errorf("len = %d, want 1", len(s))
		}
		if s["a.txt"].Size != 99 {
			t.Errorf("Size = %d, want 99 (replaced entry)", s["a.txt"].Size)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		s := NewFileSet(a, b)
		s.Remove("a.txt")
		if s.Contains("a.txt") {
			t.Error("a.txt should be removed")
		}
		if !s.Contains("dir/b.txt") {
			t.Error("dir/b.txt should remain")
		}
	})

	t.Run("RemoveMissingIsNoop", func(t *testing.T) {
		s := NewFileSet(a)
		s.Remove("nonexistent.txt")
		if len(s) != 1 {
			t.Errorf("len = %d, want 1", len(s))
		}
	})

	t.Run("PathsSorted", func(t *testing.T) {
		s := NewFileSet(
			&FileEntry{RelativePath: "z.txt"},
			&FileEntry{RelativePath: "a.txt"},
			&FileEntry{RelativePath: "m/n.txt"},
		)
		paths := s.Paths()
		want := []string{"a.txt", "m/n.txt", "z.txt"}
		if len(paths) != len(want) {
			t.Fatalf("len = %d, want %d", len(paths), len(want))
		}
		for i := range want {
			if paths[i] != want[i] {
				t.Errorf("Paths()[%d] = %s, want %s", i, paths[i], want[i])
			}
		}
	})
}

// TestReconcileResultInSync tests the in-sync verdict
func TestReconcileResultInSync(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		r := &ReconcileResult{
			Identical:  NewFileSet(&FileEntry{RelativePath: "a.txt"}),
			Different:  make(FileSet),
			Missing:    make(FileSet),
			Extra:      make(FileSet),
			Conflicted: make(FileSet),
		}
		if !r.InSync() {
			t.Error("InSync() = false, want true (only identical files)")
		}
	})

	t.Run("WithMissing", func(t *testing.T) {
		r := &ReconcileResult{
			Identical:  make(FileSet),
			Different:  make(FileSet),
			Missing:    NewFileSet(&FileEntry{RelativePath: "gone.txt"}),
			Extra:      make(FileSet),
			Conflicted: make(FileSet),
		}
		if r.InSync() {
			t.Error("InSync() = true, want false (missing file present)")
		}
	})

	t.Run("WithRename", func(t *testing.T) {
		r := &ReconcileResult{
			Identical:  make(FileSet),
			Different:  make(FileSet),
			Missing:    make(FileSet),
			Extra:      make(FileSet),
			Conflicted: make(FileSet),
			Similar: []CandidatePair{{
				Missing: &FileEntry{RelativePath: "new/loc.txt"},
				Extra:   &FileEntry{RelativePath: "old/loc.txt"},
			}},
		}
		if r.InSync() {
			t.Error("InSync() = true, want false (pending rename)")
		}
	})
}

// TestReconcileResultSummary tests the human-readable summary
func TestReconcileResultSummary(t *testing.T) {
	r := &ReconcileResult{
		SourceRoot: "/src",
		TargetRoot: "/tgt",
		Duration:   1500 * time.Millisecond,
		Identical:  NewFileSet(&FileEntry{RelativePath: "same.txt"}),
		Different:  make(FileSet),
		Missing:    make(FileSet),
		Extra:      make(FileSet),
		Conflicted: NewFileSet(&FileEntry{RelativePath: "ambiguous.txt"}),
		Similar: []CandidatePair{{
			Missing: &FileEntry{RelativePath: "archive/report.csv"},
			Extra:   &FileEntry{RelativePath: "report.csv"},
		}},
	}

	summary := r.Summary()

	if !strings.Contains(summary, "Identical:  1") {
		t.Errorf("summary missing identical count:\n%s", summary)
	}
	if !strings.Contains(summary, "report.csv -> archive/report.csv") {
		t.Errorf("summary missing rename line:\n%s", summary)
	}
	if !strings.Contains(summary, "ambiguous.txt") {
		t.Errorf("summary missing conflict line:\n%s", summary)
	}
}

// TestReconcileError tests error formatting and unwrapping
func TestReconcileError(t *testing.T) {
	underlying := errors.New("permission denied")

	t.Run("WithOtherPath", func(t *testing.T) {
		err := &ReconcileError{
			Kind:      KindContentRead,
			Path:      "a.txt",
			OtherPath: "b.txt",
			Err:       underlying,
		}
		msg := err.Error()
		if !strings.Contains(msg, "content-read") || !strings.Contains(msg, "a.txt") || !strings.Contains(msg, "b.txt") {
			t.Errorf("Error() = %q, want kind and both paths", msg)
		}
		if !errors.Is(err, underlying) {
			t.Error("errors.Is should find the underlying error")
		}
	})

	t.Run("WithoutOtherPath", func(t *testing.T) {
		err := &ReconcileError{Kind: KindEnumeration, Path: "/root", Err: underlying}
		msg := err.Error()
		if !strings.Contains(msg, "enumeration") || !strings.Contains(msg, "/root") {
			t.Errorf("Error() = %q, want kind and path", msg)
		}
	})
}

// TestStatusExitCode tests the status to exit code mapping
func TestStatusExitCode(t *testing.T) {
	tests := []struct {
		status Status
		want   int
	}{
		{StatusSuccess, 0},
		{StatusPartial, 1},
		{StatusFailed, 2},
		{StatusCancelled, 3},
		{Status("unknown"), 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.ExitCode(); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestValidationError tests validation error formatting
func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "comparison.size_tolerance", Message: "must not be negative"}
	want := "comparison.size_tolerance: must not be negative"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
