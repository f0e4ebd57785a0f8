package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sdejongh/reconorris/pkg/models"
)

func reportFixture() *models.ReconcileResult {
	return &models.ReconcileResult{
		RunID:      "run-42",
		SourceRoot: "/src",
		TargetRoot: "/tgt",
		Identical:  models.NewFileSet(&models.FileEntry{RelativePath: "same.txt"}),
		Different:  models.NewFileSet(&models.FileEntry{RelativePath: "changed.txt"}),
		Missing:    models.NewFileSet(&models.FileEntry{RelativePath: "new.txt"}),
		Extra:      models.NewFileSet(&models.FileEntry{RelativePath: "old.tmp"}),
		Similar: []models.CandidatePair{{
			Missing: &models.FileEntry{RelativePath: "archive/report.csv"},
			Extra:   &models.FileEntry{RelativePath: "report.csv"},
		}},
		Conflicted: models.NewFileSet(&models.FileEntry{RelativePath: "a.txt"}),
		Errors: []models.CompareError{{
			SourcePath: "broken.txt",
			TargetPath: "broken.txt",
			Err:        errors.New("read failed"),
		}},
	}
}

// TestWriteResultHuman tests the sectioned human report
func TestWriteResultHuman(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResult(reportFixture(), &buf, "human"); err != nil {
		t.Fatalf("WriteResult() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Run ID: run-42",
		"changed.txt",
		"Missing from target",
		"new.txt",
		"Extra in target",
		"old.tmp",
		"report.csv -> archive/report.csv",
		"a.txt",
		"read failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("human report missing %q:\n%s", want, out)
		}
	}
}

// TestWriteResultJSON tests the machine-readable report shape
func TestWriteResultJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResult(reportFixture(), &buf, "json"); err != nil {
		t.Fatalf("WriteResult() error = %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc["run_id"] != "run-42" {
		t.Errorf("run_id = %v, want run-42", doc["run_id"])
	}

	renamed, ok := doc["renamed"].([]interface{})
	if !ok || len(renamed) != 1 {
		t.Fatalf("renamed = %v, want one pair", doc["renamed"])
	}
	pair := renamed[0].(map[string]interface{})
	if pair["from"] != "report.csv" || pair["to"] != "archive/report.csv" {
		t.Errorf("renamed pair = %v, want report.csv -> archive/report.csv", pair)
	}

	errs, ok := doc["errors"].([]interface{})
	if !ok || len(errs) != 1 {
		t.Fatalf("errors = %v, want one entry", doc["errors"])
	}
}

// TestJSONFormatter tests the plan application JSON document
func TestJSONFormatter(t *testing.T) {
	f := NewJSONFormatter()
	var buf bytes.Buffer

	if err := f.Start(&buf, 2, 100); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	f.Progress(ProgressUpdate{Type: "action_start", Action: "copy", Path: "a.txt"})
	f.Progress(ProgressUpdate{Type: "action_complete", Action: "copy", Path: "a.txt"})
	f.Progress(ProgressUpdate{Type: "action_error", Action: "delete", Path: "b.txt", Err: errors.New("denied")})

	report := &models.JobReport{
		JobID:    "job-1",
		Duration: 250 * time.Millisecond,
		Status:   models.StatusPartial,
		Stats:    models.PlanStats{FilesCopied: 1, FilesErrored: 1, BytesCopied: 100},
		Errors: []models.OperationError{{
			Path: "b.txt", Operation: "delete", Message: "denied",
		}},
	}
	if err := f.Complete(report); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	var doc JSONReport
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.Status != "partial" {
		t.Errorf("status = %s, want partial", doc.Status)
	}
	if doc.Stats.FilesCopied != 1 || doc.Stats.BytesCopied != 100 {
		t.Errorf("stats = %+v, want one copy of 100 bytes", doc.Stats)
	}
	// action_start events are folded into the completion events
	if len(doc.Events) != 2 {
		t.Errorf("events = %d, want 2", len(doc.Events))
	}
	if len(doc.Errors) != 1 || doc.Errors[0].Path != "b.txt" {
		t.Errorf("errors = %+v, want the delete failure", doc.Errors)
	}
}

// TestHumanFormatter tests the per-action lines and the summary
func TestHumanFormatter(t *testing.T) {
	f := NewHumanFormatter()
	var buf bytes.Buffer

	if err := f.Start(&buf, 3, 2048); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	f.Progress(ProgressUpdate{Type: "action_complete", Action: "delete", Path: "old.tmp", CurrentAction: 1})
	f.Progress(ProgressUpdate{Type: "action_complete", Action: "move", Path: "archive/report.csv", FromPath: "report.csv", CurrentAction: 2})
	f.Progress(ProgressUpdate{Type: "action_skipped", Action: "copy", Path: "new.txt", CurrentAction: 3})

	report := &models.JobReport{
		Duration: time.Second,
		Status:   models.StatusSuccess,
		Stats: models.PlanStats{
			DeletesPlanned: 1, MovesPlanned: 1, CopiesPlanned: 1,
			FilesDeleted: 1, FilesMoved: 1, FilesSkipped: 1,
		},
	}
	if err := f.Complete(report); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"delete old.tmp",
		"move report.csv -> archive/report.csv",
		"new.txt (skipped)",
		"Deleted: 1/1",
		"Status: success",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// TestFormatBytes tests the unit rendering
func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1024 * 1024, "1.0 MiB"},
		{5 * 1024 * 1024 * 1024, "5.0 GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatBytes(tt.n); got != tt.want {
				t.Errorf("formatBytes(%d) = %s, want %s", tt.n, got, tt.want)
			}
		})
	}
}
