package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sdejongh/reconorris/pkg/models"
)

// WriteResultReport writes a reconciliation result to a file.
// Format can be "human" or "json". An in-sync result produces no file.
func WriteResultReport(result *models.ReconcileResult, path string, format string) error {
	if result.InSync() && len(result.Errors) == 0 {
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	return WriteResult(result, file, format)
}

// WriteResult writes a reconciliation result to the given writer.
// Format can be "human" or "json".
func WriteResult(result *models.ReconcileResult, w io.Writer, format string) error {
	switch format {
	case "json":
		return writeResultJSON(result, w)
	default: // "human"
		return writeResultHuman(result, w)
	}
}

// writeResultHuman writes the result in human-readable format
func writeResultHuman(result *models.ReconcileResult, w io.Writer) error {
	fmt.Fprintf(w, "Reconciliation Report\n")
	fmt.Fprintf(w, "=====================\n\n")
	fmt.Fprintf(w, "Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(w, "Run ID: %s\n", result.RunID)
	fmt.Fprintf(w, "Source: %s\n", result.SourceRoot)
	fmt.Fprintf(w, "Target: %s\n\n", result.TargetRoot)

	section := func(label string, paths []string) {
		if len(paths) == 0 {
			return
		}
		header := fmt.Sprintf("%s (%d files)", label, len(paths))
		fmt.Fprintf(w, "%s\n%s\n", header, strings.Repeat("-", len(header)))
		for _, p := range paths {
			fmt.Fprintf(w, "  %s\n", p)
		}
		fmt.Fprintf(w, "\n")
	}

	section("Different", result.Different.Paths())
	section("Missing from target", result.Missing.Paths())
	section("Extra in target", result.Extra.Paths())
	section("Conflicted (ambiguous rename)", result.Conflicted.Paths())

	if len(result.Similar) > 0 {
		header := fmt.Sprintf("Renamed (%d files)", len(result.Similar))
		fmt.Fprintf(w, "%s\n%s\n", header, strings.Repeat("-", len(header)))
		for _, pair := range result.Similar {
			fmt.Fprintf(w, "  %s -> %s\n", pair.Extra.RelativePath, pair.Missing.RelativePath)
		}
		fmt.Fprintf(w, "\n")
	}

	if len(result.Errors) > 0 {
		header := fmt.Sprintf("Comparison errors (%d)", len(result.Errors))
		fmt.Fprintf(w, "%s\n%s\n", header, strings.Repeat("-", len(header)))
		for _, ce := range result.Errors {
			fmt.Fprintf(w, "  %s / %s: %v\n", ce.SourcePath, ce.TargetPath, ce.Err)
		}
		fmt.Fprintf(w, "\n")
	}

	return nil
}

// resultJSON is the JSON shape of a reconciliation result report
type resultJSON struct {
	Generated  time.Time          `json:"generated"`
	RunID      string             `json:"run_id"`
	SourceRoot string             `json:"source_root"`
	TargetRoot string             `json:"target_root"`
	Identical  []string           `json:"identical"`
	Different  []string           `json:"different"`
	Missing    []string           `json:"missing"`
	Extra      []string           `json:"extra"`
	Renamed    []renamedPairJSON  `json:"renamed"`
	Conflicted []string           `json:"conflicted"`
	Errors     []compareErrorJSON `json:"errors,omitempty"`
}

type renamedPairJSON struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type compareErrorJSON struct {
	SourcePath string `json:"source_path"`
	TargetPath string `json:"target_path"`
	Error      string `json:"error"`
}

// writeResultJSON writes the result in JSON format
func writeResultJSON(result *models.ReconcileResult, w io.Writer) error {
	out := resultJSON{
		Generated:  time.Now(),
		RunID:      result.RunID,
		SourceRoot: result.SourceRoot,
		TargetRoot: result.TargetRoot,
		Identical:  result.Identical.Paths(),
		Different:  result.Different.Paths(),
		Missing:    result.Missing.Paths(),
		Extra:      result.Extra.Paths(),
		Conflicted: result.Conflicted.Paths(),
	}
	for _, pair := range result.Similar {
		out.Renamed = append(out.Renamed, renamedPairJSON{
			From: pair.Extra.RelativePath,
			To:   pair.Missing.RelativePath,
		})
	}
	for _, ce := range result.Errors {
		out.Errors = append(out.Errors, compareErrorJSON{
			SourcePath: ce.SourcePath,
			TargetPath: ce.TargetPath,
			Error:      ce.Err.Error(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
