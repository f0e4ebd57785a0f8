package plan

import (
	"github.com/sdejongh/reconorris/pkg/models"
)

// ActionType represents the kind of operation applied to the target
type ActionType string

const (
	// ActionDelete removes an extra file from the target
	ActionDelete ActionType = "delete"
	// ActionCopy copies a missing file from source to target
	ActionCopy ActionType = "copy"
	// ActionMove relocates a file within the target to its source location
	ActionMove ActionType = "move"
)

// Action is one planned operation on the target tree
type Action struct {
	Type ActionType

	// Path is the relative path the action applies to: the extra file for
	// deletes, the missing file for copies, the destination for moves
	Path string

	// FromPath is the current location within the target, set for moves
	FromPath string

	// Size is the file size in bytes, used for transfer accounting
	Size int64
}

// Plan is the ordered set of operations that brings the target into
// agreement with the source. Conflicted and different files produce no
// actions; they are surfaced on the result for the operator instead.
type Plan struct {
	RunID      string
	SourceRoot string
	TargetRoot string
	Actions    []Action
}

// Build derives a plan from a reconciliation result. Deletes come first,
// then copies, then moves, each sorted by path for deterministic output.
func Build(result *models.ReconcileResult) *Plan {
	p := &Plan{
		RunID:      result.RunID,
		SourceRoot: result.SourceRoot,
		TargetRoot: result.TargetRoot,
	}

	for _, path := range result.Extra.Paths() {
		p.Actions = append(p.Actions, Action{
			Type: ActionDelete,
			Path: path,
			Size: result.Extra[path].Size,
		})
	}

	for _, path := range result.Missing.Paths() {
		p.Actions = append(p.Actions, Action{
			Type: ActionCopy,
			Path: path,
			Size: result.Missing[path].Size,
		})
	}

	for _, pair := range result.Similar {
		p.Actions = append(p.Actions, Action{
			Type:     ActionMove,
			Path:     pair.Missing.RelativePath,
			FromPath: pair.Extra.RelativePath,
			Size:     pair.Extra.Size,
		})
	}

	return p
}

// IsEmpty reports whether the plan contains no actions
func (p *Plan) IsEmpty() bool {
	return len(p.Actions) == 0
}

// TotalBytes returns the number of bytes the copy actions will transfer
func (p *Plan) TotalBytes() int64 {
	var total int64
	for _, a := range p.Actions {
		if a.Type == ActionCopy {
			total += a.Size
		}
	}
	return total
}
