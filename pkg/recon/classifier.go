package recon

import (
	"context"

	"github.com/sdejongh/reconorris/pkg/compare"
	"github.com/sdejongh/reconorris/pkg/models"
	"github.com/sdejongh/reconorris/pkg/storage"
)

// Partition is the four-way classification of two enumerated trees.
// The sets are disjoint; Identical, Different and Missing cover the source
// paths and Identical, Different and Extra cover the target paths.
type Partition struct {
	Identical models.FileSet
	Different models.FileSet
	Missing   models.FileSet
	Extra     models.FileSet

	// Errors holds per-pair comparison failures; the affected pairs are
	// classified as different rather than aborting the run
	Errors []models.CompareError
}

// Classify builds the partition from the full enumerations of both roots.
//
// Target entries are indexed by relative path; extra starts as the whole
// target set. Each source entry with a same-path target counterpart is
// compared under the active options and lands in identical or different,
// leaving the extra set. Source entries without a counterpart are missing.
// Runs in O(|source| + |target|) with O(1) expected lookups.
func Classify(ctx context.Context, source, target storage.Backend, sourceEntries, targetEntries []*models.FileEntry, opts compare.Options) (*Partition, error) {
	p := &Partition{
		Identical: make(models.FileSet),
		Different: make(models.FileSet),
		Missing:   make(models.FileSet),
		Extra:     models.NewFileSet(targetEntries...),
	}

	targetByPath := make(map[string]*models.FileEntry, len(targetEntries))
	for _, e := range targetEntries {
		targetByPath[e.RelativePath] = e
	}

	for _, srcEntry := range sourceEntries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		tgtEntry, ok := targetByPath[srcEntry.RelativePath]
		if !ok {
			p.Missing.Add(srcEntry)
			continue
		}

		equal, err := compare.Equal(ctx, srcEntry, source, tgtEntry, target, opts)
		if err != nil {
			p.Errors = append(p.Errors, models.CompareError{
				SourcePath: srcEntry.RelativePath,
				TargetPath: tgtEntry.RelativePath,
				Err:        err,
			})
			equal = false
		}

		if equal {
			p.Identical.Add(srcEntry)
		} else {
			p.Different.Add(srcEntry)
		}
		p.Extra.Remove(tgtEntry.RelativePath)
	}

	return p, nil
}
