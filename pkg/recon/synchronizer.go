package recon

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sdejongh/reconorris/pkg/compare"
	"github.com/sdejongh/reconorris/pkg/logging"
	"github.com/sdejongh/reconorris/pkg/models"
	"github.com/sdejongh/reconorris/pkg/storage"
)

// Synchronizer orchestrates one source/target pair through the
// classify -> match -> resolve pipeline.
//
// The instance is long-lived and reusable across repeated runs; every run
// rebuilds its collections from scratch into a fresh ReconcileResult, so no
// state bleeds between runs. A single mutex serializes overlapping Run
// invocations on the same instance.
type Synchronizer struct {
	mu     sync.Mutex
	source storage.Backend
	target storage.Backend
	opts   compare.Options
	logger logging.Logger
}

// NewSynchronizer creates a synchronizer for one source/target pair
func NewSynchronizer(source, target storage.Backend, opts compare.Options, logger logging.Logger) *Synchronizer {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Synchronizer{
		source: source,
		target: target,
		opts:   opts,
		logger: logger,
	}
}

// Run executes one full reconciliation: enumerate both roots, classify,
// match renames under the name-and-length policy, resolve conflicts, and
// return the result. Comparison-phase errors never abort the run; they are
// carried on the result with the affected pair degraded to different.
func (s *Synchronizer) Run(ctx context.Context) (*models.ReconcileResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := &models.ReconcileResult{
		RunID:      uuid.New().String(),
		SourceRoot: s.source.Root(),
		TargetRoot: s.target.Root(),
		StartTime:  time.Now(),
	}

	s.logger.Info(ctx, "starting reconciliation run", logging.Fields{
		"run_id": result.RunID,
		"source": result.SourceRoot,
		"target": result.TargetRoot,
	})

	sourceEntries, err := enumerate(ctx, s.source)
	if err != nil {
		return nil, &models.ReconcileError{Kind: models.KindEnumeration, Path: s.source.Root(), Err: err}
	}

	targetEntries, err := enumerate(ctx, s.target)
	if err != nil {
		return nil, &models.ReconcileError{Kind: models.KindEnumeration, Path: s.target.Root(), Err: err}
	}

	partition, err := Classify(ctx, s.source, s.target, sourceEntries, targetEntries, s.opts)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}

	candidates := MatchRenames(partition.Missing, partition.Extra, s.opts)
	resolution := Resolve(candidates, partition.Missing, partition.Extra)

	result.Identical = partition.Identical
	result.Different = partition.Different
	result.Missing = partition.Missing
	result.Extra = partition.Extra
	result.Similar = resolution.Similar
	result.Conflicted = resolution.Conflicted
	result.Errors = partition.Errors
	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)

	s.logger.Info(ctx, "reconciliation run completed", logging.Fields{
		"run_id":     result.RunID,
		"duration":   result.Duration.String(),
		"identical":  len(result.Identical),
		"different":  len(result.Different),
		"missing":    len(result.Missing),
		"extra":      len(result.Extra),
		"renamed":    len(result.Similar),
		"conflicted": len(result.Conflicted),
		"errors":     len(result.Errors),
	})

	for _, ce := range result.Errors {
		s.logger.Warn(ctx, "comparison degraded to different", logging.Fields{
			"source_path": ce.SourcePath,
			"target_path": ce.TargetPath,
			"error":       ce.Err.Error(),
		})
	}

	return result, nil
}

// enumerate lists a root and converts the listing into file entries
func enumerate(ctx context.Context, backend storage.Backend) ([]*models.FileEntry, error) {
	infos, err := backend.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]*models.FileEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, &models.FileEntry{
			RelativePath: info.RelativePath,
			RootPath:     backend.Root(),
			Size:         info.Size,
		})
	}

	return entries, nil
}
