package compare

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/sdejongh/reconorris/pkg/models"
	"github.com/sdejongh/reconorris/pkg/storage"
)

// compareBufferSize is the chunk size for byte-by-byte comparison
const compareBufferSize = 64 * 1024

// SizesCompatible reports whether two entries qualify for content comparison
// under the size policy: equal sizes, or sizes differing by exactly the
// configured tolerance (a known constant-size trailer on one side).
// Any other size relationship makes the pair unequal outright.
func SizesCompatible(a, b *models.FileEntry, opts Options) bool {
	if a.Size == b.Size {
		return true
	}
	if opts.SizeTolerance <= 0 {
		return false
	}
	return a.Size == b.Size+opts.SizeTolerance || b.Size == a.Size+opts.SizeTolerance
}

// Equal decides pairwise equality between a source entry and a target entry
// under the given options. Each entry is read through the backend of the
// root it belongs to. The verdict is direction-independent:
// Equal(a,b) == Equal(b,a) for all entries and options.
//
// Read failures abort only this pair's comparison; the caller treats the
// pair as unequal and reports the error.
func Equal(ctx context.Context, a *models.FileEntry, aBackend storage.Backend, b *models.FileEntry, bBackend storage.Backend, opts Options) (bool, error) {
	// With the length check disabled the pair matches unconditionally
	if !opts.CheckLength {
		return true, nil
	}

	if !SizesCompatible(a, b, opts) {
		return false, nil
	}

	// Size qualification alone suffices when no content check is requested
	if !opts.CheckFullContent && !opts.CheckPartialContent {
		return true, nil
	}

	// For tolerance pairs only the common prefix exists on both sides, so
	// the compared range is the smaller size. Full-content semantics win
	// when both flags are set.
	limit := a.Size
	if b.Size < limit {
		limit = b.Size
	}
	if opts.CheckPartialContent && !opts.CheckFullContent && limit > opts.PartialContentMaxLength {
		limit = opts.PartialContentMaxLength
	}

	return contentEqual(ctx, a, aBackend, b, bBackend, limit)
}

// contentEqual compares the first limit bytes of both entries,
// short-circuiting on the first mismatch
func contentEqual(ctx context.Context, a *models.FileEntry, aBackend storage.Backend, b *models.FileEntry, bBackend storage.Backend, limit int64) (bool, error) {
	if limit == 0 {
		return true, nil
	}

	aReader, err := aBackend.Read(ctx, a.RelativePath)
	if err != nil {
		return false, &models.ReconcileError{Kind: models.KindContentRead, Path: a.RelativePath, OtherPath: b.RelativePath, Err: err}
	}
	defer aReader.Close()

	bReader, err := bBackend.Read(ctx, b.RelativePath)
	if err != nil {
		return false, &models.ReconcileError{Kind: models.KindContentRead, Path: b.RelativePath, OtherPath: a.RelativePath, Err: err}
	}
	defer bReader.Close()

	limitedA := io.LimitReader(aReader, limit)
	limitedB := io.LimitReader(bReader, limit)

	bufA := make([]byte, compareBufferSize)
	bufB := make([]byte, compareBufferSize)

	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		nA, errA := io.ReadFull(limitedA, bufA)
		nB, errB := io.ReadFull(limitedB, bufB)

		if nA != nB {
			// A file shrank since enumeration; the pair cannot match
			return false, nil
		}

		if !bytes.Equal(bufA[:nA], bufB[:nB]) {
			return false, nil
		}

		aDone := errA == io.EOF || errors.Is(errA, io.ErrUnexpectedEOF)
		bDone := errB == io.EOF || errors.Is(errB, io.ErrUnexpectedEOF)
		if aDone && bDone {
			return true, nil
		}

		if errA != nil && !aDone {
			return false, &models.ReconcileError{Kind: models.KindContentRead, Path: a.RelativePath, OtherPath: b.RelativePath, Err: errA}
		}
		if errB != nil && !bDone {
			return false, &models.ReconcileError{Kind: models.KindContentRead, Path: b.RelativePath, OtherPath: a.RelativePath, Err: errB}
		}
		if aDone != bDone {
			return false, nil
		}
	}
}
