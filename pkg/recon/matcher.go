package recon

import (
	"sort"

	"github.com/sdejongh/reconorris/pkg/compare"
	"github.com/sdejongh/reconorris/pkg/models"
)

// MatchRenames cross-matches missing source files against extra target files
// to discover relocations. A candidate pair requires equal file names (the
// final path segment, not the full relative path) and a qualifying size under
// the name-and-length policy; content is not consulted, so a candidate is a
// hypothesis, not proof.
//
// A missing file may match zero, one or many extra files; the output is the
// full candidate list in deterministic (path-sorted) order, not a resolved
// 1:1 mapping. The name index is a pure lookup optimization and does not
// change observable results.
func MatchRenames(missing, extra models.FileSet, opts compare.Options) []models.CandidatePair {
	sizeOnly := opts.SizeOnly()

	extraByName := make(map[string][]*models.FileEntry)
	for _, p := range extra.Paths() {
		e := extra[p]
		extraByName[e.Name()] = append(extraByName[e.Name()], e)
	}
	for name := range extraByName {
		sort.Slice(extraByName[name], func(i, j int) bool {
			return extraByName[name][i].RelativePath < extraByName[name][j].RelativePath
		})
	}

	var candidates []models.CandidatePair
	for _, p := range missing.Paths() {
		m := missing[p]
		for _, e := range extraByName[m.Name()] {
			if compare.SizesCompatible(m, e, sizeOnly) {
				candidates = append(candidates, models.CandidatePair{Missing: m, Extra: e})
			}
		}
	}

	return candidates
}
