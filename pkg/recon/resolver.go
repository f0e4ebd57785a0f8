package recon

import (
	"github.com/sdejongh/reconorris/pkg/models"
)

// Resolution is the outcome of collapsing the candidate list into an
// unambiguous rename mapping
type Resolution struct {
	// Similar holds the accepted rename pairs
	Similar []models.CandidatePair

	// Conflicted holds missing files that matched more than one extra file;
	// their candidates were discarded and are left for the operator
	Conflicted models.FileSet
}

// Resolve detects one-missing-to-many-extra ambiguities and turns the
// candidate list into a conflict-free mapping, revising the missing and
// extra sets in place.
//
// A missing file with several candidates is conflicted: no tie-break is
// applied, since silently picking one of several ambiguous candidates risks
// correctness. Conflicts are a reported condition, not an error. Accepted
// pairs remove their extra entry from the extra set (it is a relocation
// target, not a true extra). Every missing file with at least one candidate
// leaves the missing set: it is explained either by a unique rename or by an
// explicitly tracked conflict. Missing files with no candidate at all stay
// missing (true absence).
func Resolve(candidates []models.CandidatePair, missing, extra models.FileSet) *Resolution {
	res := &Resolution{
		Conflicted: make(models.FileSet),
	}

	counts := make(map[string]int, len(candidates))
	for _, pair := range candidates {
		counts[pair.Missing.RelativePath]++
	}
	for _, pair := range candidates {
		if counts[pair.Missing.RelativePath] > 1 {
			res.Conflicted.Add(pair.Missing)
		}
	}

	for _, pair := range candidates {
		if !res.Conflicted.Contains(pair.Missing.RelativePath) {
			res.Similar = append(res.Similar, pair)
			extra.Remove(pair.Extra.RelativePath)
		}
		missing.Remove(pair.Missing.RelativePath)
	}

	return res
}
