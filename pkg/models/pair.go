package models

// CandidatePair is a hypothesis that an extra file in the target is the
// moved or renamed form of a missing source file. Several candidates may
// share the same missing entry; the conflict resolver collapses the list
// into an unambiguous mapping.
type CandidatePair struct {
	// Missing is the source entry with no same-path target counterpart
	Missing *FileEntry

	// Extra is the target entry with no same-path source counterpart
	Extra *FileEntry
}
