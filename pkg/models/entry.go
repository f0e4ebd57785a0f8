package models

import (
	"path"
	"sort"
)

// FileEntry represents one regular file relative to a reconciliation root.
//
// Identity is keyed solely on RelativePath: two entries from different roots
// that share a relative path describe "the same file" for set membership,
// regardless of size or content. Content only decides which bucket
// (identical/different) the path lands in.
type FileEntry struct {
	// RelativePath is the slash-separated path relative to the root
	RelativePath string

	// RootPath is the absolute path of the root this entry belongs to
	RootPath string

	// Size in bytes, as reported by the enumeration
	Size int64
}

// Name returns the final path segment of the entry
func (e *FileEntry) Name() string {
	return path.Base(e.RelativePath)
}

// FileSet is a collection of file entries keyed by relative path
type FileSet map[string]*FileEntry

// NewFileSet creates a file set from the given entries
func NewFileSet(entries ...*FileEntry) FileSet {
	s := make(FileSet, len(entries))
	for _, e := range entries {
		s[e.RelativePath] = e
	}
	return s
}

// Add inserts an entry, replacing any entry with the same relative path
func (s FileSet) Add(e *FileEntry) {
	s[e.RelativePath] = e
}

// Remove deletes the entry with the given relative path
func (s FileSet) Remove(relativePath string) {
	delete(s, relativePath)
}

// Contains reports whether the set holds an entry for the given path
func (s FileSet) Contains(relativePath string) bool {
	_, ok := s[relativePath]
	return ok
}

// Paths returns the relative paths in the set, sorted
func (s FileSet) Paths() []string {
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
