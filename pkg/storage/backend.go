package storage

import (
	"context"
	"io"
	"time"
)

// FileInfo represents metadata about a file within a root
type FileInfo struct {
	Path         string
	RelativePath string
	Size         int64
	ModTime      time.Time
}

// Backend defines the interface for one reconciliation root.
// All paths are slash-separated and relative to the root.
// Implementations include the local filesystem; network shares would
// plug in here as well.
type Backend interface {
	// Root returns the absolute path of the root directory
	Root() string

	// List returns all regular files under the root, recursively.
	// Relative paths are unique within the root.
	List(ctx context.Context) ([]FileInfo, error)

	// Stat returns metadata for a single file
	Stat(ctx context.Context, relativePath string) (*FileInfo, error)

	// Read opens a file for reading
	Read(ctx context.Context, relativePath string) (io.ReadCloser, error)

	// Write creates or overwrites a file with the given content,
	// creating parent directories as needed
	Write(ctx context.Context, relativePath string, reader io.Reader, size int64) error

	// Move renames a file within the root, creating parent directories
	// of the new location as needed
	Move(ctx context.Context, oldRelativePath, newRelativePath string) error

	// Delete removes a file
	Delete(ctx context.Context, relativePath string) error

	// Exists checks if a file exists
	Exists(ctx context.Context, relativePath string) (bool, error)

	// Close releases any resources held by the backend
	Close() error
}
