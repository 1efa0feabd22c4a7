package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider abstracts the filesystem operations the scan workflow
// needs: creating the output folder and reading it back to verify what the
// external tool produced. Implementations exist for the OS filesystem and
// for an in-memory filesystem used in tests.
type FileSystemProvider interface {
	// MkdirAll creates a directory, along with any necessary parents.
	// Already-existing directories are not an error.
	MkdirAll(path string, perm fs.FileMode) error

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)

	// Glob returns the names of all files inside dir matching pattern,
	// using path.Match syntax. A missing dir yields an empty result, not
	// an error: an output folder the tool never created simply has no
	// produced files.
	Glob(dir, pattern string) ([]string, error)

	// ReadDir reads the directory entries at the given path.
	ReadDir(path string) ([]FileInfo, error)
}
