package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Paths are normalized to forward slashes (virtual filesystem convention).
type MemoryFileSystem struct {
	entries map[string]*memoryFileInfo // absolute path -> info
}

// NewMemoryFileSystem creates a new empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		entries: make(map[string]*memoryFileInfo),
	}
}

// AddFile adds a file of the given size to the in-memory filesystem,
// creating parent directory entries as needed.
func (mfs *MemoryFileSystem) AddFile(filePath string, size int64) {
	absPath := normalize(filePath)

	mfs.entries[absPath] = &memoryFileInfo{
		name:    path.Base(absPath),
		size:    size,
		mode:    0644,
		modTime: time.Now(),
		isDir:   false,
	}

	mfs.ensureDirectoriesExist(path.Dir(absPath))
}

func (mfs *MemoryFileSystem) ensureDirectoriesExist(dir string) {
	if dir == "." || dir == "/" || dir == "" {
		return
	}
	if _, exists := mfs.entries[dir]; exists {
		return
	}

	mfs.entries[dir] = &memoryFileInfo{
		name:    path.Base(dir),
		mode:    0755 | fs.ModeDir,
		modTime: time.Now(),
		isDir:   true,
	}

	mfs.ensureDirectoriesExist(path.Dir(dir))
}

func (mfs *MemoryFileSystem) MkdirAll(dirPath string, perm fs.FileMode) error {
	absPath := normalize(dirPath)

	if existing, exists := mfs.entries[absPath]; exists {
		if !existing.isDir {
			return fmt.Errorf("path exists and is not a directory: %s", dirPath)
		}
		return nil
	}

	mfs.entries[absPath] = &memoryFileInfo{
		name:    path.Base(absPath),
		mode:    perm | fs.ModeDir,
		modTime: time.Now(),
		isDir:   true,
	}
	mfs.ensureDirectoriesExist(path.Dir(absPath))
	return nil
}

func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := normalize(statPath)

	info, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("path not found: %s", statPath)
	}
	return info, nil
}

func (mfs *MemoryFileSystem) Glob(dir, pattern string) ([]string, error) {
	absDir := normalize(dir)

	var names []string
	for entryPath, info := range mfs.entries {
		if info.isDir || path.Dir(entryPath) != absDir {
			continue
		}
		matched, err := path.Match(pattern, info.name)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if matched {
			names = append(names, info.name)
		}
	}

	sort.Strings(names)
	return names, nil
}

func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	absDir := normalize(dirPath)

	dirInfo, exists := mfs.entries[absDir]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s", dirPath)
	}
	if !dirInfo.isDir {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	var result []FileInfo
	for entryPath, info := range mfs.entries {
		if entryPath != absDir && path.Dir(entryPath) == absDir {
			result = append(result, info)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result, nil
}

// normalize converts a path to the virtual filesystem's canonical form:
// forward slashes, cleaned, and without a trailing slash.
func normalize(p string) string {
	p = filepath.ToSlash(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// Compile-time interface check.
var _ FileSystemProvider = (*MemoryFileSystem)(nil)
