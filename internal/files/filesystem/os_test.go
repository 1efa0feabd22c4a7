package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestOSFileSystem_GlobAndMkdirAll(t *testing.T) {
	osfs := NewOSFileSystem()
	dir := t.TempDir()
	out := filepath.Join(dir, "out")

	require.NoError(t, osfs.MkdirAll(filepath.Join(out, "deep"), 0755))

	writeTempFile(t, filepath.Join(out, "page_0001.png"))
	writeTempFile(t, filepath.Join(out, "page_0002.png"))
	writeTempFile(t, filepath.Join(out, "skip_0001.png"))

	names, err := osfs.Glob(out, "page*.png")
	require.NoError(t, err)
	assert.Equal(t, []string{"page_0001.png", "page_0002.png"}, names)
}

func TestOSFileSystem_GlobSkipsDirectories(t *testing.T) {
	osfs := NewOSFileSystem()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "page_sub.png"), 0755))
	writeTempFile(t, filepath.Join(dir, "page_0001.png"))

	names, err := osfs.Glob(dir, "page*.png")
	require.NoError(t, err)
	assert.Equal(t, []string{"page_0001.png"}, names)
}

func TestOSFileSystem_GlobMissingDir(t *testing.T) {
	osfs := NewOSFileSystem()
	names, err := osfs.Glob(filepath.Join(t.TempDir(), "nope"), "page*.png")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestOSFileSystem_ReadDirAndStat(t *testing.T) {
	osfs := NewOSFileSystem()
	dir := t.TempDir()
	writeTempFile(t, filepath.Join(dir, "a.png"))

	infos, err := osfs.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "a.png", infos[0].Name())

	info, err := osfs.Stat(filepath.Join(dir, "a.png"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), info.Size())
}
