package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_GlobMatchesPrefixAndExtension(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("scans/page_0001.png", 1024)
	mfs.AddFile("scans/page_0002.png", 2048)
	mfs.AddFile("scans/other_0001.png", 512)
	mfs.AddFile("scans/page_0001.jpg", 512)
	mfs.AddFile("elsewhere/page_0003.png", 512)

	names, err := mfs.Glob("scans", "page*.png")
	require.NoError(t, err)
	assert.Equal(t, []string{"page_0001.png", "page_0002.png"}, names)
}

func TestMemoryFileSystem_GlobEmptyDir(t *testing.T) {
	mfs := NewMemoryFileSystem()
	names, err := mfs.Glob("missing", "page*.png")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestMemoryFileSystem_GlobIgnoresDirectories(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("scans/page_backup/inner.png", 10)
	require.NoError(t, mfs.MkdirAll("scans/page_dir.png", 0755))

	names, err := mfs.Glob("scans", "page*")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestMemoryFileSystem_MkdirAll(t *testing.T) {
	mfs := NewMemoryFileSystem()
	require.NoError(t, mfs.MkdirAll("a/b/c", 0755))

	info, err := mfs.Stat("a/b/c")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = mfs.Stat("a/b")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent on existing directories.
	require.NoError(t, mfs.MkdirAll("a/b/c", 0755))
}

func TestMemoryFileSystem_MkdirAllOverFile(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("a/b", 1)
	assert.Error(t, mfs.MkdirAll("a/b", 0755))
}

func TestMemoryFileSystem_StatFile(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("scans/page_0001.png", 4096)

	info, err := mfs.Stat("scans/page_0001.png")
	require.NoError(t, err)
	assert.Equal(t, "page_0001.png", info.Name())
	assert.Equal(t, int64(4096), info.Size())
	assert.False(t, info.IsDir())

	_, err = mfs.Stat("scans/nope.png")
	assert.Error(t, err)
}

func TestMemoryFileSystem_ReadDir(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("scans/b.png", 1)
	mfs.AddFile("scans/a.png", 1)
	mfs.AddFile("scans/nested/c.png", 1)

	infos, err := mfs.ReadDir("scans")
	require.NoError(t, err)
	require.Len(t, infos, 3) // a.png, b.png, nested/
	assert.Equal(t, "a.png", infos[0].Name())
	assert.Equal(t, "b.png", infos[1].Name())
	assert.Equal(t, "nested", infos[2].Name())
}
