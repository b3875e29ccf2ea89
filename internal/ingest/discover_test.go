package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestDiscoverSources(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.pdf"))
	touch(t, filepath.Join(root, "a.TXT"))
	touch(t, filepath.Join(root, "notes.md"))
	touch(t, filepath.Join(root, "sub", "c.pdf"))
	touch(t, filepath.Join(root, ".hidden.pdf"))
	touch(t, filepath.Join(root, ".cache", "d.pdf"))

	files, stats, err := DiscoverSources(root)
	require.NoError(t, err)

	// Sorted paths, case-insensitive extension match, hidden entries skipped.
	assert.Equal(t, []string{
		filepath.Join(root, "a.TXT"),
		filepath.Join(root, "b.pdf"),
		filepath.Join(root, "sub", "c.pdf"),
	}, files)
	assert.Equal(t, uint32(4), stats.Scanned)
	assert.Equal(t, uint32(3), stats.Matched)
}

func TestDiscoverSourcesEmptyRoot(t *testing.T) {
	_, _, err := DiscoverSources("   ")
	assert.Error(t, err)
}

func TestDiscoverSourcesMissingRoot(t *testing.T) {
	_, _, err := DiscoverSources(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/tmp/.cache"))
	assert.True(t, IsHidden(".env"))
	assert.False(t, IsHidden("/tmp/data/file.pdf"))
}
