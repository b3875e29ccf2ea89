package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
)

func writeLibrary(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileBareArray(t *testing.T) {
	path := writeLibrary(t, "bare.json",
		`[{"CableId":"cable-a","PartNumber":"PN","Type":4,"Cores":[{"CoreId":"1"}]}]`)

	cables, err := NewService(nil).LoadFile(path)
	require.NoError(t, err)
	require.Len(t, cables, 1)
	assert.Equal(t, "cable-a", cables[0]["CableId"])
}

func TestLoadFileWrappedLibrary(t *testing.T) {
	path := writeLibrary(t, "wrapped.json",
		`{"Cables":[{"CableId":"cable-a","PartNumber":"PN","Type":4,"Cores":[{"CoreId":"1"}]}]}`)

	cables, err := NewService(nil).LoadFile(path)
	require.NoError(t, err)
	require.Len(t, cables, 1)
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	path := writeLibrary(t, "bad.json", `[{"PartNumber":"no id"}]`)
	_, err := NewService(nil).LoadFile(path)
	assert.Error(t, err)
}

func TestMergeFilesEarlierFileWins(t *testing.T) {
	a := writeLibrary(t, "a.json",
		`[{"CableId":"cable-a","PartNumber":"PN-1","Type":4,"Cores":[{"CoreId":"1"}]}]`)
	b := writeLibrary(t, "b.json",
		`{"Cables":[`+
			`{"CableId":"cable-a","PartNumber":"PN-2","Type":4,"Cores":[{"CoreId":"1"}]},`+
			`{"CableId":"cable-b","PartNumber":"PN-3","Type":4,"Cores":[{"CoreId":"1"}]}]}`)

	lib, stats, err := NewService(nil).MergeFiles([]string{a, b})
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, 3, stats.Loaded)
	assert.Equal(t, 2, stats.Unique)
	assert.Equal(t, 1, stats.Duplicates)

	require.Len(t, lib.Cables, 2)
	assert.Equal(t, "PN-1", lib.Cables[0]["PartNumber"])
	assert.Equal(t, "cable-b", lib.Cables[1]["CableId"])
}

func TestMergeFilesSkipsBadInputs(t *testing.T) {
	broken := writeLibrary(t, "broken.json", `{not json`)
	good := writeLibrary(t, "good.json",
		`[{"CableId":"cable-a","PartNumber":"PN","Type":4,"Cores":[{"CoreId":"1"}]}]`)
	missing := filepath.Join(t.TempDir(), "nope.json")

	lib, stats, err := NewService(nil).MergeFiles([]string{broken, good, missing})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Files)
	assert.Equal(t, 2, stats.Failed)
	assert.Equal(t, 1, stats.Loaded)
	assert.Equal(t, 1, stats.Unique)

	require.Len(t, lib.Cables, 1)
	assert.Equal(t, "cable-a", lib.Cables[0]["CableId"])
}

func TestWriteFileRoundTrip(t *testing.T) {
	svc := NewService(nil)
	lib := entity.CableLibrary{Cables: []map[string]any{{
		"CableId":    "cable-a",
		"PartNumber": "PN",
		"Type":       4,
		"Cores":      []any{map[string]any{"CoreId": "1"}},
	}}}

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, svc.WriteFile(path, lib))

	cables, err := svc.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, cables, 1)
	assert.Equal(t, "cable-a", cables[0]["CableId"])
}
