package export

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
)

func TestExportLibraryXLSX(t *testing.T) {
	lib := entity.CableLibrary{Cables: []map[string]any{
		{
			"CableId":                "devicenet-2170345",
			"PartNumber":             "2170345",
			"Manufacturer":           "LAPP",
			"Name":                   "DeviceNet 2P + 1T 18 PVC",
			"SpecifiedOuterDiameter": 12.2,
			"JacketThickness":        1.5,
			"HasShield":              true,
			"ShieldCoverage":         85.0,
			"Description":            "2x18AWG + 2x15AWG, PVC jacket",
			"Cores": []any{
				map[string]any{"CoreId": "1", "Gauge": "22"},
				map[string]any{"CoreId": "2", "Gauge": "22"},
				map[string]any{"CoreId": "3", "Gauge": "18"},
			},
		},
		{
			"CableId":    "olflex-601101",
			"PartNumber": "601101",
			"HasShield":  false,
		},
	}}

	data, err := NewService(nil).ExportLibraryXLSX(lib)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Cables")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Cable ID", rows[0][0])
	assert.Equal(t, "Description", rows[0][10])

	assert.Equal(t, "devicenet-2170345", rows[1][0])
	assert.Equal(t, "3", rows[1][4])
	// Distinct gauges in first-seen order.
	assert.Equal(t, "22, 18", rows[1][5])
	assert.Equal(t, "yes", rows[1][8])
	assert.Equal(t, "85", rows[1][9])

	assert.Equal(t, "olflex-601101", rows[2][0])
	assert.Equal(t, "no", rows[2][8])
}

func TestExportEmptyLibrary(t *testing.T) {
	data, err := NewService(nil).ExportLibraryXLSX(entity.CableLibrary{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Cables")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 140))
	long := strings.Repeat("a", 200)
	got := truncate(long, 140)
	assert.Len(t, []rune(got), 140)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	long := strings.Repeat("Ö", 200) + "®"
	got := truncate(long, 140)
	assert.True(t, utf8.ValidString(got))
	assert.Len(t, []rune(got), 140)
	assert.True(t, strings.HasSuffix(got, "…"))

	// A string over the byte cap but under the rune cap stays whole.
	short := strings.Repeat("Ö", 100)
	assert.Equal(t, short, truncate(short, 140))
}
