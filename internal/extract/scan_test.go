package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DangerDawgAU/cable-datasheet-extractor/constants"
)

const m27500Sample = `
M27500 Cables—types SA and TA (M22759/7 and M22759/8)
Dimensions and Weight—2 Conductor Cables
22 19/34 0.115 (2.92) 0.150 (3.81) 8.1
20 19/32 0.130 (3.30) 0.165 (4.19) 10.5
Dimensions and Weight—4 Conductor Cables
22 19/34 0.170 (4.32) 0.205 (5.21) 15.0
`

func TestScanThreadsContextOntoDataRows(t *testing.T) {
	rows := ScanM27500(m27500Sample)

	// Two type codes fan each of the three data rows into two rows.
	require.Len(t, rows, 6)
	for _, r := range rows {
		assert.Equal(t, constants.FamilyM27500, r.Family)
		require.Len(t, r.Fields, 7)
	}

	// First data row under the 2-conductor header, fanned to both codes.
	assert.Equal(t, []string{"22", "19/34", "0.115 (2.92)", "0.150 (3.81)", "8.1", "2", "SA"}, rows[0].Fields)
	assert.Equal(t, "TA", rows[1].Fields[6])
	assert.Equal(t, "2", rows[1].Fields[5])

	// Conductor count switches at the next section header.
	assert.Equal(t, "4", rows[4].Fields[5])
	assert.Equal(t, "SA", rows[4].Fields[6])
	assert.Equal(t, "4", rows[5].Fields[5])
	assert.Equal(t, "TA", rows[5].Fields[6])
}

func TestScanDiscardsRowsBeforeContext(t *testing.T) {
	// Data rows with no preceding type-code line and count header carry no
	// meaning and are dropped.
	text := "22 19/34 0.115 (2.92) 0.150 (3.81) 8.1"
	assert.Empty(t, ScanM27500(text))

	// A count header alone is still not enough.
	text = "Dimensions and Weight—2 Conductor Cables\n22 19/34 0.115 (2.92) 0.150 (3.81) 8.1"
	assert.Empty(t, ScanM27500(text))
}

func TestScanCommaSeparatedTypeCodes(t *testing.T) {
	text := `
M27500 Cables—types TE, TF, TG (M22759/16, M22759/17, M22759/18)
Dimensions and Weight—3 Conductor Cables
24 19/36 0.125 (3.18) 0.160 (4.06) 9.9
`
	rows := ScanM27500(text)
	require.Len(t, rows, 3)
	assert.Equal(t, "TE", rows[0].Fields[6])
	assert.Equal(t, "TF", rows[1].Fields[6])
	assert.Equal(t, "TG", rows[2].Fields[6])
}

func TestParseTypeCodes(t *testing.T) {
	assert.Equal(t, []string{"SA", "TA"}, parseTypeCodes("SA and TA"))
	assert.Equal(t, []string{"TE", "TF", "TG"}, parseTypeCodes("TE, TF, TG"))
	assert.Equal(t, []string{"RC"}, parseTypeCodes("RC"))
}
