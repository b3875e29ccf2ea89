package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelectionAll(t *testing.T) {
	for _, input := range []string{"", "all", "ALL", "*", "  all  "} {
		idx, err := ParseSelection(input, 3)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, []int{0, 1, 2}, idx, "input %q", input)
	}
}

func TestParseSelectionIndexList(t *testing.T) {
	idx, err := ParseSelection("1,3,5", 5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, idx)
}

func TestParseSelectionRange(t *testing.T) {
	idx, err := ParseSelection("2-4", 5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, idx)
}

func TestParseSelectionMixedAndDeduplicated(t *testing.T) {
	idx, err := ParseSelection("3, 1-2, 2", 5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, idx)
}

func TestParseSelectionErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		max   int
	}{
		{"out of range high", "4", 3},
		{"out of range zero", "0", 3},
		{"reversed range", "4-2", 5},
		{"not a number", "one", 3},
		{"bad range bound", "1-x", 3},
		{"only separators", ",,", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSelection(tc.input, tc.max)
			assert.Error(t, err)
		})
	}
}

func TestSelect(t *testing.T) {
	files := []string{"a.pdf", "b.pdf", "c.txt"}

	picked, err := Select(files, "1,3")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.pdf", "c.txt"}, picked)

	_, err = Select(files, "9")
	assert.Error(t, err)
}
