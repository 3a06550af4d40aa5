package jsonl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-spt/spt/chunker"
	errors "github.com/go-spt/spt/errors"
)

func TestParseDefaults(t *testing.T) {
	data := `{"inds": [0, 1], "value": 1.5}
{"inds": [2, 0], "value": -2}
{"inds": [1, 2], "value": 3}`
	parser := CreateParser(&ParserConf{})
	tsr, err := parser.Parse(strings.NewReader(data), []uint64{3, 3})
	require.Nil(t, err)
	require.Equal(t, 3, tsr.NumNonZeros())
	require.Equal(t, uint64(2), tsr.Index(0, 1))
	require.Equal(t, uint64(2), tsr.Index(1, 2))
	require.Equal(t, -2.0, tsr.Value(1))
	require.Equal(t, -1, tsr.SortKey())
}

func TestParseConfiguredPaths(t *testing.T) {
	data := `# coordinate dump
{"coord": {"row": 4, "col": 7}, "entry": 0.25}`
	parser := CreateParser(&ParserConf{
		IndexPaths:  []string{"coord.row", "coord.col"},
		ValuePath:   "entry",
		HeaderLines: 1,
	})
	tsr, err := parser.Parse(strings.NewReader(data), []uint64{8, 8})
	require.Nil(t, err)
	require.Equal(t, 1, tsr.NumNonZeros())
	require.Equal(t, uint64(4), tsr.Index(0, 0))
	require.Equal(t, uint64(7), tsr.Index(1, 0))
	require.Equal(t, 0.25, tsr.Value(0))
}

func TestParseMissingField(t *testing.T) {
	parser := CreateParser(&ParserConf{})
	_, err := parser.Parse(strings.NewReader(`{"inds": [0]}`), []uint64{3})
	require.IsType(t, errors.MissingFieldError{}, err)
	_, err = parser.Parse(strings.NewReader(`{"value": 1}`), []uint64{3})
	require.IsType(t, errors.MissingFieldError{}, err)
}

func TestParsePathCountMismatch(t *testing.T) {
	parser := CreateParser(&ParserConf{IndexPaths: []string{"i"}})
	_, err := parser.Parse(strings.NewReader(""), []uint64{3, 3})
	require.IsType(t, errors.ModeCountError{}, err)
}

func TestParsedTensorIsChunkable(t *testing.T) {
	data := `{"inds": [1, 0], "value": 2}
{"inds": [0, 0], "value": 1}
{"inds": [1, 1], "value": 3}`
	parser := CreateParser(&ParserConf{})
	tsr, err := parser.Parse(strings.NewReader(data), []uint64{2, 2})
	require.Nil(t, err)
	tsr.Sort()
	it, err := chunker.Start(tsr, []int{2, 1})
	require.Nil(t, err)
	defer it.Finish()
	count := 0
	for it.HasNextChunk() {
		_, err := it.NextChunk()
		require.Nil(t, err)
		count++
	}
	require.Equal(t, 2, count)
}
