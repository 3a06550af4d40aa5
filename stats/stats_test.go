package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-spt/spt/chunker"
	"github.com/go-spt/spt/tensor"
)

func TestRunStatistics(t *testing.T) {
	tsr, err := tensor.FromCOO([]uint64{4},
		[][]uint64{{0, 0, 1, 2, 3}},
		[]float64{1, 2, 3, 4, 5})
	require.Nil(t, err)
	tsr.Sort()
	it, err := chunker.Start(tsr, []int{2})
	require.Nil(t, err)
	defer it.Finish()
	s := CreateRunStatistics()
	require.Equal(t, 0, s.GetNumChunks())
	require.Equal(t, 0.0, s.GetMeanChunkSize())
	for it.HasNextChunk() {
		chunk, err := it.NextChunk()
		require.Nil(t, err)
		s.CollectChunk(chunk)
	}
	// distinct=4, step=2: chunks [0,3) and [3,5)
	require.Equal(t, 2, s.GetNumChunks())
	require.Equal(t, 5, s.GetNumNonZeros())
	require.Equal(t, 2, s.GetMinChunkSize())
	require.Equal(t, 3, s.GetMaxChunkSize())
	require.Equal(t, 2.5, s.GetMeanChunkSize())
	require.True(t, s.GetRuntime() >= 0)
	require.False(t, s.GetStartTime().IsZero())
}
