package stats

import (
	"time"

	"github.com/go-spt/spt"
)

// RunStatistics accumulates facts about one chunk enumeration: how many chunks
// were yielded, how many nonzeros they covered, and how chunk sizes distributed.
// Feed it every Chunk via CollectChunk as the enumeration is driven.
type RunStatistics struct {
	startTime    time.Time
	numChunks    int
	numNonZeros  int
	minChunkSize int
	maxChunkSize int
}

// CreateRunStatistics starts a new statistics collection, stamping the start time
func CreateRunStatistics() *RunStatistics {
	return &RunStatistics{startTime: time.Now()}
}

// CollectChunk records one yielded Chunk
func (s *RunStatistics) CollectChunk(c spt.Chunk) {
	nnz := c.NumNonZeros()
	if s.numChunks == 0 || nnz < s.minChunkSize {
		s.minChunkSize = nnz
	}
	if nnz > s.maxChunkSize {
		s.maxChunkSize = nnz
	}
	s.numChunks++
	s.numNonZeros += nnz
}

// GetStartTime returns the time at which collection started
func (s *RunStatistics) GetStartTime() time.Time {
	return s.startTime
}

// GetRuntime returns the time elapsed since collection started
func (s *RunStatistics) GetRuntime() time.Duration {
	return time.Since(s.startTime)
}

// GetNumChunks returns the number of Chunks collected so far
func (s *RunStatistics) GetNumChunks() int {
	return s.numChunks
}

// GetNumNonZeros returns the total number of nonzeros covered by collected Chunks
func (s *RunStatistics) GetNumNonZeros() int {
	return s.numNonZeros
}

// GetMinChunkSize returns the smallest collected Chunk's nonzero count
func (s *RunStatistics) GetMinChunkSize() int {
	return s.minChunkSize
}

// GetMaxChunkSize returns the largest collected Chunk's nonzero count
func (s *RunStatistics) GetMaxChunkSize() int {
	return s.maxChunkSize
}

// GetMeanChunkSize returns the mean nonzero count across collected Chunks
func (s *RunStatistics) GetMeanChunkSize() float64 {
	if s.numChunks == 0 {
		return 0
	}
	return float64(s.numNonZeros) / float64(s.numChunks)
}
