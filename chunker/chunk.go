package chunker

import (
	"github.com/go-spt/spt"
	"github.com/go-spt/spt/tensor"
)

// rangeChunk is a materialized contiguous slice of a source tensor's nonzeros,
// tagged with its source offset range
type rangeChunk struct {
	*tensor.SparseTensor
	id   string
	low  int
	high int
}

// ID retrieves the ID of this Chunk
func (c *rangeChunk) ID() string {
	return c.id
}

// SourceRange returns the half-open range of nonzero offsets this Chunk occupied
// within its source tensor
func (c *rangeChunk) SourceRange() (int, int) {
	return c.low, c.high
}

var _ spt.Chunk = (*rangeChunk)(nil)
