package spt

// A Chunk is a contiguous range of a source Tensor's nonzeros, materialized as a
// standalone sub-tensor. A Chunk owns its own storage and remains valid after its
// source Tensor or ChunkIterator is released.
type Chunk interface {
	Tensor
	// ID retrieves the ID of this Chunk
	ID() string
	// SourceRange returns the half-open range of nonzero offsets this Chunk
	// occupied within its source Tensor
	SourceRange() (low int, high int)
}
