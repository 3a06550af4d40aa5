package spt

// ChunkIterator is a generalized interface for iterating over Chunks, regardless of where they come from
type ChunkIterator interface {
	HasNextChunk() bool
	// NextChunk returns the next Chunk if one is available, or errors.NoMoreChunksError
	NextChunk() (Chunk, error)
	// OnEnd registers a listener which fires when this iterator runs out of Chunks
	OnEnd(onEnd func())
	// Finish releases all iterator state. Idempotent.
	Finish()
}
