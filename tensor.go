package spt

// A Tensor is a read-only view of a sparse multi-dimensional array stored in
// coordinate form: one index sequence per mode plus an aligned value sequence,
// one entry each per stored nonzero. Implementations must not be mutated while
// a ChunkIterator is borrowing them.
type Tensor interface {
	// NumModes returns the number of dimensions of this Tensor
	NumModes() int
	// Dims returns the extent of each mode. The returned slice must not be modified.
	Dims() []uint64
	// NumNonZeros returns the number of stored nonzeros
	NumNonZeros() int
	// SortKey returns the mode serving as the primary total order for the stored
	// nonzero sequence, or a negative value if the Tensor is unsorted
	SortKey() int
	// Index returns the coordinate of nonzero i along the given mode
	Index(mode int, i int) uint64
	// Value returns the scalar stored for nonzero i
	Value(i int) float64
}
