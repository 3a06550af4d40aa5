package spt

// An IndexBuffer is a growable, random-access sequence of fixed-width unsigned
// integers, used to hold per-mode coordinate data.
type IndexBuffer interface {
	Len() int
	Cap() int
	Get(i int) uint64
	Set(i int, val uint64)
	// Append grows the logical length by one, reallocating with amortized growth
	// if capacity is exhausted
	Append(val uint64)
	// Resize sets the logical length. Truncation drops trailing elements; growth
	// leaves new elements zero-filled.
	Resize(n int)
	// Release frees the underlying storage. The buffer must not be used afterward.
	Release()
}

// A ValueBuffer is a growable, random-access sequence of scalar values, used to
// hold nonzero value data. Semantics match IndexBuffer.
type ValueBuffer interface {
	Len() int
	Cap() int
	Get(i int) float64
	Set(i int, val float64)
	Append(val float64)
	Resize(n int)
	Release()
}
