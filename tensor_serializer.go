package spt

import "io"

// A TensorSerializer serializes and compresses tensor data (and the inverse)
type TensorSerializer interface {
	Compress(w io.Writer, t Tensor) error    // Compress serializes and compresses tensor data to a write stream
	Decompress(r io.Reader) (Tensor, error)  // Decompress decompresses and deserializes tensor data from a read stream
}
