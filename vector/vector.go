package vector

import (
	"github.com/go-spt/spt"
)

const defaultCapacity = 2

// IndexVector is a growable, random-access sequence of uint64 coordinates.
// Appends reallocate with 1.5x amortized growth once capacity is exhausted.
type IndexVector struct {
	data []uint64
}

// NewIndexVector creates an IndexVector with the given logical length, reserving
// room for at least capacity elements
func NewIndexVector(length int, capacity int) *IndexVector {
	if capacity < length {
		capacity = length
	}
	if capacity < defaultCapacity {
		capacity = defaultCapacity
	}
	return &IndexVector{data: make([]uint64, length, capacity)}
}

// Len retrieves the logical length of this IndexVector
func (v *IndexVector) Len() int {
	return len(v.data)
}

// Cap retrieves the reserved capacity of this IndexVector
func (v *IndexVector) Cap() int {
	return cap(v.data)
}

// Get retrieves the element at position i
func (v *IndexVector) Get(i int) uint64 {
	return v.data[i]
}

// Set replaces the element at position i
func (v *IndexVector) Set(i int, val uint64) {
	v.data[i] = val
}

// Append adds an element to the end of this IndexVector, growing it if necessary
func (v *IndexVector) Append(val uint64) {
	if cap(v.data) <= len(v.data) {
		grown := make([]uint64, len(v.data), cap(v.data)+cap(v.data)/2)
		copy(grown, v.data)
		v.data = grown
	}
	v.data = append(v.data, val)
}

// AppendAll adds every element of other to the end of this IndexVector
func (v *IndexVector) AppendAll(other *IndexVector) {
	v.Resize(len(v.data) + len(other.data))
	copy(v.data[len(v.data)-len(other.data):], other.data)
}

// Resize sets the logical length of this IndexVector. Truncation drops trailing
// elements. Growth beyond capacity reallocates, zero-filling new elements.
func (v *IndexVector) Resize(n int) {
	if n <= cap(v.data) {
		v.data = v.data[:n]
		return
	}
	grown := make([]uint64, n)
	copy(grown, v.data)
	v.data = grown
}

// Data exposes the underlying storage of this IndexVector for bulk operations.
// The returned slice is invalidated by the next Append or Resize.
func (v *IndexVector) Data() []uint64 {
	return v.data
}

// Clone copies this IndexVector into a newly allocated one
func (v *IndexVector) Clone() *IndexVector {
	clone := NewIndexVector(len(v.data), len(v.data))
	copy(clone.data, v.data)
	return clone
}

// Release frees the underlying storage of this IndexVector
func (v *IndexVector) Release() {
	v.data = nil
}

// ValueVector is a growable, random-access sequence of float64 scalars, with
// the same growth semantics as IndexVector.
type ValueVector struct {
	data []float64
}

// NewValueVector creates a ValueVector with the given logical length, reserving
// room for at least capacity elements
func NewValueVector(length int, capacity int) *ValueVector {
	if capacity < length {
		capacity = length
	}
	if capacity < defaultCapacity {
		capacity = defaultCapacity
	}
	return &ValueVector{data: make([]float64, length, capacity)}
}

// Len retrieves the logical length of this ValueVector
func (v *ValueVector) Len() int {
	return len(v.data)
}

// Cap retrieves the reserved capacity of this ValueVector
func (v *ValueVector) Cap() int {
	return cap(v.data)
}

// Get retrieves the element at position i
func (v *ValueVector) Get(i int) float64 {
	return v.data[i]
}

// Set replaces the element at position i
func (v *ValueVector) Set(i int, val float64) {
	v.data[i] = val
}

// Append adds an element to the end of this ValueVector, growing it if necessary
func (v *ValueVector) Append(val float64) {
	if cap(v.data) <= len(v.data) {
		grown := make([]float64, len(v.data), cap(v.data)+cap(v.data)/2)
		copy(grown, v.data)
		v.data = grown
	}
	v.data = append(v.data, val)
}

// AppendAll adds every element of other to the end of this ValueVector
func (v *ValueVector) AppendAll(other *ValueVector) {
	v.Resize(len(v.data) + len(other.data))
	copy(v.data[len(v.data)-len(other.data):], other.data)
}

// Resize sets the logical length of this ValueVector. Truncation drops trailing
// elements. Growth beyond capacity reallocates, zero-filling new elements.
func (v *ValueVector) Resize(n int) {
	if n <= cap(v.data) {
		v.data = v.data[:n]
		return
	}
	grown := make([]float64, n)
	copy(grown, v.data)
	v.data = grown
}

// Data exposes the underlying storage of this ValueVector for bulk operations.
// The returned slice is invalidated by the next Append or Resize.
func (v *ValueVector) Data() []float64 {
	return v.data
}

// Clone copies this ValueVector into a newly allocated one
func (v *ValueVector) Clone() *ValueVector {
	clone := NewValueVector(len(v.data), len(v.data))
	copy(clone.data, v.data)
	return clone
}

// Fill overwrites every element of this ValueVector with a constant
func (v *ValueVector) Fill(val float64) {
	for i := range v.data {
		v.data[i] = val
	}
}

// Release frees the underlying storage of this ValueVector
func (v *ValueVector) Release() {
	v.data = nil
}

var _ spt.IndexBuffer = (*IndexVector)(nil)
var _ spt.ValueBuffer = (*ValueVector)(nil)
