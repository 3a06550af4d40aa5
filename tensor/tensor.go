package tensor

import (
	xxhash "github.com/cespare/xxhash/v2"

	"github.com/go-spt/spt"
	errors "github.com/go-spt/spt/errors"
	"github.com/go-spt/spt/vector"
)

// SparseTensor stores a sparse multi-dimensional array in coordinate form: one
// IndexVector per mode plus an aligned ValueVector, one entry each per stored
// nonzero. A freshly built SparseTensor is unsorted (SortKey reports -1) until
// Sort establishes the lexicographic nonzero order.
type SparseTensor struct {
	dims    []uint64
	inds    []*vector.IndexVector
	values  *vector.ValueVector
	sortKey int
}

// New creates an empty SparseTensor with the given mode extents
func New(dims []uint64) *SparseTensor {
	inds := make([]*vector.IndexVector, len(dims))
	for m := range inds {
		inds[m] = vector.NewIndexVector(0, 0)
	}
	return &SparseTensor{
		dims:    append([]uint64(nil), dims...),
		inds:    inds,
		values:  vector.NewValueVector(0, 0),
		sortKey: -1,
	}
}

// FromCOO creates a SparseTensor from per-mode coordinate slices and an aligned
// value slice. inds[mode][i] is the coordinate of nonzero i along mode.
func FromCOO(dims []uint64, inds [][]uint64, values []float64) (*SparseTensor, error) {
	if len(inds) != len(dims) {
		return nil, errors.ModeCountError{Expected: len(dims), Actual: len(inds)}
	}
	for m := range inds {
		if len(inds[m]) != len(values) {
			return nil, errors.LengthMismatchError{Mode: m, Len: len(inds[m]), NNZ: len(values)}
		}
	}
	t := New(dims)
	for m := range inds {
		t.inds[m].Resize(len(inds[m]))
		copy(t.inds[m].Data(), inds[m])
	}
	t.values.Resize(len(values))
	copy(t.values.Data(), values)
	return t, nil
}

// NumModes returns the number of dimensions of this SparseTensor
func (t *SparseTensor) NumModes() int {
	return len(t.dims)
}

// Dims returns the extent of each mode. The returned slice must not be modified.
func (t *SparseTensor) Dims() []uint64 {
	return t.dims
}

// NumNonZeros returns the number of stored nonzeros
func (t *SparseTensor) NumNonZeros() int {
	return t.values.Len()
}

// SortKey returns the mode serving as the primary total order for the stored
// nonzero sequence, or -1 if this SparseTensor is unsorted
func (t *SparseTensor) SortKey() int {
	return t.sortKey
}

// Index returns the coordinate of nonzero i along the given mode
func (t *SparseTensor) Index(mode int, i int) uint64 {
	return t.inds[mode].Get(i)
}

// Value returns the scalar stored for nonzero i
func (t *SparseTensor) Value(i int) float64 {
	return t.values.Get(i)
}

// Append adds one nonzero to the end of this SparseTensor. Appending clears the
// sort key, since the new entry need not extend the existing order.
func (t *SparseTensor) Append(coords []uint64, value float64) error {
	if len(coords) != len(t.dims) {
		return errors.ModeCountError{Expected: len(t.dims), Actual: len(coords)}
	}
	for m, c := range coords {
		t.inds[m].Append(c)
	}
	t.values.Append(value)
	t.sortKey = -1
	return nil
}

// MaxIndex returns the largest coordinate stored along the given mode
func (t *SparseTensor) MaxIndex(mode int) uint64 {
	data := t.inds[mode].Data()
	max := data[0]
	for _, v := range data[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Fingerprint computes a 64-bit digest over this SparseTensor's shape, index and
// value data. Two tensors with identical contents produce identical fingerprints.
func (t *SparseTensor) Fingerprint() uint64 {
	hasher := xxhash.New()
	hasher.Write(encode(t))
	return hasher.Sum64()
}

// Release frees the index and value storage of this SparseTensor
func (t *SparseTensor) Release() {
	for m := range t.inds {
		t.inds[m].Release()
	}
	t.values.Release()
	t.inds = nil
	t.dims = nil
}

// Slice copies the nonzeros in the half-open range [low, high) of src into a new
// standalone SparseTensor with the same shape metadata. A contiguous slice of a
// sorted sequence is itself sorted, so the result keeps the source's sort key.
func Slice(src spt.Tensor, low int, high int) *SparseTensor {
	nmodes := src.NumModes()
	dest := &SparseTensor{
		dims:    append([]uint64(nil), src.Dims()...),
		inds:    make([]*vector.IndexVector, nmodes),
		values:  vector.NewValueVector(0, high-low),
		sortKey: src.SortKey(),
	}
	for m := 0; m < nmodes; m++ {
		dest.inds[m] = vector.NewIndexVector(0, high-low)
		for i := low; i < high; i++ {
			dest.inds[m].Append(src.Index(m, i))
		}
	}
	for i := low; i < high; i++ {
		dest.values.Append(src.Value(i))
	}
	return dest
}

var _ spt.Tensor = (*SparseTensor)(nil)
