package tensor

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/pierrec/lz4"

	"github.com/go-spt/spt"
)

// encode packs a Tensor into the transfer layout: a little-endian header
// (nmodes, sortKey, nnz, dims), then each mode's index sequence, then the
// value sequence.
func encode(t spt.Tensor) []byte {
	nmodes := t.NumModes()
	nnz := t.NumNonZeros()
	buf := make([]byte, 8*(3+nmodes+nmodes*nnz+nnz))
	pos := 0
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[pos:], v)
		pos += 8
	}
	put(uint64(nmodes))
	put(uint64(int64(t.SortKey())))
	put(uint64(nnz))
	for _, d := range t.Dims() {
		put(d)
	}
	for m := 0; m < nmodes; m++ {
		for i := 0; i < nnz; i++ {
			put(t.Index(m, i))
		}
	}
	for i := 0; i < nnz; i++ {
		put(math.Float64bits(t.Value(i)))
	}
	return buf
}

// ToBytes serializes a Tensor into the transfer layout understood by FromBytes
func ToBytes(t spt.Tensor) []byte {
	return encode(t)
}

// FromBytes deserializes a SparseTensor from the transfer layout produced by ToBytes
func FromBytes(buf []byte) (*SparseTensor, error) {
	if len(buf) < 24 {
		return nil, fmt.Errorf("Tensor data truncated: %d byte header", len(buf))
	}
	pos := 0
	next := func() uint64 {
		v := binary.LittleEndian.Uint64(buf[pos:])
		pos += 8
		return v
	}
	nmodes := int(next())
	sortKey := int(int64(next()))
	nnz := int(next())
	expected := 8 * (3 + nmodes + nmodes*nnz + nnz)
	if len(buf) != expected {
		return nil, fmt.Errorf("Tensor data is %d bytes. Expected %d for %d modes and %d nonzeros", len(buf), expected, nmodes, nnz)
	}
	dims := make([]uint64, nmodes)
	for m := range dims {
		dims[m] = next()
	}
	t := New(dims)
	for m := 0; m < nmodes; m++ {
		t.inds[m].Resize(nnz)
		for i := 0; i < nnz; i++ {
			t.inds[m].Set(i, next())
		}
	}
	t.values.Resize(nnz)
	for i := 0; i < nnz; i++ {
		t.values.Set(i, math.Float64frombits(next()))
	}
	t.sortKey = sortKey
	return t, nil
}

// LZ4TensorSerializer is a tensor serializer which uses the lz4 compression algorithm
type LZ4TensorSerializer struct {
	compressor         *lz4.Writer
	decompressor       *lz4.Reader
	reusableReadBuffer *bytes.Buffer
}

// NewLZ4TensorSerializer instantiates a new LZ4TensorSerializer
func NewLZ4TensorSerializer() spt.TensorSerializer {
	return &LZ4TensorSerializer{
		compressor:         lz4.NewWriter(new(bytes.Buffer)),
		decompressor:       lz4.NewReader(new(bytes.Buffer)),
		reusableReadBuffer: new(bytes.Buffer),
	}
}

// Compress serializes and compresses tensor data to a write stream
func (lz4ts *LZ4TensorSerializer) Compress(w io.Writer, t spt.Tensor) error {
	lz4ts.compressor.Reset(w)
	if _, err := lz4ts.compressor.Write(ToBytes(t)); err != nil {
		return err
	}
	return lz4ts.compressor.Close()
}

// Decompress decompresses and deserializes tensor data from a read stream
func (lz4ts *LZ4TensorSerializer) Decompress(r io.Reader) (spt.Tensor, error) {
	lz4ts.decompressor.Reset(r)
	lz4ts.reusableReadBuffer.Reset()
	if _, err := lz4ts.reusableReadBuffer.ReadFrom(lz4ts.decompressor); err != nil {
		return nil, err
	}
	return FromBytes(lz4ts.reusableReadBuffer.Bytes())
}
