package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIndexVector(t *testing.T) {
	v := NewIndexVector(0, 0)
	require.Equal(t, 0, v.Len())
	require.Equal(t, defaultCapacity, v.Cap())
	v = NewIndexVector(4, 2) // capacity below length is raised to length
	require.Equal(t, 4, v.Len())
	require.Equal(t, 4, v.Cap())
}

func TestIndexVectorAppendGrowth(t *testing.T) {
	v := NewIndexVector(0, 2)
	for i := 0; i < 100; i++ {
		v.Append(uint64(i))
	}
	require.Equal(t, 100, v.Len())
	require.True(t, v.Cap() >= 100)
	for i := 0; i < 100; i++ {
		require.Equal(t, uint64(i), v.Get(i))
	}
}

func TestIndexVectorResize(t *testing.T) {
	v := NewIndexVector(0, 4)
	v.Append(1)
	v.Append(2)
	v.Append(3)
	v.Resize(2) // truncation drops trailing elements
	require.Equal(t, 2, v.Len())
	v.Resize(10) // growth beyond capacity zero-fills
	require.Equal(t, 10, v.Len())
	require.Equal(t, uint64(1), v.Get(0))
	require.Equal(t, uint64(2), v.Get(1))
	require.Equal(t, uint64(0), v.Get(9))
}

func TestIndexVectorAppendAll(t *testing.T) {
	a := NewIndexVector(0, 2)
	a.Append(1)
	a.Append(2)
	b := NewIndexVector(0, 2)
	b.Append(3)
	b.Append(4)
	a.AppendAll(b)
	require.Equal(t, 4, a.Len())
	require.Equal(t, []uint64{1, 2, 3, 4}, a.Data())
}

func TestIndexVectorClone(t *testing.T) {
	v := NewIndexVector(0, 2)
	v.Append(7)
	clone := v.Clone()
	v.Set(0, 8)
	require.Equal(t, uint64(7), clone.Get(0))
}

func TestIndexVectorRelease(t *testing.T) {
	v := NewIndexVector(4, 4)
	v.Release()
	require.Equal(t, 0, v.Len())
}

func TestValueVector(t *testing.T) {
	v := NewValueVector(0, 0)
	v.Append(1.5)
	v.Append(-2.5)
	require.Equal(t, 2, v.Len())
	require.Equal(t, 1.5, v.Get(0))
	v.Set(1, 3.5)
	require.Equal(t, 3.5, v.Get(1))
	v.Resize(4)
	v.Fill(9)
	require.Equal(t, []float64{9, 9, 9, 9}, v.Data())
	other := NewValueVector(0, 2)
	other.Append(1)
	v.AppendAll(other)
	require.Equal(t, 5, v.Len())
	require.Equal(t, 1.0, v.Get(4))
	clone := v.Clone()
	require.Equal(t, v.Data(), clone.Data())
	v.Release()
	require.Equal(t, 0, v.Len())
}
