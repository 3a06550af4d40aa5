package tensor

import (
	"sort"
)

// coordinateSorter orders nonzeros lexicographically by (inds[0][i], ..., inds[nmodes-1][i])
type coordinateSorter struct {
	t *SparseTensor
}

func (s coordinateSorter) Len() int {
	return s.t.NumNonZeros()
}

func (s coordinateSorter) Less(a, b int) bool {
	for m := 0; m < s.t.NumModes(); m++ {
		if s.t.inds[m].Get(a) != s.t.inds[m].Get(b) {
			return s.t.inds[m].Get(a) < s.t.inds[m].Get(b)
		}
	}
	return false
}

func (s coordinateSorter) Swap(a, b int) {
	for m := 0; m < s.t.NumModes(); m++ {
		av, bv := s.t.inds[m].Get(a), s.t.inds[m].Get(b)
		s.t.inds[m].Set(a, bv)
		s.t.inds[m].Set(b, av)
	}
	av, bv := s.t.values.Get(a), s.t.values.Get(b)
	s.t.values.Set(a, bv)
	s.t.values.Set(b, av)
}

// Sort orders this SparseTensor's nonzeros lexicographically by mode order and
// records the last mode as the sort key, which is the layout the chunker requires
func (t *SparseTensor) Sort() {
	sort.Sort(coordinateSorter{t})
	t.sortKey = t.NumModes() - 1
}

// IsSorted reports whether this SparseTensor's nonzeros are in lexicographic
// mode order
func (t *SparseTensor) IsSorted() bool {
	return sort.IsSorted(coordinateSorter{t})
}
