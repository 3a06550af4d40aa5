package chunker

import (
	"fmt"
	"log"
	"sync"

	uuid "github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/go-spt/spt"
	errors "github.com/go-spt/spt/errors"
	"github.com/go-spt/spt/logging"
	"github.com/go-spt/spt/tensor"
)

// rangeChunkIterator enumerates the leaves of the implicit nested partition tree
// over a coordinate-sorted tensor: mode 0 is split into cutsByMode[0] groups of
// contiguous distinct index values, each group is recursively split along mode 1,
// and so on to the last mode. Each leaf is a contiguous nonzero range, yielded as
// a materialized Chunk.
//
// partialLow/partialHigh form a stack pair holding the [low, high) range being
// subdivided at each depth, rooted at [0, nnz). indexStep caches each depth's
// realized group size so sibling groups of one subdivision share it.
type rangeChunkIterator struct {
	tsr          spt.Tensor
	cutsByMode   []int
	partialLow   []int
	partialHigh  []int
	indexStep    []int
	noMore       bool
	finished     bool
	lock         sync.Mutex
	endListeners []func()
}

// Start creates a ChunkIterator over a sorted tensor and a per-mode cut count
// request. The tensor must contain at least one nonzero and must be sorted
// lexicographically by mode order with its last mode as sort key; the iterator
// borrows the tensor until Finish and never mutates it. The realized number of
// groups along a mode may be fewer than requested, never more.
func Start(tsr spt.Tensor, cutsByMode []int) (spt.ChunkIterator, error) {
	if tsr.NumNonZeros() == 0 {
		return nil, errors.EmptyTensorError{}
	}
	nmodes := tsr.NumModes()
	if tsr.SortKey() != nmodes-1 {
		return nil, errors.WrongSortKeyError{SortKey: tsr.SortKey(), NumModes: nmodes}
	}
	if len(cutsByMode) != nmodes {
		return nil, errors.CutRequestLengthError{Len: len(cutsByMode), NumModes: nmodes}
	}
	var multierr *multierror.Error
	for m, cuts := range cutsByMode {
		if cuts < 1 {
			multierr = multierror.Append(multierr, errors.InvalidCutCountError{Mode: m, Cuts: cuts})
		}
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	ci := &rangeChunkIterator{
		tsr:          tsr,
		cutsByMode:   append([]int(nil), cutsByMode...),
		partialLow:   make([]int, 1, nmodes+1),
		partialHigh:  make([]int, 1, nmodes+1),
		indexStep:    make([]int, 0, nmodes),
		endListeners: []func(){},
	}
	ci.partialHigh[0] = tsr.NumNonZeros()
	return ci, nil
}

// OnEnd registers a listener which fires when this iterator runs out of Chunks
func (ci *rangeChunkIterator) OnEnd(onEnd func()) {
	ci.lock.Lock()
	defer ci.lock.Unlock()
	ci.endListeners = append(ci.endListeners, onEnd)
}

// HasNextChunk returns true iff this ChunkIterator can produce another Chunk
func (ci *rangeChunkIterator) HasNextChunk() bool {
	ci.lock.Lock()
	defer ci.lock.Unlock()
	return !ci.noMore && !ci.finished
}

// NextChunk returns the next Chunk if one is available, or errors.NoMoreChunksError.
// Once exhausted, every subsequent call reports exhaustion without side effects.
func (ci *rangeChunkIterator) NextChunk() (spt.Chunk, error) {
	ci.lock.Lock()
	defer ci.lock.Unlock()
	if ci.noMore || ci.finished {
		for _, l := range ci.endListeners {
			l()
		}
		ci.endListeners = []func(){}
		return nil, errors.NoMoreChunksError{}
	}
	nmodes := ci.tsr.NumModes()

	// Stage 1: descend from the current depth to a leaf, fixing the first
	// unexplored group at every remaining depth
	for mode := len(ci.partialLow) - 1; mode < nmodes; mode++ {
		low := ci.partialLow[mode]
		high := ci.partialHigh[mode]
		if low >= high {
			panic(fmt.Sprintf("chunker: empty range [%d,%d) at mode %d", low, high, mode))
		}
		distinct := ci.countDistinct(mode, low, high)
		step := (distinct-1)/ci.cutsByMode[mode] + 1
		ci.indexStep = append(ci.indexStep, step)
		end := ci.groupEnd(mode, low, high, step)
		logging.Logf(logging.TraceLevel, "descend mode=%d range=[%d,%d) distinct=%d step=%d group=[%d,%d)",
			mode, low, high, distinct, step, low, end)
		ci.partialLow = append(ci.partialLow, low)
		ci.partialHigh = append(ci.partialHigh, end)
	}

	// Stage 2: the top of the stack is a fully resolved leaf; copy it out
	chunk := ci.materialize(ci.partialLow[nmodes], ci.partialHigh[nmodes])

	// Stage 3: backtrack to the shallowest depth with an unconsumed sibling
	// range, reusing that depth's cached step. Deeper depths are re-established
	// by the next call's descent.
	for mode := nmodes - 1; mode >= 0; mode-- {
		low := ci.partialHigh[mode+1]
		high := ci.partialHigh[mode]
		if low >= high {
			logging.Logf(logging.TraceLevel, "backtrack mode=%d consumed", mode)
			ci.partialLow = ci.partialLow[:len(ci.partialLow)-1]
			ci.partialHigh = ci.partialHigh[:len(ci.partialHigh)-1]
			ci.indexStep = ci.indexStep[:len(ci.indexStep)-1]
			continue
		}
		end := ci.groupEnd(mode, low, high, ci.indexStep[mode])
		logging.Logf(logging.TraceLevel, "backtrack mode=%d next group=[%d,%d)", mode, low, end)
		ci.partialLow[mode+1] = low
		ci.partialHigh[mode+1] = end
		return chunk, nil
	}

	// No depth has a residual range left, so this chunk is the last one
	ci.noMore = true
	return chunk, nil
}

// Finish releases all iterator state, dropping the borrowed tensor reference.
// Idempotent, and valid whether or not the enumeration ran to exhaustion.
func (ci *rangeChunkIterator) Finish() {
	ci.lock.Lock()
	defer ci.lock.Unlock()
	ci.finished = true
	ci.tsr = nil
	ci.cutsByMode = nil
	ci.partialLow = nil
	ci.partialHigh = nil
	ci.indexStep = nil
	ci.endListeners = nil
}

// countDistinct counts maximal runs of equal consecutive values in
// inds[mode][low:high). The range is contiguous in the sort order, so equal
// index values always sit in runs.
func (ci *rangeChunkIterator) countDistinct(mode int, low int, high int) int {
	last := ci.tsr.Index(mode, low)
	distinct := 1
	for i := low + 1; i < high; i++ {
		if v := ci.tsr.Index(mode, i); v != last {
			distinct++
			last = v
		}
	}
	return distinct
}

// groupEnd scans forward from low and returns the end of the next group of at
// most step distinct index values along mode. Every group but possibly the last
// holds exactly step distinct values; the last absorbs the remainder.
func (ci *rangeChunkIterator) groupEnd(mode int, low int, high int, step int) int {
	last := ci.tsr.Index(mode, low)
	counted := 1
	i := low
	for ; i < high; i++ {
		if v := ci.tsr.Index(mode, i); v != last {
			last = v
			if counted == step {
				break
			}
			counted++
		}
	}
	return i
}

// materialize copies the leaf range [low, high) into a standalone chunk tensor
func (ci *rangeChunkIterator) materialize(low int, high int) spt.Chunk {
	id, err := uuid.NewV4()
	if err != nil {
		log.Fatalf("failed to generate UUID for Chunk: %v", err)
	}
	return &rangeChunk{
		SparseTensor: tensor.Slice(ci.tsr, low, high),
		id:           id.String(),
		low:          low,
		high:         high,
	}
}

var _ spt.ChunkIterator = (*rangeChunkIterator)(nil)
