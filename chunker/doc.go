// Package chunker produces contiguous nonzero-ranges ("chunks") of a
// coordinate-sorted sparse tensor, one at a time, such that the yielded chunks
// tile the tensor's full nonzero set. Splitting is driven by a per-mode cut
// count request, with uneven trailing groups and under-filled cut counts
// tolerated silently. Enumeration is pull-based and resumable: state lives in
// the iterator, and each NextChunk call does only the work for one chunk.
package chunker
