package errors

import (
	"fmt"
)

// EmptyTensorError occurs when a chunk enumeration is started over a Tensor with no stored nonzeros
type EmptyTensorError struct{}

// Error returns a textual representation of this EmptyTensorError
func (e EmptyTensorError) Error() string {
	return "Tensor contains no nonzeros"
}

// WrongSortKeyError occurs when a Tensor is not sorted with its last mode as primary key
type WrongSortKeyError struct {
	SortKey  int
	NumModes int
}

// Error returns a textual representation of this WrongSortKeyError
func (e WrongSortKeyError) Error() string {
	return fmt.Sprintf("Tensor sort key %d is not the last mode %d", e.SortKey, e.NumModes-1)
}

// CutRequestLengthError occurs when a cut request does not supply one cut count per mode
type CutRequestLengthError struct {
	Len      int
	NumModes int
}

// Error returns a textual representation of this CutRequestLengthError
func (e CutRequestLengthError) Error() string {
	return fmt.Sprintf("Cut request length %d does not match mode count %d", e.Len, e.NumModes)
}

// InvalidCutCountError occurs when the requested cut count for a mode is not positive
type InvalidCutCountError struct {
	Mode int
	Cuts int
}

// Error returns a textual representation of this InvalidCutCountError
func (e InvalidCutCountError) Error() string {
	return fmt.Sprintf("Cut count %d for mode %d is not positive", e.Cuts, e.Mode)
}

// ModeCountError occurs when coordinate data does not supply one entry per mode
type ModeCountError struct {
	Expected int
	Actual   int
}

// Error returns a textual representation of this ModeCountError
func (e ModeCountError) Error() string {
	return fmt.Sprintf("Expected coordinates for %d modes but got %d", e.Expected, e.Actual)
}

// LengthMismatchError occurs when per-mode index sequences and the value sequence disagree in length
type LengthMismatchError struct {
	Mode int
	Len  int
	NNZ  int
}

// Error returns a textual representation of this LengthMismatchError
func (e LengthMismatchError) Error() string {
	return fmt.Sprintf("Index sequence for mode %d has length %d but value sequence has length %d", e.Mode, e.Len, e.NNZ)
}

// MissingFieldError occurs when a JSONL record lacks a coordinate or value field
type MissingFieldError struct{ Path string }

// Error returns a textual representation of this MissingFieldError
func (e MissingFieldError) Error() string {
	return fmt.Sprintf("Record is missing field %s", e.Path)
}

// NoMoreChunksError occurs when there are no more chunks in a ChunkIterator
type NoMoreChunksError struct{}

// Error returns a textual representation of this NoMoreChunksError
func (e NoMoreChunksError) Error() string {
	return "No more chunks"
}
