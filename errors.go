package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation is returned when storage for a buffer cannot be obtained:
	// the byte size overflows, exceeds the configured limit, or the runtime
	// refuses the request.
	ErrAllocation = errors.New("vector: allocation failed")
	// ErrNotCopyable is returned when a copy is requested for elements whose
	// lifecycle only permits moves.
	ErrNotCopyable = errors.New("vector: element type is not copyable")
)

// RelocationError reports the element whose Clone failed while copying
// elements into another buffer.
//
// The original Clone error can be accessed via errors.Unwrap.
type RelocationError struct {
	Index int
	cause error
}

func (e *RelocationError) Error() string {
	return fmt.Sprintf("vector: clone element %d: %v", e.Index, e.cause)
}

func (e *RelocationError) Unwrap() error { return e.cause }
