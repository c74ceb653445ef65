package buffer

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates a character index past the end of a line,
// or a line number outside the buffer.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError describes a rejected index.
type IndexError struct {
	Op    string // Operation name (e.g., "insert", "remove", "cursor")
	Index int    // The rejected index
	Len   int    // Length of the line or buffer it was checked against
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("buffer: %s index %d out of range (len %d)", e.Op, e.Index, e.Len)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func indexError(op string, index, length int) error {
	return &IndexError{Op: op, Index: index, Len: length}
}
