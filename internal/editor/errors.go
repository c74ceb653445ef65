package editor

import (
	"errors"
	"fmt"

	"github.com/ethanxxxl/steve/internal/engine/buffer"
)

// ErrBufferNotFound indicates a buffer id is not in the registry.
var ErrBufferNotFound = errors.New("buffer not found")

// BufferNotFoundError reports the id that could not be found.
type BufferNotFoundError struct {
	ID buffer.ID
}

func (e *BufferNotFoundError) Error() string {
	return fmt.Sprintf("buffer with id %d does not exist", e.ID)
}

func (e *BufferNotFoundError) Unwrap() error {
	return ErrBufferNotFound
}
