// Package app assembles the editor from its configuration and runs it.
package app

import (
	"errors"
	"fmt"
)

// ErrClosed is returned when using an App after Close.
var ErrClosed = errors.New("app closed")

// InitError reports a component that failed to start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("failed to initialize %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
