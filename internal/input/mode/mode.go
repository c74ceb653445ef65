package mode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode indicates a mode name could not be parsed.
var ErrUnknownMode = errors.New("unknown mode")

// Mode is an editing mode.
type Mode uint8

const (
	// Normal is the navigation and command mode.
	Normal Mode = iota

	// Insert types unmatched keys into the active buffer.
	Insert

	// Visual is reserved for selection commands.
	Visual

	// Command is reserved for the command line.
	Command

	// Count is the number of modes.
	Count
)

// All returns every mode in declaration order.
func All() []Mode {
	return []Mode{Normal, Insert, Visual, Command}
}

// Name returns the lower-case identifier used in keymaps and config.
func (m Mode) Name() string {
	switch m {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	case Visual:
		return "visual"
	case Command:
		return "command"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// String returns the status line form, e.g. "NORMAL".
func (m Mode) String() string {
	return strings.ToUpper(m.Name())
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m < Count
}

// InsertsUnmatched reports whether unmatched keys are typed as text.
func (m Mode) InsertsUnmatched() bool {
	return m == Insert
}

// CursorStyle returns the cursor shape for the mode.
func (m Mode) CursorStyle() CursorStyle {
	switch m {
	case Insert:
		return CursorBar
	case Command:
		return CursorUnderline
	default:
		return CursorBlock
	}
}

// Parse parses a mode name (case-insensitive). Short forms "n", "i", "v"
// and "c" are accepted.
func Parse(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "n":
		return Normal, nil
	case "insert", "i":
		return Insert, nil
	case "visual", "v":
		return Visual, nil
	case "command", "c":
		return Command, nil
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	default:
		return "unknown"
	}
}
