package buffer

import "fmt"

// Position is a cursor location. Line is 1-based; Column is a 0-based
// character offset in [0, len(line)].
type Position struct {
	Line   int
	Column int
}

// String returns the "line:col" form used on the status line.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// MoveLeft moves the cursor n characters left, stopping at column 0.
func (b *Buffer) MoveLeft(n int) Position {
	b.cursor.Column = clamp(b.cursor.Column-n, 0, b.current().Len())
	return b.cursor
}

// MoveRight moves the cursor n characters right, stopping at line end.
func (b *Buffer) MoveRight(n int) Position {
	b.cursor.Column = clamp(b.cursor.Column+n, 0, b.current().Len())
	return b.cursor
}

// MoveUp moves the cursor n lines up, clamping the column to the new line.
func (b *Buffer) MoveUp(n int) Position {
	return b.moveToLine(b.cursor.Line - n)
}

// MoveDown moves the cursor n lines down, clamping the column to the new line.
func (b *Buffer) MoveDown(n int) Position {
	return b.moveToLine(b.cursor.Line + n)
}

// MoveLineStart moves the cursor to column 0.
func (b *Buffer) MoveLineStart() Position {
	b.cursor.Column = 0
	return b.cursor
}

// MoveLineEnd moves the cursor past the last character of the line.
func (b *Buffer) MoveLineEnd() Position {
	b.cursor.Column = b.current().Len()
	return b.cursor
}

func (b *Buffer) moveToLine(line int) Position {
	b.cursor.Line = clamp(line, 1, len(b.lines))
	b.cursor.Column = clamp(b.cursor.Column, 0, b.current().Len())
	return b.cursor
}

// ClampCursor pulls the cursor back inside the buffer. Call it after
// mutating a Line obtained from CurrentLine or Line directly.
func (b *Buffer) ClampCursor() Position {
	return b.moveToLine(b.cursor.Line)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
