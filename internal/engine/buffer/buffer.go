package buffer

import "strings"

// TabWidth is the number of spaces a tab character inserts.
const TabWidth = 3

// ID identifies a buffer. IDs are handed out by the owner of the buffer
// registry and are never reused.
type ID uint32

// Buffer is an ordered sequence of lines with a cursor.
type Buffer struct {
	id      ID
	path    string
	hasPath bool
	lines   []*Line
	cursor  Position
}

// New creates an empty buffer with the given id. The buffer holds a single
// empty line and the cursor sits at 1:0.
func New(id ID, opts ...Option) *Buffer {
	b := &Buffer{
		id:     id,
		lines:  []*Line{NewLine("")},
		cursor: Position{Line: 1, Column: 0},
	}

	for _, opt := range opts {
		opt(b)
	}

	if len(b.lines) == 0 {
		b.lines = []*Line{NewLine("")}
	}
	return b
}

// ID returns the buffer's identifier.
func (b *Buffer) ID() ID {
	return b.id
}

// Path returns the file path associated with the buffer, if any.
func (b *Buffer) Path() (string, bool) {
	return b.path, b.hasPath
}

// SetPath associates a file path with the buffer.
func (b *Buffer) SetPath(path string) {
	b.path = path
	b.hasPath = true
}

// Cursor returns the cursor position.
func (b *Buffer) Cursor() Position {
	return b.cursor
}

// SetCursor moves the cursor to p. The line must exist and the column must
// lie in [0, len(line)].
func (b *Buffer) SetCursor(p Position) error {
	if p.Line < 1 || p.Line > len(b.lines) {
		return indexError("cursor line", p.Line, len(b.lines))
	}
	if n := b.lines[p.Line-1].Len(); p.Column < 0 || p.Column > n {
		return indexError("cursor column", p.Column, n)
	}
	b.cursor = p
	return nil
}

// LineCount returns the number of lines. It is never less than one.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the line with the given 1-based number. Mutating it directly
// bypasses cursor bookkeeping; see ClampCursor.
func (b *Buffer) Line(n int) (*Line, error) {
	if n < 1 || n > len(b.lines) {
		return nil, indexError("line", n, len(b.lines))
	}
	return b.lines[n-1], nil
}

// CurrentLine returns the line under the cursor.
func (b *Buffer) CurrentLine() *Line {
	return b.current()
}

func (b *Buffer) current() *Line {
	return b.lines[b.cursor.Line-1]
}

// Lines returns the text of every line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = l.String()
	}
	return out
}

// Text returns the buffer content with lines joined by "\n".
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// EditedLines returns the 1-based numbers of lines changed since the last
// ClearEdited, in ascending order.
func (b *Buffer) EditedLines() []int {
	var out []int
	for i, l := range b.lines {
		if l.Edited() {
			out = append(out, i+1)
		}
	}
	return out
}

// ClearEdited resets the edited flag on every line.
func (b *Buffer) ClearEdited() {
	for _, l := range b.lines {
		l.ClearEdited()
	}
}

// Clone returns a deep copy of the buffer. The copy shares nothing with b.
func (b *Buffer) Clone() *Buffer {
	lines := make([]*Line, len(b.lines))
	for i, l := range b.lines {
		lines[i] = l.Clone()
	}
	return &Buffer{
		id:      b.id,
		path:    b.path,
		hasPath: b.hasPath,
		lines:   lines,
		cursor:  b.cursor,
	}
}
