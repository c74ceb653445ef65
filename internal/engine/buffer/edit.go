package buffer

import "strings"

// InsertAtCursor applies one typed character at the cursor.
//
//   - '\n' or '\r' splits the line at the cursor; the cursor moves to the
//     start of the new line.
//   - '\x08' (backspace) deletes backwards. On an empty line other than the
//     first it removes the line and moves to the end of the previous one;
//     at column 0 of a non-empty line it joins the line onto the previous
//     one; at the very start of the buffer it does nothing.
//   - '\t' inserts TabWidth spaces at the cursor.
//   - Anything else is inserted at the cursor.
func (b *Buffer) InsertAtCursor(r rune) {
	b.ClampCursor()

	switch r {
	case '\n', '\r':
		b.splitAtCursor()
	case '\x08':
		b.backspace()
	case '\t':
		_ = b.current().InsertText(b.cursor.Column, strings.Repeat(" ", TabWidth))
		b.cursor.Column += TabWidth
	default:
		_ = b.current().Insert(b.cursor.Column, r)
		b.cursor.Column++
	}
}

// InsertText applies each character of s through InsertAtCursor.
func (b *Buffer) InsertText(s string) {
	for _, r := range s {
		b.InsertAtCursor(r)
	}
}

func (b *Buffer) splitAtCursor() {
	rest, _ := b.current().SplitOff(b.cursor.Column)
	b.insertLine(b.cursor.Line, rest)
	b.cursor = Position{Line: b.cursor.Line + 1, Column: 0}
}

func (b *Buffer) backspace() {
	cur := b.current()
	idx := b.cursor.Line - 1

	switch {
	case cur.IsEmpty() && idx > 0:
		b.removeLine(idx)
		b.cursor.Line--
		b.cursor.Column = b.current().Len()

	case cur.IsEmpty():
		// Start of the buffer.

	case b.cursor.Column > 0:
		_, _ = cur.Remove(b.cursor.Column - 1)
		b.cursor.Column--

	case idx > 0:
		prev := b.lines[idx-1]
		col := prev.Len()
		prev.Append(cur)
		b.removeLine(idx)
		b.cursor = Position{Line: b.cursor.Line - 1, Column: col}
	}
}

// DeleteAtCursor removes and returns the character under the cursor.
// At the end of a line it fails with ErrIndexOutOfRange.
func (b *Buffer) DeleteAtCursor() (rune, error) {
	return b.current().Remove(b.cursor.Column)
}

// InsertLineAbove inserts l before the current line. The cursor stays on
// the same text, which is now one line further down.
func (b *Buffer) InsertLineAbove(l *Line) {
	b.insertLine(b.cursor.Line-1, l)
	b.cursor.Line++
}

// InsertLineBelow inserts l after the current line. The cursor does not move.
func (b *Buffer) InsertLineBelow(l *Line) {
	b.insertLine(b.cursor.Line, l)
}

// DeleteLine removes the current line and returns its text. Deleting the
// only line leaves a single empty line. The cursor keeps its line number
// where possible and its column is clamped.
func (b *Buffer) DeleteLine() string {
	idx := b.cursor.Line - 1
	text := b.lines[idx].String()

	if len(b.lines) == 1 {
		b.lines[0].SetText("")
		b.cursor.Column = 0
		return text
	}

	b.removeLine(idx)
	b.moveToLine(b.cursor.Line)
	return text
}

// insertLine inserts l at 0-based index idx.
func (b *Buffer) insertLine(idx int, l *Line) {
	if l == nil {
		l = NewLine("")
	}
	b.lines = append(b.lines, nil)
	copy(b.lines[idx+1:], b.lines[idx:])
	b.lines[idx] = l
}

// removeLine removes the line at 0-based index idx. Callers keep at least
// one line in the buffer.
func (b *Buffer) removeLine(idx int) {
	copy(b.lines[idx:], b.lines[idx+1:])
	b.lines[len(b.lines)-1] = nil
	b.lines = b.lines[:len(b.lines)-1]
}
