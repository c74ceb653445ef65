// Package buffer provides the line-oriented text model of the editor.
//
// A Buffer is an ordered sequence of Lines (never fewer than one) plus a
// cursor and a unique ID. Lines hold Unicode scalar values, so every index
// taken or returned by this package is a character index, never a byte
// offset. Line breaks are implicit between consecutive Lines; no Line
// stores a newline character of its own.
//
// Cursor positions use a 1-based line number and a 0-based column in
// [0, len(line)]:
//
//	buf := buffer.New(1)
//	buf.InsertText("ab\ncd")
//	buf.Lines()  // ["ab", "cd"]
//	buf.Cursor() // {Line: 2, Column: 2}
//
// Out-of-range indexes are reported as errors matching ErrIndexOutOfRange.
// Cursor movement helpers clamp instead of failing.
//
// Neither Buffer nor Line is safe for concurrent use.
package buffer
