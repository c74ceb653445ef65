package buffer

import "strings"

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithPath associates a file path with the buffer.
func WithPath(path string) Option {
	return func(b *Buffer) {
		b.path = path
		b.hasPath = true
	}
}

// WithText sets the initial content. "\r\n" and "\r" are treated as line
// breaks. The cursor stays at the start of the buffer.
func WithText(text string) Option {
	return func(b *Buffer) {
		text = strings.ReplaceAll(text, "\r\n", "\n")
		text = strings.ReplaceAll(text, "\r", "\n")
		parts := strings.Split(text, "\n")
		b.lines = make([]*Line, len(parts))
		for i, p := range parts {
			b.lines[i] = NewLine(p)
		}
	}
}
