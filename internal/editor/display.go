package editor

import (
	"github.com/ethanxxxl/steve/internal/engine/buffer"
	"github.com/ethanxxxl/steve/internal/theme"
)

// CursorGlyph marks the cursor in DisplayBuffer output.
const CursorGlyph = '█'

// Section is a run of text that shares one tag.
type Section struct {
	Text  string
	Tag   theme.Tag
	Style theme.Style
}

// DisplayBuffer returns a copy of the active buffer with CursorGlyph
// inserted at the cursor. The active buffer is not modified.
func (s *State) DisplayBuffer() *buffer.Buffer {
	out := s.active.Clone()
	c := out.ClampCursor()
	// The clamped column is always a valid insert index.
	_ = out.CurrentLine().Insert(c.Column, CursorGlyph)
	return out
}

// SectionText splits each line of b into runs of one tag, following the
// line's style spans. The CursorGlyph at b's cursor gets its own
// theme.Cursor run, styled over the text beneath it. Other CursorGlyph
// characters are ordinary text. Empty lines have no runs.
func (s *State) SectionText(b *buffer.Buffer) [][]Section {
	normal := s.theme.Style(theme.Normal)
	styleOf := func(tag theme.Tag) theme.Style {
		return normal.Merge(s.theme.Style(tag))
	}
	cur := b.Cursor()

	out := make([][]Section, b.LineCount())
	for i := range out {
		line, _ := b.Line(i + 1)
		text := line.Runes()
		tags := line.Tags()

		cursorAt := -1
		if cur.Line == i+1 && cur.Column < len(text) && text[cur.Column] == CursorGlyph {
			cursorAt = cur.Column
		}

		var runs []Section
		for start := 0; start < len(text); {
			tag := tags[start]
			if start == cursorAt {
				style := styleOf(tag).Merge(s.theme.Style(theme.Cursor))
				runs = append(runs, Section{Text: string(CursorGlyph), Tag: theme.Cursor, Style: style})
				start++
				continue
			}
			end := start + 1
			for end < len(text) && end != cursorAt && tags[end] == tag {
				end++
			}
			runs = append(runs, Section{Text: string(text[start:end]), Tag: tag, Style: styleOf(tag)})
			start = end
		}
		out[i] = runs
	}
	return out
}
