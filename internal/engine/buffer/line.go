package buffer

// Line is a single line of text addressed by character index, with style
// spans over it. Every mutation sets the edited flag; reads never do.
type Line struct {
	runes  []rune
	spans  []Span
	edited bool
}

// NewLine creates a line holding s. The new line is not marked edited.
func NewLine(s string) *Line {
	return &Line{runes: []rune(s)}
}

// Len returns the number of characters in the line.
func (l *Line) Len() int {
	return len(l.runes)
}

// IsEmpty returns true if the line has no characters.
func (l *Line) IsEmpty() bool {
	return len(l.runes) == 0
}

// String returns the line's text.
func (l *Line) String() string {
	return string(l.runes)
}

// Runes returns a copy of the line's characters.
func (l *Line) Runes() []rune {
	out := make([]rune, len(l.runes))
	copy(out, l.runes)
	return out
}

// At returns the character at index i.
func (l *Line) At(i int) (rune, error) {
	if i < 0 || i >= len(l.runes) {
		return 0, indexError("read", i, len(l.runes))
	}
	return l.runes[i], nil
}

// Edited reports whether the line changed since the last ClearEdited.
func (l *Line) Edited() bool {
	return l.edited
}

// ClearEdited resets the edited flag.
func (l *Line) ClearEdited() {
	l.edited = false
}

// Insert inserts r before character index i. i may equal Len.
func (l *Line) Insert(i int, r rune) error {
	if i < 0 || i > len(l.runes) {
		return indexError("insert", i, len(l.runes))
	}
	l.runes = append(l.runes, 0)
	copy(l.runes[i+1:], l.runes[i:])
	l.runes[i] = r
	l.shiftSpans(i, 1)
	l.edited = true
	return nil
}

// InsertText inserts s before character index i.
func (l *Line) InsertText(i int, s string) error {
	if i < 0 || i > len(l.runes) {
		return indexError("insert", i, len(l.runes))
	}
	if s == "" {
		return nil
	}
	ins := []rune(s)
	out := make([]rune, 0, len(l.runes)+len(ins))
	out = append(out, l.runes[:i]...)
	out = append(out, ins...)
	out = append(out, l.runes[i:]...)
	l.runes = out
	l.shiftSpans(i, len(ins))
	l.edited = true
	return nil
}

// Push appends r to the end of the line.
func (l *Line) Push(r rune) {
	l.runes = append(l.runes, r)
	l.edited = true
}

// Pop removes and returns the last character.
// Returns false if the line is empty.
func (l *Line) Pop() (rune, bool) {
	if len(l.runes) == 0 {
		return 0, false
	}
	r, _ := l.Remove(len(l.runes) - 1)
	return r, true
}

// Remove deletes and returns the character at index i.
func (l *Line) Remove(i int) (rune, error) {
	if i < 0 || i >= len(l.runes) {
		return 0, indexError("remove", i, len(l.runes))
	}
	r := l.runes[i]
	l.runes = append(l.runes[:i], l.runes[i+1:]...)
	l.shiftSpans(i, -1)
	l.normalizeSpans()
	l.edited = true
	return r, nil
}

// SplitOff truncates the line at index i and returns the remainder as a
// new Line. The remainder keeps its styles. Both lines are marked edited.
func (l *Line) SplitOff(i int) (*Line, error) {
	if i < 0 || i > len(l.runes) {
		return nil, indexError("split", i, len(l.runes))
	}
	rest := &Line{runes: make([]rune, len(l.runes)-i), edited: true}
	copy(rest.runes, l.runes[i:])

	rest.spans = []Span{{Start: 0, Tag: l.TagAt(i)}}
	var kept []Span
	for _, sp := range l.spans {
		switch {
		case sp.Start < i:
			kept = append(kept, sp)
		case sp.Start > i:
			rest.spans = append(rest.spans, Span{Start: sp.Start - i, Tag: sp.Tag})
		}
	}
	rest.normalizeSpans()

	l.runes = l.runes[:i:i]
	l.spans = kept
	l.normalizeSpans()
	l.edited = true
	return rest, nil
}

// Append joins other onto the end of l. other is left unchanged and its
// text keeps its styles.
func (l *Line) Append(other *Line) {
	if other == nil || len(other.runes) == 0 {
		return
	}
	n := len(l.runes)
	kept := l.spans[:0]
	for _, sp := range l.spans {
		if sp.Start < n {
			kept = append(kept, sp)
		}
	}
	l.spans = append(kept, Span{Start: n, Tag: other.TagAt(0)})
	for _, sp := range other.spans {
		if sp.Start > 0 {
			l.spans = append(l.spans, Span{Start: sp.Start + n, Tag: sp.Tag})
		}
	}

	l.runes = append(l.runes, other.runes...)
	l.normalizeSpans()
	l.edited = true
}

// SetText replaces the line's content and clears its styles.
func (l *Line) SetText(s string) {
	l.runes = []rune(s)
	l.spans = nil
	l.edited = true
}

// Clone returns a deep copy, including styles and the edited flag.
func (l *Line) Clone() *Line {
	return &Line{runes: l.Runes(), spans: l.Spans(), edited: l.edited}
}
