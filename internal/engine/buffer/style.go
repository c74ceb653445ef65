package buffer

import (
	"slices"
	"sort"

	"github.com/ethanxxxl/steve/internal/theme"
)

// Span starts a styled run. It lasts from Start up to the next span or the
// end of the line. Text before the first span is theme.Normal.
type Span struct {
	Start int
	Tag   theme.Tag
}

// Spans returns a copy of the line's spans, ordered by Start.
func (l *Line) Spans() []Span {
	if len(l.spans) == 0 {
		return nil
	}
	out := make([]Span, len(l.spans))
	copy(out, l.spans)
	return out
}

// TagAt returns the tag in effect at character index i. Index Len is where
// the next pushed character lands.
func (l *Line) TagAt(i int) theme.Tag {
	tag := theme.Normal
	for _, sp := range l.spans {
		if sp.Start > i {
			break
		}
		tag = sp.Tag
	}
	return tag
}

// Tags returns the tag of every character in the line.
func (l *Line) Tags() []theme.Tag {
	out := make([]theme.Tag, len(l.runes))
	tag, k := theme.Normal, 0
	for i := range out {
		for k < len(l.spans) && l.spans[k].Start <= i {
			tag = l.spans[k].Tag
			k++
		}
		out[i] = tag
	}
	return out
}

// SetStyle starts a run of tag at index i. i may equal Len, in which case
// the tag applies to characters pushed afterwards. Characters inserted at a
// span's start join that span.
func (l *Line) SetStyle(i int, tag theme.Tag) error {
	if i < 0 || i > len(l.runes) {
		return indexError("style", i, len(l.runes))
	}
	n := sort.Search(len(l.spans), func(j int) bool { return l.spans[j].Start >= i })
	if n < len(l.spans) && l.spans[n].Start == i {
		l.spans[n].Tag = tag
	} else {
		l.spans = slices.Insert(l.spans, n, Span{Start: i, Tag: tag})
	}
	l.normalizeSpans()
	l.edited = true
	return nil
}

// shiftSpans moves every span that starts after i by delta.
func (l *Line) shiftSpans(i, delta int) {
	for j := range l.spans {
		if l.spans[j].Start > i {
			l.spans[j].Start += delta
		}
	}
}

// normalizeSpans keeps spans ordered with unique starts in [0, Len]. Of two
// spans on the same start the later one wins. Spans that repeat the tag
// already in effect are dropped.
func (l *Line) normalizeSpans() {
	if len(l.spans) == 0 {
		return
	}
	sort.SliceStable(l.spans, func(a, b int) bool {
		return l.spans[a].Start < l.spans[b].Start
	})

	out := l.spans[:0]
	for _, sp := range l.spans {
		if sp.Start < 0 || sp.Start > len(l.runes) {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Start == sp.Start {
			out[n-1] = sp
			continue
		}
		out = append(out, sp)
	}

	kept := out[:0]
	prev := theme.Normal
	for _, sp := range out {
		if sp.Tag == prev {
			continue
		}
		kept = append(kept, sp)
		prev = sp.Tag
	}

	if len(kept) == 0 {
		l.spans = nil
		return
	}
	l.spans = kept
}

// SetStyle starts a run of tag at the cursor. Text typed there takes the
// tag until the next run begins.
func (b *Buffer) SetStyle(tag theme.Tag) {
	c := b.ClampCursor()
	// The clamped column is always in range.
	_ = b.current().SetStyle(c.Column, tag)
}

// StyleAtCursor returns the tag text typed at the cursor would get.
func (b *Buffer) StyleAtCursor() theme.Tag {
	c := b.ClampCursor()
	return b.current().TagAt(c.Column)
}
