package buffer

import (
	"errors"
	"testing"
)

func TestLineInsertMultiByte(t *testing.T) {
	l := NewLine("héllo")
	if l.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", l.Len())
	}

	if err := l.Insert(2, 'ü'); err != nil {
		t.Fatalf("Insert error = %v", err)
	}
	if got := l.String(); got != "héüllo" {
		t.Errorf("String() = %q, want %q", got, "héüllo")
	}

	if err := l.InsertText(6, "→ok"); err != nil {
		t.Fatalf("InsertText error = %v", err)
	}
	if got := l.String(); got != "héüllo→ok" {
		t.Errorf("String() = %q, want %q", got, "héüllo→ok")
	}
}

func TestLineIndexOutOfRange(t *testing.T) {
	l := NewLine("abc")

	if err := l.Insert(4, 'x'); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Insert(4) error = %v, want ErrIndexOutOfRange", err)
	}
	if err := l.InsertText(-1, "x"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("InsertText(-1) error = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := l.Remove(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Remove(3) error = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := l.SplitOff(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("SplitOff(5) error = %v, want ErrIndexOutOfRange", err)
	}

	var ie *IndexError
	_, err := l.Remove(7)
	if !errors.As(err, &ie) {
		t.Fatalf("Remove(7) error = %T, want *IndexError", err)
	}
	if ie.Op != "remove" || ie.Index != 7 || ie.Len != 3 {
		t.Errorf("IndexError = %+v", ie)
	}

	if l.String() != "abc" {
		t.Errorf("failed operations changed the line to %q", l.String())
	}
	if l.Edited() {
		t.Error("failed operations should not set the edited flag")
	}
}

func TestLineEditedFlag(t *testing.T) {
	tests := []struct {
		name string
		op   func(l *Line)
	}{
		{"Insert", func(l *Line) { _ = l.Insert(0, 'x') }},
		{"InsertText", func(l *Line) { _ = l.InsertText(1, "yz") }},
		{"Push", func(l *Line) { l.Push('!') }},
		{"Pop", func(l *Line) { l.Pop() }},
		{"Remove", func(l *Line) { _, _ = l.Remove(0) }},
		{"SplitOff", func(l *Line) { _, _ = l.SplitOff(1) }},
		{"SetText", func(l *Line) { l.SetText("new") }},
		{"Append", func(l *Line) { l.Append(NewLine("more")) }},
	}

	for _, tt := range tests {
		l := NewLine("abc")
		if l.Edited() {
			t.Fatalf("%s: new line should not be edited", tt.name)
		}
		tt.op(l)
		if !l.Edited() {
			t.Errorf("%s should set the edited flag", tt.name)
		}
		l.ClearEdited()
		if l.Edited() {
			t.Errorf("%s: ClearEdited should reset the flag", tt.name)
		}
	}

	l := NewLine("abc")
	_ = l.String()
	_ = l.Runes()
	_, _ = l.At(1)
	_ = l.Len()
	if l.Edited() {
		t.Error("reads should not set the edited flag")
	}
}

func TestLinePushPop(t *testing.T) {
	l := NewLine("")
	if _, ok := l.Pop(); ok {
		t.Error("Pop on an empty line should report false")
	}
	if l.Edited() {
		t.Error("Pop on an empty line should not set the edited flag")
	}

	l.Push('a')
	l.Push('β')
	r, ok := l.Pop()
	if !ok || r != 'β' {
		t.Errorf("Pop() = %q, %v; want 'β', true", r, ok)
	}
	if l.String() != "a" {
		t.Errorf("String() = %q, want \"a\"", l.String())
	}
}

func TestLineRemove(t *testing.T) {
	l := NewLine("añb")
	r, err := l.Remove(1)
	if err != nil {
		t.Fatalf("Remove error = %v", err)
	}
	if r != 'ñ' {
		t.Errorf("Remove(1) = %q, want 'ñ'", r)
	}
	if l.String() != "ab" {
		t.Errorf("String() = %q, want \"ab\"", l.String())
	}
}

func TestLineSplitOff(t *testing.T) {
	tests := []struct {
		text      string
		at        int
		wantLeft  string
		wantRight string
	}{
		{"hello", 2, "he", "llo"},
		{"hello", 0, "", "hello"},
		{"hello", 5, "hello", ""},
		{"日本語", 1, "日", "本語"},
	}

	for _, tt := range tests {
		l := NewLine(tt.text)
		rest, err := l.SplitOff(tt.at)
		if err != nil {
			t.Errorf("SplitOff(%q, %d) error = %v", tt.text, tt.at, err)
			continue
		}
		if l.String() != tt.wantLeft || rest.String() != tt.wantRight {
			t.Errorf("SplitOff(%q, %d) = %q, %q; want %q, %q",
				tt.text, tt.at, l.String(), rest.String(), tt.wantLeft, tt.wantRight)
		}
		if l.String()+rest.String() != tt.text {
			t.Errorf("SplitOff(%q, %d) halves do not rejoin", tt.text, tt.at)
		}

		// Appending to the left half must not write into the right half.
		l.Push('X')
		if rest.String() != tt.wantRight {
			t.Errorf("SplitOff(%q, %d) halves share storage", tt.text, tt.at)
		}
	}
}

func TestLineClone(t *testing.T) {
	l := NewLine("abc")
	l.Push('d')
	c := l.Clone()
	c.Push('e')

	if l.String() != "abcd" {
		t.Errorf("original changed to %q", l.String())
	}
	if !c.Edited() {
		t.Error("clone should keep the edited flag")
	}
}
