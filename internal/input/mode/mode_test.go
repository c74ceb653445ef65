package mode

import (
	"errors"
	"testing"
)

func TestModeNames(t *testing.T) {
	tests := []struct {
		mode    Mode
		name    string
		display string
		cursor  CursorStyle
	}{
		{Normal, "normal", "NORMAL", CursorBlock},
		{Insert, "insert", "INSERT", CursorBar},
		{Visual, "visual", "VISUAL", CursorBlock},
		{Command, "command", "COMMAND", CursorUnderline},
	}

	for _, tt := range tests {
		if got := tt.mode.Name(); got != tt.name {
			t.Errorf("%d.Name() = %q, want %q", tt.mode, got, tt.name)
		}
		if got := tt.mode.String(); got != tt.display {
			t.Errorf("%d.String() = %q, want %q", tt.mode, got, tt.display)
		}
		if got := tt.mode.CursorStyle(); got != tt.cursor {
			t.Errorf("%d.CursorStyle() = %v, want %v", tt.mode, got, tt.cursor)
		}
	}
}

func TestParse(t *testing.T) {
	for _, m := range All() {
		got, err := Parse(m.Name())
		if err != nil || got != m {
			t.Errorf("Parse(%q) = %v, %v; want %v", m.Name(), got, err, m)
		}
		got, err = Parse(m.String())
		if err != nil || got != m {
			t.Errorf("Parse(%q) = %v, %v; want %v", m.String(), got, err, m)
		}
	}

	if got, _ := Parse(" i "); got != Insert {
		t.Errorf("Parse(\" i \") = %v, want INSERT", got)
	}
	if _, err := Parse("replace"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Parse(replace) error = %v, want ErrUnknownMode", err)
	}
}

func TestOnlyInsertFallsThrough(t *testing.T) {
	for _, m := range All() {
		if got := m.InsertsUnmatched(); got != (m == Insert) {
			t.Errorf("%v.InsertsUnmatched() = %v", m, got)
		}
	}
	if Count.Valid() {
		t.Error("Count should not be a valid mode")
	}
}
