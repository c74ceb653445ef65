package command

import (
	"errors"
	"testing"

	"github.com/ethanxxxl/steve/internal/input/mode"
	"github.com/ethanxxxl/steve/internal/theme"
)

func TestCommandName(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{SetMode(mode.Insert), "mode.insert"},
		{SetMode(mode.Normal), "mode.normal"},
		{InsertChar('x'), "editor.insertChar"},
		{ChangeBuffer(3), "buffer.switch"},
		{SetStyle(theme.Bold), "style.set"},
		{Simple(KindMoveLeft), "cursor.left"},
		{Simple(KindOpenBelow), "mode.openBelow"},
		{Command{Kind: Kind(200)}, "command(200)"},
	}

	for _, tt := range tests {
		if got := tt.cmd.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want Command
	}{
		{"mode.insert", nil, SetMode(mode.Insert)},
		{"mode.visual", nil, SetMode(mode.Visual)},
		{"cursor.down", nil, Simple(KindMoveDown)},
		{"cursor.down", map[string]any{"count": 5}, Repeat(KindMoveDown, 5)},
		{"cursor.up", map[string]any{"count": float64(2)}, Repeat(KindMoveUp, 2)},
		{"cursor.up", map[string]any{"count": int64(3)}, Repeat(KindMoveUp, 3)},
		{"buffer.switch", map[string]any{"id": "7"}, ChangeBuffer(7)},
		{"editor.insertChar", map[string]any{"char": "λ"}, InsertChar('λ')},
		{"editor.insertChar", map[string]any{"char": " "}, InsertChar(' ')},
		{"editor.insertChar", map[string]any{"char": "<Space>"}, InsertChar(' ')},
		{"editor.insertChar", map[string]any{"char": "<Tab>"}, InsertChar('\t')},
		{"editor.insertChar", map[string]any{"char": "<lt>"}, InsertChar('<')},
		{"buffer.list", nil, Simple(KindListBuffers)},
		{"style.set", map[string]any{"tag": "keyword"}, SetStyle(theme.Keyword)},
		{"style.set", map[string]any{"tag": "Normal"}, SetStyle(theme.Normal)},
	}

	for _, tt := range tests {
		got, err := Parse(tt.name, tt.args)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want error
	}{
		{"", nil, ErrUnknownAction},
		{"editor.nop", nil, ErrUnknownAction},
		{"mode.sideways", nil, ErrUnknownAction},
		{"cursor.jump", nil, ErrUnknownAction},
		{"buffer.switch", nil, ErrBadArgument},
		{"buffer.switch", map[string]any{"id": -1}, ErrBadArgument},
		{"buffer.switch", map[string]any{"id": 1.5}, ErrBadArgument},
		{"editor.insertChar", map[string]any{"char": "ab"}, ErrBadArgument},
		{"editor.insertChar", map[string]any{"char": "<C-a>"}, ErrBadArgument},
		{"editor.insertChar", map[string]any{"char": "<Bogus>"}, ErrBadArgument},
		{"editor.insertChar", map[string]any{"char": 7}, ErrBadArgument},
		{"style.set", nil, ErrBadArgument},
		{"style.set", map[string]any{"tag": "glitter"}, ErrBadArgument},
		{"style.set", map[string]any{"tag": "cursor"}, ErrBadArgument},
		{"style.set", map[string]any{"tag": "mode_insert"}, ErrBadArgument},
		{"cursor.left", map[string]any{"count": "many"}, ErrBadArgument},
	}

	for _, tt := range tests {
		_, err := Parse(tt.name, tt.args)
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q, %v) error = %v, want %v", tt.name, tt.args, err, tt.want)
		}
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	cmds := []Command{
		SetMode(mode.Command),
		InsertChar('z'),
		InsertChar(' '),
		InsertChar('\t'),
		InsertChar('<'),
		InsertChar('='),
		InsertChar('\u00a0'),
		ChangeBuffer(12),
		SetStyle(theme.BoldItalic),
		Repeat(KindMoveRight, 4),
		Simple(KindDeleteLine),
		Simple(KindNextBuffer),
	}

	for _, want := range cmds {
		got, err := ParseString(want.String())
		if err != nil {
			t.Errorf("ParseString(%q) error: %v", want.String(), err)
			continue
		}
		if got != want {
			t.Errorf("ParseString(%q) = %+v, want %+v", want.String(), got, want)
		}
	}
}

func TestCommandStringChar(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{'x', "editor.insertChar char=x"},
		{' ', "editor.insertChar char=<Space>"},
		{'\t', "editor.insertChar char=<Tab>"},
		{'<', "editor.insertChar char=<lt>"},
	}
	for _, tt := range tests {
		if got := InsertChar(tt.r).String(); got != tt.want {
			t.Errorf("InsertChar(%q).String() = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestParseStringMalformed(t *testing.T) {
	for _, s := range []string{"", "   ", "cursor.left count", "cursor.left =3"} {
		if _, err := ParseString(s); err == nil {
			t.Errorf("ParseString(%q) expected error", s)
		}
	}
}

func TestNamesParse(t *testing.T) {
	for _, name := range Names() {
		if name == "buffer.switch" || name == "editor.insertChar" || name == "style.set" {
			continue
		}
		if _, err := Parse(name, nil); err != nil {
			t.Errorf("Parse(%q) error: %v", name, err)
		}
	}
}

func TestTimes(t *testing.T) {
	if got := Simple(KindMoveLeft).Times(); got != 1 {
		t.Errorf("Times() = %d, want 1", got)
	}
	if got := Repeat(KindMoveLeft, 3).Times(); got != 3 {
		t.Errorf("Times() = %d, want 3", got)
	}
}
