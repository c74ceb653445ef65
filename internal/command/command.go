package command

import (
	"fmt"

	"github.com/ethanxxxl/steve/internal/engine/buffer"
	"github.com/ethanxxxl/steve/internal/input/key"
	"github.com/ethanxxxl/steve/internal/input/mode"
	"github.com/ethanxxxl/steve/internal/theme"
)

// Kind tags a Command.
type Kind uint8

const (
	// KindNone is the zero Kind; it does nothing.
	KindNone Kind = iota
	KindSetMode
	KindInsertChar
	KindDeleteChar
	KindDeleteLine
	KindInsertLineAbove
	KindInsertLineBelow
	KindOpenAbove
	KindOpenBelow
	KindAppend
	KindMoveLeft
	KindMoveRight
	KindMoveUp
	KindMoveDown
	KindMoveLineStart
	KindMoveLineEnd
	KindNewBuffer
	KindNextBuffer
	KindChangeBuffer
	KindListBuffers
	KindSetStyle
)

// Command is one editing command. Only the fields relevant to Kind are set.
type Command struct {
	Kind Kind

	// Mode is the target of KindSetMode.
	Mode mode.Mode

	// Rune is the character for KindInsertChar.
	Rune rune

	// Count repeats motions and deletions. Zero means once.
	Count int

	// Buffer is the target of KindChangeBuffer.
	Buffer buffer.ID

	// Tag is the text style for KindSetStyle.
	Tag theme.Tag
}

// SetMode returns a command that switches to m.
func SetMode(m mode.Mode) Command {
	return Command{Kind: KindSetMode, Mode: m}
}

// InsertChar returns a command that types r at the cursor.
func InsertChar(r rune) Command {
	return Command{Kind: KindInsertChar, Rune: r}
}

// ChangeBuffer returns a command that makes buffer id active.
func ChangeBuffer(id buffer.ID) Command {
	return Command{Kind: KindChangeBuffer, Buffer: id}
}

// SetStyle returns a command that starts a run of tag at the cursor.
func SetStyle(tag theme.Tag) Command {
	return Command{Kind: KindSetStyle, Tag: tag}
}

// Repeat returns a command of kind k with the given count.
func Repeat(k Kind, count int) Command {
	return Command{Kind: k, Count: count}
}

// Simple returns an argument-free command of kind k.
func Simple(k Kind) Command {
	return Command{Kind: k}
}

// Times returns how often the command applies, never less than one.
func (c Command) Times() int {
	if c.Count < 1 {
		return 1
	}
	return c.Count
}

// Name returns the action name of the command, e.g. "mode.insert".
func (c Command) Name() string {
	if c.Kind == KindSetMode {
		return "mode." + c.Mode.Name()
	}
	if name, ok := kindNames[c.Kind]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", uint8(c.Kind))
}

// String returns the action name followed by any arguments, in the form
// accepted by ParseString. The char argument is written in key notation
// so that spaces and control characters survive.
func (c Command) String() string {
	s := c.Name()
	switch c.Kind {
	case KindInsertChar:
		s += " char=" + key.FromRune(c.Rune).String()
	case KindChangeBuffer:
		s += fmt.Sprintf(" id=%d", c.Buffer)
	case KindSetStyle:
		s += " tag=" + c.Tag.String()
	}
	if c.Count > 1 {
		s += fmt.Sprintf(" count=%d", c.Count)
	}
	return s
}

// kindNames maps kinds to action names. KindSetMode is named per mode.
var kindNames = map[Kind]string{
	KindNone:            "editor.nop",
	KindInsertChar:      "editor.insertChar",
	KindDeleteChar:      "editor.deleteChar",
	KindDeleteLine:      "editor.deleteLine",
	KindInsertLineAbove: "editor.insertLineAbove",
	KindInsertLineBelow: "editor.insertLineBelow",
	KindOpenAbove:       "mode.openAbove",
	KindOpenBelow:       "mode.openBelow",
	KindAppend:          "mode.append",
	KindMoveLeft:        "cursor.left",
	KindMoveRight:       "cursor.right",
	KindMoveUp:          "cursor.up",
	KindMoveDown:        "cursor.down",
	KindMoveLineStart:   "cursor.lineStart",
	KindMoveLineEnd:     "cursor.lineEnd",
	KindNewBuffer:       "buffer.new",
	KindNextBuffer:      "buffer.next",
	KindChangeBuffer:    "buffer.switch",
	KindListBuffers:     "buffer.list",
	KindSetStyle:        "style.set",
}
