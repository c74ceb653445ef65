package key

import (
	"fmt"
	"unicode"
)

// Characters delivered for special keys.
const (
	Backspace rune = '\x08'
	Tab       rune = '\t'
	Newline   rune = '\n'
	Return    rune = '\r'
	Escape    rune = '\x1b'
	Space     rune = ' '
	Delete    rune = '\x7f'
)

// Press is a single key press: one character and the modifiers held with it.
type Press struct {
	Rune rune
	Mods Modifier
}

// New creates a press with the given modifiers.
func New(r rune, mods Modifier) Press {
	return Press{Rune: r, Mods: mods}
}

// FromRune converts a plain character to a press with no modifiers.
func FromRune(r rune) Press {
	return Press{Rune: r}
}

// IsModified returns true if any modifier is held.
func (p Press) IsModified() bool {
	return p.Mods != ModNone
}

// IsEscape returns true for an unmodified Escape.
func (p Press) IsEscape() bool {
	return p.Rune == Escape && p.Mods == ModNone
}

// WithModifier returns a copy with mod added.
func (p Press) WithModifier(mod Modifier) Press {
	p.Mods = p.Mods.With(mod)
	return p
}

// namedKeys maps characters to their Vim names.
var namedKeys = map[rune]string{
	Escape:    "Esc",
	Return:    "CR",
	Newline:   "NL",
	Tab:       "Tab",
	Backspace: "BS",
	Space:     "Space",
	Delete:    "Del",
	'<':       "lt",
	'>':       "gt",
}

// keyNames is the reverse of namedKeys plus common aliases.
var keyNames = map[string]rune{
	"esc":       Escape,
	"escape":    Escape,
	"cr":        Return,
	"enter":     Return,
	"return":    Return,
	"nl":        Newline,
	"tab":       Tab,
	"bs":        Backspace,
	"backspace": Backspace,
	"space":     Space,
	"del":       Delete,
	"delete":    Delete,
	"lt":        '<',
	"gt":        '>',
	"bar":       '|',
	"bslash":    '\\',
}

// String returns the Vim notation for the press.
// Examples: "a", "<Esc>", "<C-w>", "<A-Space>".
func (p Press) String() string {
	name, named := namedKeys[p.Rune]
	if !named {
		if !unicode.IsPrint(p.Rune) {
			name = fmt.Sprintf("%U", p.Rune)
			named = true
		} else {
			name = string(p.Rune)
		}
	}

	if !named && p.Mods == ModNone {
		return name
	}
	return "<" + p.Mods.prefix() + name + ">"
}
