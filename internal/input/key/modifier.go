package key

import "strings"

// Modifier is a set of modifier keys held during a press.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModControl indicates the Control key.
	ModControl Modifier = 1 << iota

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModLogo indicates the logo key (Cmd on macOS, Super elsewhere).
	ModLogo
)

// None returns the empty modifier set.
func None() Modifier { return ModNone }

// Control returns the set holding only Control.
func Control() Modifier { return ModControl }

// Alt returns the set holding only Alt.
func Alt() Modifier { return ModAlt }

// Logo returns the set holding only Logo.
func Logo() Modifier { return ModLogo }

// Has returns true if m contains every modifier in mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod && mod != ModNone
}

// HasControl returns true if Control is held.
func (m Modifier) HasControl() bool {
	return m.Has(ModControl)
}

// HasAlt returns true if Alt is held.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasLogo returns true if Logo is held.
func (m Modifier) HasLogo() bool {
	return m.Has(ModLogo)
}

// With returns a new Modifier with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with mod removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a readable form like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasControl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasLogo() {
		parts = append(parts, "Logo")
	}
	return strings.Join(parts, "+")
}

// prefix returns the Vim notation prefix, e.g. "C-A-".
func (m Modifier) prefix() string {
	var sb strings.Builder
	if m.HasControl() {
		sb.WriteString("C-")
	}
	if m.HasAlt() {
		sb.WriteString("A-")
	}
	if m.HasLogo() {
		sb.WriteString("D-")
	}
	return sb.String()
}

// modifierNames maps Vim modifier letters and long names to Modifier values.
var modifierNames = map[string]Modifier{
	"c":       ModControl,
	"ctrl":    ModControl,
	"control": ModControl,
	"a":       ModAlt,
	"m":       ModAlt, // Vim treats M- as Meta, which terminals send as Alt
	"alt":     ModAlt,
	"d":       ModLogo,
	"logo":    ModLogo,
	"super":   ModLogo,
	"cmd":     ModLogo,
}

// ModifierFromName returns the modifier for a name (case-insensitive).
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	return modifierNames[strings.ToLower(name)]
}
