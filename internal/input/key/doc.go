// Package key provides the key press value type used by the dispatch engine.
//
// A Press is one character plus a set of modifiers (Control, Alt, Logo).
// Special keys are ordinary characters: Escape is '\x1b', Enter is '\r',
// Backspace is '\x08' and Tab is '\t'. Two presses are equal exactly when
// the character and every modifier match, so Press works as a map key.
//
// # Notation
//
// Presses and sequences read and print in Vim notation:
//
//	"i"          - a plain character
//	"<Esc>"      - a named key (Esc, CR, NL, Tab, BS, Space, Del, lt)
//	"<C-w>"      - Control+w
//	"<A-x>"      - Alt+x
//	"<D-s>"      - Logo+s
//	"g g"        - space separated sequence
//	"<Space>bn"  - continuous sequence
package key
