// Package command defines the closed set of editing commands that key
// bindings resolve to.
//
// A Command is a tagged value, not a callback: the editor interprets it in
// a single place, so no binding ever holds a reference to the editor.
// Keymaps name commands with dotted action names, optionally followed by
// key=value arguments:
//
//	mode.insert
//	cursor.down count=5
//	buffer.switch id=2
//	editor.insertChar char=λ
//	editor.insertChar char=<Space>
//
// The char argument is a single unmodified key in Vim notation, so
// Command.String output always parses back with ParseString.
package command
