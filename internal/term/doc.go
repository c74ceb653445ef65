// Package term draws an editor.State on a tcell screen and feeds it keys.
//
// The screen is split into the text area and a one-row status line. The
// text area shows the display buffer produced by the editor, scrolled so
// the cursor line stays visible. The status line shows the mode, the
// cursor position, any keys of a partial sequence and the last message.
//
// Ctrl-Q quits. Everything else goes through editor.State.HandleKey.
package term
