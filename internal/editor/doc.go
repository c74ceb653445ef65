// Package editor ties the text model and key dispatch together.
//
// State owns exactly one active buffer, a registry of background buffers
// sorted by id, the per-mode key chains and the current mode. Keys enter
// through HandleKey; bound sequences resolve to command.Command values that
// Execute interprets. In Insert mode, unmatched plain keys are typed into
// the active buffer.
//
// State is not safe for concurrent use. Front ends read it (DisplayBuffer,
// SectionText, StatusLine) between keys, never during one.
package editor
