// Package mode defines the editing modes and their presentation.
//
// The editor is always in exactly one of Normal, Insert, Visual or Command.
// Each mode owns its own key chain; which chain intercepts a keystroke
// before literal insertion is decided by the current mode. Only Insert
// mode falls through to inserting unmatched characters.
package mode
