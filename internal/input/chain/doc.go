// Package chain implements mode-scoped multi-key dispatch.
//
// A Chain is a trie keyed by key.Press. Each link is either an action (a
// command.Command fired when the sequence completes) or a sub-chain that
// waits for more keys. Nodes live in an arena and are addressed by index, so
// a Dispatcher tracks its position as a path of indices and never mutates
// the trie; abandoning a sequence is just dropping the path.
//
// Chains and Dispatchers are not safe for concurrent use.
package chain
