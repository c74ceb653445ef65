package chain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ethanxxxl/steve/internal/command"
	"github.com/ethanxxxl/steve/internal/input/key"
)

// Binding errors.
var (
	ErrEmptySequence   = errors.New("empty key sequence")
	ErrBindingConflict = errors.New("binding conflict")
)

// ConflictError describes a Bind that would shadow or be shadowed by an
// existing binding.
type ConflictError struct {
	// Keys is the sequence being bound.
	Keys []key.Press

	// At is the prefix of Keys where the conflict was found.
	At []key.Press

	// Reason is "prefix is bound" or "sequence has continuations".
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("chain: cannot bind %s: %s %s",
		key.FormatSequence(e.Keys), key.FormatSequence(e.At), e.Reason)
}

func (e *ConflictError) Unwrap() error {
	return ErrBindingConflict
}

// LinkKind identifies what a key leads to.
type LinkKind uint8

const (
	// LinkNone means the key is not bound.
	LinkNone LinkKind = iota

	// LinkAction means the key completes a sequence.
	LinkAction

	// LinkChain means the key starts or continues a longer sequence.
	LinkChain
)

// String returns the link kind name.
func (k LinkKind) String() string {
	switch k {
	case LinkAction:
		return "action"
	case LinkChain:
		return "chain"
	default:
		return "none"
	}
}

// Link is the result of a lookup.
type Link struct {
	Kind    LinkKind
	Command command.Command
}

// Binding is one complete sequence and its command.
type Binding struct {
	Keys    []key.Press
	Command command.Command
}

const root = 0

type node struct {
	children map[key.Press]int
	action   command.Command
	isAction bool
	parent   int
	via      key.Press
}

// Chain is a trie of key presses.
type Chain struct {
	nodes   []node
	free    []int
	actions int
}

// New returns an empty chain.
func New() *Chain {
	return &Chain{
		nodes: []node{{children: make(map[key.Press]int), parent: -1}},
	}
}

// Len returns the number of bound sequences.
func (c *Chain) Len() int {
	return c.actions
}

// Bind maps seq to cmd. Rebinding an existing sequence replaces its
// command. A sequence may not pass through a bound action, nor end where
// longer sequences continue.
func (c *Chain) Bind(seq []key.Press, cmd command.Command) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}

	// Check the existing path first so a conflict leaves the trie untouched.
	at := root
	for i, k := range seq {
		next, ok := c.nodes[at].children[k]
		if !ok {
			break
		}
		n := &c.nodes[next]
		last := i == len(seq)-1
		if n.isAction && !last {
			return &ConflictError{Keys: seq, At: seq[:i+1], Reason: "prefix is bound"}
		}
		if last && !n.isAction && len(n.children) > 0 {
			return &ConflictError{Keys: seq, At: seq, Reason: "sequence has continuations"}
		}
		at = next
	}

	at = root
	for _, k := range seq {
		next, ok := c.nodes[at].children[k]
		if !ok {
			next = c.alloc(at, k)
		}
		at = next
	}

	n := &c.nodes[at]
	if !n.isAction {
		c.actions++
	}
	n.isAction = true
	n.action = cmd
	return nil
}

// Unbind removes the binding for seq and prunes sub-chains left empty. It
// reports whether seq was bound.
func (c *Chain) Unbind(seq []key.Press) bool {
	at, ok := c.walk(seq)
	if !ok || at == root || !c.nodes[at].isAction {
		return false
	}

	n := &c.nodes[at]
	n.isAction = false
	n.action = command.Command{}
	c.actions--

	for at != root {
		n := &c.nodes[at]
		if n.isAction || len(n.children) > 0 {
			break
		}
		parent := n.parent
		delete(c.nodes[parent].children, n.via)
		c.release(at)
		at = parent
	}
	return true
}

// Lookup returns the link reached by seq from the root. An empty seq
// reports the root as a chain.
func (c *Chain) Lookup(seq []key.Press) Link {
	at, ok := c.walk(seq)
	if !ok {
		return Link{}
	}
	return c.link(at)
}

// Bindings returns every bound sequence, ordered by key notation.
func (c *Chain) Bindings() []Binding {
	var out []Binding
	var visit func(at int, prefix []key.Press)
	visit = func(at int, prefix []key.Press) {
		n := &c.nodes[at]
		if n.isAction {
			keys := make([]key.Press, len(prefix))
			copy(keys, prefix)
			out = append(out, Binding{Keys: keys, Command: n.action})
		}
		for _, k := range c.sortedKeys(at) {
			visit(n.children[k], append(prefix, k))
		}
	}
	visit(root, nil)
	return out
}

// Dump renders the trie as an indented tree with children in key-notation
// order. Equal tries produce equal dumps.
func (c *Chain) Dump() string {
	var sb strings.Builder
	var visit func(at, depth int)
	visit = func(at, depth int) {
		n := &c.nodes[at]
		for _, k := range c.sortedKeys(at) {
			child := &c.nodes[n.children[k]]
			sb.WriteString(strings.Repeat("  ", depth))
			sb.WriteString(k.String())
			if child.isAction {
				sb.WriteString(" -> ")
				sb.WriteString(child.action.String())
			}
			sb.WriteByte('\n')
			visit(n.children[k], depth+1)
		}
	}
	visit(root, 0)
	return sb.String()
}

func (c *Chain) walk(seq []key.Press) (int, bool) {
	at := root
	for _, k := range seq {
		next, ok := c.nodes[at].children[k]
		if !ok {
			return 0, false
		}
		at = next
	}
	return at, true
}

// step follows k from node at.
func (c *Chain) step(at int, k key.Press) (int, bool) {
	next, ok := c.nodes[at].children[k]
	return next, ok
}

func (c *Chain) link(at int) Link {
	n := &c.nodes[at]
	if n.isAction {
		return Link{Kind: LinkAction, Command: n.action}
	}
	return Link{Kind: LinkChain}
}

func (c *Chain) alloc(parent int, via key.Press) int {
	n := node{children: make(map[key.Press]int), parent: parent, via: via}
	var idx int
	if len(c.free) > 0 {
		idx = c.free[len(c.free)-1]
		c.free = c.free[:len(c.free)-1]
		c.nodes[idx] = n
	} else {
		idx = len(c.nodes)
		c.nodes = append(c.nodes, n)
	}
	c.nodes[parent].children[via] = idx
	return idx
}

func (c *Chain) release(at int) {
	c.nodes[at] = node{parent: -1}
	c.free = append(c.free, at)
}

func (c *Chain) sortedKeys(at int) []key.Press {
	children := c.nodes[at].children
	keys := make([]key.Press, 0, len(children))
	for k := range children {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i].String(), keys[j].String()
		if a != b {
			return a < b
		}
		return keys[i].Mods < keys[j].Mods
	})
	return keys
}
