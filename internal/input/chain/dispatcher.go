package chain

import (
	"github.com/ethanxxxl/steve/internal/command"
	"github.com/ethanxxxl/steve/internal/input/key"
	"github.com/ethanxxxl/steve/internal/input/mode"
)

// ResultKind is the outcome of dispatching one key.
type ResultKind uint8

const (
	// Unmatched means the key has no binding at the root of the mode's
	// chain. The caller decides what to do with it.
	Unmatched ResultKind = iota

	// Pending means the key continued a sequence; more keys are needed.
	Pending

	// Fired means the key completed a sequence.
	Fired

	// Aborted means the key did not continue the sequence in flight.
	// The sequence and the key are dropped.
	Aborted
)

// String returns the result kind name.
func (k ResultKind) String() string {
	switch k {
	case Unmatched:
		return "unmatched"
	case Pending:
		return "pending"
	case Fired:
		return "fired"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Result describes what a key did.
type Result struct {
	Kind ResultKind

	// Command is set when Kind is Fired.
	Command command.Command

	// Keys is the sequence consumed, including the key just dispatched.
	Keys []key.Press
}

// Dispatcher routes key presses through one Chain per mode. Callers that
// bind or unbind while a sequence is in flight should Reset afterwards.
type Dispatcher struct {
	chains [mode.Count]*Chain

	mode mode.Mode
	path []int
	keys []key.Press
}

// NewDispatcher returns a dispatcher with an empty chain for every mode.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{}
	for i := range d.chains {
		d.chains[i] = New()
	}
	return d
}

// Chain returns the chain for m, or nil if m is not a valid mode.
func (d *Dispatcher) Chain(m mode.Mode) *Chain {
	if !m.Valid() {
		return nil
	}
	return d.chains[m]
}

// SetChain replaces the chain for m and abandons any sequence in flight.
func (d *Dispatcher) SetChain(m mode.Mode, c *Chain) {
	if !m.Valid() || c == nil {
		return
	}
	d.chains[m] = c
	d.Reset()
}

// Pending returns the keys of the sequence in flight.
func (d *Dispatcher) Pending() []key.Press {
	out := make([]key.Press, len(d.keys))
	copy(out, d.keys)
	return out
}

// InFlight reports whether a sequence is partially matched.
func (d *Dispatcher) InFlight() bool {
	return len(d.path) > 0
}

// Reset abandons the sequence in flight.
func (d *Dispatcher) Reset() {
	d.path = d.path[:0]
	d.keys = d.keys[:0]
}

// Dispatch feeds k to the chain for m. A sequence started in a different
// mode is abandoned first.
func (d *Dispatcher) Dispatch(m mode.Mode, k key.Press) Result {
	if m != d.mode {
		d.Reset()
		d.mode = m
	}

	c := d.Chain(m)
	if c == nil {
		return Result{Kind: Unmatched, Keys: []key.Press{k}}
	}

	at := root
	if len(d.path) > 0 {
		at = d.path[len(d.path)-1]
	}

	next, ok := c.step(at, k)
	if !ok {
		if len(d.path) == 0 {
			return Result{Kind: Unmatched, Keys: []key.Press{k}}
		}
		keys := append(d.Pending(), k)
		d.Reset()
		return Result{Kind: Aborted, Keys: keys}
	}

	link := c.link(next)
	if link.Kind == LinkAction {
		keys := append(d.Pending(), k)
		d.Reset()
		return Result{Kind: Fired, Command: link.Command, Keys: keys}
	}

	d.path = append(d.path, next)
	d.keys = append(d.keys, k)
	return Result{Kind: Pending, Keys: d.Pending()}
}
