package keymap

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ethanxxxl/steve/internal/input/chain"
	"github.com/ethanxxxl/steve/internal/input/mode"
)

// BindError reports a binding that could not be applied.
type BindError struct {
	Keymap string
	Keys   string
	Err    error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("keymap %q: binding %q: %v", e.Keymap, e.Keys, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Keymap holds key bindings for a mode.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Mode is the mode this keymap applies to.
	// Empty string or "all" means all modes.
	Mode string

	// Bindings are the key-to-action mappings.
	Bindings []Binding

	// Source indicates where this keymap was defined.
	// Examples: "default", "config", "file:/path/km.json", "lua:/path/km.lua"
	Source string
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// FromTable builds a keymap from a keys-to-action table, as found in the
// config file. Bindings are ordered by keys.
func FromTable(name, modeName string, table map[string]string) *Keymap {
	km := NewKeymap(name).ForMode(modeName)
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		km.Add(k, table[k])
	}
	return km
}

// ForMode sets the mode for this keymap.
func (k *Keymap) ForMode(mode string) *Keymap {
	k.Mode = mode
	return k
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keys, action string) *Keymap {
	k.Bindings = append(k.Bindings, Binding{
		Keys:   keys,
		Action: action,
	})
	return k
}

// AddBinding adds a fully configured binding to this keymap.
func (k *Keymap) AddBinding(binding Binding) *Keymap {
	k.Bindings = append(k.Bindings, binding)
	return k
}

// Modes returns the modes the keymap applies to.
func (k *Keymap) Modes() ([]mode.Mode, error) {
	if k.Mode == "" || strings.EqualFold(k.Mode, "all") {
		return mode.All(), nil
	}
	m, err := mode.Parse(k.Mode)
	if err != nil {
		return nil, fmt.Errorf("keymap %q: %w", k.Name, err)
	}
	return []mode.Mode{m}, nil
}

// Validate checks the mode and every binding without applying anything.
func (k *Keymap) Validate() error {
	if _, err := k.Modes(); err != nil {
		return err
	}
	for i, b := range k.Bindings {
		if b.Keys == "" {
			return fmt.Errorf("binding %d: empty keys", i)
		}
		if b.Action == "" {
			return fmt.Errorf("binding %d (%s): empty action", i, b.Keys)
		}
		if _, _, err := b.Compile(); err != nil {
			return fmt.Errorf("binding %d (%s): %w", i, b.Keys, err)
		}
	}
	return nil
}

// Apply binds every binding into the dispatcher's chains for the keymap's
// modes. Bad bindings are skipped; their errors are joined and returned
// after the rest are applied.
func (k *Keymap) Apply(d *chain.Dispatcher) error {
	modes, err := k.Modes()
	if err != nil {
		return err
	}

	var errs []error
	for _, b := range k.Bindings {
		seq, cmd, err := b.Compile()
		if err != nil {
			errs = append(errs, &BindError{Keymap: k.Name, Keys: b.Keys, Err: err})
			continue
		}
		for _, m := range modes {
			if err := d.Chain(m).Bind(seq, cmd); err != nil {
				errs = append(errs, &BindError{Keymap: k.Name, Keys: b.Keys, Err: fmt.Errorf("%s: %w", m.Name(), err)})
			}
		}
	}
	d.Reset()
	return errors.Join(errs...)
}

// Clone creates a deep copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	clone := &Keymap{
		Name:     k.Name,
		Mode:     k.Mode,
		Source:   k.Source,
		Bindings: make([]Binding, len(k.Bindings)),
	}
	for i, b := range k.Bindings {
		clone.Bindings[i] = b
		if b.Args != nil {
			clone.Bindings[i].Args = make(map[string]any, len(b.Args))
			for k, v := range b.Args {
				clone.Bindings[i].Args[k] = v
			}
		}
	}
	return clone
}
