package keymap

import (
	"fmt"
	"strings"

	"github.com/ethanxxxl/steve/internal/command"
	"github.com/ethanxxxl/steve/internal/input/key"
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key sequence that triggers this binding.
	// Formats: "j", "g g", "<C-w>v", "<Space>bn"
	Keys string

	// Action is the command to execute, with optional inline arguments.
	// Examples: "cursor.down", "mode.insert", "buffer.switch id=2"
	Action string

	// Args are fixed arguments for the action. When set, Action must be a
	// bare name.
	Args map[string]any

	// Description provides documentation for the binding.
	Description string

	// Category groups bindings for display purposes.
	Category string
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}

// WithArgs sets arguments for this binding.
func (b Binding) WithArgs(args map[string]any) Binding {
	b.Args = args
	return b
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithCategory sets the category for this binding.
func (b Binding) WithCategory(category string) Binding {
	b.Category = category
	return b
}

// Sequence parses the binding's keys.
func (b Binding) Sequence() ([]key.Press, error) {
	return key.ParseSequence(b.Keys)
}

// Command resolves the binding's action.
func (b Binding) Command() (command.Command, error) {
	if len(b.Args) == 0 {
		return command.ParseString(b.Action)
	}
	return command.Parse(strings.TrimSpace(b.Action), b.Args)
}

// Compile parses both halves of the binding.
func (b Binding) Compile() ([]key.Press, command.Command, error) {
	seq, err := b.Sequence()
	if err != nil {
		return nil, command.Command{}, fmt.Errorf("keys %q: %w", b.Keys, err)
	}
	cmd, err := b.Command()
	if err != nil {
		return nil, command.Command{}, fmt.Errorf("action %q: %w", b.Action, err)
	}
	return seq, cmd, nil
}

// BindingCategory represents a category of bindings for display.
type BindingCategory struct {
	Name     string
	Bindings []Binding
}

// GroupByCategory groups bindings by their category, keeping first-seen
// order.
func GroupByCategory(bindings []Binding) []BindingCategory {
	categoryMap := make(map[string][]Binding)
	order := make([]string, 0)

	for _, b := range bindings {
		cat := b.Category
		if cat == "" {
			cat = "Other"
		}
		if _, exists := categoryMap[cat]; !exists {
			order = append(order, cat)
		}
		categoryMap[cat] = append(categoryMap[cat], b)
	}

	result := make([]BindingCategory, 0, len(order))
	for _, name := range order {
		result = append(result, BindingCategory{
			Name:     name,
			Bindings: categoryMap[name],
		})
	}
	return result
}
