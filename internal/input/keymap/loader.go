package keymap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ErrInvalidJSON is returned for keymap files that are not valid JSON.
var ErrInvalidJSON = errors.New("invalid keymap JSON")

// Loader loads keymaps from JSON files.
type Loader struct{}

// NewLoader creates a new keymap loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFile loads a keymap from a JSON file. A missing name defaults to the
// file's base name.
func (l *Loader) LoadFile(path string) (*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap file: %w", err)
	}

	km, err := l.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if km.Name == "" {
		km.Name = filepath.Base(path)
	}
	if km.Source == "" {
		km.Source = "file:" + path
	}
	return km, nil
}

// LoadBytes parses a keymap document:
//
//	{"name": "...", "mode": "normal", "bindings": [
//	    {"keys": "j", "action": "cursor.down", "description": "..."}
//	]}
func (l *Loader) LoadBytes(data []byte) (*Keymap, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: top level is not an object", ErrInvalidJSON)
	}

	km := &Keymap{
		Name:     doc.Get("name").String(),
		Mode:     doc.Get("mode").String(),
		Source:   doc.Get("source").String(),
		Bindings: make([]Binding, 0),
	}

	bindings := doc.Get("bindings")
	if bindings.Exists() && !bindings.IsArray() {
		return nil, fmt.Errorf("%w: bindings is not an array", ErrInvalidJSON)
	}

	var err error
	i := 0
	bindings.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			err = fmt.Errorf("%w: binding %d is not an object", ErrInvalidJSON, i)
			return false
		}
		i++
		b := Binding{
			Keys:        v.Get("keys").String(),
			Action:      v.Get("action").String(),
			Description: v.Get("description").String(),
			Category:    v.Get("category").String(),
		}
		if args := v.Get("args"); args.IsObject() {
			b.Args, _ = args.Value().(map[string]any)
		}
		km.Bindings = append(km.Bindings, b)
		return true
	})
	if err != nil {
		return nil, err
	}
	return km, nil
}

// MarshalJSON converts a keymap to indented JSON in the format LoadBytes
// reads.
func (k *Keymap) MarshalJSON() ([]byte, error) {
	out := []byte(`{}`)
	var err error

	set := func(path string, v any) {
		if err == nil {
			out, err = sjson.SetBytes(out, path, v)
		}
	}

	set("name", k.Name)
	if k.Mode != "" {
		set("mode", k.Mode)
	}
	if k.Source != "" {
		set("source", k.Source)
	}
	if err == nil {
		out, err = sjson.SetRawBytes(out, "bindings", []byte(`[]`))
	}

	for _, b := range k.Bindings {
		item := []byte(`{}`)
		setItem := func(path string, v any) {
			if err == nil {
				item, err = sjson.SetBytes(item, path, v)
			}
		}
		setItem("keys", b.Keys)
		setItem("action", b.Action)
		if len(b.Args) > 0 {
			setItem("args", b.Args)
		}
		if b.Description != "" {
			setItem("description", b.Description)
		}
		if b.Category != "" {
			setItem("category", b.Category)
		}
		if err == nil {
			out, err = sjson.SetRawBytes(out, "bindings.-1", item)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("encoding keymap %q: %w", k.Name, err)
	}
	return pretty.Pretty(out), nil
}

// SaveFile saves a keymap to a JSON file.
func (k *Keymap) SaveFile(path string) error {
	data, err := k.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshaling keymap: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing keymap file: %w", err)
	}

	return nil
}
