package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/ethanxxxl/steve/internal/command"
	"github.com/ethanxxxl/steve/internal/input/key"
	"github.com/ethanxxxl/steve/internal/input/keymap"
	"github.com/ethanxxxl/steve/internal/input/mode"
)

// ModuleName is the global table scripts use.
const ModuleName = "steve"

func (s *State) installAPI() {
	mod := s.L.NewTable()
	s.L.SetFuncs(mod, map[string]lua.LGFunction{
		"bind":    s.bind,
		"unbind":  s.unbind,
		"modes":   s.modes,
		"actions": s.actions,
		"log":     s.logMessage,
	})
	s.L.SetGlobal(ModuleName, mod)
}

// modeKey normalizes a script's mode argument. "" and "all" select every
// mode.
func modeKey(L *lua.LState, n int) string {
	name := L.CheckString(n)
	if name == "" || strings.EqualFold(name, "all") {
		return ""
	}
	m, err := mode.Parse(name)
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return m.Name()
}

// bind(mode, keys, action [, desc | opts])
func (s *State) bind(L *lua.LState) int {
	m := modeKey(L, 1)
	keys := L.CheckString(2)
	action := L.CheckString(3)

	b := keymap.NewBinding(keys, action)
	switch opt := L.Get(4).(type) {
	case lua.LString:
		b = b.WithDescription(string(opt))
	case *lua.LTable:
		b = applyOptions(b, opt)
	case *lua.LNilType:
	default:
		L.ArgError(4, "expected string or table")
	}

	if _, _, err := b.Compile(); err != nil {
		L.RaiseError("bind %q: %v", keys, err)
	}

	km := s.keymapFor(m)
	km.Bindings = replaceBinding(km.Bindings, b)
	return 0
}

// unbind(mode, keys) -> bool
func (s *State) unbind(L *lua.LState) int {
	m := modeKey(L, 1)
	keys := L.CheckString(2)

	km, ok := s.keymaps[m]
	if !ok {
		L.Push(lua.LFalse)
		return 1
	}
	norm, err := normalizeKeys(keys)
	if err != nil {
		L.ArgError(2, err.Error())
	}
	for i, b := range km.Bindings {
		if n, err := normalizeKeys(b.Keys); err == nil && n == norm {
			km.Bindings = append(km.Bindings[:i], km.Bindings[i+1:]...)
			L.Push(lua.LTrue)
			return 1
		}
	}
	L.Push(lua.LFalse)
	return 1
}

func (s *State) modes(L *lua.LState) int {
	t := L.NewTable()
	for _, m := range mode.All() {
		t.Append(lua.LString(m.Name()))
	}
	L.Push(t)
	return 1
}

func (s *State) actions(L *lua.LState) int {
	t := L.NewTable()
	for _, name := range command.Names() {
		t.Append(lua.LString(name))
	}
	L.Push(t)
	return 1
}

func (s *State) logMessage(L *lua.LState) int {
	s.log.Info("%s: %s", s.source, L.CheckString(1))
	return 0
}

func (s *State) keymapFor(m string) *keymap.Keymap {
	km, ok := s.keymaps[m]
	if !ok {
		name := "lua-" + m
		if m == "" {
			name = "lua-all"
		}
		km = keymap.NewKeymap(name).ForMode(m).WithSource("lua:" + s.source)
		s.keymaps[m] = km
		s.order = append(s.order, m)
	}
	return km
}

// applyOptions reads desc and category from opts. Every other string key
// becomes an action argument.
func applyOptions(b keymap.Binding, opts *lua.LTable) keymap.Binding {
	args := make(map[string]any)
	opts.ForEach(func(k, v lua.LValue) {
		name, ok := k.(lua.LString)
		if !ok {
			return
		}
		switch string(name) {
		case "desc", "description":
			b = b.WithDescription(v.String())
		case "category":
			b = b.WithCategory(v.String())
		default:
			if val, ok := toGo(v); ok {
				args[string(name)] = val
			}
		}
	})
	if len(args) > 0 {
		b = b.WithArgs(args)
	}
	return b
}

func toGo(v lua.LValue) (any, bool) {
	switch v := v.(type) {
	case lua.LNumber:
		return float64(v), true
	case lua.LString:
		return string(v), true
	case lua.LBool:
		return bool(v), true
	}
	return nil, false
}

func normalizeKeys(keys string) (string, error) {
	seq, err := key.ParseSequence(keys)
	if err != nil {
		return "", err
	}
	return key.FormatSequence(seq), nil
}

// replaceBinding swaps out a binding on the same keys, or appends b.
func replaceBinding(bindings []keymap.Binding, b keymap.Binding) []keymap.Binding {
	norm, err := normalizeKeys(b.Keys)
	if err == nil {
		for i, old := range bindings {
			if n, err := normalizeKeys(old.Keys); err == nil && n == norm {
				bindings[i] = b
				return bindings
			}
		}
	}
	return append(bindings, b)
}
