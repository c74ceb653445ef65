package lua

import (
	"context"
	"errors"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/ethanxxxl/steve/internal/input/keymap"
	"github.com/ethanxxxl/steve/internal/logging"
)

// DefaultTimeout bounds how long one script may run.
const DefaultTimeout = 2 * time.Second

// ErrStateClosed is returned when running code on a closed State.
var ErrStateClosed = errors.New("lua state closed")

// ScriptError wraps a failure while running a script.
type ScriptError struct {
	Source string
	Err    error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("lua %s: %v", e.Source, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// State is a sandboxed Lua interpreter that collects bindings.
//
// gopher-lua states are not goroutine-safe; use a State from one goroutine.
type State struct {
	L *lua.LState

	timeout time.Duration
	log     *logging.Logger
	source  string

	// keymaps collects bindings per mode name, "" meaning all modes.
	keymaps map[string]*keymap.Keymap
	order   []string

	closed bool
}

// StateOption configures a State.
type StateOption func(*State)

// WithTimeout sets the per-script execution timeout.
func WithTimeout(d time.Duration) StateOption {
	return func(s *State) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLogger sets the logger behind steve.log.
func WithLogger(l *logging.Logger) StateOption {
	return func(s *State) {
		if l != nil {
			s.log = l
		}
	}
}

// NewState creates a sandboxed Lua state with the steve API installed.
func NewState(opts ...StateOption) *State {
	s := &State{
		timeout: DefaultTimeout,
		log:     logging.Nop(),
		keymaps: make(map[string]*keymap.Keymap),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(s.L)
	s.installAPI()
	return s
}

// openSafeLibraries opens only libraries with no file system or process
// access.
func openSafeLibraries(L *lua.LState) {
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	// The base library can still reach the file system.
	for _, name := range []string{"dofile", "loadfile", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// DoFile runs the script at path.
func (s *State) DoFile(ctx context.Context, path string) error {
	s.source = path
	return s.run(ctx, path, func() error { return s.L.DoFile(path) })
}

// DoString runs code. name identifies it in errors and keymap sources.
func (s *State) DoString(ctx context.Context, name, code string) error {
	s.source = name
	return s.run(ctx, name, func() error { return s.L.DoString(code) })
}

func (s *State) run(ctx context.Context, source string, fn func() error) (err error) {
	if s.closed {
		return ErrStateClosed
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = &ScriptError{Source: source, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if err := fn(); err != nil {
		return &ScriptError{Source: source, Err: err}
	}
	return nil
}

// Keymaps returns the bindings collected so far, one keymap per mode in
// the order modes were first bound.
func (s *State) Keymaps() []*keymap.Keymap {
	out := make([]*keymap.Keymap, 0, len(s.order))
	for _, m := range s.order {
		if km := s.keymaps[m]; len(km.Bindings) > 0 {
			out = append(out, km.Clone())
		}
	}
	return out
}

// Close releases the interpreter.
func (s *State) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}

// LoadScripts runs each script in its own state and returns the keymaps
// they produced. A failing script is skipped; the errors are joined.
func LoadScripts(ctx context.Context, paths []string, opts ...StateOption) ([]*keymap.Keymap, error) {
	var kms []*keymap.Keymap
	var errs []error
	for _, path := range paths {
		s := NewState(opts...)
		if err := s.DoFile(ctx, path); err != nil {
			errs = append(errs, err)
		} else {
			kms = append(kms, s.Keymaps()...)
		}
		s.Close()
	}
	return kms, errors.Join(errs...)
}
