package command

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/ethanxxxl/steve/internal/engine/buffer"
	"github.com/ethanxxxl/steve/internal/input/key"
	"github.com/ethanxxxl/steve/internal/input/mode"
	"github.com/ethanxxxl/steve/internal/theme"
)

// Parse errors.
var (
	ErrUnknownAction = errors.New("unknown action")
	ErrBadArgument   = errors.New("bad action argument")
)

// nameKinds is the reverse of kindNames, built once.
var nameKinds = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// Names returns every action name Parse accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(nameKinds)+int(mode.Count))
	for name, k := range nameKinds {
		if k != KindNone {
			names = append(names, name)
		}
	}
	for _, m := range mode.All() {
		names = append(names, "mode."+m.Name())
	}
	sort.Strings(names)
	return names
}

// Parse resolves an action name and its arguments to a Command.
// Recognized arguments are "count", "id", "char" and "tag"; numbers may
// arrive as any Go integer or float type, or as a decimal string. A char is
// one unmodified key in Vim notation: "x", "<Space>", "<Tab>", "<lt>". A tag
// is a text tag name from the theme, such as "bold" or "comment".
func Parse(name string, args map[string]any) (Command, error) {
	var cmd Command

	if rest, ok := strings.CutPrefix(name, "mode."); ok {
		if m, err := mode.Parse(rest); err == nil {
			cmd = SetMode(m)
		}
	}
	if cmd.Kind == KindNone {
		k, ok := nameKinds[name]
		if !ok || k == KindNone {
			return Command{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		cmd.Kind = k
	}

	if v, ok := args["count"]; ok {
		n, err := toInt(v)
		if err != nil || n < 0 {
			return Command{}, fmt.Errorf("%w: %s count=%v", ErrBadArgument, name, v)
		}
		cmd.Count = n
	}

	switch cmd.Kind {
	case KindChangeBuffer:
		v, ok := args["id"]
		if !ok {
			return Command{}, fmt.Errorf("%w: %s needs id", ErrBadArgument, name)
		}
		n, err := toInt(v)
		if err != nil || n < 0 || n > math.MaxUint32 {
			return Command{}, fmt.Errorf("%w: %s id=%v", ErrBadArgument, name, v)
		}
		cmd.Buffer = buffer.ID(n)

	case KindInsertChar:
		s, ok := args["char"].(string)
		if !ok {
			return Command{}, fmt.Errorf("%w: %s needs a single char", ErrBadArgument, name)
		}
		p, err := key.Parse(s)
		if err != nil || p.IsModified() {
			return Command{}, fmt.Errorf("%w: %s char=%q", ErrBadArgument, name, s)
		}
		cmd.Rune = p.Rune

	case KindSetStyle:
		s, ok := args["tag"].(string)
		if !ok {
			return Command{}, fmt.Errorf("%w: %s needs a tag", ErrBadArgument, name)
		}
		tag, err := theme.ParseTag(s)
		if err != nil || !tag.IsText() {
			return Command{}, fmt.Errorf("%w: %s tag=%q", ErrBadArgument, name, s)
		}
		cmd.Tag = tag
	}

	return cmd, nil
}

// ParseString parses "name key=value ..." as produced by Command.String.
func ParseString(s string) (Command, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty", ErrUnknownAction)
	}

	var args map[string]any
	for _, f := range fields[1:] {
		k, v, ok := strings.Cut(f, "=")
		if !ok || k == "" {
			return Command{}, fmt.Errorf("%w: %q in %q", ErrBadArgument, f, s)
		}
		if args == nil {
			args = make(map[string]any)
		}
		args[k] = v
	}
	return Parse(fields[0], args)
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, ErrBadArgument
		}
		return int(n), nil
	case string:
		return strconv.Atoi(n)
	}
	return 0, ErrBadArgument
}
