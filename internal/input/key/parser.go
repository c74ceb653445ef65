package key

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrInvalidKey indicates a key specification could not be parsed.
var ErrInvalidKey = errors.New("invalid key specification")

// Parse parses one key in Vim notation: "a", "<Esc>", "<C-w>", "<U+001F>".
func Parse(spec string) (Press, error) {
	if spec == "" {
		return Press{}, fmt.Errorf("%w: empty", ErrInvalidKey)
	}

	if len(spec) > 2 && spec[0] == '<' && spec[len(spec)-1] == '>' {
		return parseBracketed(spec[1 : len(spec)-1])
	}

	r, size := utf8.DecodeRuneInString(spec)
	if r == utf8.RuneError || size != len(spec) {
		return Press{}, fmt.Errorf("%w: %q", ErrInvalidKey, spec)
	}
	return FromRune(r), nil
}

// parseBracketed parses the inside of a <...> key, e.g. "C-A-x" or "Esc".
func parseBracketed(inner string) (Press, error) {
	parts := strings.Split(inner, "-")

	// "<C-->" is Control plus the minus key. "<C->" names no key.
	keyPart := parts[len(parts)-1]
	modParts := parts[:len(parts)-1]
	if keyPart == "" {
		if len(parts) < 3 || parts[len(parts)-2] != "" {
			return Press{}, fmt.Errorf("%w: missing key in <%s>", ErrInvalidKey, inner)
		}
		keyPart = "-"
		modParts = parts[:len(parts)-2]
	}

	var mods Modifier
	for _, p := range modParts {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Press{}, fmt.Errorf("%w: unknown modifier %q in <%s>", ErrInvalidKey, p, inner)
		}
		mods = mods.With(mod)
	}

	r, err := parseKeyName(keyPart)
	if err != nil {
		return Press{}, fmt.Errorf("%w: <%s>", err, inner)
	}
	return New(r, mods), nil
}

func parseKeyName(name string) (rune, error) {
	if r, ok := keyNames[strings.ToLower(name)]; ok {
		return r, nil
	}

	if len(name) > 2 && (name[:2] == "U+" || name[:2] == "u+") {
		n, err := strconv.ParseUint(name[2:], 16, 32)
		if err != nil || !utf8.ValidRune(rune(n)) {
			return 0, fmt.Errorf("%w: bad code point %q", ErrInvalidKey, name)
		}
		return rune(n), nil
	}

	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || size != len(name) {
		return 0, fmt.Errorf("%w: unknown key %q", ErrInvalidKey, name)
	}
	return r, nil
}

// MustParse parses a key and panics on error.
// Use only for known-valid keys in initialization code.
func MustParse(spec string) Press {
	p, err := Parse(spec)
	if err != nil {
		panic("invalid key: " + spec + ": " + err.Error())
	}
	return p
}

// ParseSequence parses a key sequence. The string is either space separated
// ("g g", "<C-w> v") or continuous ("gg", "<Space>bn").
func ParseSequence(s string) ([]Press, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty sequence", ErrInvalidKey)
	}

	if strings.ContainsAny(s, " \t") {
		fields := strings.Fields(s)
		seq := make([]Press, 0, len(fields))
		for _, f := range fields {
			p, err := Parse(f)
			if err != nil {
				return nil, err
			}
			seq = append(seq, p)
		}
		return seq, nil
	}

	seq := make([]Press, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] == '<' {
			if end := strings.IndexByte(s[i+1:], '>'); end > 0 {
				p, err := Parse(s[i : i+end+2])
				if err != nil {
					return nil, err
				}
				seq = append(seq, p)
				i += end + 2
				continue
			}
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, fmt.Errorf("%w: invalid UTF-8 at byte %d", ErrInvalidKey, i)
		}
		seq = append(seq, FromRune(r))
		i += size
	}
	return seq, nil
}

// MustParseSequence parses a sequence and panics on error.
func MustParseSequence(s string) []Press {
	seq, err := ParseSequence(s)
	if err != nil {
		panic("invalid key sequence: " + s + ": " + err.Error())
	}
	return seq
}

// FormatSequence renders a sequence in continuous Vim notation.
// The result parses back to the same presses.
func FormatSequence(seq []Press) string {
	var sb strings.Builder
	for _, p := range seq {
		sb.WriteString(p.String())
	}
	return sb.String()
}
