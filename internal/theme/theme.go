package theme

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ethanxxxl/steve/internal/input/mode"
)

// Spec is the config file form of a style override.
type Spec struct {
	Fg        string `toml:"fg"`
	Bg        string `toml:"bg"`
	Bold      bool   `toml:"bold"`
	Dim       bool   `toml:"dim"`
	Italic    bool   `toml:"italic"`
	Underline bool   `toml:"underline"`
	Reverse   bool   `toml:"reverse"`
}

// Style builds the style sp describes.
func (sp Spec) Style() (Style, error) {
	fg, err := ColorFromHex(sp.Fg)
	if err != nil {
		return Style{}, fmt.Errorf("fg: %w", err)
	}
	bg, err := ColorFromHex(sp.Bg)
	if err != nil {
		return Style{}, fmt.Errorf("bg: %w", err)
	}
	// A background without a foreground gets a readable one.
	if sp.Fg == "" && !bg.IsDefault() {
		fg = bg.Contrast()
	}
	s := Style{Foreground: fg, Background: bg}
	if sp.Bold {
		s = s.Bold()
	}
	if sp.Dim {
		s = s.Dim()
	}
	if sp.Italic {
		s = s.Italic()
	}
	if sp.Underline {
		s = s.Underline()
	}
	if sp.Reverse {
		s = s.Reverse()
	}
	return s, nil
}

// Theme maps tags to styles. The zero value renders everything in the
// default style.
type Theme struct {
	styles [TagCount]Style
	set    [TagCount]bool
}

// Default returns the built-in theme.
func Default() *Theme {
	var (
		white   = MustHex("#FFFFFF")
		black   = MustHex("#000000")
		blue    = MustHex("#3A6EA5")
		green   = MustHex("#5F9F5F")
		magenta = MustHex("#9F5FAF")
		yellow  = MustHex("#D7AF5F")
	)

	t := &Theme{}
	t.Set(Normal, DefaultStyle())
	t.Set(Bold, DefaultStyle().Bold())
	t.Set(Italic, DefaultStyle().Italic())
	t.Set(BoldItalic, DefaultStyle().Bold().Italic())
	t.Set(Comment, DefaultStyle().WithForeground(MustHex("#808080")).Italic())
	t.Set(Number, DefaultStyle().WithForeground(MustHex("#D7875F")))
	t.Set(String, DefaultStyle().WithForeground(MustHex("#87AF5F")))
	t.Set(Keyword, DefaultStyle().WithForeground(MustHex("#5F87D7")).Bold())
	t.Set(Variable, DefaultStyle().WithForeground(MustHex("#D7D7AF")))
	t.Set(Function, DefaultStyle().WithForeground(MustHex("#87D7D7")))
	t.Set(Structure, DefaultStyle().WithForeground(MustHex("#D787D7")))
	t.Set(Cursor, DefaultStyle().Reverse())
	t.Set(Status, DefaultStyle().WithForeground(white).WithBackground(blue.Blend(black, 0.6)))
	t.Set(ModeNormal, DefaultStyle().Bold().WithForeground(white).WithBackground(blue))
	t.Set(ModeInsert, DefaultStyle().Bold().WithForeground(black).WithBackground(green))
	t.Set(ModeVisual, DefaultStyle().Bold().WithForeground(white).WithBackground(magenta))
	t.Set(ModeCommand, DefaultStyle().Bold().WithForeground(black).WithBackground(yellow))
	return t
}

// Style returns the style for tag. Tags without a style fall back to Normal.
func (t *Theme) Style(tag Tag) Style {
	if tag < TagCount && t.set[tag] {
		return t.styles[tag]
	}
	if t.set[Normal] {
		return t.styles[Normal]
	}
	return DefaultStyle()
}

// Set assigns the style for tag. Unknown tags are ignored.
func (t *Theme) Set(tag Tag, s Style) {
	if tag >= TagCount {
		return
	}
	t.styles[tag] = s
	t.set[tag] = true
}

// ModeStyle returns the mode indicator style for m.
func (t *Theme) ModeStyle(m mode.Mode) Style {
	switch m {
	case mode.Insert:
		return t.Style(ModeInsert)
	case mode.Visual:
		return t.Style(ModeVisual)
	case mode.Command:
		return t.Style(ModeCommand)
	default:
		return t.Style(ModeNormal)
	}
}

// Clone returns an independent copy.
func (t *Theme) Clone() *Theme {
	c := *t
	return &c
}

// Apply overrides styles from config specs keyed by tag name. Bad entries
// are skipped and reported together; good ones still apply.
func (t *Theme) Apply(specs map[string]Spec) error {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		tag, err := ParseTag(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s, err := specs[name].Style()
		if err != nil {
			errs = append(errs, fmt.Errorf("theme %s: %w", name, err))
			continue
		}
		t.Set(tag, s)
	}
	return errors.Join(errs...)
}
