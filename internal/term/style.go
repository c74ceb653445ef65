package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ethanxxxl/steve/internal/input/mode"
	"github.com/ethanxxxl/steve/internal/theme"
)

// convertStyle converts a theme style to tcell.Style.
func convertStyle(s theme.Style) tcell.Style {
	style := tcell.StyleDefault
	if !s.Foreground.IsDefault() {
		style = style.Foreground(convertColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		style = style.Background(convertColor(s.Background))
	}

	a := s.Attributes
	return style.
		Bold(a.Has(theme.AttrBold)).
		Dim(a.Has(theme.AttrDim)).
		Italic(a.Has(theme.AttrItalic)).
		Underline(a.Has(theme.AttrUnderline)).
		Reverse(a.Has(theme.AttrReverse))
}

func convertColor(c theme.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func cursorStyle(m mode.Mode) tcell.CursorStyle {
	switch m.CursorStyle() {
	case mode.CursorBar:
		return tcell.CursorStyleSteadyBar
	case mode.CursorUnderline:
		return tcell.CursorStyleSteadyUnderline
	default:
		return tcell.CursorStyleSteadyBlock
	}
}
