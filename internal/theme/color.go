package theme

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Errors returned while building a theme.
var (
	ErrUnknownTag   = errors.New("unknown theme tag")
	ErrInvalidColor = errors.New("invalid color")
)

// Color is a true color or the terminal default.
type Color struct {
	R, G, B uint8

	// Default indicates the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// ColorFromRGB creates a true color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromHex parses "#RRGGBB" or "#RGB". The empty string and "default"
// yield ColorDefault.
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" || strings.EqualFold(hex, "default") {
		return ColorDefault, nil
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustHex parses a color and panics on error. Use only for literals.
func MustHex(hex string) Color {
	c, err := ColorFromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// IsDefault returns true if this is the default/transparent color.
func (c Color) IsDefault() bool {
	return c.Default
}

// String returns "#RRGGBB" or "default".
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Blend mixes c toward other in Lab space. Amount 0.0 = c, 1.0 = other.
// Blending with the default color picks whichever side is closer.
func (c Color) Blend(other Color, amount float64) Color {
	if c.Default || other.Default {
		if amount < 0.5 {
			return c
		}
		return other
	}
	if amount <= 0 {
		return c
	}
	if amount >= 1 {
		return other
	}
	r, g, b := c.colorful().BlendLab(other.colorful(), amount).Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// Luminance returns the perceived lightness of c in [0, 1].
func (c Color) Luminance() float64 {
	l, _, _ := c.colorful().Lab()
	return l
}

// Contrast returns black or white, whichever reads better on c.
func (c Color) Contrast() Color {
	if c.Default {
		return ColorDefault
	}
	if c.Luminance() > 0.6 {
		return Color{}
	}
	return Color{R: 255, G: 255, B: 255}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
