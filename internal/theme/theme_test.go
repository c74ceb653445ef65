package theme

import (
	"errors"
	"testing"

	"github.com/ethanxxxl/steve/internal/input/mode"
)

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FF8000", ColorFromRGB(255, 128, 0)},
		{"ff8000", ColorFromRGB(255, 128, 0)},
		{"#fff", ColorFromRGB(255, 255, 255)},
		{"", ColorDefault},
		{"default", ColorDefault},
	}
	for _, tt := range tests {
		got, err := ColorFromHex(tt.in)
		if err != nil {
			t.Errorf("ColorFromHex(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ColorFromHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"#GGGGGG", "#12345", "blue"} {
		if _, err := ColorFromHex(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ColorFromHex(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestColorString(t *testing.T) {
	if got := ColorFromRGB(1, 2, 255).String(); got != "#0102FF" {
		t.Errorf("String() = %q", got)
	}
	if got := ColorDefault.String(); got != "default" {
		t.Errorf("String() = %q", got)
	}
}

func TestBlend(t *testing.T) {
	black := ColorFromRGB(0, 0, 0)
	white := ColorFromRGB(255, 255, 255)

	if got := black.Blend(white, 0); got != black {
		t.Errorf("Blend(0) = %v, want black", got)
	}
	if got := black.Blend(white, 1); got != white {
		t.Errorf("Blend(1) = %v, want white", got)
	}
	mid := black.Blend(white, 0.5)
	if l := mid.Luminance(); l < 0.4 || l > 0.6 {
		t.Errorf("Blend(0.5) luminance = %v, want about 0.5", l)
	}
	if got := ColorDefault.Blend(white, 0.2); got != ColorDefault {
		t.Errorf("default Blend(0.2) = %v", got)
	}
}

func TestParseTag(t *testing.T) {
	for tag := Tag(0); tag < TagCount; tag++ {
		got, err := ParseTag(tag.String())
		if err != nil || got != tag {
			t.Errorf("ParseTag(%q) = %v, %v", tag.String(), got, err)
		}
	}
	if _, err := ParseTag("sparkle"); !errors.Is(err, ErrUnknownTag) {
		t.Errorf("ParseTag(sparkle) error = %v", err)
	}
}

func TestDefaultTheme(t *testing.T) {
	th := Default()
	if !th.Style(Cursor).Attributes.Has(AttrReverse) {
		t.Error("cursor style is not reverse video")
	}
	if th.Style(Normal) != DefaultStyle() {
		t.Errorf("normal style = %+v", th.Style(Normal))
	}
	if th.ModeStyle(mode.Insert) == th.ModeStyle(mode.Normal) {
		t.Error("insert and normal mode styles are identical")
	}
}

func TestZeroThemeFallsBack(t *testing.T) {
	var th Theme
	if got := th.Style(Keyword); got != DefaultStyle() {
		t.Errorf("zero theme Style = %+v", got)
	}

	th.Set(Normal, DefaultStyle().Bold())
	if got := th.Style(Keyword); !got.Attributes.Has(AttrBold) {
		t.Errorf("unset tag did not fall back to Normal: %+v", got)
	}
}

func TestApply(t *testing.T) {
	th := Default()
	err := th.Apply(map[string]Spec{
		"keyword": {Fg: "#FF0000", Bold: true},
		"cursor":  {Bg: "#00FF00"},
		"bogus":   {Fg: "#000000"},
		"comment": {Fg: "nope"},
	})

	if !errors.Is(err, ErrUnknownTag) || !errors.Is(err, ErrInvalidColor) {
		t.Errorf("Apply error = %v, want both ErrUnknownTag and ErrInvalidColor", err)
	}

	kw := th.Style(Keyword)
	if kw.Foreground != ColorFromRGB(255, 0, 0) || !kw.Attributes.Has(AttrBold) {
		t.Errorf("keyword = %+v", kw)
	}
	if th.Style(Cursor).Background != ColorFromRGB(0, 255, 0) {
		t.Errorf("cursor = %+v", th.Style(Cursor))
	}
	if th.Style(Comment) != Default().Style(Comment) {
		t.Error("bad override replaced comment style")
	}
}

func TestCloneIndependent(t *testing.T) {
	a := Default()
	b := a.Clone()
	b.Set(Normal, DefaultStyle().Underline())
	if a.Style(Normal).Attributes.Has(AttrUnderline) {
		t.Error("Clone shares styles")
	}
}

func TestMerge(t *testing.T) {
	base := DefaultStyle().WithForeground(ColorFromRGB(1, 1, 1)).Bold()
	got := base.Merge(DefaultStyle().WithBackground(ColorFromRGB(2, 2, 2)).Italic())
	if got.Foreground != ColorFromRGB(1, 1, 1) || got.Background != ColorFromRGB(2, 2, 2) {
		t.Errorf("Merge colors = %+v", got)
	}
	if !got.Attributes.Has(AttrBold) || !got.Attributes.Has(AttrItalic) {
		t.Errorf("Merge attrs = %v", got.Attributes)
	}
}

func TestSpecContrast(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want Color
	}{
		{"light background", Spec{Bg: "#FFFF00"}, ColorFromRGB(0, 0, 0)},
		{"dark background", Spec{Bg: "#000080"}, ColorFromRGB(255, 255, 255)},
		{"explicit fg kept", Spec{Fg: "#FF0000", Bg: "#FFFF00"}, ColorFromRGB(255, 0, 0)},
		{"no background", Spec{}, ColorDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.spec.Style()
			if err != nil {
				t.Fatal(err)
			}
			if s.Foreground != tt.want {
				t.Errorf("fg = %v, want %v", s.Foreground, tt.want)
			}
		})
	}
}

func TestSpecAttributes(t *testing.T) {
	tests := []struct {
		spec Spec
		want Attribute
	}{
		{Spec{}, AttrNone},
		{Spec{Bold: true}, AttrBold},
		{Spec{Dim: true}, AttrDim},
		{Spec{Dim: true, Italic: true}, AttrDim | AttrItalic},
		{Spec{Underline: true, Reverse: true}, AttrUnderline | AttrReverse},
	}
	for _, tt := range tests {
		s, err := tt.spec.Style()
		if err != nil {
			t.Fatal(err)
		}
		if s.Attributes != tt.want {
			t.Errorf("%+v attrs = %b, want %b", tt.spec, s.Attributes, tt.want)
		}
	}
}
