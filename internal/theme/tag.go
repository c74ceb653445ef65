package theme

import (
	"fmt"
	"strings"
)

// Tag is a semantic label for a run of text.
type Tag uint8

const (
	Normal Tag = iota
	Bold
	Italic
	BoldItalic
	Comment
	Number
	String
	Keyword
	Variable
	Function
	Structure

	// Cursor marks the cursor glyph.
	Cursor

	// Status is the status line background.
	Status

	// ModeNormal through ModeCommand style the mode indicator.
	ModeNormal
	ModeInsert
	ModeVisual
	ModeCommand

	// TagCount is the number of tags.
	TagCount
)

var tagNames = [TagCount]string{
	Normal:      "normal",
	Bold:        "bold",
	Italic:      "italic",
	BoldItalic:  "bold_italic",
	Comment:     "comment",
	Number:      "number",
	String:      "string",
	Keyword:     "keyword",
	Variable:    "variable",
	Function:    "function",
	Structure:   "structure",
	Cursor:      "cursor",
	Status:      "status",
	ModeNormal:  "mode_normal",
	ModeInsert:  "mode_insert",
	ModeVisual:  "mode_visual",
	ModeCommand: "mode_command",
}

// String returns the config name of the tag.
func (t Tag) String() string {
	if t < TagCount {
		return tagNames[t]
	}
	return fmt.Sprintf("tag(%d)", uint8(t))
}

// IsText reports whether t styles buffer text rather than editor chrome
// such as the cursor or the status line.
func (t Tag) IsText() bool {
	return t < Cursor
}

// ParseTag parses a tag name as used in the [theme] config table.
func ParseTag(s string) (Tag, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range tagNames {
		if name == s {
			return Tag(t), nil
		}
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownTag, s)
}
