package editor

import (
	"github.com/ethanxxxl/steve/internal/input/mode"
	"github.com/ethanxxxl/steve/internal/logging"
	"github.com/ethanxxxl/steve/internal/theme"
)

// Option configures a State.
type Option func(*State)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logging.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.log = l
		}
	}
}

// WithTheme sets the theme used by SectionText.
func WithTheme(t *theme.Theme) Option {
	return func(s *State) {
		if t != nil {
			s.theme = t
		}
	}
}

// WithInitialMode sets the starting mode. Invalid modes are ignored.
func WithInitialMode(m mode.Mode) Option {
	return func(s *State) {
		if m.Valid() {
			s.mode = m
		}
	}
}

// WithoutDefaultKeymaps starts with empty chains except for the two
// bindings every editor needs: Normal "i" and Insert "<Esc>".
func WithoutDefaultKeymaps() Option {
	return func(s *State) {
		s.minimalKeymap = true
	}
}
