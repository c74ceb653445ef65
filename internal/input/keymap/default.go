package keymap

// Default returns the built-in keymaps, one per mode.
func Default() []*Keymap {
	return []*Keymap{
		DefaultNormalKeymap(),
		DefaultInsertKeymap(),
		DefaultVisualKeymap(),
		DefaultCommandKeymap(),
	}
}

// DefaultNormalKeymap returns default normal mode bindings.
func DefaultNormalKeymap() *Keymap {
	return &Keymap{
		Name:   "default-normal",
		Mode:   "normal",
		Source: "default",
		Bindings: []Binding{
			// Movement
			{Keys: "h", Action: "cursor.left", Description: "Move left", Category: "Movement"},
			{Keys: "j", Action: "cursor.down", Description: "Move down", Category: "Movement"},
			{Keys: "k", Action: "cursor.up", Description: "Move up", Category: "Movement"},
			{Keys: "l", Action: "cursor.right", Description: "Move right", Category: "Movement"},
			{Keys: "0", Action: "cursor.lineStart", Description: "Move to line start", Category: "Movement"},
			{Keys: "$", Action: "cursor.lineEnd", Description: "Move to line end", Category: "Movement"},

			// Mode switching
			{Keys: "i", Action: "mode.insert", Description: "Insert before cursor", Category: "Mode"},
			{Keys: "a", Action: "mode.append", Description: "Insert after cursor", Category: "Mode"},
			{Keys: "o", Action: "mode.openBelow", Description: "Open line below", Category: "Mode"},
			{Keys: "O", Action: "mode.openAbove", Description: "Open line above", Category: "Mode"},
			{Keys: "v", Action: "mode.visual", Description: "Visual mode", Category: "Mode"},
			{Keys: ":", Action: "mode.command", Description: "Command mode", Category: "Mode"},

			// Editing
			{Keys: "x", Action: "editor.deleteChar", Description: "Delete character", Category: "Edit"},
			{Keys: "d d", Action: "editor.deleteLine", Description: "Delete line", Category: "Edit"},

			// Buffers
			{Keys: "<Space>bn", Action: "buffer.new", Description: "New buffer", Category: "Buffer"},
			{Keys: "<Space>bl", Action: "buffer.list", Description: "List buffers", Category: "Buffer"},
			{Keys: "<Space>b]", Action: "buffer.next", Description: "Next buffer", Category: "Buffer"},
		},
	}
}

// DefaultInsertKeymap returns default insert mode bindings. Every other
// key is typed into the buffer.
func DefaultInsertKeymap() *Keymap {
	return &Keymap{
		Name:   "default-insert",
		Mode:   "insert",
		Source: "default",
		Bindings: []Binding{
			{Keys: "<Esc>", Action: "mode.normal", Description: "Return to normal mode", Category: "Mode"},

			// Styles
			{Keys: "<A-b>", Action: "style.set tag=bold", Description: "Type in bold", Category: "Style"},
			{Keys: "<A-i>", Action: "style.set tag=italic", Description: "Type in italic", Category: "Style"},
			{Keys: "<A-n>", Action: "style.set tag=normal", Description: "Type in normal style", Category: "Style"},
		},
	}
}

// DefaultVisualKeymap returns default visual mode bindings.
func DefaultVisualKeymap() *Keymap {
	return &Keymap{
		Name:   "default-visual",
		Mode:   "visual",
		Source: "default",
		Bindings: []Binding{
			{Keys: "<Esc>", Action: "mode.normal", Description: "Return to normal mode", Category: "Mode"},
		},
	}
}

// DefaultCommandKeymap returns default command mode bindings.
func DefaultCommandKeymap() *Keymap {
	return &Keymap{
		Name:   "default-command",
		Mode:   "command",
		Source: "default",
		Bindings: []Binding{
			{Keys: "<Esc>", Action: "mode.normal", Description: "Return to normal mode", Category: "Mode"},
		},
	}
}
