// Package lua runs keymap scripts.
//
// Scripts run in a gopher-lua state with only the base, table, string and
// math libraries opened. They describe bindings through a global "steve"
// table:
//
//	steve.bind("normal", "J", "cursor.down", {count = 5, desc = "Down five"})
//	steve.bind("normal", "<Space>b1", "buffer.switch id=1")
//	steve.bind("all", "<C-s>", "buffer.list")
//	steve.unbind("normal", "J")
//	for _, a in ipairs(steve.actions()) do steve.log(a) end
//
// Bindings are validated as they are made, so a bad binding fails the
// script with a line number. The collected bindings come back as keymaps
// ready for the editor.
package lua
