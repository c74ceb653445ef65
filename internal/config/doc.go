// Package config loads steve's configuration.
//
// Configuration is layered: built-in defaults, then the TOML file, then
// STEVE_* environment variables. The result is checked with Validate before
// use. A Watcher reports edits to the config file and to the keymap and
// script files it names, so a running editor can reload them.
//
// Example config.toml:
//
//	log_level = "debug"
//	initial_mode = "normal"
//	keymaps = ["keymaps"]        # JSON files or directories of them
//	scripts = ["init.lua"]
//	watch = true
//
//	[theme.cursor]
//	bg = "#FFAF00"
//
//	[keymap.normal]
//	"J" = "cursor.down count=5"
//	"<Space>b1" = "buffer.switch id=1"
package config
