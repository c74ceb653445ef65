// Package keymap provides key binding data for the steve editor.
//
// A Keymap is a named list of bindings for one mode (or every mode when
// Mode is empty). Keymaps are plain data: they come from the built-in
// defaults, JSON files, the [keymap.<mode>] tables of the config file, or
// Lua scripts, and are compiled into chain.Chain tries with Apply.
//
// # Key Sequences
//
// Keys use Vim notation and may be written continuous or space separated:
//
//	"i"          - single key
//	"d d"        - two keys
//	"<C-w>v"     - Ctrl+W then v
//	"<Space>bn"  - leader group
//
// # Actions
//
// Actions are dotted command names, optionally followed by arguments:
//
//	{"keys": "j", "action": "cursor.down"}
//	{"keys": "<Space>b1", "action": "buffer.switch id=1"}
//	{"keys": "J", "action": "cursor.down", "args": {"count": 5}}
//
// # Usage
//
//	d := chain.NewDispatcher()
//	for _, km := range keymap.Default() {
//	    if err := km.Apply(d); err != nil {
//	        return err
//	    }
//	}
package keymap
