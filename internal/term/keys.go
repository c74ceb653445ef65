package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ethanxxxl/steve/internal/input/key"
)

// QuitKey ends the event loop.
var QuitKey = key.New('q', key.ModControl)

// convertKey converts a tcell key event to a press. Keys with no
// character, such as arrows and function keys, report false.
func convertKey(ev *tcell.EventKey) (key.Press, bool) {
	var mods key.Modifier
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if ev.Modifiers()&tcell.ModMeta != 0 {
		mods = mods.With(key.ModLogo)
	}

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			mods = mods.With(key.ModControl)
		}
		return key.New(ev.Rune(), mods), true
	case k == tcell.KeyEscape:
		return key.New(key.Escape, mods), true
	case k == tcell.KeyEnter:
		return key.New(key.Return, mods), true
	case k == tcell.KeyTab:
		return key.New(key.Tab, mods), true
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		return key.New(key.Backspace, mods), true
	case k == tcell.KeyCtrlSpace:
		return key.New(key.Space, mods.With(key.ModControl)), true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.New('a'+rune(k-tcell.KeyCtrlA), mods.With(key.ModControl)), true
	}
	return key.Press{}, false
}
