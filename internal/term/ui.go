package term

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/ethanxxxl/steve/internal/editor"
	"github.com/ethanxxxl/steve/internal/logging"
	"github.com/ethanxxxl/steve/internal/theme"
)

// ErrScreenClosed is returned by Run when the screen stops delivering
// events.
var ErrScreenClosed = errors.New("screen closed")

// ReloadFunc rebuilds editor configuration. It runs on the event loop
// goroutine, so it may touch the editor.
type ReloadFunc func(*editor.State) error

type reloadRequest struct{}

type quitRequest struct{}

// UI owns a screen and drives an editor from its events.
type UI struct {
	screen tcell.Screen
	state  *editor.State
	reload ReloadFunc
	log    *logging.Logger

	// top is the first buffer line shown.
	top int
}

// Option configures a UI.
type Option func(*UI)

// WithReload sets the function run for RequestReload.
func WithReload(fn ReloadFunc) Option {
	return func(u *UI) {
		u.reload = fn
	}
}

// WithLogger sets the UI logger.
func WithLogger(l *logging.Logger) Option {
	return func(u *UI) {
		if l != nil {
			u.log = l
		}
	}
}

// New creates a UI on an initialized screen.
func New(screen tcell.Screen, state *editor.State, opts ...Option) *UI {
	u := &UI{
		screen: screen,
		state:  state,
		log:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(u)
	}
	u.log = u.log.WithComponent("term")
	return u
}

// RequestReload asks the event loop to run the reload function. It is
// safe to call from any goroutine.
func (u *UI) RequestReload() {
	if err := u.screen.PostEvent(tcell.NewEventInterrupt(reloadRequest{})); err != nil {
		u.log.Warn("reload request dropped: %v", err)
	}
}

// Run draws the editor and processes events until QuitKey is pressed or
// ctx is done.
func (u *UI) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = u.screen.PostEvent(tcell.NewEventInterrupt(quitRequest{}))
	})
	defer stop()

	u.state.Update()
	u.Draw()
	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return ErrScreenClosed
		}
		if !u.HandleEvent(ev) {
			return ctx.Err()
		}
		u.Draw()
	}
}

// HandleEvent applies one screen event. It reports false when the loop
// should stop.
func (u *UI) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, ok := convertKey(ev)
		if !ok {
			return true
		}
		if k == QuitKey {
			return false
		}
		u.state.HandleKey(k)
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventInterrupt:
		switch ev.Data().(type) {
		case quitRequest:
			return false
		case reloadRequest:
			u.runReload()
		}
	}
	return true
}

func (u *UI) runReload() {
	if u.reload == nil {
		return
	}
	if err := u.reload(u.state); err != nil {
		u.log.Warn("reload: %v", err)
		u.state.SetMessage("reload: " + err.Error())
		return
	}
	u.log.Info("configuration reloaded")
	u.state.SetMessage("configuration reloaded")
}

// Draw paints the editor onto the screen.
func (u *UI) Draw() {
	u.screen.Clear()
	w, h := u.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}

	textRows := h - 1
	active := u.state.Active()
	u.scrollTo(min(active.Cursor().Line, active.LineCount())-1, textRows)

	disp := u.state.DisplayBuffer()
	lines := u.state.SectionText(disp)
	cx, cy := -1, -1
	for row := 0; row < textRows && u.top+row < len(lines); row++ {
		x := 0
		for _, sec := range lines[u.top+row] {
			style := convertStyle(sec.Style)
			for _, r := range sec.Text {
				if sec.Tag == theme.Cursor {
					cx, cy = x, row
				}
				x = u.put(x, row, w, r, style)
			}
		}
	}

	u.drawStatus(h-1, w)

	if cx >= 0 && cx < w {
		u.screen.SetCursorStyle(cursorStyle(u.state.Mode()))
		u.screen.ShowCursor(cx, cy)
	} else {
		u.screen.HideCursor()
	}
	u.screen.Show()
}

// scrollTo adjusts top so line (0-based) is within rows.
func (u *UI) scrollTo(line, rows int) {
	if rows <= 0 {
		u.top = line
		return
	}
	if line < 0 {
		line = 0
	}
	if line < u.top {
		u.top = line
	}
	if line >= u.top+rows {
		u.top = line - rows + 1
	}
}

// put draws r at (x, y) and returns the next column.
func (u *UI) put(x, y, w int, r rune, style tcell.Style) int {
	rw := runewidth.RuneWidth(r)
	if rw == 0 {
		rw = 1
	}
	if x+rw <= w {
		u.screen.SetContent(x, y, r, nil, style)
	}
	return x + rw
}

// drawStatus paints the status line: the mode block, then pending keys
// and the message in the status style.
func (u *UI) drawStatus(y, w int) {
	th := u.state.Theme()
	base := convertStyle(th.Style(theme.Status))
	for x := 0; x < w; x++ {
		u.screen.SetContent(x, y, ' ', nil, base)
	}

	modeStyle := th.Style(theme.Status).Merge(th.ModeStyle(u.state.Mode()))
	x := u.drawString(0, y, w, u.state.StatusLine(), convertStyle(modeStyle))
	if p := u.state.Pending(); p != "" {
		x = u.drawString(x+1, y, w, p, base)
	}
	if msg := u.state.Message(); msg != "" {
		u.drawString(x+1, y, w, msg, base)
	}
}

// drawString draws s grapheme by grapheme, stopping at the first cluster
// that does not fit. It returns the next column.
func (u *UI) drawString(x, y, w int, s string, style tcell.Style) int {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Runes()
		cw := g.Width()
		if cw == 0 {
			continue
		}
		if x+cw > w {
			break
		}
		u.screen.SetContent(x, y, cluster[0], cluster[1:], style)
		x += cw
	}
	return x
}
