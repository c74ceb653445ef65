package editor

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ethanxxxl/steve/internal/command"
	"github.com/ethanxxxl/steve/internal/engine/buffer"
	"github.com/ethanxxxl/steve/internal/input/chain"
	"github.com/ethanxxxl/steve/internal/input/key"
	"github.com/ethanxxxl/steve/internal/input/keymap"
	"github.com/ethanxxxl/steve/internal/input/mode"
	"github.com/ethanxxxl/steve/internal/logging"
	"github.com/ethanxxxl/steve/internal/theme"
)

// BufferInfo describes a background buffer.
type BufferInfo struct {
	ID      buffer.ID
	Path    string
	HasPath bool
}

// String returns "id" or "id path".
func (bi BufferInfo) String() string {
	if bi.HasPath {
		return fmt.Sprintf("%d %s", bi.ID, bi.Path)
	}
	return fmt.Sprintf("%d", bi.ID)
}

// State is the editor orchestrator.
type State struct {
	active  buffer.Buffer
	buffers []buffer.Buffer // sorted by id
	nextID  buffer.ID

	mode       mode.Mode
	dispatcher *chain.Dispatcher

	status  string
	message string

	theme         *theme.Theme
	log           *logging.Logger
	minimalKeymap bool
}

// New creates an editor with a scratch buffer (id 0) active, an empty
// registry, and the default keymaps bound. The initial mode is Normal.
func New(opts ...Option) *State {
	s := &State{
		active: *buffer.New(0),
		nextID: 1,
		mode:   mode.Normal,
		theme:  theme.Default(),
		log:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithComponent("editor")

	if err := s.ReloadKeymaps(); err != nil {
		// Built-in keymaps are fixed; a failure here is a bug.
		panic(fmt.Sprintf("editor: default keymaps: %v", err))
	}
	s.Update()
	return s
}

// baseKeymaps returns the keymaps applied before any user keymap.
func (s *State) baseKeymaps() []*keymap.Keymap {
	if s.minimalKeymap {
		return []*keymap.Keymap{
			keymap.NewKeymap("minimal-normal").ForMode("normal").Add("i", "mode.insert"),
			keymap.NewKeymap("minimal-insert").ForMode("insert").Add("<Esc>", "mode.normal"),
		}
	}
	return keymap.Default()
}

// ReloadKeymaps rebuilds every chain from the built-in keymaps followed by
// kms. Errors from kms are joined and returned; the bindings that were
// valid stay applied.
func (s *State) ReloadKeymaps(kms ...*keymap.Keymap) error {
	d := chain.NewDispatcher()
	for _, km := range s.baseKeymaps() {
		if err := km.Apply(d); err != nil {
			return err
		}
	}
	s.dispatcher = d

	var errs []error
	for _, km := range kms {
		if err := s.ApplyKeymap(km); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ApplyKeymap binds km on top of the current chains.
func (s *State) ApplyKeymap(km *keymap.Keymap) error {
	err := km.Apply(s.dispatcher)
	if err != nil {
		s.log.WithField("keymap", km.Name).Warn("keymap applied with errors: %v", err)
	} else {
		s.log.Debug("applied keymap %q (%d bindings)", km.Name, len(km.Bindings))
	}
	return err
}

// Dispatcher returns the key dispatcher holding the per-mode chains.
func (s *State) Dispatcher() *chain.Dispatcher {
	return s.dispatcher
}

// Mode returns the current mode.
func (s *State) Mode() mode.Mode {
	return s.mode
}

// Active returns the active buffer. The pointer is valid until the next
// buffer switch.
func (s *State) Active() *buffer.Buffer {
	return &s.active
}

// Theme returns the theme.
func (s *State) Theme() *theme.Theme {
	return s.theme
}

// SetTheme replaces the theme. A nil theme is ignored.
func (s *State) SetTheme(t *theme.Theme) {
	if t != nil {
		s.theme = t
	}
}

// Logger returns the editor's logger.
func (s *State) Logger() *logging.Logger {
	return s.log
}

// StatusLine returns the status computed by the last Update.
func (s *State) StatusLine() string {
	return s.status
}

// Message returns the last message for the user, such as a buffer list or
// a failed command.
func (s *State) Message() string {
	return s.message
}

// SetMessage replaces the message for the user.
func (s *State) SetMessage(msg string) {
	s.message = msg
}

// Pending returns the keys of a partially typed sequence in notation.
func (s *State) Pending() string {
	return key.FormatSequence(s.dispatcher.Pending())
}

// Update recomputes the status line: "[MODE] [line:col]".
func (s *State) Update() {
	c := s.active.Cursor()
	s.status = fmt.Sprintf("[%s] [%d:%d]", s.mode, c.Line, c.Column)
}

// SetMode switches modes and abandons any sequence in flight.
func (s *State) SetMode(m mode.Mode) {
	if !m.Valid() {
		return
	}
	if m != s.mode {
		s.log.Debug("mode %s -> %s", s.mode.Name(), m.Name())
	}
	s.mode = m
	s.dispatcher.Reset()
}

// HandleKey feeds one key press through the dispatcher for the current
// mode and updates the status line.
func (s *State) HandleKey(k key.Press) chain.Result {
	r := s.dispatcher.Dispatch(s.mode, k)

	switch r.Kind {
	case chain.Fired:
		s.log.Debug("%s fired %s", key.FormatSequence(r.Keys), r.Command)
		if err := s.Execute(r.Command); err != nil {
			s.log.Warn("%s: %v", r.Command.Name(), err)
			s.message = err.Error()
		}

	case chain.Unmatched:
		if s.mode.InsertsUnmatched() && !k.IsModified() {
			s.active.InsertAtCursor(k.Rune)
		}

	case chain.Aborted:
		s.log.Debug("sequence %s aborted", key.FormatSequence(r.Keys))
	}

	s.Update()
	return r
}

// CreateEmptyBuffer adds an empty background buffer and returns its id.
// Ids start at 1, strictly increase and are never reused.
func (s *State) CreateEmptyBuffer() buffer.ID {
	id := s.nextID
	s.nextID++
	s.insertBuffer(*buffer.New(id))
	s.log.Debug("created buffer %d", id)
	return id
}

// ChangeBuffer makes buffer id active. The previously active buffer moves
// into the registry. Only registry ids are valid targets: the active id
// and unknown ids return a *BufferNotFoundError and change nothing.
func (s *State) ChangeBuffer(id buffer.ID) error {
	i, ok := s.findBuffer(id)
	if !ok {
		return &BufferNotFoundError{ID: id}
	}

	s.active, s.buffers[i] = s.buffers[i], s.active
	s.resortBuffer(i)
	s.log.Debug("active buffer is now %d", id)
	s.Update()
	return nil
}

// NextBuffer activates the background buffer with the smallest id above
// the active one, wrapping to the lowest id. It returns false when the
// registry is empty.
func (s *State) NextBuffer() bool {
	if len(s.buffers) == 0 {
		return false
	}
	cur := s.active.ID()
	i := sort.Search(len(s.buffers), func(i int) bool { return s.buffers[i].ID() > cur })
	if i == len(s.buffers) {
		i = 0
	}
	return s.ChangeBuffer(s.buffers[i].ID()) == nil
}

// BufferList returns the background buffers in id order.
func (s *State) BufferList() []BufferInfo {
	out := make([]BufferInfo, len(s.buffers))
	for i := range s.buffers {
		path, ok := s.buffers[i].Path()
		out[i] = BufferInfo{ID: s.buffers[i].ID(), Path: path, HasPath: ok}
	}
	return out
}

// BufferCount returns the number of buffers, active included.
func (s *State) BufferCount() int {
	return len(s.buffers) + 1
}

func (s *State) findBuffer(id buffer.ID) (int, bool) {
	i := sort.Search(len(s.buffers), func(i int) bool { return s.buffers[i].ID() >= id })
	return i, i < len(s.buffers) && s.buffers[i].ID() == id
}

func (s *State) insertBuffer(b buffer.Buffer) {
	i, _ := s.findBuffer(b.ID())
	s.buffers = append(s.buffers, buffer.Buffer{})
	copy(s.buffers[i+1:], s.buffers[i:])
	s.buffers[i] = b
}

// resortBuffer moves the entry at i to its sorted position.
func (s *State) resortBuffer(i int) {
	b := s.buffers[i]
	s.buffers = append(s.buffers[:i], s.buffers[i+1:]...)
	s.insertBuffer(b)
}

func (s *State) formatBufferList() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "buffers: *%s", BufferInfo{ID: s.active.ID()})
	for _, bi := range s.BufferList() {
		sb.WriteString(", ")
		sb.WriteString(bi.String())
	}
	return sb.String()
}

// Execute runs cmd against the editor and updates the status line.
func (s *State) Execute(cmd command.Command) error {
	err := s.execute(cmd)
	s.Update()
	return err
}

func (s *State) execute(cmd command.Command) error {
	b := &s.active
	n := cmd.Times()

	switch cmd.Kind {
	case command.KindNone:
		return nil

	case command.KindSetMode:
		if !cmd.Mode.Valid() {
			return fmt.Errorf("%w: %d", mode.ErrUnknownMode, cmd.Mode)
		}
		s.SetMode(cmd.Mode)

	case command.KindInsertChar:
		for i := 0; i < n; i++ {
			b.InsertAtCursor(cmd.Rune)
		}

	case command.KindDeleteChar:
		for i := 0; i < n; i++ {
			if _, err := b.DeleteAtCursor(); err != nil {
				return err
			}
		}

	case command.KindDeleteLine:
		for i := 0; i < n; i++ {
			b.DeleteLine()
		}

	case command.KindInsertLineAbove:
		for i := 0; i < n; i++ {
			b.InsertLineAbove(nil)
		}

	case command.KindInsertLineBelow:
		for i := 0; i < n; i++ {
			b.InsertLineBelow(nil)
		}

	case command.KindOpenBelow:
		b.InsertLineBelow(nil)
		b.MoveDown(1)
		b.MoveLineStart()
		s.SetMode(mode.Insert)

	case command.KindOpenAbove:
		b.InsertLineAbove(nil)
		b.MoveUp(1)
		b.MoveLineStart()
		s.SetMode(mode.Insert)

	case command.KindAppend:
		b.MoveRight(1)
		s.SetMode(mode.Insert)

	case command.KindMoveLeft:
		b.MoveLeft(n)
	case command.KindMoveRight:
		b.MoveRight(n)
	case command.KindMoveUp:
		b.MoveUp(n)
	case command.KindMoveDown:
		b.MoveDown(n)
	case command.KindMoveLineStart:
		b.MoveLineStart()
	case command.KindMoveLineEnd:
		b.MoveLineEnd()

	case command.KindNewBuffer:
		return s.ChangeBuffer(s.CreateEmptyBuffer())

	case command.KindNextBuffer:
		if !s.NextBuffer() {
			s.message = "no other buffers"
		}

	case command.KindChangeBuffer:
		return s.ChangeBuffer(cmd.Buffer)

	case command.KindListBuffers:
		s.message = s.formatBufferList()
		s.log.Info("%s", s.message)

	case command.KindSetStyle:
		b.SetStyle(cmd.Tag)

	default:
		return fmt.Errorf("%w: kind %d", command.ErrUnknownAction, cmd.Kind)
	}
	return nil
}
