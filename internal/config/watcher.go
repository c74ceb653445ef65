package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned by Add after Close.
var ErrWatcherClosed = errors.New("watcher closed")

// Watcher reports changes to a set of files and directories. Bursts of
// events are coalesced: one value arrives on Changes after the files have
// been quiet for the debounce interval.
//
// Files are watched through their parent directory so that editors which
// save by renaming a temporary file are still seen.
type Watcher struct {
	mu sync.Mutex

	fsw      *fsnotify.Watcher
	files    map[string]bool // watched files
	dirs     map[string]bool // directories whose every entry matters
	watching map[string]bool // directories added to fsnotify
	debounce time.Duration

	changes chan struct{}
	errors  chan error

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period before a change is reported.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// NewWatcher starts a watcher with nothing watched.
func NewWatcher(opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		watching: make(map[string]bool),
		debounce: 150 * time.Millisecond,
		changes:  make(chan struct{}, 1),
		errors:   make(chan error, 8),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.processLoop()
	return w, nil
}

// Add watches path. A directory reports changes to any entry; a file
// reports changes to itself only. The path need not exist yet, but its
// parent directory must.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	if isDir(abs) {
		if !w.watching[abs] {
			if err := w.fsw.Add(abs); err != nil {
				return err
			}
			w.watching[abs] = true
		}
		w.dirs[abs] = true
		return nil
	}

	dir := filepath.Dir(abs)
	if !w.watching[dir] {
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
		w.watching[dir] = true
	}
	w.files[abs] = true
	return nil
}

// Changes delivers one value per quiet burst of changes.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Errors delivers errors reported by the underlying watcher.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Done is closed when the watcher is closed.
func (w *Watcher) Done() <-chan struct{} {
	return w.closeCh
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.wg.Wait()
	return w.fsw.Close()
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case w.changes <- struct{}{}:
			default:
				// A change is already pending.
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
		!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}

	name, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[name] || w.dirs[filepath.Dir(name)]
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
