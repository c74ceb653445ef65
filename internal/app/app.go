package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/ethanxxxl/steve/internal/config"
	"github.com/ethanxxxl/steve/internal/editor"
	"github.com/ethanxxxl/steve/internal/input/keymap"
	"github.com/ethanxxxl/steve/internal/logging"
	"github.com/ethanxxxl/steve/internal/plugin/lua"
	"github.com/ethanxxxl/steve/internal/term"
)

// Options configures the application. Non-empty fields override the
// config file and the environment.
type Options struct {
	// ConfigPath is the config file. Empty means config.DefaultPath.
	ConfigPath string

	// LogLevel overrides log_level.
	LogLevel string

	// LogFile overrides log_file. "-" logs to stderr.
	LogFile string

	// InitialMode overrides initial_mode.
	InitialMode string
}

// App owns the editor state and everything built from configuration.
type App struct {
	opts Options

	mu      sync.Mutex
	cfg     config.Config
	log     *logging.Logger
	logFile io.Closer
	state   *editor.State
	watcher *config.Watcher
	closed  bool
}

// New loads the configuration, opens the log and builds the editor.
// Keymap and script errors are logged and reported on the status line;
// only an invalid config file or an unusable log file fail New.
func New(opts Options) (*App, error) {
	a := &App{opts: opts}

	cfg, err := a.loadConfig()
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	a.cfg = cfg

	if err := a.openLog(); err != nil {
		return nil, &InitError{Component: "log", Err: err}
	}
	a.log.Info("starting, config %q", cfg.Path)

	th, _ := cfg.BuildTheme()
	a.state = editor.New(
		editor.WithLogger(a.log),
		editor.WithTheme(th),
		editor.WithInitialMode(cfg.Mode()),
	)
	if err := a.applyKeymaps(context.Background(), a.state); err != nil {
		a.state.SetMessage(err.Error())
	}
	return a, nil
}

// loadConfig reads the config file and applies the overrides in opts.
func (a *App) loadConfig() (config.Config, error) {
	path := a.opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if a.opts.LogLevel != "" {
		cfg.LogLevel = a.opts.LogLevel
	}
	if a.opts.LogFile != "" {
		cfg.LogFile = a.opts.LogFile
	}
	if a.opts.InitialMode != "" {
		cfg.InitialMode = a.opts.InitialMode
	}
	return cfg, cfg.Validate()
}

func (a *App) openLog() error {
	logCfg := logging.DefaultConfig()
	logCfg.Level = a.cfg.Level()

	switch a.cfg.LogFile {
	case "":
		a.log = logging.Nop()
		return nil
	case "-":
		logCfg.Output = os.Stderr
	default:
		f, err := logging.OpenFile(a.cfg.LogFile)
		if err != nil {
			return err
		}
		logCfg.Output = f
		a.logFile = f
	}
	a.log = logging.New(logCfg)
	return nil
}

// Keymaps loads every user keymap in precedence order: JSON files, then
// the config's keymap tables, then Lua scripts. Later keymaps win. Broken
// sources are skipped and their errors joined.
func (a *App) Keymaps(ctx context.Context) ([]*keymap.Keymap, error) {
	var kms []*keymap.Keymap
	var errs []error

	loader := keymap.NewLoader()
	for _, path := range a.cfg.KeymapFiles() {
		km, err := loader.LoadFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		kms = append(kms, km)
	}

	kms = append(kms, a.cfg.KeymapTables()...)

	scripted, err := lua.LoadScripts(ctx, a.cfg.Scripts, lua.WithLogger(a.log.WithComponent("lua")))
	kms = append(kms, scripted...)
	if err != nil {
		errs = append(errs, err)
	}
	return kms, errors.Join(errs...)
}

func (a *App) applyKeymaps(ctx context.Context, s *editor.State) error {
	kms, loadErr := a.Keymaps(ctx)
	if loadErr != nil {
		a.log.Warn("loading keymaps: %v", loadErr)
	}
	bindErr := s.ReloadKeymaps(kms...)
	return errors.Join(loadErr, bindErr)
}

// Reload re-reads the config file and rebuilds the theme and keymaps of s.
// An invalid config keeps the previous one.
func (a *App) Reload(s *editor.State) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return ErrClosed
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log.SetLevel(cfg.Level())

	th, _ := cfg.BuildTheme()
	s.SetTheme(th)
	if err := a.applyKeymaps(context.Background(), s); err != nil {
		return err
	}
	if a.watcher != nil {
		a.watchPaths()
	}
	return nil
}

// State returns the editor.
func (a *App) State() *editor.State {
	return a.state
}

// Config returns the configuration in effect.
func (a *App) Config() config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// Logger returns the application logger.
func (a *App) Logger() *logging.Logger {
	return a.log
}

// Watch starts watching the config file, keymaps and scripts. Each
// debounced change calls notify.
func (a *App) Watch(notify func()) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return ErrClosed
	}
	if a.watcher != nil {
		return nil
	}

	w, err := config.NewWatcher()
	if err != nil {
		return &InitError{Component: "watcher", Err: err}
	}
	a.watcher = w
	a.watchPaths()

	go func() {
		for {
			select {
			case <-w.Done():
				return
			case <-w.Changes():
				a.log.Debug("configuration changed")
				notify()
			case err := <-w.Errors():
				a.log.Warn("watcher: %v", err)
			}
		}
	}()
	return nil
}

// watchPaths adds the current watch paths. Adding a path twice is
// harmless.
func (a *App) watchPaths() {
	for _, p := range a.cfg.WatchPaths() {
		if err := a.watcher.Add(p); err != nil {
			a.log.Warn("watching %s: %v", p, err)
		}
	}
}

// Run drives the editor on screen until the user quits or ctx is done.
// The screen must be initialized; Run does not finalize it.
func (a *App) Run(ctx context.Context, screen tcell.Screen) error {
	ui := term.New(screen, a.state,
		term.WithLogger(a.log),
		term.WithReload(a.Reload),
	)
	if a.cfg.Watch {
		if err := a.Watch(ui.RequestReload); err != nil {
			a.log.Warn("live reload disabled: %v", err)
		}
	}
	err := ui.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Close stops the watcher and closes the log file.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil
	}
	a.closed = true

	var errs []error
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing watcher: %w", err))
		}
	}
	a.log.Info("shutting down")
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing log: %w", err))
		}
	}
	return errors.Join(errs...)
}
