package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ethanxxxl/steve/internal/command"
	"github.com/ethanxxxl/steve/internal/config"
	"github.com/ethanxxxl/steve/internal/input/chain"
	"github.com/ethanxxxl/steve/internal/input/key"
	"github.com/ethanxxxl/steve/internal/input/mode"
	"github.com/ethanxxxl/steve/internal/theme"
)

const testConfig = `
log_level = "debug"
keymaps = ["keymaps"]
scripts = ["init.lua"]

[theme.cursor]
fg = "#ff0000"

[keymap.normal]
"Z" = "buffer.list"
`

const testKeymap = `{
  "name": "extra",
  "mode": "normal",
  "bindings": [
    {"keys": "Q", "action": "buffer.new"},
    {"keys": "Z", "action": "buffer.new"}
  ]
}`

const testScript = `steve.bind("normal", "Y", "cursor.up", {count = 2})`

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFile, "")
	t.Setenv(config.EnvInitialMode, "")
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func setup(t *testing.T) (dir string, opts Options) {
	t.Helper()
	clearEnv(t)
	dir = t.TempDir()
	writeFile(t, filepath.Join(dir, "config.toml"), testConfig)
	writeFile(t, filepath.Join(dir, "keymaps", "extra.json"), testKeymap)
	writeFile(t, filepath.Join(dir, "init.lua"), testScript)
	return dir, Options{
		ConfigPath: filepath.Join(dir, "config.toml"),
		LogFile:    filepath.Join(dir, "log", "steve.log"),
	}
}

func lookup(t *testing.T, a *App, keys string) command.Command {
	t.Helper()
	link := a.State().Dispatcher().Chain(mode.Normal).Lookup(key.MustParseSequence(keys))
	if link.Kind != chain.LinkAction {
		t.Fatalf("%s is not bound to an action: %v", keys, link.Kind)
	}
	return link.Command
}

func TestNewLoadsEverySource(t *testing.T) {
	dir, opts := setup(t)
	a, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if msg := a.State().Message(); msg != "" {
		t.Errorf("startup message = %q", msg)
	}
	if got := lookup(t, a, "Q"); got != command.Simple(command.KindNewBuffer) {
		t.Errorf("Q = %v", got)
	}
	// The config table is applied after keymap files.
	if got := lookup(t, a, "Z"); got != command.Simple(command.KindListBuffers) {
		t.Errorf("Z = %v", got)
	}
	if got := lookup(t, a, "Y"); got != command.Repeat(command.KindMoveUp, 2) {
		t.Errorf("Y = %v", got)
	}
	// Defaults survive.
	if got := lookup(t, a, "j"); got != command.Simple(command.KindMoveDown) {
		t.Errorf("j = %v", got)
	}

	if got := a.State().Theme().Style(theme.Cursor).Foreground; got != theme.MustHex("#ff0000") {
		t.Errorf("cursor fg = %v", got)
	}

	data, err := os.ReadFile(filepath.Join(dir, "log", "steve.log"))
	if err != nil {
		t.Fatalf("log file: %v", err)
	}
	if !strings.Contains(string(data), "starting") {
		t.Errorf("log = %q", data)
	}
}

func TestNewOverrides(t *testing.T) {
	_, opts := setup(t)
	opts.InitialMode = "insert"
	opts.LogLevel = "error"

	a, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	if a.State().Mode() != mode.Insert {
		t.Errorf("mode = %v", a.State().Mode())
	}
	if got := a.Config().LogLevel; got != "error" {
		t.Errorf("log level = %q", got)
	}
}

func TestNewInvalidConfig(t *testing.T) {
	_, opts := setup(t)
	opts.InitialMode = "replace"

	_, err := New(opts)
	var ie *InitError
	if !errors.As(err, &ie) || ie.Component != "config" {
		t.Fatalf("New = %v, want config InitError", err)
	}
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("error does not wrap ErrInvalidConfig: %v", err)
	}
}

func TestBrokenScriptIsReported(t *testing.T) {
	dir, opts := setup(t)
	writeFile(t, filepath.Join(dir, "init.lua"), `steve.bind("normal", "Y", "no.such.action")`)

	a, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	if !strings.Contains(a.State().Message(), "init.lua") {
		t.Errorf("message = %q", a.State().Message())
	}
	// Other sources still load.
	lookup(t, a, "Q")
}

func TestReload(t *testing.T) {
	dir, opts := setup(t)
	a, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	writeFile(t, filepath.Join(dir, "config.toml"), `
keymaps = ["keymaps"]
[keymap.normal]
"Z" = "mode.insert"
`)
	if err := a.Reload(a.State()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if got := lookup(t, a, "Z"); got != command.SetMode(mode.Insert) {
		t.Errorf("Z after reload = %v", got)
	}
	if link := a.State().Dispatcher().Chain(mode.Normal).Lookup(key.MustParseSequence("Y")); link.Kind != chain.LinkNone {
		t.Errorf("Y still bound after its script was dropped")
	}

	writeFile(t, filepath.Join(dir, "config.toml"), `log_level = "loud"`)
	if err := a.Reload(a.State()); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Reload of bad config = %v", err)
	}
	if got := lookup(t, a, "Z"); got != command.SetMode(mode.Insert) {
		t.Errorf("bad reload replaced bindings: Z = %v", got)
	}

	a.Close()
	if err := a.Reload(a.State()); !errors.Is(err, ErrClosed) {
		t.Errorf("Reload after Close = %v", err)
	}
}

func TestWatchNotifies(t *testing.T) {
	dir, opts := setup(t)
	a, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	notified := make(chan struct{}, 1)
	if err := a.Watch(func() {
		select {
		case notified <- struct{}{}:
		default:
		}
	}); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	writeFile(t, filepath.Join(dir, "init.lua"), `steve.bind("normal", "Y", "cursor.down")`)
	select {
	case <-notified:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	_, opts := setup(t)
	a, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(20, 4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.Run(ctx, screen); err != nil {
		t.Errorf("Run = %v", err)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	_, opts := setup(t)
	a, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Close(); err != nil {
		t.Fatal(err)
	}
	if err := a.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
	if err := a.Watch(func() {}); !errors.Is(err, ErrClosed) {
		t.Errorf("Watch after Close = %v", err)
	}
}
