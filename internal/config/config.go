package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/ethanxxxl/steve/internal/input/keymap"
	"github.com/ethanxxxl/steve/internal/input/mode"
	"github.com/ethanxxxl/steve/internal/logging"
	"github.com/ethanxxxl/steve/internal/theme"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Config is the decoded configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// LogFile is where the binary writes its log.
	LogFile string `toml:"log_file"`

	// InitialMode is the mode the editor starts in.
	InitialMode string `toml:"initial_mode"`

	// Keymaps lists JSON keymap files or directories of them.
	Keymaps []string `toml:"keymaps"`

	// Scripts lists Lua keymap scripts.
	Scripts []string `toml:"scripts"`

	// Watch enables live reload of the config, keymaps and scripts.
	Watch bool `toml:"watch"`

	// Theme overrides styles by tag name.
	Theme map[string]theme.Spec `toml:"theme"`

	// Keymap maps mode name to a keys-to-action table.
	Keymap map[string]map[string]string `toml:"keymap"`

	// Path is the file the config was read from, empty if none.
	Path string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:    "info",
		LogFile:     DefaultLogFile(),
		InitialMode: "normal",
	}
}

// DefaultPath returns the default config file location,
// $XDG_CONFIG_HOME/steve/config.toml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "steve", "config.toml")
}

// DefaultLogFile returns $XDG_STATE_HOME/steve/steve.log, falling back to
// ~/.local/state.
func DefaultLogFile() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "steve", "steve.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "steve.log")
	}
	return filepath.Join(home, ".local", "state", "steve", "steve.log")
}

// Load builds the configuration from defaults, the file at path and the
// environment. A missing file is not an error. Relative keymap and script
// paths are resolved against the file's directory.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := cfg.decode(path, data); err != nil {
				return cfg, err
			}
			cfg.Path = path
			cfg.resolvePaths(filepath.Dir(path))
		case errors.Is(err, os.ErrNotExist):
		default:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// Parse decodes TOML data on top of the defaults without reading the
// environment.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	err := cfg.decode("<input>", data)
	return cfg, err
}

func (c *Config) decode(source string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return &ParseError{Path: source, Err: fmt.Errorf("%s", strict.String())}
		}
		return &ParseError{Path: source, Err: err}
	}
	return nil
}

func (c *Config) resolvePaths(dir string) {
	for i, p := range c.Keymaps {
		if !filepath.IsAbs(p) {
			c.Keymaps[i] = filepath.Join(dir, p)
		}
	}
	for i, p := range c.Scripts {
		if !filepath.IsAbs(p) {
			c.Scripts[i] = filepath.Join(dir, p)
		}
	}
}

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel    = "STEVE_LOG_LEVEL"
	EnvLogFile     = "STEVE_LOG_FILE"
	EnvInitialMode = "STEVE_INITIAL_MODE"
)

// ApplyEnv overrides fields from the environment. Empty values are
// treated as unset.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		c.LogFile = v
	}
	if v, ok := lookup(EnvInitialMode); ok && v != "" {
		c.InitialMode = v
	}
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := mode.Parse(c.InitialMode); err != nil {
		errs = append(errs, fmt.Errorf("initial_mode: %w", err))
	}
	if err := theme.Default().Apply(c.Theme); err != nil {
		errs = append(errs, err)
	}
	for _, km := range c.KeymapTables() {
		if err := km.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Level returns the parsed log level, Info if invalid.
func (c Config) Level() logging.Level {
	l, _ := logging.ParseLevel(c.LogLevel)
	return l
}

// Mode returns the parsed initial mode, Normal if invalid.
func (c Config) Mode() mode.Mode {
	m, _ := mode.Parse(c.InitialMode)
	return m
}

// BuildTheme returns the default theme with the config's overrides applied.
func (c Config) BuildTheme() (*theme.Theme, error) {
	t := theme.Default()
	return t, t.Apply(c.Theme)
}

// KeymapTables converts the [keymap.<mode>] tables into keymaps, ordered
// by mode name.
func (c Config) KeymapTables() []*keymap.Keymap {
	modes := make([]string, 0, len(c.Keymap))
	for m := range c.Keymap {
		modes = append(modes, m)
	}
	sort.Strings(modes)

	out := make([]*keymap.Keymap, 0, len(modes))
	for _, m := range modes {
		km := keymap.FromTable("config-"+m, m, c.Keymap[m]).WithSource("config")
		out = append(out, km)
	}
	return out
}

// KeymapFiles expands Keymaps into the JSON files it names: files are kept
// as given, directories contribute their *.json entries.
func (c Config) KeymapFiles() []string {
	var files []string
	for _, p := range c.Keymaps {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			files = append(files, p)
			continue
		}
		matches, _ := filepath.Glob(filepath.Join(p, "*.json"))
		files = append(files, matches...)
	}
	return files
}

// WatchPaths returns every path whose change should trigger a reload.
func (c Config) WatchPaths() []string {
	var paths []string
	if c.Path != "" {
		paths = append(paths, c.Path)
	}
	paths = append(paths, c.Keymaps...)
	paths = append(paths, c.Scripts...)
	return paths
}
