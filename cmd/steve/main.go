// Package main is the entry point for the steve editor.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/ethanxxxl/steve/internal/app"
	"github.com/ethanxxxl/steve/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	f, exit, code := parseFlags(os.Args[1:])
	if exit {
		return code
	}
	opts := f.opts

	if f.listKeys || f.exportDir != "" {
		return runKeymapTool(f)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: steve must be run in a terminal")
		return 1
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer application.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = application.Run(ctx, screen)
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runKeymapTool lists or exports the effective keymaps without starting
// the editor.
func runKeymapTool(f flags) int {
	if f.opts.LogFile == "" {
		f.opts.LogFile = "-"
	}
	if f.opts.LogLevel == "" {
		f.opts.LogLevel = "warn"
	}
	application, err := app.New(f.opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer application.Close()

	kms, err := application.AllKeymaps(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if f.listKeys {
		if err := app.WriteBindings(os.Stdout, kms); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	if f.exportDir != "" {
		if err := app.ExportKeymaps(f.exportDir, kms); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(os.Stderr, "exported %d keymaps to %s\n", len(kms), f.exportDir)
	}
	return 0
}

type flags struct {
	opts      app.Options
	listKeys  bool
	exportDir string
}

// parseFlags reads the command line. When exit is true the program ends
// with code without starting the editor.
func parseFlags(args []string) (f flags, exit bool, code int) {
	fs := flag.NewFlagSet("steve", flag.ContinueOnError)
	var showVersion bool
	opts := &f.opts

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (default "+config.DefaultPath()+")")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.LogFile, "log-file", "", "Log file, - for stderr")
	fs.StringVar(&opts.InitialMode, "mode", "", "Initial mode (normal, insert, visual, command)")
	fs.BoolVar(&f.listKeys, "keys", false, "List the effective key bindings and exit")
	fs.StringVar(&f.exportDir, "export", "", "Write the effective keymaps as JSON files to this directory and exit")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "steve - a small modal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: steve [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nPress Ctrl-Q to quit.\n")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return f, true, 0
		}
		return f, true, 2
	}

	if showVersion {
		fmt.Printf("steve %s (%s)\n", version, commit)
		return f, true, 0
	}
	return f, false, 0
}
