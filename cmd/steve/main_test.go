package main

import (
	"strconv"
	"testing"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantExit bool
		wantCode int
		check    func(t *testing.T, opts map[string]string)
	}{
		{
			name: "defaults",
			args: nil,
			check: func(t *testing.T, opts map[string]string) {
				for k, v := range opts {
					if v != "" && v != "false" {
						t.Errorf("%s = %q, want unset", k, v)
					}
				}
			},
		},
		{
			name: "overrides",
			args: []string{"-c", "/tmp/s.toml", "-log-level", "debug", "-log-file", "-", "-mode", "insert"},
			check: func(t *testing.T, opts map[string]string) {
				want := map[string]string{
					"config": "/tmp/s.toml", "level": "debug", "file": "-", "mode": "insert",
				}
				for k, v := range want {
					if opts[k] != v {
						t.Errorf("%s = %q, want %q", k, opts[k], v)
					}
				}
			},
		},
		{
			name: "keymap tools",
			args: []string{"-keys", "-export", "out"},
			check: func(t *testing.T, opts map[string]string) {
				if opts["keys"] != "true" || opts["export"] != "out" {
					t.Errorf("keys=%s export=%s", opts["keys"], opts["export"])
				}
			},
		},
		{name: "help", args: []string{"-h"}, wantExit: true, wantCode: 0},
		{name: "unknown flag", args: []string{"-nope"}, wantExit: true, wantCode: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, exit, code := parseFlags(tt.args)
			opts := f.opts
			if exit != tt.wantExit || code != tt.wantCode {
				t.Fatalf("exit=%v code=%d, want exit=%v code=%d", exit, code, tt.wantExit, tt.wantCode)
			}
			if tt.check != nil {
				tt.check(t, map[string]string{
					"config": opts.ConfigPath,
					"level":  opts.LogLevel,
					"file":   opts.LogFile,
					"mode":   opts.InitialMode,
					"keys":   strconv.FormatBool(f.listKeys),
					"export": f.exportDir,
				})
			}
		})
	}
}
