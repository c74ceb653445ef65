package logging

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestLogger(buf *bytes.Buffer, level Level) *Logger {
	l := New(Config{Level: level, Output: buf, Prefix: "steve"})
	l.sink.now = func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	}
	return l
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"", LevelInfo},
		{"Warning", LevelWarn},
		{"error", LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseLevel("loud"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("ParseLevel(loud) error = %v", err)
	}
}

func TestLogFormat(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug)

	l.WithComponent("editor").WithField("buffer", 3).Info("switched to %d", 3)

	want := "2024-05-01T12:00:00.000 [INFO] steve: switched to 3 {buffer=3, component=editor}\n"
	if got := buf.String(); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelWarn)

	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "[WARN]") || !strings.Contains(lines[1], "[ERROR]") {
		t.Errorf("unexpected lines: %q", lines)
	}
}

func TestDerivedLoggersShareSink(t *testing.T) {
	var buf bytes.Buffer
	root := newTestLogger(&buf, LevelInfo)
	child := root.WithComponent("term")

	root.SetLevel(LevelError)
	child.Warn("hidden")
	if buf.Len() != 0 {
		t.Errorf("child ignored parent level: %q", buf.String())
	}

	root.Disable()
	child.Error("hidden")
	if buf.Len() != 0 {
		t.Errorf("child ignored Disable: %q", buf.String())
	}

	root.Enable()
	child.Error("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("child not re-enabled: %q", buf.String())
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	root := newTestLogger(&buf, LevelInfo)
	_ = root.WithField("k", "v")

	root.Info("plain")
	if strings.Contains(buf.String(), "k=v") {
		t.Errorf("parent picked up child field: %q", buf.String())
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("nothing")
	l.WithField("a", 1).Info("nothing")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "steve.log")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	l := New(Config{Level: LevelInfo, Output: f})
	l.Info("hello")
}
