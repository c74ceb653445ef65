package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethanxxxl/steve/internal/input/keymap"
)

func TestWriteBindings(t *testing.T) {
	kms := []*keymap.Keymap{
		keymap.DefaultInsertKeymap(),
		keymap.NewKeymap("extra").WithSource("config").
			AddBinding(keymap.NewBinding("Q", "buffer.new").WithDescription("Fresh buffer").WithCategory("Buffer")),
	}
	var buf bytes.Buffer
	if err := WriteBindings(&buf, kms); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"default-insert (insert, default)",
		"  Mode",
		"<Esc>",
		"extra (all modes, config)",
		"  Buffer",
		"Fresh buffer",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExportKeymapsRoundTrip(t *testing.T) {
	_, opts := setup(t)
	a, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	kms, err := a.AllKeymaps(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(kms) != len(keymap.Default())+3 {
		t.Fatalf("got %d keymaps", len(kms))
	}

	dir := filepath.Join(t.TempDir(), "export")
	if err := ExportKeymaps(dir, kms); err != nil {
		t.Fatal(err)
	}

	loader := keymap.NewLoader()
	for _, km := range kms {
		got, err := loader.LoadFile(filepath.Join(dir, km.Name+".json"))
		if err != nil {
			t.Fatalf("reloading %s: %v", km.Name, err)
		}
		if got.Mode != km.Mode || len(got.Bindings) != len(km.Bindings) {
			t.Errorf("%s: mode %q bindings %d, want %q %d", km.Name, got.Mode, len(got.Bindings), km.Mode, len(km.Bindings))
		}
	}
}
