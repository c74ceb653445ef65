package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/ethanxxxl/steve/internal/input/keymap"
)

// AllKeymaps returns the built-in keymaps followed by the user keymaps, in
// the order they are bound.
func (a *App) AllKeymaps(ctx context.Context) ([]*keymap.Keymap, error) {
	user, err := a.Keymaps(ctx)
	return append(keymap.Default(), user...), err
}

// WriteBindings lists every binding of kms, grouped by keymap and then by
// category.
func WriteBindings(w io.Writer, kms []*keymap.Keymap) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, km := range kms {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		m := km.Mode
		if m == "" {
			m = "all modes"
		}
		fmt.Fprintf(tw, "%s (%s, %s)\n", km.Name, m, km.Source)
		for _, cat := range keymap.GroupByCategory(km.Bindings) {
			fmt.Fprintf(tw, "  %s\n", cat.Name)
			for _, b := range cat.Bindings {
				fmt.Fprintf(tw, "    %s\t%s\t%s\n", b.Keys, b.Action, b.Description)
			}
		}
	}
	return tw.Flush()
}

// ExportKeymaps writes each keymap to dir as <name>.json, in the format
// the keymaps config setting reads.
func ExportKeymaps(dir string, kms []*keymap.Keymap) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, km := range kms {
		name := strings.NewReplacer("/", "_", string(filepath.Separator), "_").Replace(km.Name)
		if err := km.SaveFile(filepath.Join(dir, name+".json")); err != nil {
			return fmt.Errorf("exporting %s: %w", km.Name, err)
		}
	}
	return nil
}
