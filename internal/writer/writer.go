package writer

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// SiteWriter materializes rendered artifacts into the output tree. Writes are
// create-if-absent on directories and unconditional overwrite on files; stale
// pages are never pruned here.
type SiteWriter interface {
	// WritePage writes index.html inside dir (relative to the web root),
	// creating the directory chain first.
	WritePage(dir string, html string) error
	// WriteFile writes a file directly under the web root (sitemaps).
	WriteFile(name string, data []byte) error
}

type siteWriter struct {
	fs   afero.Fs
	root string
}

func NewSiteWriter(fs afero.Fs, root string) SiteWriter {
	return &siteWriter{fs: fs, root: root}
}

func (w *siteWriter) WritePage(dir string, html string) error {
	target := filepath.Join(w.root, filepath.FromSlash(dir))
	if err := w.fs.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", target, err)
	}
	file := filepath.Join(target, "index.html")
	if err := afero.WriteFile(w.fs, file, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing page %s: %w", file, err)
	}
	return nil
}

func (w *siteWriter) WriteFile(name string, data []byte) error {
	if err := w.fs.MkdirAll(w.root, 0o755); err != nil {
		return fmt.Errorf("creating output root %s: %w", w.root, err)
	}
	file := filepath.Join(w.root, name)
	if err := afero.WriteFile(w.fs, file, data, 0o644); err != nil {
		return fmt.Errorf("writing file %s: %w", file, err)
	}
	return nil
}
