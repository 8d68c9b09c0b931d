// Package fs implements filesystem-backed storage for processed documents.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/guidedoc"
)

// Ensure DocStore implements guidedoc.DocumentStore at compile time.
var _ guidedoc.DocumentStore = (*DocStore)(nil)

// DocStore implements guidedoc.DocumentStore with atomic update semantics.
// Documents are saved to a temporary directory, then moved atomically on
// Commit, so a half-written batch never replaces a good one.
type DocStore struct {
	baseDir string
	name    string
}

// NewDocStore creates a new DocStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewDocStore(baseDir, name string) *DocStore {
	return &DocStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *DocStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *DocStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes a processed document as front matter plus cleaned markdown
// under <platform>/<id>.md in the pending directory.
func (s *DocStore) Save(ctx context.Context, doc *guidedoc.ProcessedDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc.Section.ID == "" {
		return guidedoc.Errorf(guidedoc.EINVALID, "document section ID required")
	}

	fullPath := filepath.Join(s.tempDir(), string(doc.Section.Platform), pathSafe(doc.Section.ID)+".md")

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(guidedoc.ComposeDocument(doc)), 0644)
}

// Commit atomically replaces the final directory with the pending one.
func (s *DocStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards pending changes.
func (s *DocStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// pathSafe makes a section ID usable as a file name.
func pathSafe(id string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '-'
		}
		return r
	}, id)
}
