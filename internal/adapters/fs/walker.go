// Package fs provides file system adapters for enumerating, filtering and hashing source files.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/stylo/internal/core/domain"
	"go.trai.ch/stylo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceEnumerator = (*Walker)(nil)

// Walker enumerates the files below a source root.
type Walker struct {
	ignores []string
}

// NewWalker creates a new Walker. Directories whose name matches one of ignores
// are skipped in addition to the built-in list.
func NewWalker(ignores ...string) *Walker {
	return &Walker{ignores: ignores}
}

// Enumerate yields every regular file below root.
// A root that cannot be read, or a directory that fails mid-walk, ends the
// sequence with a non-nil error.
func (w *Walker) Enumerate(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		info, err := os.Stat(root)
		if err != nil {
			yield("", zerr.With(zerr.Wrap(err, "cannot read source root"), "path", root))
			return
		}
		if !info.IsDir() {
			yield("", zerr.With(zerr.New("source root is not a directory"), "path", root))
			return
		}

		stopped := false
		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to read directory"), "path", path)
			}

			if d.IsDir() {
				if path != root && w.shouldSkipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})
		if walkErr != nil && !stopped {
			yield("", walkErr)
		}
	}
}

func (w *Walker) shouldSkipDir(name string) bool {
	switch name {
	case ".git", ".jj", "node_modules", domain.StyloDirName:
		return true
	}
	return slices.ContainsFunc(w.ignores, func(pattern string) bool {
		matched, _ := filepath.Match(pattern, name)
		return matched
	})
}
