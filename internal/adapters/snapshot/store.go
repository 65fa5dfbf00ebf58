// Package snapshot writes debug artifacts describing the dependency graph.
package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/stylo/internal/core/domain"
	"go.trai.ch/stylo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DebugWriter = (*Store)(nil)

// Store implements ports.DebugWriter using JSON files below a directory.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore creates a Store rooted at dir. Nothing is written until the first artifact.
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// Dir returns the directory artifacts are written to.
func (s *Store) Dir() string {
	return s.dir
}

// WriteGraph stores the graph snapshot as graph.json.
func (s *Store) WriteGraph(snapshot domain.GraphSnapshot) error {
	if snapshot == nil {
		snapshot = domain.GraphSnapshot{}
	}
	return s.save(filepath.Join(s.dir, domain.GraphFileName), snapshot)
}

// WriteUnit stores the included files of entry as units/<base name>.json.
// Units sharing a base name overwrite each other.
func (s *Store) WriteUnit(entry string, included []string) error {
	if included == nil {
		included = []string{}
	}
	base := filepath.Base(entry)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
	return s.save(filepath.Join(s.dir, domain.UnitsDirName, name), included)
}

func (s *Store) save(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrDebugWriteFailed, err.Error()), "path", path)
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrDebugWriteFailed, err.Error()), "path", path)
	}

	//nolint:gosec // Path is cleaned and derived from the debug directory
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrDebugWriteFailed, err.Error()), "path", path)
	}

	return nil
}

// Clean removes the directory and everything below it.
func (s *Store) Clean() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.RemoveAll(s.dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove debug artifacts"), "path", s.dir)
	}
	return nil
}
