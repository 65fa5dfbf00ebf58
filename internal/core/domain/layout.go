package domain

import (
	"path/filepath"
	"time"
)

const (
	// StyloDirName is the name of the internal workspace directory.
	StyloDirName = ".stylo"

	// DebugDirName is the name of the debug artifact directory.
	DebugDirName = "debug"

	// UnitsDirName holds one included-file list per compiled unit.
	UnitsDirName = "units"

	// GraphFileName is the name of the dependency graph snapshot.
	GraphFileName = "graph.json"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "stylo.yaml"

	// OutputExt is the extension of compiled artifacts.
	OutputExt = ".css"

	// SourceMapExt is appended to an artifact path to name its source map.
	SourceMapExt = ".map"

	// DefaultDebounce is the window in which watch events are coalesced.
	DefaultDebounce = 50 * time.Millisecond

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultDebugPath returns the directory debug artifacts are written to.
// It joins .stylo and debug.
func DefaultDebugPath() string {
	return filepath.Join(StyloDirName, DebugDirName)
}

// DefaultExtensions returns the file extensions treated as entry units by default.
func DefaultExtensions() []string {
	return []string{".scss"}
}
