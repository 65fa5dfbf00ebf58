package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// OutputStyle selects how compiled style sheets are formatted.
type OutputStyle string

const (
	// StyleExpanded keeps the flattened source as written.
	StyleExpanded OutputStyle = "expanded"
	// StyleCompressed strips comments and insignificant whitespace.
	StyleCompressed OutputStyle = "compressed"
)

// Valid reports whether s is a known output style.
func (s OutputStyle) Valid() bool {
	return s == StyleExpanded || s == StyleCompressed
}

// CompileOptions are passed through to the transformer untouched.
type CompileOptions struct {
	Style     OutputStyle
	SourceMap bool
	LoadPaths []string
}

// EntryConfig is one configured source root and the directory its output is written to.
// Both roots are absolute and cleaned.
type EntryConfig struct {
	SourceRoot string
	OutputRoot string
	Options    CompileOptions
}

// Contains reports whether path lies inside the source root.
func (e EntryConfig) Contains(path string) bool {
	rel, err := filepath.Rel(e.SourceRoot, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// OutputPath maps a unit under the source root to its artifact under the output root,
// replacing the extension with ext.
func (e EntryConfig) OutputPath(unit, ext string) (string, error) {
	rel, err := filepath.Rel(e.SourceRoot, unit)
	if err != nil || !e.Contains(unit) {
		return "", zerr.With(zerr.New("unit is outside the source root"), "path", unit)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ext
	return filepath.Join(e.OutputRoot, rel), nil
}

// ParseRootMapping parses a "source[:output]" mapping. Relative paths are resolved
// against cwd. When output is omitted it defaults to source.
func ParseRootMapping(mapping, cwd string) (source, output string, err error) {
	if strings.TrimSpace(mapping) == "" {
		return "", "", zerr.With(zerr.Wrap(ErrInvalidRootMapping, "mapping is empty"), "mapping", mapping)
	}

	// A Windows volume name ("C:") is part of the source, not the separator.
	volume := filepath.VolumeName(mapping)
	rest := mapping[len(volume):]

	source = mapping
	if idx := strings.Index(rest, ":"); idx >= 0 {
		source = volume + rest[:idx]
		output = rest[idx+1:]
	}

	if source == "" {
		return "", "", zerr.With(zerr.Wrap(ErrInvalidRootMapping, "source root is empty"), "mapping", mapping)
	}
	if output == "" {
		output = source
	}

	return absolute(source, cwd), absolute(output, cwd), nil
}

func absolute(p, cwd string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(cwd, p)
}

// CompileResult describes a successful compile of one entry unit.
type CompileResult struct {
	From string
	To   string
	// MapPath is set when a source map was written.
	MapPath string
	// IncludedFiles lists every file read while compiling, entry first.
	IncludedFiles []string
}

// ChangeKind classifies a filesystem notification.
type ChangeKind uint8

const (
	// ChangeModified means the file was created or written.
	ChangeModified ChangeKind = iota
	// ChangeRemoved means the file was removed or renamed away.
	ChangeRemoved
)

// String returns a human readable name for the kind.
func (k ChangeKind) String() string {
	if k == ChangeRemoved {
		return "removed"
	}
	return "changed"
}

// ChangeEvent is a single filesystem change observed under a configured root.
type ChangeEvent struct {
	Path  string
	Kind  ChangeKind
	Entry EntryConfig
}
