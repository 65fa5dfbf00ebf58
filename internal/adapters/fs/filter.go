package fs

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/stylo/internal/core/ports"
)

var _ ports.UnitFilter = (*UnitFilter)(nil)

// UnitFilter accepts entry units by extension.
// Partials (a leading underscore) and hidden files are never entry units.
type UnitFilter struct {
	extensions []string
}

// NewUnitFilter creates a filter for the given extensions, e.g. ".scss".
func NewUnitFilter(extensions []string) *UnitFilter {
	exts := make([]string, len(extensions))
	for i, ext := range extensions {
		exts[i] = strings.ToLower(ext)
	}
	return &UnitFilter{extensions: exts}
}

// IsEntry reports whether path is a compilable entry unit.
func (f *UnitFilter) IsEntry(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, "_") || strings.HasPrefix(base, ".") {
		return false
	}
	return slices.Contains(f.extensions, strings.ToLower(filepath.Ext(base)))
}
