package ports

import "iter"

// SourceEnumerator lists candidate files below a root directory.
//
//go:generate mockgen -source=enumerator.go -destination=mocks/mock_enumerator.go -package=mocks
type SourceEnumerator interface {
	// Enumerate yields the absolute path of every file under root.
	// The sequence is lazy and restartable. A non-nil error ends the sequence.
	Enumerate(root string) iter.Seq2[string, error]
}

// UnitFilter recognizes compilable entry units.
type UnitFilter interface {
	// IsEntry reports whether path is an entry unit rather than a partial or unrelated file.
	IsEntry(path string) bool
}
