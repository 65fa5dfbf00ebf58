package ports

import "go.trai.ch/stylo/internal/core/domain"

// DebugWriter persists diagnostic artifacts.
//
//go:generate mockgen -source=debug.go -destination=mocks/mock_debug.go -package=mocks
type DebugWriter interface {
	// WriteGraph stores a snapshot of the dependency graph.
	WriteGraph(snapshot domain.GraphSnapshot) error
	// WriteUnit stores the included-file list of one compiled unit.
	WriteUnit(entry string, included []string) error
	// Clean removes every stored artifact.
	Clean() error
}
