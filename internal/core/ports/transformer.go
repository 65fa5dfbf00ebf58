package ports

import (
	"context"

	"go.trai.ch/stylo/internal/core/domain"
)

// Transformer compiles one entry unit into an output artifact.
//
//go:generate mockgen -source=transformer.go -destination=mocks/mock_transformer.go -package=mocks
type Transformer interface {
	// Compile writes the artifact for the unit at path and reports every file it read.
	// On success IncludedFiles contains at least path.
	// Failures are returned as *domain.CompileError.
	Compile(ctx context.Context, path string, entry domain.EntryConfig) (*domain.CompileResult, error)
}

// PostProcessor runs an external command over a freshly compiled artifact.
type PostProcessor interface {
	// Process runs command with the compiled artifact described by result.
	Process(ctx context.Context, command []string, result *domain.CompileResult) error
}
