// Package orchestrator implements the cold build over every configured source root.
package orchestrator

import (
	"context"
	"errors"

	"go.trai.ch/stylo/internal/core/domain"
	"go.trai.ch/stylo/internal/core/ports"
	"go.trai.ch/stylo/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Orchestrator compiles every entry unit found below the configured roots.
type Orchestrator struct {
	enumerator ports.SourceEnumerator
	filter     ports.UnitFilter
	compiler   *pipeline.Compiler
	logger     ports.Logger
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	enumerator ports.SourceEnumerator,
	filter ports.UnitFilter,
	compiler *pipeline.Compiler,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		enumerator: enumerator,
		filter:     filter,
		compiler:   compiler,
		logger:     logger,
	}
}

// Run builds all entries concurrently, one goroutine per root. Unit compile failures are
// added to collector and never stop other units. An enumeration failure is fatal: it is
// returned joined with domain.ErrEnumerationFailed and the remaining roots stop at their
// next unit boundary.
func (o *Orchestrator) Run(
	ctx context.Context,
	entries []domain.EntryConfig,
	graph *domain.DependencyGraph,
	collector *domain.ErrorCollector,
) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, entry := range entries {
		g.Go(func() error {
			return o.buildRoot(gctx, entry, graph, collector)
		})
	}
	return g.Wait()
}

func (o *Orchestrator) buildRoot(
	ctx context.Context,
	entry domain.EntryConfig,
	graph *domain.DependencyGraph,
	collector *domain.ErrorCollector,
) error {
	units := 0
	for path, err := range o.enumerator.Enumerate(entry.SourceRoot) {
		if err != nil {
			return errors.Join(domain.ErrEnumerationFailed, zerr.With(err, "root", entry.SourceRoot))
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !o.filter.IsEntry(path) {
			continue
		}

		units++
		if _, err := o.compiler.Compile(ctx, path, entry, graph); err != nil {
			collector.Add(err)
		}
	}

	if units == 0 {
		o.logger.Warn("no entry units found in " + entry.SourceRoot)
	}
	return nil
}
