// Package pipeline runs a single entry unit through the transformer and records the outcome.
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.trai.ch/stylo/internal/core/domain"
	"go.trai.ch/stylo/internal/core/ports"
)

// Options configures optional pipeline stages.
type Options struct {
	// PostProcess is run after every successful compile when non-empty.
	PostProcess []string
	// Debug receives the included-file list of every compiled unit when set.
	Debug ports.DebugWriter
	// WorkDir is used to shorten paths in log messages.
	WorkDir string
}

// Compiler compiles entry units and keeps the dependency graph in sync with the results.
// It is shared by the orchestrator and the watch coordinator.
type Compiler struct {
	transformer ports.Transformer
	post        ports.PostProcessor
	tracer      ports.Tracer
	metrics     ports.Metrics
	logger      ports.Logger
	opts        Options

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewCompiler creates a new Compiler.
func NewCompiler(
	transformer ports.Transformer,
	post ports.PostProcessor,
	tracer ports.Tracer,
	metrics ports.Metrics,
	logger ports.Logger,
	opts Options,
) *Compiler {
	return &Compiler{
		transformer: transformer,
		post:        post,
		tracer:      tracer,
		metrics:     metrics,
		logger:      logger,
		opts:        opts,
		locks:       make(map[string]*sync.Mutex),
	}
}

// Compile runs the unit at path through the transformer. On success the graph is updated
// with the unit's fresh included files. On failure the graph is left untouched and a
// *domain.CompileError is returned.
func (c *Compiler) Compile(
	ctx context.Context,
	path string,
	entry domain.EntryConfig,
	graph *domain.DependencyGraph,
) (*domain.CompileResult, error) {
	unlock := c.lock(path)
	defer unlock()

	ctx, span := c.tracer.Start(ctx, "compile")
	defer span.End()
	span.SetAttribute("path", path)
	span.SetAttribute("root", entry.SourceRoot)

	start := time.Now()
	result, err := c.run(ctx, path, entry)
	c.metrics.ObserveCompile(entry.SourceRoot, time.Since(start), err == nil)
	if err != nil {
		span.RecordError(err)
		return nil, domain.NewCompileError(path, err)
	}
	span.SetAttribute("included", len(result.IncludedFiles))

	graph.RecordDependencies(path, result.IncludedFiles)
	c.metrics.SetTrackedFiles(graph.Len())

	if c.opts.Debug != nil {
		if err := c.opts.Debug.WriteUnit(path, graph.IncludesOf(path)); err != nil {
			c.logger.Warn("could not write debug artifact: " + err.Error())
		}
	}

	c.logger.Info("compiled " + c.display(result.From) + " -> " + c.display(result.To))
	return result, nil
}

func (c *Compiler) run(ctx context.Context, path string, entry domain.EntryConfig) (*domain.CompileResult, error) {
	result, err := c.transformer.Compile(ctx, path, entry)
	if err != nil {
		return nil, err
	}
	if len(result.IncludedFiles) == 0 {
		result.IncludedFiles = []string{path}
	}

	if len(c.opts.PostProcess) > 0 {
		if err := c.post.Process(ctx, c.opts.PostProcess, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// lock serializes compiles of the same entry path.
func (c *Compiler) lock(path string) func() {
	c.mu.Lock()
	m, ok := c.locks[path]
	if !ok {
		m = &sync.Mutex{}
		c.locks[path] = m
	}
	c.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func (c *Compiler) display(path string) string {
	if c.opts.WorkDir == "" {
		return path
	}
	rel, err := filepath.Rel(c.opts.WorkDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return path
	}
	return rel
}
