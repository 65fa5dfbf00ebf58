// Package watch keeps compiled output current while source files change.
package watch

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"sync"
	"time"

	"go.trai.ch/stylo/internal/core/domain"
	"go.trai.ch/stylo/internal/core/ports"
	"go.trai.ch/stylo/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Coordinator runs one watch loop per source root and recompiles the dependents of every
// changed file.
type Coordinator struct {
	factory  ports.WatcherFactory
	compiler *pipeline.Compiler
	graph    *domain.DependencyGraph
	hasher   ports.ContentHasher
	metrics  ports.Metrics
	tracer   ports.Tracer
	logger   ports.Logger
	window   time.Duration

	mu      sync.Mutex
	entries []domain.EntryConfig
	states  map[string]State
}

// NewCoordinator creates a Coordinator. Changes are batched for window before they are
// processed; a window of zero or less processes every event on its own.
func NewCoordinator(
	factory ports.WatcherFactory,
	compiler *pipeline.Compiler,
	graph *domain.DependencyGraph,
	hasher ports.ContentHasher,
	metrics ports.Metrics,
	tracer ports.Tracer,
	logger ports.Logger,
	window time.Duration,
) *Coordinator {
	return &Coordinator{
		factory:  factory,
		compiler: compiler,
		graph:    graph,
		hasher:   hasher,
		metrics:  metrics,
		tracer:   tracer,
		logger:   logger,
		window:   window,
		states:   make(map[string]State),
	}
}

// State returns the current state of the loop watching root, or the empty State if no
// loop was started for it.
func (c *Coordinator) State(root string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.states[root]
}

func (c *Coordinator) setState(root string, s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states[root] = s
}

// Run watches every entry until ctx is canceled. It returns nil once every root reached
// StateClosed after a graceful shutdown. A watcher that cannot be started is fatal: the
// error is joined with domain.ErrWatchFailed and the other roots are shut down.
func (c *Coordinator) Run(ctx context.Context, entries []domain.EntryConfig) error {
	c.mu.Lock()
	c.entries = slices.Clone(entries)
	c.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for _, entry := range entries {
		g.Go(func() error {
			return c.runRoot(gctx, entry)
		})
	}
	return g.Wait()
}

func (c *Coordinator) runRoot(ctx context.Context, entry domain.EntryConfig) error {
	root := entry.SourceRoot
	c.setState(root, StateStarting)

	w, err := c.factory.NewWatcher()
	if err != nil {
		c.setState(root, StateClosed)
		return errors.Join(domain.ErrWatchFailed, zerr.With(err, "root", root))
	}
	if err := w.Start(ctx, root); err != nil {
		_ = w.Close()
		c.setState(root, StateClosed)
		return errors.Join(domain.ErrWatchFailed, zerr.With(err, "root", root))
	}

	hashes := make(map[string]uint64)
	batch := NewDebouncer(c.window)

	for {
		select {
		case <-ctx.Done():
			return c.close(root, w, batch)

		case ev, ok := <-w.Events():
			if !ok {
				return c.close(root, w, batch)
			}
			switch ev.Kind {
			case ports.WatchReady:
				c.setState(root, StateReady)
				c.logger.Info("watching " + root)
			case ports.WatchRemoved:
				delete(hashes, ev.Path)
				c.logger.Info("removed " + ev.Path)
			case ports.WatchChanged:
				if !c.accept(ev.Path, hashes) {
					continue
				}
				batch.Add(ev.Path)
				if c.window <= 0 {
					c.flush(ctx, entry, batch, hashes)
				}
			}

		case <-batch.C():
			c.flush(ctx, entry, batch, hashes)
		}
	}
}

// accept reports whether a change to path needs processing. Files no entry depends on
// and writes that leave the content as last compiled are skipped. An untracked file
// loses its stored hash, so it is compared afresh once an entry includes it again.
func (c *Coordinator) accept(path string, hashes map[string]uint64) bool {
	if len(c.graph.DependentsOf(path)) == 0 {
		delete(hashes, path)
		c.logger.Debug("ignoring change to untracked file " + path)
		return false
	}

	sum, err := c.hasher.Hash(path)
	if err != nil {
		return true
	}
	if prev, ok := hashes[path]; ok && prev == sum {
		c.logger.Debug("content of " + path + " is unchanged")
		return false
	}
	return true
}

// flush recompiles the dependents of the queued changes. The content each changed file
// had before the recompile is remembered afterwards, so a later write of the same bytes
// is skipped only once its dependents were built from them.
func (c *Coordinator) flush(ctx context.Context, entry domain.EntryConfig, batch *Debouncer, hashes map[string]uint64) {
	paths := batch.Drain()
	if len(paths) == 0 {
		return
	}

	c.setState(entry.SourceRoot, StateRecompiling)
	sums := make(map[string]uint64, len(paths))
	events := make([]domain.ChangeEvent, 0, len(paths))
	for _, p := range paths {
		if sum, err := c.hasher.Hash(p); err == nil {
			sums[p] = sum
		}
		events = append(events, domain.ChangeEvent{Path: p, Kind: domain.ChangeModified, Entry: entry})
	}
	c.HandleChanges(ctx, events)

	for _, p := range paths {
		sum, ok := sums[p]
		if !ok || len(c.graph.DependentsOf(p)) == 0 {
			delete(hashes, p)
			continue
		}
		hashes[p] = sum
	}
	c.setState(entry.SourceRoot, StateReady)
}

// close releases the watcher. Queued changes that were not processed yet are dropped.
func (c *Coordinator) close(root string, w ports.Watcher, batch *Debouncer) error {
	c.setState(root, StateClosing)
	if n := batch.Pending(); n > 0 {
		c.logger.Debug("dropping " + strconv.Itoa(n) + " queued changes in " + root)
		batch.Drain()
	}
	if err := w.Close(); err != nil {
		c.logger.Warn("failed to close watcher for " + root + ": " + err.Error())
	}
	c.setState(root, StateClosed)
	return nil
}

// HandleChanges recompiles every entry unit that depends on a changed file in events.
//
// Dependents are collected over the whole batch in the order they were first seen, so a
// unit reached from several changed files compiles once. Removed files never trigger
// work. Compile failures are logged and do not stop the remaining units. Compiles are
// not interrupted by cancellation of ctx. It returns the number of units compiled.
func (c *Coordinator) HandleChanges(ctx context.Context, events []domain.ChangeEvent) int {
	if len(events) == 0 {
		return 0
	}

	ctx, span := c.tracer.Start(ctx, "invalidate")
	defer span.End()

	type job struct {
		unit  string
		entry domain.EntryConfig
	}
	var jobs []job
	seen := make(map[string]struct{})
	for _, ev := range events {
		if ev.Kind == domain.ChangeRemoved {
			continue
		}
		for _, dep := range c.graph.DependentsOf(ev.Path) {
			if _, ok := seen[dep]; ok {
				continue
			}
			seen[dep] = struct{}{}
			jobs = append(jobs, job{unit: dep, entry: c.owner(dep, ev.Entry)})
		}
	}

	root := events[0].Entry.SourceRoot
	span.SetAttribute("root", root)
	span.SetAttribute("changed", len(events))
	span.SetAttribute("recompiles", len(jobs))

	if len(jobs) > 0 {
		c.logger.Debug(strconv.Itoa(len(events)) + " changed, recompiling " + strconv.Itoa(len(jobs)) + " units")
	}

	ctx = context.WithoutCancel(ctx)
	for _, j := range jobs {
		if _, err := c.compiler.Compile(ctx, j.unit, j.entry, c.graph); err != nil {
			c.logger.Error(err)
		}
	}

	c.metrics.ObserveInvalidation(root, len(jobs))
	return len(jobs)
}

// owner returns the configured entry whose source root contains unit. Nested roots
// resolve to the innermost one. fallback is used when no root contains unit.
func (c *Coordinator) owner(unit string, fallback domain.EntryConfig) domain.EntryConfig {
	c.mu.Lock()
	defer c.mu.Unlock()

	best, found := fallback, false
	for _, e := range c.entries {
		if !e.Contains(unit) {
			continue
		}
		if !found || len(e.SourceRoot) > len(best.SourceRoot) {
			best, found = e, true
		}
	}
	return best
}
