package domain

import (
	"slices"
	"sync"
)

// GraphSnapshot maps every tracked file to the entry units that depend on it.
// Dependents are listed in the order they were first recorded.
type GraphSnapshot map[string][]string

// DependencyGraph is a reverse index from every file read while compiling an entry unit
// to the entry units that read it.
//
// The index is flat: the transformer reports the full transitive include closure of an
// entry, so one level (file -> entries) answers every invalidation query.
// A DependencyGraph is safe for concurrent use.
type DependencyGraph struct {
	mu         sync.RWMutex
	dependents map[InternedString][]InternedString
	includes   map[InternedString][]InternedString
}

// NewDependencyGraph creates an empty graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		dependents: make(map[InternedString][]InternedString),
		includes:   make(map[InternedString][]InternedString),
	}
}

// RecordDependencies registers entry as a dependent of every file in included.
//
// Re-recording the same set is a no-op. Files that the previous compile of entry
// included but the new set does not are pruned, and files left without dependents
// are dropped from the graph.
func (g *DependencyGraph) RecordDependencies(entry string, included []string) {
	e := NewInternedString(entry)

	fresh := make([]InternedString, 0, len(included))
	seen := make(map[InternedString]struct{}, len(included))
	for _, f := range NewInternedStrings(included) {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		fresh = append(fresh, f)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, f := range g.includes[e] {
		if _, ok := seen[f]; !ok {
			g.removeDependentLocked(f, e)
		}
	}

	for _, f := range fresh {
		deps := g.dependents[f]
		if !slices.Contains(deps, e) {
			g.dependents[f] = append(deps, e)
		}
	}

	if len(fresh) == 0 {
		delete(g.includes, e)
		return
	}
	g.includes[e] = fresh
}

func (g *DependencyGraph) removeDependentLocked(file, entry InternedString) {
	deps := g.dependents[file]
	idx := slices.Index(deps, entry)
	if idx < 0 {
		return
	}
	deps = slices.Delete(deps, idx, idx+1)
	if len(deps) == 0 {
		delete(g.dependents, file)
		return
	}
	g.dependents[file] = deps
}

// DependentsOf returns the entry units recorded for file, in first-seen order.
// It returns nil when the file is unknown.
func (g *DependencyGraph) DependentsOf(file string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return toStrings(g.dependents[NewInternedString(file)])
}

// IncludesOf returns the included-file set most recently recorded for entry.
func (g *DependencyGraph) IncludesOf(entry string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return toStrings(g.includes[NewInternedString(entry)])
}

// Len returns the number of tracked files.
func (g *DependencyGraph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.dependents)
}

// Snapshot returns a copy of the whole mapping.
func (g *DependencyGraph) Snapshot() GraphSnapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := make(GraphSnapshot, len(g.dependents))
	for f, deps := range g.dependents {
		snap[f.String()] = toStrings(deps)
	}
	return snap
}

func toStrings(in []InternedString) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = s.String()
	}
	return out
}
