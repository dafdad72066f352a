package relationship

import (
	"context"
	"sync"
	"sync/atomic"
)

// Graph holds every relationship set in memory.
type Graph struct {
	mu   sync.RWMutex
	sets map[string]map[string]struct{}
}

func NewGraph() *Graph {
	return &Graph{sets: make(map[string]map[string]struct{})}
}

// Add records member in owner's set of the given kind.
func (g *Graph) Add(kind Kind, owner, member string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	k := key(kind, owner)
	set, ok := g.sets[k]
	if !ok {
		set = make(map[string]struct{})
		g.sets[k] = set
	}
	set[member] = struct{}{}
}

func (g *Graph) Remove(kind Kind, owner, member string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.sets[key(kind, owner)], member)
}

// Lookup returns a lookup over one kind. Calls are counted.
func (g *Graph) Lookup(kind Kind) *MemoryLookup {
	return &MemoryLookup{graph: g, kind: kind}
}

type MemoryLookup struct {
	graph *Graph
	kind  Kind
	calls atomic.Int64
}

func (l *MemoryLookup) MembersFor(_ context.Context, email string) (map[string]struct{}, error) {
	l.calls.Add(1)
	l.graph.mu.RLock()
	defer l.graph.mu.RUnlock()
	src := l.graph.sets[key(l.kind, email)]
	out := make(map[string]struct{}, len(src))
	for m := range src {
		out[m] = struct{}{}
	}
	return out, nil
}

// Calls reports how many lookups were issued.
func (l *MemoryLookup) Calls() int64 {
	return l.calls.Load()
}
