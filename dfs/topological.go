package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathlab/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph    // the graph being sorted
	opts  topoOptions    // traversal options (cancellation)
	state map[string]int // visitation state: White, Gray, Black
	order []string       // recorded post-order sequence
}

// TopologicalSort computes a linear ordering of all nodes in g such that for
// every arc u→v, u appears before v.
//
// The walk starts from nodes in insertion order and follows outgoing arcs
// in insertion order, so the result is deterministic. A self-loop counts as
// a cycle.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrCycleDetected (wrapped with the node closing the cycle) if g is cyclic.
//   - ctx.Err() if the context passed via WithCancelContext is done.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	nodes := g.Nodes()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(nodes)),
		order: make([]string, 0, len(nodes)),
	}
	// 4. Drive DFS from every unvisited node
	for _, v := range nodes {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// IsAcyclic reports whether g has no directed cycle (self-loops included).
func IsAcyclic(g *core.Graph) (bool, error) {
	_, err := TopologicalSort(g)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrCycleDetected):
		return false, nil
	default:
		return false, err
	}
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id string) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	if t.state[id] == Gray {
		return fmt.Errorf("%w at %q", ErrCycleDetected, id)
	}
	if t.state[id] == Black {
		return nil
	}
	t.state[id] = Gray

	for _, a := range t.graph.OutgoingArcs(id) {
		if err := t.visit(a.To); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
