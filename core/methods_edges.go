// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Arc queries: Arcs/OutgoingArcs/IncomingArcs/Arc/Size/AllNonNegative.
// Determinism:
//   - Every arc listing is in insertion order (Arc.Index ascending).
// Concurrency:
//   - Read-only over immutable state; no locks required.

package core

// Arcs returns all arcs in insertion order as a fresh slice.
//
// Complexity: O(E).
func (g *Graph) Arcs() []Arc {
	out := make([]Arc, len(g.arcs))
	copy(out, g.arcs)

	return out
}

// Arc returns the arc with the given insertion index.
func (g *Graph) Arc(index int) (Arc, bool) {
	if index < 0 || index >= len(g.arcs) {
		return Arc{}, false
	}

	return g.arcs[index], true
}

// OutgoingArcs returns the arcs leaving id in insertion order.
// Unknown IDs and sinks both yield nil.
//
// Complexity: O(out-degree).
func (g *Graph) OutgoingArcs(id string) []Arc {
	return g.collect(g.out[id])
}

// IncomingArcs returns the arcs entering id in insertion order.
// Unknown IDs and sources both yield nil.
//
// Complexity: O(in-degree).
func (g *Graph) IncomingArcs(id string) []Arc {
	return g.collect(g.in[id])
}

// Size returns |E|, counting parallel arcs and loops individually.
func (g *Graph) Size() int { return len(g.arcs) }

// AllNonNegative reports whether no arc has a negative weight.
// Solvers that require non-negative weights (Dijkstra) gate on this.
func (g *Graph) AllNonNegative() bool {
	for i := range g.arcs {
		if g.arcs[i].Weight < 0 {
			return false
		}
	}

	return true
}

// collect materialises arc indices into a fresh slice.
func (g *Graph) collect(idx []int) []Arc {
	if len(idx) == 0 {
		return nil
	}
	out := make([]Arc, len(idx))
	for i, k := range idx {
		out[i] = g.arcs[k]
	}

	return out
}
