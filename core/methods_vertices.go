// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node queries.
//
// Determinism:
//   - Nodes() returns IDs in insertion order, never sorted.
//
// Concurrency:
//   - Read-only over immutable state; no locks required.

package core

// Nodes returns the node IDs in insertion order.
// The returned slice is a fresh copy; mutating it does not affect the graph.
//
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Contains reports whether id is a node of the graph. Empty id ⇒ false.
//
// Complexity: O(1).
func (g *Graph) Contains(id string) bool {
	if id == "" {
		return false
	}
	_, ok := g.position[id]

	return ok
}

// Position returns the insertion position of id, or -1 if absent.
func (g *Graph) Position(id string) int {
	if p, ok := g.position[id]; ok {
		return p
	}

	return -1
}

// Order returns |V|.
func (g *Graph) Order() int { return len(g.nodes) }

// OutDegree returns the number of arcs leaving id (parallel arcs and loops counted).
func (g *Graph) OutDegree(id string) int { return len(g.out[id]) }

// InDegree returns the number of arcs entering id (parallel arcs and loops counted).
func (g *Graph) InDegree(id string) int { return len(g.in[id]) }
