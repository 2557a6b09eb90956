// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: The single constructor of core.Graph.
// Policy:
//   - All validation happens here; a returned Graph is always well-formed.
//   - No mutation API exists after construction.

package core

import (
	"fmt"
	"math"
)

// Build validates nodes and arcs and returns an immutable Graph.
//
// Implementation:
//   - Stage 1: Register nodes in order; reject empty IDs, skip duplicates.
//   - Stage 2: Register arcs in order; reject unknown endpoints and non-finite weights.
//
// Behavior highlights:
//   - Duplicate node IDs are a no-op: the first occurrence keeps its position.
//     Reporting duplicates to users is the job of the input boundary (builder).
//   - Parallel arcs and self-loops are kept as independent arcs.
//
// Errors:
//   - ErrEmptyNodeID: a node ID is "".
//   - ErrUnknownNode: an arc endpoint is not in nodes (wrapped with arc position and ID).
//   - ErrBadWeight:   a weight is NaN or ±Inf.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func Build(nodes []string, arcs []ArcSpec) (*Graph, error) {
	g := &Graph{
		nodes:    make([]string, 0, len(nodes)),
		position: make(map[string]int, len(nodes)),
		arcs:     make([]Arc, 0, len(arcs)),
		out:      make(map[string][]int, len(nodes)),
		in:       make(map[string][]int, len(nodes)),
	}

	for _, id := range nodes {
		if id == "" {
			return nil, ErrEmptyNodeID
		}
		if _, dup := g.position[id]; dup {
			continue
		}
		g.position[id] = len(g.nodes)
		g.nodes = append(g.nodes, id)
	}

	var idx int
	var a ArcSpec
	for idx, a = range arcs {
		if _, ok := g.position[a.From]; !ok {
			return nil, fmt.Errorf("%w: arc #%d %s→%s: %q", ErrUnknownNode, idx, a.From, a.To, a.From)
		}
		if _, ok := g.position[a.To]; !ok {
			return nil, fmt.Errorf("%w: arc #%d %s→%s: %q", ErrUnknownNode, idx, a.From, a.To, a.To)
		}
		if math.IsNaN(a.Weight) || math.IsInf(a.Weight, 0) {
			return nil, fmt.Errorf("%w: arc #%d %s→%s weight=%v", ErrBadWeight, idx, a.From, a.To, a.Weight)
		}
		g.arcs = append(g.arcs, Arc{Index: idx, From: a.From, To: a.To, Weight: a.Weight})
		g.out[a.From] = append(g.out[a.From], idx)
		g.in[a.To] = append(g.in[a.To], idx)
	}

	return g, nil
}

// MustBuild is like Build but panics on error. Intended for fixtures and examples.
func MustBuild(nodes []string, arcs []ArcSpec) *Graph {
	g, err := Build(nodes, arcs)
	if err != nil {
		panic(err)
	}

	return g
}
