// Package dijkstra provides Dijkstra's shortest-path algorithm on a
// core.Graph with non-negative arc weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source node to all
//     reachable nodes in O((V + E) log V) time, where V = |nodes| and E = |arcs|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest node.
//   - Supports optional predecessor maps, distance caps, and “impassable” arc thresholds.
//
// When to use:
//
//   - As an independent oracle: on graphs without negative arcs its distances
//     must equal the Min-mode labels of package dantzig. Tests and the
//     `pathlab verify` command rely on this.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     the Source string is empty.
//   - ErrNilGraph:        a nil *core.Graph was passed.
//   - ErrNodeNotFound:    the source node does not exist in the graph.
//   - ErrNegativeWeight:  some arc has a negative weight (O(E) pre-scan).
//   - ErrBadMaxDistance:  panic from WithMaxDistance on a negative value.
//   - ErrBadInfThreshold: panic from WithInfEdgeThreshold on a non-positive value.
//
// API reference:
//
//	func Dijkstra(
//	    g *core.Graph,
//	    opts ...Option,
//	) (dist map[string]float64, prev map[string]string, err error)
//
//	  - dist: map[v] = minimal distance from Source to v, or +∞ if unreachable.
//	  - prev: map[v] = immediate predecessor of v on one shortest path from Source,
//	          or "" if v is the Source or v is unreachable. Nil if ReturnPath=false.
//
// Thread safety:
//
//   - core.Graph is immutable, so any number of Dijkstra calls may share one graph.
package dijkstra
