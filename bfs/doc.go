// Package bfs provides breadth-first search over a core.Graph, returning hop
// distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node, following
//     arcs From→To only.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (arcs) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort with an error).
//   - Per-arc filtering via WithFilterArc, and a MaxDepth limit.
//
// Why
//
//   - Reachability is what the Dantzig solver needs to decide, in MAX mode,
//     whether every relevant predecessor of a node has been settled.
//   - Weights are ignored: BFS answers "can I get there", not "at what cost".
//
// Determinism
//
//	Outgoing arcs are visited in insertion order, so the visit sequence is
//	fully reproducible for a given graph.
//
// Complexity (V = |nodes|, E = |arcs|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
//	reach, err := bfs.Reachable(g, "A")
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrStartNodeNotFound   if the start node does not exist.
//   - ErrOptionViolation     if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err()              on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
