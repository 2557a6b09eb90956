// Package core provides the immutable, directed, weighted multigraph that all
// pathlab solvers borrow read-only.
//
// A Graph G = (V, E) is built once from a node list and an arc list:
//
//   - Nodes are opaque, case-sensitive string identifiers kept in insertion order.
//   - Arcs are ordered pairs (From, To) with a finite real Weight.
//   - Parallel arcs between the same ordered pair are independent arcs.
//   - Self-loops are allowed and stored like any other arc.
//   - Every arc remembers its insertion Index for deterministic tie-breaking.
//
// Why an immutable graph?
//
//   - A solve borrows the graph for its whole run; nothing can change under it.
//   - Concurrent MIN and MAX solves over one graph need no coordination.
//   - Deterministic iteration: Nodes(), Arcs(), OutgoingArcs() and IncomingArcs()
//     all follow insertion order, so identical inputs give byte-identical traces.
//
// Construction:
//
//	g, err := core.Build(
//	    []string{"A", "B", "C"},
//	    []core.ArcSpec{{From: "A", To: "B", Weight: 2}, {From: "B", To: "C", Weight: 3}},
//	)
//
// Errors:
//
//	ErrEmptyNodeID  – a node ID is "".
//	ErrUnknownNode  – an arc endpoint is not a declared node.
//	ErrBadWeight    – a weight is NaN or ±Inf.
//
// Duplicate node IDs passed to Build are ignored (first occurrence wins);
// package builder reports them at the input boundary instead.
//
// Complexity:
//
//   - Build:                     O(V + E)
//   - Contains/Position/Order:   O(1)
//   - OutgoingArcs/IncomingArcs: O(degree)
//   - Nodes/Arcs:                O(V) / O(E) (fresh copies)
package core
