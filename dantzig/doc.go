// Package dantzig provides Dantzig's label-setting method for single-source
// extremal paths on a core.Graph, in two directions and with a replayable
// step trace.
//
// Overview:
//
//   - Solve grows a settled set S from the source one node per iteration.
//     Each iteration evaluates every arc leaving S, admits the target of the
//     extremal one and freezes its label λ. Labels are write-once.
//   - Mode Min yields cheapest labels (shortest paths); Mode Max yields
//     costliest labels (longest paths). One algorithm serves both; only the
//     comparator and the unreached sentinel (+∞ / -∞) flip.
//   - With WithTrace, every iteration is captured as a self-contained
//     trace.Step: settled set, labels, candidates with formulas, the winner
//     and a justification. Step k renders without steps 0..k-1.
//   - Reconstruct walks finished labels backwards into a Path carrying both
//     nodes and arcs.
//   - SolveBoth runs Min and Max concurrently over one graph.
//
// Determinism:
//
//	Candidates are visited in settlement order, then arc insertion order.
//	Equal totals go to the lexicographically smallest target, then to the
//	first-inserted arc. Identical input therefore gives identical labels and
//	identical traces, byte for byte.
//
// Max mode:
//
//	An arc into a node is eligible only once all of the node's predecessors
//	that are reachable from the source are settled. Without this, a greedy
//	pick could freeze λ(D) = 6 via A→C→D before A→B→D = 11 is seen. Arcs that
//	are not yet eligible still appear in the step's candidates, marked
//	Deferred. When a cycle leaves no target ready, the restriction is lifted
//	for that one step; on cyclic graphs Max labels are then a best effort,
//	not a guarantee.
//
// Negative weights (Min mode):
//
//	Not detected. A graph with negative arcs or a negative cycle reachable from
//	the source still terminates in at most |V|-1 steps, but its labels and
//	paths need not be minimal. This is a caller precondition. Use
//	core.Graph.AllNonNegative to gate inputs, or compare with package dijkstra.
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V + E); the trace adds O(V²) steps × labels.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrUnknownSource, ErrBadMode: input
//     rejected before any computation.
//   - ErrNoPath: the target cannot be reached. A normal outcome.
//   - ErrReconstruction: labels and graph disagree. A programmer error.
//   - ErrLabelOverflow: some λ(u) + w left the float64 range mid-run.
//
// Example:
//
//	labels, seq, err := dantzig.Solve(g, dantzig.Source("A"), dantzig.WithMode(dantzig.Max), dantzig.WithTrace())
//	if err != nil {
//	    return err
//	}
//	path, err := dantzig.Reconstruct(g, labels, "A", "D")
//	if errors.Is(err, dantzig.ErrNoPath) {
//	    // render "no path"
//	}
package dantzig
