// Package dfs implements depth-first analyses of a directed core.Graph:
// topological sort and cycle detection.
//
// What:
//
//   - TopologicalSort: a linear ordering of nodes in which every arc points
//     forward, or ErrCycleDetected. Deterministic: roots are tried in node
//     insertion order and arcs in arc insertion order.
//   - IsAcyclic: the yes/no form of the same walk.
//   - DetectCycles: witness cycles closed by back arcs, canonicalised by
//     minimal rotation (Booth's algorithm) and deduplicated.
//
// Why:
//
// A greedy longest-path (Max) solve is exact only on acyclic graphs. These
// helpers tell callers which case they are in, and a topological order lets
// tests compute exact longest paths by dynamic programming.
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - DetectCycles:    Time O(V+E + C·L), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrCycleDetected  TopologicalSort met a back arc
//   - context.Canceled  cancelled via WithCancelContext
package dfs
