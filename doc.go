// Package pathlab is a traced extremal-path engine: shortest and longest
// routes over small weighted directed graphs, computed with Dantzig's
// label-setting method and recorded step by step so every decision can be
// replayed and explained.
//
// 🚀 What is in the box?
//
//   - Graph model:   immutable directed multigraph with insertion-ordered arcs
//   - Label solver:  MIN and MAX settlement, one node per step
//   - Reconstructor: one optimal path recovered from finished labels
//   - Trace:         self-contained, replayable step records with formulas
//   - Oracles:       Dijkstra for MIN, topological DP for MAX on DAGs
//
// ✨ Guarantees
//
//   - Deterministic: same graph, source and mode give byte-identical traces
//   - Write-once labels: a settled node's value never changes
//   - Explainable: each step lists every candidate as λ(u) + w(u,v) = total
//
// Packages:
//
//	core/       Graph, Arc, Build; the read-only model every solver shares
//	dantzig/    Solve, Reconstruct, SolveBoth; Labels, Path, Mode
//	trace/      Recorder, Sequence, Step, Candidate; Validate for replay checks
//	bfs/        reachability walker used for MAX readiness
//	dfs/        topological sort and cycle witnesses
//	dijkstra/   reference shortest paths for cross-checking MIN
//	builder/    YAML/JSON graph documents, the sample graph, test fixtures
//	cmd/pathlab CLI: solve, path, trace, both, verify, sample
//
// Quick ASCII example:
//
//	A ──2──▶ B ──3──▶ C
//	 ╲               ▲
//	  ╰──────9──────╯
//
// MIN from A settles B (2) then C (5 via B); MAX settles C at 9.
//
//	go install github.com/katalvlaran/pathlab/cmd/pathlab@latest
package pathlab
