// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// It processes nodes in order of increasing distance using a min-heap priority queue,
// relaxing outgoing arcs and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all arcs (O(E)) to detect negative weights and fail fast.
//   - We treat any arc with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/pathlab/core"
)

// Dijkstra computes shortest distances from the source node (Options.Source)
// to all other nodes in g.
//
// Returns:
//
//   - dist: map from node ID to minimum distance (+∞ if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For unreachable v and for the source, prev[v] == "".
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrNodeNotFound).
//  4. No arc in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 4) Validate Source exists in the graph
	if !g.Contains(cfg.Source) {
		return nil, nil, ErrNodeNotFound
	}

	// 5) Pre-scan all arcs to detect negative weights. Fail fast with ErrNegativeWeight.
	for _, a := range g.Arcs() {
		if a.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: arc #%d %s→%s weight=%v", ErrNegativeWeight, a.Index, a.From, a.To, a.Weight)
		}
	}

	// 6) Prepare data structures.
	n := g.Order()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 7) Run main loop.
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph        // The input graph; read-only within Dijkstra.
	options Options            // Configuration options (Source, thresholds, etc.).
	dist    map[string]float64 // Maps node ID → current best distance from Source.
	prev    map[string]string  // Maps node ID → predecessor on the shortest path.
	visited map[string]bool    // Tracks if a node's distance is finalized.
	pq      nodePQ             // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist[v] = +∞ for every node, then pushes Source at 0.
func (r *runner) init() {
	for _, v := range r.g.Nodes() {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the node with the minimum distance and relaxes
// its outgoing arcs, until the heap is empty or the minimum exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Skip stale heap entry.
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax examines each arc leaving u and attempts to improve distances to its targets.
// Arcs with weight ≥ InfEdgeThreshold are skipped.
func (r *runner) relax(u string) {
	for _, a := range r.g.OutgoingArcs(u) {
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + a.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only, so equal distances keep the first predecessor.
		if newDist >= r.dist[a.To] {
			continue
		}
		r.dist[a.To] = newDist
		r.prev[a.To] = u
		heap.Push(&r.pq, &nodeItem{id: a.To, dist: newDist})
	}
}

// nodeItem represents a node and its current distance from the source.
type nodeItem struct {
	id   string  // node ID
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
