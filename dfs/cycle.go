package dfs

import (
	"sort"
	"strings"

	"github.com/katalvlaran/pathlab/core"
)

// DetectCycles reports the directed cycles closed by back arcs of a
// depth-first forest over g. Every cyclic graph yields at least one cycle;
// cycles that share all their back arcs with others may be omitted, so this
// is a witness list rather than a full enumeration.
//
// Each cycle is closed ([v0, v1, ..., v0]) and rotated so that its smallest
// node comes first; a self-loop is [v, v]. Parallel arcs do not produce
// duplicates. The list is sorted by signature for deterministic output.
//
// Returns (false, nil, nil) for an acyclic graph and ErrGraphNil for nil.
//
// Complexity: O(V + E + C·L) time (C cycles of average length L), O(V) memory.
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}

	nodes := g.Nodes()
	d := &cycleFinder{
		graph: g,
		state: make(map[string]int, len(nodes)),
		path:  make([]string, 0, len(nodes)),
		seen:  make(map[string]struct{}),
	}
	for _, v := range nodes {
		if d.state[v] == White {
			d.visit(v)
		}
	}

	if len(d.cycles) == 0 {
		return false, nil, nil
	}
	sort.Slice(d.cycles, func(i, j int) bool {
		return joinSig(d.cycles[i]) < joinSig(d.cycles[j])
	})

	return true, d.cycles, nil
}

// cycleFinder holds the DFS stack and the deduplicated cycles found so far.
type cycleFinder struct {
	graph  *core.Graph
	state  map[string]int
	path   []string            // current DFS stack
	seen   map[string]struct{} // canonical signatures
	cycles [][]string
}

func (d *cycleFinder) visit(id string) {
	d.state[id] = Gray
	d.path = append(d.path, id)

	for _, a := range d.graph.OutgoingArcs(id) {
		switch d.state[a.To] {
		case White:
			d.visit(a.To)
		case Gray:
			// back arc id→a.To closes path[idx:]
			d.record(a.To)
		}
	}

	d.path = d.path[:len(d.path)-1]
	d.state[id] = Black
}

// record extracts the cycle starting at start from the stack and keeps it
// if its canonical form is new.
func (d *cycleFinder) record(start string) {
	idx := indexOf(d.path, start)
	closed := canonical(d.path[idx:])
	sig := joinSig(closed)
	if _, ok := d.seen[sig]; ok {
		return
	}
	d.seen[sig] = struct{}{}
	d.cycles = append(d.cycles, closed)
}

// canonical rotates an open cycle to its lexicographically minimal rotation
// and closes it. Direction is kept: A→B→C→A and A→C→B→A are different cycles.
func canonical(open []string) []string {
	rot := MinimalRotation(open)

	return append(rot, rot[0])
}

func joinSig(c []string) string {
	return strings.Join(c, ",")
}
