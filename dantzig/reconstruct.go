package dantzig

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/trace"
)

// Reconstruct recovers one optimal path from source to target out of
// finished labels.
//
// The walk runs backwards from target. At node v it looks for an incoming
// arc (u,v,w) with u settled before v and λ(u) + w == λ(v); among several,
// the smallest u wins, then the first-inserted arc. Equality is exact: every
// label was produced by exactly that addition. Settlement rank strictly
// falls along the walk, so it always ends.
//
// Errors:
//   - ErrNilGraph, ErrNilLabels for missing inputs.
//   - ErrNoPath if target is not a node of g or was never settled.
//   - ErrReconstruction if source is not the labels' source, or some node has
//     no qualifying predecessor.
//
// Reconstruct only reads its inputs; repeated calls return equal paths.
func Reconstruct(g *core.Graph, labels *Labels, source, target string) (*Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if labels == nil {
		return nil, ErrNilLabels
	}
	if source != labels.Source() {
		return nil, fmt.Errorf("%w: labels were solved from %q, not %q", ErrReconstruction, labels.Source(), source)
	}
	if !g.Contains(target) {
		return nil, fmt.Errorf("%w: %q is not in the graph", ErrNoPath, target)
	}
	if !labels.Reachable(target) {
		return nil, fmt.Errorf("%w: %q is unreachable from %q", ErrNoPath, target, source)
	}

	nodes := []string{target}
	var arcs []core.Arc
	for v := target; v != source; {
		a, ok := predecessor(g, labels, v)
		if !ok {
			return nil, fmt.Errorf("%w: no arc into %q telescopes to λ = %s",
				ErrReconstruction, v, trace.FormatValue(labels.value[v]))
		}
		arcs = append(arcs, a)
		nodes = append(nodes, a.From)
		v = a.From
	}

	// reverse to get source → target
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(arcs)-1; i < j; i, j = i+1, j-1 {
		arcs[i], arcs[j] = arcs[j], arcs[i]
	}
	if arcs == nil {
		arcs = []core.Arc{}
	}

	return &Path{
		Source: source,
		Target: target,
		Mode:   labels.Mode(),
		Nodes:  nodes,
		Arcs:   arcs,
		Cost:   labels.value[target],
	}, nil
}

// predecessor picks the arc the backward walk follows out of v.
func predecessor(g *core.Graph, labels *Labels, v string) (core.Arc, bool) {
	rv, ok := labels.rank[v]
	if !ok {
		return core.Arc{}, false
	}
	lv := labels.value[v]

	var best core.Arc
	found := false
	for _, a := range g.IncomingArcs(v) {
		ru, settled := labels.rank[a.From]
		if !settled || ru >= rv {
			continue
		}
		if labels.value[a.From]+a.Weight != lv {
			continue
		}
		if !found || a.From < best.From || (a.From == best.From && a.Index < best.Index) {
			best, found = a, true
		}
	}

	return best, found
}
