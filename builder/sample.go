// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// sample.go - the built-in demonstration graph.

package builder

// sampleEdges lists the demonstration arcs as (id, source, target, label).
var sampleEdges = [...][4]string{
	{"e1", "x1", "x2", "10"},
	{"e2", "x2", "x3", "15"},
	{"e3", "x2", "x4", "8"},
	{"e4", "x3", "x6", "1"},
	{"e5", "x4", "x5", "6"},
	{"e6", "x4", "x6", "5"},
	{"e7", "x5", "x9", "1"},
	{"e8", "x6", "x7", "4"},
	{"e9", "x7", "x8", "1"},
	{"e10", "x8", "x9", "3"},
	{"e11", "x8", "x12", "7"},
	{"e12", "x9", "x10", "6"},
	{"e13", "x10", "x12", "7"},
	{"e14", "x7", "x11", "8"},
	{"e15", "x11", "x13", "2"},
	{"e16", "x12", "x15", "9"},
	{"e17", "x13", "x14", "4"},
	{"e18", "x14", "x15", "5"},
	{"e19", "x15", "x16", "6"},
}

// SampleNodes is the number of nodes in DefaultDocument (x1..x16).
const SampleNodes = 16

// DefaultDocument returns a fresh copy of the 16-node, 19-edge acyclic
// demonstration graph x1..x16, with weights carried in edge labels the way
// an editor stores them. From x1, the cheapest route to x16 costs 50 and
// the costliest 62.
func DefaultDocument() *Document {
	doc := &Document{
		Nodes: make([]NodeDoc, SampleNodes),
		Edges: make([]EdgeDoc, len(sampleEdges)),
	}
	for i := range doc.Nodes {
		doc.Nodes[i] = NodeDoc{ID: SymbolNumberIDFn("x")(i + 1)}
	}
	for i, e := range sampleEdges {
		doc.Edges[i] = EdgeDoc{ID: e[0], Source: e[1], Target: e[2], Label: e[3]}
	}

	return doc
}
