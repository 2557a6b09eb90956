// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Arc and ArcSpec types used by every
// solver in pathlab.
//
// This file declares the sentinel errors, the value types and the Graph
// storage layout. Construction lives in api.go, node queries in
// methods_vertices.go and arc queries in methods_edges.go.
//
// Errors:
//
//	ErrEmptyNodeID  - a node identifier is the empty string.
//	ErrUnknownNode  - an arc references an identifier outside the node set.
//	ErrBadWeight    - an arc weight is NaN or infinite.
package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrEmptyNodeID indicates that a node identifier is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrUnknownNode indicates an arc endpoint that is not a declared node.
	ErrUnknownNode = errors.New("core: arc references unknown node")

	// ErrBadWeight indicates a NaN or ±Inf arc weight.
	ErrBadWeight = errors.New("core: arc weight must be finite")
)

// ArcSpec is the caller-side description of one arc: an ordered pair
// (From, To) and a finite real Weight.
type ArcSpec struct {
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Arc is an arc as stored by a Graph.
//
// Index is the zero-based insertion position of the arc in the slice passed
// to Build. It is unique per graph and is the last-resort tie-break key of
// every deterministic choice made by the solvers.
type Arc struct {
	Index  int     `json:"index"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// Graph is an immutable directed weighted multigraph keyed by string IDs.
//
// Parallel arcs and self-loops are stored as independent arcs. Nothing is
// merged: picking the best arc into a node is the solver's job.
// A Graph never changes after Build, so any number of goroutines may read
// it concurrently without synchronization.
type Graph struct {
	// nodes in insertion order; position[id] is the index into nodes.
	nodes    []string
	position map[string]int

	// arcs in insertion order (arcs[i].Index == i).
	arcs []Arc

	// out[id] / in[id] hold arc indices in insertion order.
	out map[string][]int
	in  map[string][]int
}
