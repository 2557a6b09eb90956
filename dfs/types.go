// Package dfs defines shared types for depth-first analyses of a core.Graph:
// visitation colours, sentinel errors and options.
package dfs

import (
	"context"
	"errors"
)

// Visitation state of a node during a depth-first walk.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the recursion stack (visiting).
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to
	// TopologicalSort or DetectCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that TopologicalSort met a back arc.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
