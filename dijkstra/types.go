// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes in a graph with non-negative arc weights.
// It serves as the reference oracle for Min-mode labels of package dantzig.
//
// Options:
//
//	– Source:           ID of the starting node (must be non-empty and present in the graph).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; nodes beyond this are skipped.
//	– InfEdgeThreshold: arcs with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNodeNotFound    if the source node does not exist in the graph.
//	– ErrNegativeWeight  if a negative arc weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the specified source node does not exist
	// in the provided graph.
	ErrNodeNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNegativeWeight indicates that a negative arc weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative arc weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all arcs (including zero-weight arcs) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting node ID (must be non-empty and present in the graph).
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore (nodes beyond are skipped).
//
//	Must be ≥ 0. Default is +∞ (no cap).
//
// InfEdgeThreshold – treat arcs with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +∞ (no obstacles).
type Options struct {
	Source           string  // The ID of the source node
	ReturnPath       bool    // Whether to return the predecessor map
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold above which arcs are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting node ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which arcs are
// considered non-traversable (treated as infinite weight).
// Arcs with weight ≥ threshold are skipped entirely.
// Must pass a positive value; zero or negative panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source node ID.
//
// Defaults:
//   - Source:           <as passed> (no validation here; validated in Dijkstra).
//   - ReturnPath:       false (predecessor map not returned).
//   - MaxDistance:      +∞ (no distance limit; explore all reachable).
//   - InfEdgeThreshold: +∞ (no arcs treated as impassable).
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
