// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors and Build themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"log/slog"
	"math"
	"math/rand"
)

// BuilderOption customizes a fixture constructor or Build by mutating a
// builderConfig instance before work begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic node ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator of fixtures.
// Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithDefaultWeight sets the weight Build gives to edges carrying neither
// a weight nor a numeric label. Panics on NaN or ±Inf.
func WithDefaultWeight(w float64) BuilderOption {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		panic("builder: WithDefaultWeight(non-finite)")
	}
	return func(c *builderConfig) {
		c.defaultWeight = w
	}
}

// WithLenientWeights makes Build skip edges whose label is not a number
// (logging a warning) instead of failing with ErrBadWeight.
func WithLenientWeights() BuilderOption {
	return func(c *builderConfig) {
		c.lenient = true
	}
}

// WithLogger routes Build warnings to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) BuilderOption {
	return func(c *builderConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
