// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn          = DefaultIDFn        ("0","1","2",...)
//   • rng           = nil                (pure/deterministic unless seeded)
//   • weightFn      = DefaultWeightFn    (constant DefaultEdgeWeight)
//   • defaultWeight = DefaultEdgeWeight  (edges with neither weight nor label)
//   • lenient       = false              (bad weights are errors)
//   • logger        = discard

package builder

import (
	"log/slog"
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors and Build.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for fixture edges.
	weightFn WeightFn

	// Document → graph conversion.
	defaultWeight float64
	lenient       bool
	logger        *slog.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:          DefaultIDFn,
		rng:           nil,
		weightFn:      DefaultWeightFn,
		defaultWeight: DefaultEdgeWeight,
		logger:        slog.New(slog.DiscardHandler),
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
