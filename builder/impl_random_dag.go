// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_random_dag.go - implementation of RandomDAG(n, p) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); p ∈ [0,1] (else ErrInvalidProbability).
//   - RNG required when 0 < p < 1 (else ErrNeedRandSource).
//   - Trials run over ordered pairs (i,j) with i < j, i asc then j asc, so
//     every arc points from a lower to a higher index and the graph is
//     acyclic with index order as a topological order.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Deterministic outcomes for a fixed seed due to fixed trial order.

package builder

import "fmt"

const (
	methodRandomDAG   = "RandomDAG"
	minRandomDAGNodes = 1
	probMin           = 0.0
	probMax           = 1.0
)

// RandomDAG returns a Constructor that samples a random acyclic graph over
// n nodes with independent forward-arc probability p.
func RandomDAG(n int, p float64) Constructor {
	return func(b *docBuilder, cfg builderConfig) error {
		if n < minRandomDAGNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomDAG, n, minRandomDAGNodes, ErrTooFewNodes)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomDAG, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomDAG, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			b.node(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				if p < probMax && (p == probMin || cfg.rng.Float64() >= p) {
					continue
				}
				b.edge(u, cfg.idFn(j), cfg.weightFn(cfg.rng))
			}
		}

		return nil
	}
}
