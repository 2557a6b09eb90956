// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_chain.go - implementation of Chain(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   - Emits arcs (i-1) → i for i=1..n-1 in stable increasing order.
//   - Weight policy: cfg.weightFn(cfg.rng) per arc.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) arcs.
//   - Space: O(1) extra.

package builder

import "fmt"

const (
	methodChain   = "Chain"
	minChainNodes = 2
)

// Chain returns a Constructor that builds a directed path 0→1→…→n-1.
func Chain(n int) Constructor {
	return func(b *docBuilder, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewNodes)
		}

		for i := 0; i < n; i++ {
			b.node(cfg.idFn(i))
		}
		// Emit arcs 0->1->2->...->(n-1) in stable order.
		for i := 1; i < n; i++ {
			b.edge(cfg.idFn(i-1), cfg.idFn(i), cfg.weightFn(cfg.rng))
		}

		return nil
	}
}
