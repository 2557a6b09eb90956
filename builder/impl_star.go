// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Hub is cfg.idFn(0); leaves are cfg.idFn(1..n-1).
//   - Emits hub → leaf arcs only, in increasing leaf order, so every
//     leaf is one hop from the hub and no leaf reaches another.
//
// Complexity:
//   - Time: O(n).
//   - Space: O(1) extra.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds an out-star with n nodes:
// one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(b *docBuilder, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}

		hub := cfg.idFn(0)
		b.node(hub)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			b.node(leaf)
			b.edge(hub, leaf, cfg.weightFn(cfg.rng))
		}

		return nil
	}
}
