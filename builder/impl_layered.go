// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_layered.go - implementation of Layered(layers, width) constructor.
//
// Contract:
//   - layers ≥ 2, width ≥ 1 (else ErrTooFewNodes).
//   - Node index k = layer*width + column; IDs via cfg.idFn(k).
//   - Every node of layer l has an arc to every node of layer l+1, emitted
//     in (column of l, column of l+1) ascending order.
//   - The result is acyclic and every node is reachable from index 0 when
//     width == 1, or from every node of layer 0 in general.
//
// Complexity:
//   - Time: O(layers·width²).
//   - Space: O(1) extra.

package builder

import "fmt"

const (
	methodLayered    = "Layered"
	minLayeredLayers = 2
	minLayeredWidth  = 1
)

// Layered returns a Constructor for a complete layered DAG, the shape where
// longest and shortest routes diverge most.
func Layered(layers, width int) Constructor {
	return func(b *docBuilder, cfg builderConfig) error {
		if layers < minLayeredLayers {
			return fmt.Errorf("%s: layers=%d < min=%d: %w", methodLayered, layers, minLayeredLayers, ErrTooFewNodes)
		}
		if width < minLayeredWidth {
			return fmt.Errorf("%s: width=%d < min=%d: %w", methodLayered, width, minLayeredWidth, ErrTooFewNodes)
		}

		for k := 0; k < layers*width; k++ {
			b.node(cfg.idFn(k))
		}
		for l := 0; l+1 < layers; l++ {
			for i := 0; i < width; i++ {
				u := cfg.idFn(l*width + i)
				for j := 0; j < width; j++ {
					b.edge(u, cfg.idFn((l+1)*width+j), cfg.weightFn(cfg.rng))
				}
			}
		}

		return nil
	}
}
