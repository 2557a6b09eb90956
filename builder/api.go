// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// api.go - public entry-points for fixture composition.
//
// Design contract:
//   - One orchestrator: Compose(bopts, cons...). Creates an empty Document,
//     resolves cfg, runs cons in order.
//   - Fixtures produce Documents, not graphs, so generated and hand-written
//     inputs share one path into core (Build).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical documents.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"
	"strconv"
)

// Constructor appends a deterministic topology to the document under
// construction using the resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(b *docBuilder, cfg builderConfig) error

// Compose resolves the builder configuration from bopts and applies all
// constructors in order to a fresh Document. Node IDs shared between
// constructors are merged, so Chain(3) followed by Star(3) share node "0".
// Any constructor error is wrapped with the context "Compose: %w".
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func Compose(bopts []BuilderOption, cons ...Constructor) (*Document, error) {
	cfg := newBuilderConfig(bopts...)
	b := &docBuilder{doc: &Document{}, seen: make(map[string]bool)}
	for _, c := range cons {
		if err := c(b, cfg); err != nil {
			return nil, fmt.Errorf("Compose: %w", err)
		}
	}

	return b.doc, nil
}

// docBuilder accumulates a Document with node de-duplication and
// sequential edge IDs e1, e2, ...
type docBuilder struct {
	doc  *Document
	seen map[string]bool
}

// node adds id unless present.
func (b *docBuilder) node(id string) {
	if b.seen[id] {
		return
	}
	b.seen[id] = true
	b.doc.Nodes = append(b.doc.Nodes, NodeDoc{ID: id})
}

// edge appends a weighted edge; endpoints must already be nodes.
func (b *docBuilder) edge(from, to string, w float64) {
	weight := w
	b.doc.Edges = append(b.doc.Edges, EdgeDoc{
		ID:     "e" + strconv.Itoa(len(b.doc.Edges)+1),
		Source: from,
		Target: to,
		Weight: &weight,
	})
}
