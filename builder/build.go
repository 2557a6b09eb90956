// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// build.go - Document → core.Graph conversion.
//
// Contract:
//   - Validate first (required fields, duplicate node IDs).
//   - Resolve each edge weight: Weight, else Label parsed as a number,
//     else the default weight.
//   - Hand nodes and arcs to core.Build in document order; core rejects
//     unknown endpoints with core.ErrUnknownNode.

package builder

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathlab/core"
)

const methodBuild = "Build"

// Build validates doc and converts it into an immutable core.Graph.
//
// Errors:
//   - ErrInvalidDocument, ErrDuplicateNode from Validate.
//   - ErrBadWeight for a non-numeric label or non-finite weight, unless
//     WithLenientWeights is set, in which case the edge is skipped.
//   - core.ErrUnknownNode, core.ErrEmptyNodeID from core.Build.
func Build(doc *Document, opts ...BuilderOption) (*core.Graph, error) {
	if doc == nil {
		return nil, fmt.Errorf("%s: %w: nil document", methodBuild, ErrInvalidDocument)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	cfg := newBuilderConfig(opts...)

	arcs := make([]core.ArcSpec, 0, len(doc.Edges))
	for i, e := range doc.Edges {
		w, err := cfg.resolveWeight(e)
		if err != nil {
			if !cfg.lenient {
				return nil, fmt.Errorf("%s: edges[%d] %s: %w", methodBuild, i, edgeName(e), err)
			}
			cfg.logger.Warn("builder: skipping edge with unusable weight",
				"edge", edgeName(e), "index", i, "error", err)
			continue
		}
		arcs = append(arcs, core.ArcSpec{From: e.Source, To: e.Target, Weight: w})
	}

	g, err := core.Build(doc.NodeIDs(), arcs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	cfg.logger.Debug("builder: graph built", "nodes", g.Order(), "arcs", g.Size())

	return g, nil
}

// resolveWeight applies the Weight → Label → default precedence.
func (c builderConfig) resolveWeight(e EdgeDoc) (float64, error) {
	if e.Weight != nil {
		if math.IsNaN(*e.Weight) || math.IsInf(*e.Weight, 0) {
			return 0, fmt.Errorf("%w: weight=%v", ErrBadWeight, *e.Weight)
		}
		return *e.Weight, nil
	}
	label := strings.TrimSpace(e.Label)
	if label == "" {
		return c.defaultWeight, nil
	}
	w, err := strconv.ParseFloat(label, 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("%w: label %q", ErrBadWeight, e.Label)
	}

	return w, nil
}

// edgeName renders an edge for messages: its ID if set, else source→target.
func edgeName(e EdgeDoc) string {
	if e.ID != "" {
		return fmt.Sprintf("%q (%s→%s)", e.ID, e.Source, e.Target)
	}

	return e.Source + "→" + e.Target
}
