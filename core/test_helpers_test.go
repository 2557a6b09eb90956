// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.
package core_test

import (
	"testing"

	"github.com/katalvlaran/pathlab/core"
	"github.com/stretchr/testify/require"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
)

// Common concurrency sizes (avoid magic numbers in test bodies).
const (
	NReaders = 50
	NLoops   = 100
)

// diamond returns A→B(1), A→C(5), B→D(10), C→D(1).
func diamond(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.Build(
		[]string{NodeA, NodeB, NodeC, NodeD},
		[]core.ArcSpec{
			{From: NodeA, To: NodeB, Weight: 1},
			{From: NodeA, To: NodeC, Weight: 5},
			{From: NodeB, To: NodeD, Weight: 10},
			{From: NodeC, To: NodeD, Weight: 1},
		},
	)
	require.NoError(t, err)

	return g
}

// targets projects arcs onto their To endpoints.
func targets(arcs []core.Arc) []string {
	out := make([]string, len(arcs))
	for i, a := range arcs {
		out[i] = a.To
	}

	return out
}
