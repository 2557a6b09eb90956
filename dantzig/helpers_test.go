package dantzig_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/core"
)

// build assembles a graph from explicit nodes and (from, to, weight) triples.
func build(t testing.TB, nodes []string, arcs ...core.ArcSpec) *core.Graph {
	t.Helper()
	g, err := core.Build(nodes, arcs)
	require.NoError(t, err)

	return g
}

func arc(from, to string, w float64) core.ArcSpec {
	return core.ArcSpec{From: from, To: to, Weight: w}
}

// randomGraph returns n nodes "n0".."n(n-1)" and integer-weighted arcs.
// With dag set, arcs only run from lower to higher index.
func randomGraph(t testing.TB, seed int64, n int, p float64, minW, maxW int, dag bool) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	nodes := make([]string, n)
	for i := range nodes {
		nodes[i] = fmt.Sprintf("n%d", i)
	}
	var arcs []core.ArcSpec
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || (dag && j < i) || rng.Float64() >= p {
				continue
			}
			w := float64(minW + rng.Intn(maxW-minW+1))
			arcs = append(arcs, arc(nodes[i], nodes[j], w))
		}
	}

	return build(t, nodes, arcs...)
}
