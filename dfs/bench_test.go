package dfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/dfs"
)

// chain builds N0 → N1 → ... → N(n-1).
func chain(n int) *core.Graph {
	nodes := make([]string, n)
	arcs := make([]core.ArcSpec, 0, n-1)
	for i := range nodes {
		nodes[i] = fmt.Sprintf("N%d", i)
		if i > 0 {
			arcs = append(arcs, core.ArcSpec{From: nodes[i-1], To: nodes[i], Weight: 1})
		}
	}

	return core.MustBuild(nodes, arcs)
}

// BenchmarkTopologicalSort_Chain10000 measures a 10,000-node chain; the
// recursion depth equals the chain length.
func BenchmarkTopologicalSort_Chain10000(b *testing.B) {
	g := chain(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.TopologicalSort(g)
	}
}

func BenchmarkDetectCycles_Chain10000(b *testing.B) {
	g := chain(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dfs.DetectCycles(g)
	}
}
