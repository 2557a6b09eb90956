// Package core_test provides benchmarks for core.Graph construction and queries.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/pathlab/core"
)

// starSpec builds a star Center→N{i} with n leaves.
func starSpec(n int) ([]string, []core.ArcSpec) {
	nodes := make([]string, 0, n+1)
	arcs := make([]core.ArcSpec, 0, n)
	nodes = append(nodes, "Center")
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("N%d", i)
		nodes = append(nodes, id)
		arcs = append(arcs, core.ArcSpec{From: "Center", To: id, Weight: float64(i)})
	}

	return nodes, arcs
}

// BenchmarkBuild measures construction of a 1000-leaf star.
func BenchmarkBuild(b *testing.B) {
	nodes, arcs := starSpec(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.Build(nodes, arcs)
	}
}

// BenchmarkOutgoingArcs measures copying the out-list of a high-degree node.
func BenchmarkOutgoingArcs(b *testing.B) {
	g := core.MustBuild(starSpec(1000))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.OutgoingArcs("Center")
	}
}
