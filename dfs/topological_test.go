package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/builder"
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/dfs"
)

// graphOf builds a graph from "from","to" pairs; nodes appear in first-mention order.
func graphOf(t *testing.T, pairs ...string) *core.Graph {
	t.Helper()
	var arcs []core.ArcSpec
	for i := 0; i+1 < len(pairs); i += 2 {
		arcs = append(arcs, core.ArcSpec{From: pairs[i], To: pairs[i+1], Weight: 1})
	}
	g, err := core.Build(pairs, arcs)
	require.NoError(t, err)

	return g
}

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// assertTopological checks every arc points forward in order.
func assertTopological(t *testing.T, g *core.Graph, order []string) {
	t.Helper()
	require.Len(t, order, g.Order())
	for _, a := range g.Arcs() {
		assert.Less(t, position(order, a.From), position(order, a.To), "arc %s→%s", a.From, a.To)
	}
}

func TestTopo_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTopo_EmptyGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(core.MustBuild(nil, nil))
	assert.NoError(t, err)
	assert.Empty(t, order)
}

func TestTopo_NoArcs(t *testing.T) {
	g := core.MustBuild([]string{"C", "A", "B"}, nil)
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	// reverse post-order of three singleton trees
	assert.Equal(t, []string{"B", "A", "C"}, order)
}

func TestTopo_SimpleChain(t *testing.T) {
	order, err := dfs.TopologicalSort(graphOf(t, "A", "B", "B", "C"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

func TestTopo_Diamond(t *testing.T) {
	g := graphOf(t, "A", "B", "A", "C", "B", "D", "C", "D")
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "D"}, order)
	assertTopological(t, g, order)
}

func TestTopo_SampleGraph(t *testing.T) {
	g, err := builder.Build(builder.DefaultDocument())
	require.NoError(t, err)
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assertTopological(t, g, order)
	assert.Equal(t, "x1", order[0])
	assert.Equal(t, "x16", order[len(order)-1])
}

func TestTopo_RandomDAGs(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		doc, err := builder.Compose([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomDAG(12, 0.3))
		require.NoError(t, err)
		g, err := builder.Build(doc)
		require.NoError(t, err)

		order, err := dfs.TopologicalSort(g)
		require.NoError(t, err, "seed %d", seed)
		assertTopological(t, g, order)
	}
}

func TestTopo_Cycles(t *testing.T) {
	cases := map[string]*core.Graph{
		"two-cycle":       graphOf(t, "A", "B", "B", "A"),
		"tail into cycle": graphOf(t, "S", "A", "A", "B", "B", "C", "C", "A"),
		"self-loop":       graphOf(t, "A", "B", "B", "B"),
	}
	for name, g := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := dfs.TopologicalSort(g)
			assert.ErrorIs(t, err, dfs.ErrCycleDetected)

			ok, err := dfs.IsAcyclic(g)
			assert.NoError(t, err)
			assert.False(t, ok)
		})
	}

	ok, err := dfs.IsAcyclic(graphOf(t, "A", "B"))
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = dfs.IsAcyclic(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTopo_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.TopologicalSort(graphOf(t, "A", "B"), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
