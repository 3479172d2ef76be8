package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lohvynenko/flownet/core"
	"github.com/lohvynenko/flownet/flow"
)

// TestNewResidualPairsEveryEdge: each forward edge gains a zero reverse
// entry, and every present entry has a reciprocal.
func TestNewResidualPairsEveryEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("B", "C", 3))

	res := flow.NewResidual(g)

	require.Equal(t, int64(5), res.Capacity("A", "B"))
	require.Equal(t, int64(0), res.Capacity("B", "A"))
	require.Equal(t, int64(3), res.Capacity("B", "C"))
	require.Equal(t, int64(0), res.Capacity("C", "B"))

	for u, nbrs := range res {
		for v := range nbrs {
			_, ok := res[v][u]
			require.True(t, ok, "entry %s→%s lacks reciprocal", u, v)
		}
	}
}

// TestNewResidualKeepsBidirectionalPair: when v→u is a genuine forward
// edge, reverse-edge initialization must not demote it to zero.
func TestNewResidualKeepsBidirectionalPair(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("B", "A", 7))

	res := flow.NewResidual(g)

	require.Equal(t, int64(5), res.Capacity("A", "B"))
	require.Equal(t, int64(7), res.Capacity("B", "A"), "existing forward capacity must survive")
}

// TestNewResidualDoesNotAliasGraph: mutating the residual leaves the
// original graph unchanged.
func TestNewResidualDoesNotAliasGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))

	res := flow.NewResidual(g)
	res["A"]["B"] = 0
	res["B"]["A"] = 5

	require.Equal(t, int64(5), g.Capacity("A", "B"))
	require.False(t, g.HasEdge("B", "A"))
}
