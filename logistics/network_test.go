package logistics_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lohvynenko/flownet/decompose"
	"github.com/lohvynenko/flownet/flow"
	"github.com/lohvynenko/flownet/logistics"
)

// DemoNetworkSuite exercises the fixed supply network end to end.
type DemoNetworkSuite struct {
	suite.Suite
	res *flow.Result
}

func (s *DemoNetworkSuite) SetupSuite() {
	g, err := logistics.DemoNetwork()
	require.NoError(s.T(), err)

	s.res, err = flow.EdmondsKarp(g, logistics.Source, logistics.Sink, flow.DefaultOptions())
	require.NoError(s.T(), err)
}

// TestMaxFlow: the network moves exactly the terminals' combined supply.
func (s *DemoNetworkSuite) TestMaxFlow() {
	require.Equal(s.T(), int64(115), s.res.MaxFlow)
	require.Equal(s.T(), int64(60), s.res.Flows.Value(logistics.Source, "T1"))
	require.Equal(s.T(), int64(55), s.res.Flows.Value(logistics.Source, "T2"))
}

// TestMinCutAtTerminals: the bottleneck is the terminal supply, so the
// cut sits on the SRC edges.
func (s *DemoNetworkSuite) TestMinCutAtTerminals() {
	g, err := logistics.DemoNetwork()
	require.NoError(s.T(), err)

	reachable, cut := flow.MinCut(g, s.res.Residual, logistics.Source)
	require.Equal(s.T(), []string{logistics.Source}, reachable)
	require.Equal(s.T(), []flow.CutEdge{
		{From: logistics.Source, To: "T1", Capacity: 60},
		{From: logistics.Source, To: "T2", Capacity: 55},
	}, cut)
	require.Equal(s.T(), s.res.MaxFlow, flow.CutCapacity(cut))
}

// TestConservationAtInteriorTiers: every terminal, warehouse and store
// passes through exactly what it receives.
func (s *DemoNetworkSuite) TestConservationAtInteriorTiers() {
	interior := append(append(logistics.Terminals(), logistics.Warehouses()...), logistics.Stores()...)
	for _, id := range interior {
		require.Equal(s.T(), s.res.Flows.Inflow(id), s.res.Flows.Outflow(id),
			"conservation violated at %s", id)
	}
}

// TestAttributionTotals: proportional decomposition assigns each
// terminal exactly its realized supply.
func (s *DemoNetworkSuite) TestAttributionTotals() {
	upstream := logistics.TierFlows(s.res.Flows, logistics.Terminals(), logistics.Warehouses())
	downstream := logistics.TierFlows(s.res.Flows, logistics.Warehouses(), logistics.Stores())

	att := decompose.Proportional(upstream, downstream)

	require.InDelta(s.T(), 60.0, att.Total("T1"), 1e-6)
	require.InDelta(s.T(), 55.0, att.Total("T2"), 1e-6)
}

// TestTierFlowsSlicing: only edges into the named tier survive.
func (s *DemoNetworkSuite) TestTierFlowsSlicing() {
	upstream := logistics.TierFlows(s.res.Flows, logistics.Terminals(), logistics.Warehouses())

	for t, nbrs := range upstream {
		require.Contains(s.T(), logistics.Terminals(), t)
		for w := range nbrs {
			require.Contains(s.T(), logistics.Warehouses(), w)
		}
	}
	_, hasSource := upstream[logistics.Source]
	require.False(s.T(), hasSource, "SRC edges must not leak into the terminal tier")
}

func TestDemoNetworkSuite(t *testing.T) {
	suite.Run(t, new(DemoNetworkSuite))
}
