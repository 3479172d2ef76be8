package decompose_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lohvynenko/flownet/decompose"
	"github.com/lohvynenko/flownet/flow"
)

// ProportionalSuite groups tests for proportional attribution.
type ProportionalSuite struct {
	suite.Suite
}

// TestSingleHubSplit: the reference scenario — hub fed 6 by X and 4 by Y,
// delivering 7 to P and 3 to Q.
func (s *ProportionalSuite) TestSingleHubSplit() {
	upstream := flow.FlowMatrix{
		"X": {"H": 6},
		"Y": {"H": 4},
	}
	downstream := flow.FlowMatrix{
		"H": {"P": 7, "Q": 3},
	}

	att := decompose.Proportional(upstream, downstream)

	require.InDelta(s.T(), 4.2, att.Value("X", "P"), 1e-9)
	require.InDelta(s.T(), 2.8, att.Value("Y", "P"), 1e-9)
	require.InDelta(s.T(), 1.8, att.Value("X", "Q"), 1e-9)
	require.InDelta(s.T(), 1.2, att.Value("Y", "Q"), 1e-9)
}

// TestUnfedHubSkipped: a hub with zero inflow contributes nothing and
// produces no entries at all.
func (s *ProportionalSuite) TestUnfedHubSkipped() {
	upstream := flow.FlowMatrix{
		"X": {"H1": 5, "H2": 0},
	}
	downstream := flow.FlowMatrix{
		"H1": {"P": 5},
		"H2": {"P": 9}, // stale capacity, no realized inflow
	}

	att := decompose.Proportional(upstream, downstream)

	require.InDelta(s.T(), 5.0, att.Value("X", "P"), 1e-9)
	require.Len(s.T(), att, 1)
}

// TestZeroEdgesOmitted: pairs that carried nothing never appear.
func (s *ProportionalSuite) TestZeroEdgesOmitted() {
	upstream := flow.FlowMatrix{
		"X": {"H": 10},
	}
	downstream := flow.FlowMatrix{
		"H": {"P": 10, "Q": 0},
	}

	att := decompose.Proportional(upstream, downstream)

	_, ok := att["X"]["Q"]
	require.False(s.T(), ok, "zero-flow pair must be omitted")
}

// TestAccumulatesAcrossHubs: two hubs feeding the same consumer sum up.
func (s *ProportionalSuite) TestAccumulatesAcrossHubs() {
	upstream := flow.FlowMatrix{
		"X": {"H1": 4, "H2": 2},
		"Y": {"H1": 4},
	}
	downstream := flow.FlowMatrix{
		"H1": {"P": 8},
		"H2": {"P": 2},
	}

	att := decompose.Proportional(upstream, downstream)

	require.InDelta(s.T(), 6.0, att.Value("X", "P"), 1e-9) // 8·0.5 + 2·1.0
	require.InDelta(s.T(), 4.0, att.Value("Y", "P"), 1e-9)
}

// TestConsistency: per hub, attributed totals match realized outflow
// within floating-point tolerance.
func (s *ProportionalSuite) TestConsistency() {
	upstream := flow.FlowMatrix{
		"X": {"H1": 6, "H2": 1},
		"Y": {"H1": 4, "H2": 8},
	}
	downstream := flow.FlowMatrix{
		"H1": {"P": 7, "Q": 3},
		"H2": {"P": 2, "Q": 7},
	}

	att := decompose.Proportional(upstream, downstream)

	var attributed float64
	for _, consumers := range att {
		for _, f := range consumers {
			attributed += f
		}
	}
	require.InDelta(s.T(), float64(7+3+2+7), attributed, 1e-9)
	require.InDelta(s.T(), att.Total("X")+att.Total("Y"), attributed, 1e-9)
}

func TestProportionalSuite(t *testing.T) {
	suite.Run(t, new(ProportionalSuite))
}
