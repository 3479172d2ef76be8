// Package logistics carries the worked supply network the flow engine
// was built around: two terminals shipping through four warehouses to
// fourteen stores, framed by a super-source and a super-sink so total
// supply and demand become ordinary edge capacities.
//
// DemoNetwork builds the capacitated graph; TierFlows slices a solved
// flow matrix down to the edges between two tiers, in the shape the
// decompose package consumes; WriteFlowsCSV and WriteSummary persist an
// attribution table and a solve summary to any io.Writer.
//
// The network's numbers are fixed: terminal outputs 60 and 55 units,
// warehouse links below that, store demand matching inbound capacity.
// Its maximum flow is 115, cut at the terminal outputs — handy both as
// a demo and as a regression fixture.
package logistics
