package logistics

import (
	"fmt"

	"github.com/lohvynenko/flownet/core"
	"github.com/lohvynenko/flownet/flow"
)

// Source and Sink are the super-source and super-sink framing the
// demo network: SRC fixes each terminal's total supply, SNK each
// store's total demand.
const (
	Source = "SRC"
	Sink   = "SNK"
)

// terminalSupply is each terminal's total output capacity (SRC→terminal).
var terminalSupply = map[string]int64{
	"T1": 60,
	"T2": 55,
}

// terminalWarehouse lists the terminal→warehouse link capacities.
var terminalWarehouse = map[[2]string]int64{
	{"T1", "S1"}: 25, {"T1", "S2"}: 20, {"T1", "S3"}: 15,
	{"T2", "S2"}: 10, {"T2", "S3"}: 15, {"T2", "S4"}: 30,
}

// warehouseStore lists the warehouse→store link capacities.
var warehouseStore = map[[2]string]int64{
	{"S1", "M1"}: 15, {"S1", "M2"}: 10, {"S1", "M3"}: 20,
	{"S2", "M4"}: 15, {"S2", "M5"}: 10, {"S2", "M6"}: 25,
	{"S3", "M7"}: 20, {"S3", "M8"}: 15, {"S3", "M9"}: 10,
	{"S4", "M10"}: 20, {"S4", "M11"}: 10, {"S4", "M12"}: 15,
	{"S4", "M13"}: 5, {"S4", "M14"}: 10,
}

// Terminals returns the terminal tier, in network order.
func Terminals() []string { return []string{"T1", "T2"} }

// Warehouses returns the warehouse tier, in network order.
func Warehouses() []string { return []string{"S1", "S2", "S3", "S4"} }

// Stores returns the store tier, in network order.
func Stores() []string {
	stores := make([]string, 0, 14)
	for i := 1; i <= 14; i++ {
		stores = append(stores, fmt.Sprintf("M%d", i))
	}

	return stores
}

// DemoNetwork builds the fixed demo supply network.
//
// Edges: SRC→terminal at total supply, terminal→warehouse and
// warehouse→store at the tabulated link capacities, store→SNK at the
// store's total inbound capacity (demand never throttles below supply).
func DemoNetwork() (*core.Graph, error) {
	g := core.NewGraph()

	for t, supply := range terminalSupply {
		if err := g.AddEdge(Source, t, supply); err != nil {
			return nil, err
		}
	}
	for link, c := range terminalWarehouse {
		if err := g.AddEdge(link[0], link[1], c); err != nil {
			return nil, err
		}
	}

	// Store demand accumulates from the inbound links; AddEdge sums
	// repeated insertions, so stores fed by several warehouses would
	// aggregate naturally.
	for link, c := range warehouseStore {
		if err := g.AddEdge(link[0], link[1], c); err != nil {
			return nil, err
		}
		if err := g.AddEdge(link[1], Sink, c); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// TierFlows slices a solved flow matrix down to the edges running from
// one tier into another, preserving zero-flow edges that exist in the
// matrix. The result feeds decompose.Proportional directly.
func TierFlows(flows flow.FlowMatrix, from, to []string) flow.FlowMatrix {
	member := make(map[string]bool, len(to))
	for _, id := range to {
		member[id] = true
	}

	out := make(flow.FlowMatrix, len(from))
	for _, u := range from {
		for v, f := range flows[u] {
			if !member[v] {
				continue
			}
			if out[u] == nil {
				out[u] = make(map[string]int64)
			}
			out[u][v] = f
		}
	}

	return out
}
