package flow

import (
	"context"
	"errors"
)

// Sentinel errors for max-flow solving.
var (
	// ErrSourceNotFound is returned when the source node is absent from the graph.
	ErrSourceNotFound = errors.New("flow: source node not found")

	// ErrSinkNotFound is returned when the sink node is absent from the graph.
	ErrSinkNotFound = errors.New("flow: sink node not found")

	// ErrIdenticalEndpoints is returned when source and sink coincide.
	ErrIdenticalEndpoints = errors.New("flow: source and sink must differ")
)

// FlowOptions configures the max-flow solver.
//
//   - Ctx: checked between augmentations for cancellation / deadlines.
//     The algorithm terminates on its own (integer capacities bound the
//     number of augmentations), so cancellation is optional.
//   - Verbose: trace each augmenting path and its bottleneck to stdout.
type FlowOptions struct {
	Ctx     context.Context
	Verbose bool
}

// DefaultOptions returns production-safe defaults:
// background context, no tracing.
func DefaultOptions() FlowOptions {
	return FlowOptions{Ctx: context.Background()}
}

// normalize fills zero-valued fields so the solver can rely on them.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}

// FlowMatrix records realized flow per directed edge: Flows[u][v] is the
// number of units carried by the original edge u→v. Entries exist for
// every original edge, including those that ended up carrying 0.
type FlowMatrix map[string]map[string]int64

// Value returns the realized flow on edge u→v, or 0 if no such edge.
func (m FlowMatrix) Value(u, v string) int64 {
	return m[u][v]
}

// Outflow returns the total realized flow leaving node u.
func (m FlowMatrix) Outflow(u string) int64 {
	var total int64
	for _, f := range m[u] {
		total += f
	}

	return total
}

// Inflow returns the total realized flow entering node v.
// Complexity: O(E)
func (m FlowMatrix) Inflow(v string) int64 {
	var total int64
	for _, nbrs := range m {
		total += nbrs[v]
	}

	return total
}

// Result bundles the outputs of one max-flow computation.
type Result struct {
	// MaxFlow is the total flow value; by max-flow/min-cut duality it
	// equals the capacity of the minimum source/sink cut.
	MaxFlow int64

	// Flows holds realized flow for every original edge.
	Flows FlowMatrix

	// Residual is the final residual graph after saturation,
	// usable for min-cut extraction and bottleneck analysis.
	Residual Residual
}
