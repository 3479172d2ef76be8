// Package flow computes maximum feasible flow through a capacitated
// directed network represented by *core.Graph, and explains the result:
// alongside the flow value it returns the per-edge flow matrix, the final
// residual graph, and (on request) the minimum cut separating source
// from sink.
//
// The solver is Edmonds–Karp:
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting
//     paths over the residual graph, repeated until the sink becomes
//     unreachable.
//   - Time:   O(V · E²) worst case with integer capacities; each
//     augmentation strictly increases the flow by a positive integer
//     bottleneck, so termination is guaranteed without any external
//     mechanism.
//   - Memory: O(V + E) for the residual map and BFS state.
//
// Variants with stronger constants (Dinic, push–relabel) are out of
// scope: the engine targets decision-support networks small enough that
// BFS augmentation is adequate.
//
// # Residual graphs
//
// NewResidual derives a Residual from a graph: forward capacities are
// copied, and every edge gains a paired reverse entry initialized to 0
// unless a genuine forward edge already occupies it. The solver mutates
// the Residual in place; the input Graph is never touched. After
// solving, realized flow on an original edge (u, v, c) is
// c − residual[u][v], clamped at 0.
//
// # API
//
//	opts := flow.DefaultOptions()
//	res, err := flow.EdmondsKarp(g, "SRC", "SNK", opts)
//	// res.MaxFlow  — total flow value (= min-cut capacity)
//	// res.Flows    — FlowMatrix over original edges
//	// res.Residual — final residual, ready for MinCut
//
// FlowOptions carries a context for cooperative cancellation and a
// Verbose switch that traces each augmenting path.
//
// # Errors
//
//	ErrSourceNotFound      — source absent from the graph
//	ErrSinkNotFound        — sink absent from the graph
//	ErrIdenticalEndpoints  — source == sink (rejected before traversal)
//	context.Canceled / context.DeadlineExceeded — via opts.Ctx
//
// Exhaustion of augmenting paths is not an error: it is the normal
// termination condition, observed by the caller only as a finite result.
package flow
