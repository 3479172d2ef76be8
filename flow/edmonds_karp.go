package flow

import (
	"fmt"
	"math"

	"github.com/gammazero/deque"

	"github.com/lohvynenko/flownet/core"
)

// EdmondsKarp computes the maximum flow from source to sink in the
// capacitated graph g using shortest (fewest-edge) augmenting paths.
//
// It returns a Result holding:
//   - MaxFlow  — the total flow value, equal to the min-cut capacity
//   - Flows    — realized flow for every original edge
//   - Residual — the final residual graph after saturation
//
// Steps:
//  1. Normalize options (O(1)).
//  2. Validate endpoints: distinct, both present in g.
//  3. Build the residual graph via NewResidual (O(V + E)).
//  4. Repeat until the sink is unreachable:
//     a. BFS for the shortest augmenting path (parent map + bottleneck).
//     b. Walk the parent chain sink→source, decrementing forward and
//     incrementing reverse residual capacities by the bottleneck.
//     c. Accumulate the bottleneck into MaxFlow.
//     d. Check opts.Ctx for cancellation.
//  5. Extract the flow matrix: realized = capacity − residual, clamped
//     at 0 for every original edge.
//
// Termination: each augmentation adds a positive integer to MaxFlow,
// which is bounded by the source's total outgoing capacity; the loop
// runs at most O(V·E) path searches.
//
// Complexity:
//
//	Time:   O(V · E²) worst case.
//	Memory: O(V + E).
func EdmondsKarp(g *core.Graph, source, sink string, opts FlowOptions) (*Result, error) {
	// 1) Normalize options so Ctx is always usable.
	opts.normalize()

	// 2) Fail fast on degenerate or unknown endpoints.
	if source == sink {
		return nil, ErrIdenticalEndpoints
	}
	if !g.HasNode(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasNode(sink) {
		return nil, ErrSinkNotFound
	}

	// 3) Derive the working residual graph; g itself stays untouched.
	residual := NewResidual(g)

	var maxFlow int64

	// 4) Augment until no path with positive residual capacity remains.
	for {
		if err := opts.Ctx.Err(); err != nil {
			return nil, err
		}

		bottleneck, parent, found := bfsAugmentingPath(residual, source, sink)
		if !found {
			break // saturation: normal termination, not an error
		}

		if opts.Verbose {
			fmt.Printf("augmenting path %v with flow %d\n", pathOf(parent, source, sink), bottleneck)
		}
		maxFlow += bottleneck

		// Flow cancellation invariant: capacity removed from the forward
		// direction equals capacity added to the reverse direction.
		for v := sink; v != source; {
			u := parent[v]
			residual[u][v] -= bottleneck
			residual[v][u] += bottleneck
			v = u
		}
	}

	// 5) Realized flow per original edge.
	return &Result{
		MaxFlow:  maxFlow,
		Flows:    extractFlows(g, residual),
		Residual: residual,
	}, nil
}

// bfsAugmentingPath searches the residual graph breadth-first from
// source, following only edges with strictly positive residual capacity
// and recording each node's predecessor on first visit. BFS order makes
// the discovered path shortest by edge count, which is what gives
// Edmonds–Karp its polynomial bound.
//
// On reaching the sink it walks the predecessor chain back to source and
// returns the minimum residual capacity met along the way. found is
// false when the sink is unreachable.
func bfsAugmentingPath(res Residual, source, sink string) (bottleneck int64, parent map[string]string, found bool) {
	parent = make(map[string]string, len(res))
	visited := map[string]bool{source: true}

	var queue deque.Deque[string]
	queue.PushBack(source)

	for queue.Len() > 0 {
		u := queue.PopFront()
		for v, capUV := range res[u] {
			if visited[v] || capUV <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u

			if v == sink {
				// Walk back to source, taking the minimum residual capacity.
				bottleneck = int64(math.MaxInt64)
				for x := sink; x != source; {
					p := parent[x]
					if c := res[p][x]; c < bottleneck {
						bottleneck = c
					}
					x = p
				}

				return bottleneck, parent, true
			}
			queue.PushBack(v)
		}
	}

	return 0, parent, false
}

// extractFlows derives per-edge realized flow from the saturated
// residual: for every original edge (u, v, c) the flow is c − residual,
// clamped at 0 (reverse augmentations can push residual above c).
func extractFlows(g *core.Graph, res Residual) FlowMatrix {
	flows := make(FlowMatrix)
	for u, nbrs := range g.Adjacency() {
		if len(nbrs) == 0 {
			continue
		}
		flows[u] = make(map[string]int64, len(nbrs))
		for v, c := range nbrs {
			used := c - res[u][v]
			if used < 0 {
				used = 0
			}
			flows[u][v] = used
		}
	}

	return flows
}

// pathOf reconstructs the source→sink path from a predecessor map,
// for verbose tracing only.
func pathOf(parent map[string]string, source, sink string) []string {
	path := []string{sink}
	for cur := sink; cur != source; {
		cur = parent[cur]
		path = append(path, cur)
	}
	// reverse in place to read source → sink
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
