package flow

import (
	"github.com/gammazero/deque"
	"golang.org/x/exp/slices"

	"github.com/lohvynenko/flownet/core"
)

// CutEdge is an original edge crossing the minimum cut in the forward
// direction: its tail is reachable from the source in the final
// residual, its head is not. Every cut edge is saturated.
type CutEdge struct {
	From     string
	To       string
	Capacity int64
}

// MinCut reads the minimum source/sink cut off a saturated residual
// graph, as left behind by EdmondsKarp.
//
// It returns the source side of the cut (all nodes still reachable from
// source via positive residual capacity, sorted ascending) and the
// original edges crossing it forward, sorted by (From, To). By max-flow/
// min-cut duality the capacities of the returned edges sum to the
// computed MaxFlow.
//
// Complexity: O(V + E) plus sorting.
func MinCut(g *core.Graph, res Residual, source string) (reachable []string, cut []CutEdge) {
	// Reachable set via BFS over positive residual capacities.
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
			queue.PushBack(v)
		}
	}

	for id := range visited {
		reachable = append(reachable, id)
	}
	slices.Sort(reachable)

	// Forward original edges leaving the reachable set.
	adj := g.Adjacency()
	for _, u := range reachable {
		for v, c := range adj[u] {
			if !visited[v] && c > 0 {
				cut = append(cut, CutEdge{From: u, To: v, Capacity: c})
			}
		}
	}
	slices.SortFunc(cut, func(a, b CutEdge) int {
		if a.From != b.From {
			if a.From < b.From {
				return -1
			}

			return 1
		}
		switch {
		case a.To < b.To:
			return -1
		case a.To > b.To:
			return 1
		default:
			return 0
		}
	})

	return reachable, cut
}

// CutCapacity sums the capacities of the given cut edges.
func CutCapacity(cut []CutEdge) int64 {
	var total int64
	for _, e := range cut {
		total += e.Capacity
	}

	return total
}
