package flow

import "github.com/lohvynenko/flownet/core"

// Residual is a mutable residual-capacity graph: Residual[u][v] is the
// remaining capacity of u→v, including reverse capacity created by flow
// cancellation.
//
// Invariant: for every present entry (u, v) a reciprocal entry (v, u)
// also exists, possibly with capacity 0. The solver relies on this to
// increment reverse capacities without existence checks.
type Residual map[string]map[string]int64

// NewResidual derives a residual graph from g.
//
// Every original edge (u, v, c) contributes res[u][v] = c; for every such
// edge a reverse entry res[v][u] = 0 is created unless one is already
// present. An existing entry is never overwritten — when (v, u) is itself
// a genuine forward edge of a bidirectional pair, its capacity stands.
//
// The result shares no storage with g: solving mutates the Residual in
// place while the original graph remains intact.
// Complexity: O(V + E)
func NewResidual(g *core.Graph) Residual {
	res := Residual(g.Adjacency())

	// Fill reverse-edge gaps with zero capacity.
	for u, nbrs := range res {
		for v := range nbrs {
			if _, ok := res[v][u]; !ok {
				res[v][u] = 0
			}
		}
	}

	return res
}

// Capacity returns the residual capacity of edge u→v, or 0 if absent.
func (r Residual) Capacity(u, v string) int64 {
	return r[u][v]
}
