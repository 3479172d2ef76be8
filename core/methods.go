package core

import "golang.org/x/exp/slices"

// AddEdge registers the directed edge u→v with the given capacity,
// accumulating onto any capacity the edge already carries.
//
// Both endpoints are registered as nodes: after a successful call,
// u and v are valid outer-map keys even if v has no outgoing edges.
//
// Returns:
//   - ErrEmptyNodeID if u or v is the empty string
//   - ErrNegativeCapacity if capacity < 0
//
// On error the graph is left exactly as it was.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, capacity int64) error {
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	if capacity < 0 {
		return ErrNegativeCapacity
	}

	g.ensureNode(u)
	g.ensureNode(v)
	g.adj[u][v] += capacity

	return nil
}

// ensureNode bootstraps the outer-map entry for id.
func (g *Graph) ensureNode(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]int64)
	}
}

// HasNode reports whether id appears in the graph as an edge endpoint.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// Capacity returns the accumulated capacity of edge u→v,
// or 0 if no such edge exists.
func (g *Graph) Capacity(u, v string) int64 {
	return g.adj[u][v]
}

// HasEdge reports whether a directed edge u→v was ever registered
// with positive capacity.
func (g *Graph) HasEdge(u, v string) bool {
	c, ok := g.adj[u][v]
	return ok && c > 0
}

// Nodes returns all node IDs sorted lexicographically ascending.
// Sorting keeps enumeration (and everything derived from it) reproducible.
// Complexity: O(V log V)
func (g *Graph) Nodes() []string {
	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// NodeCount returns the number of registered nodes.
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of distinct directed edges.
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	var n int
	for _, nbrs := range g.adj {
		n += len(nbrs)
	}

	return n
}

// Adjacency returns a deep copy of the adjacency structure:
// every endpoint is an outer key, adj[u][v] = capacity.
//
// The copy shares nothing with the Graph, so callers (the residual
// builder in particular) may mutate it freely while the original
// stays intact.
// Complexity: O(V + E)
func (g *Graph) Adjacency() map[string]map[string]int64 {
	out := make(map[string]map[string]int64, len(g.adj))
	for u, nbrs := range g.adj {
		inner := make(map[string]int64, len(nbrs))
		for v, c := range nbrs {
			inner[v] = c
		}
		out[u] = inner
	}

	return out
}
