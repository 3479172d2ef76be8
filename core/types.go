package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrEmptyNodeID indicates an edge endpoint with an empty identifier.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNegativeCapacity indicates an edge inserted with capacity < 0.
	ErrNegativeCapacity = errors.New("core: edge capacity must be non-negative")
)

// Graph is a capacitated directed graph stored as nested adjacency maps:
// adj[u][v] holds the total capacity of the edge u→v.
//
// The zero value is not usable; construct with NewGraph.
// Graph is single-owner: it performs no locking of its own.
type Graph struct {
	// adj[u][v] = accumulated capacity of edge u→v.
	// Every node that appears as an endpoint has an entry in adj,
	// possibly mapping to an empty inner map.
	adj map[string]map[string]int64
}

// NewGraph creates an empty capacitated graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{adj: make(map[string]map[string]int64)}
}
