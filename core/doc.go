// Package core defines the capacitated directed Graph used by every
// flownet algorithm.
//
// A Graph is an adjacency map: node ID → (node ID → capacity). It is
// built edge-by-edge before solving and is never mutated by the solver;
// the flow package derives its own residual structures from snapshots.
//
// Two construction rules are deliberate and load-bearing:
//
//   - AddEdge accumulates. Inserting (u, v, c) twice yields one edge of
//     capacity 2c, never two parallel edges. Callers that aggregate
//     capacity incrementally (say, per-product-line volumes into one
//     logistics link) rely on this.
//   - Every endpoint becomes an outer-map key, even a node with no
//     outgoing edges. Traversal code may therefore treat any visited
//     node as a valid lookup key without guarding.
//
// Capacities are int64 and must be non-negative; AddEdge rejects
// negative values with ErrNegativeCapacity, leaving the graph unchanged.
//
// A Graph is exclusively owned by its builder and solver: no internal
// locking, not safe for concurrent mutation. Independent solves must use
// independent Graph instances.
package core
