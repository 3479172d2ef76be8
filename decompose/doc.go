// Package decompose attributes realized flow across a middle tier back
// to its upstream origins.
//
// Given per-edge flow from upstream nodes into hubs, and per-edge flow
// from hubs to downstream consumers, Proportional produces a
// source × consumer table describing how much of each consumer's
// delivery came from each source.
//
// The policy is proportional allocation, not path tracing: flow arriving
// at a hub from different sources is treated as fungible (no per-source
// tag survives the merge), so each hub's outflow is split among its
// suppliers by their share of the hub's inflow. That is the correct
// semantic when sources supply a uniform commodity. The alternative —
// exact path-level attribution via repeated path extraction from the
// flow matrix — would answer a different question and is deliberately
// not implemented.
//
// Attributed values are float64. Callers that need integral quantities
// must round, and rounded per-pair sums may then drift slightly from the
// node-level integer flows; per hub, the attributed total matches the
// hub's realized outflow within floating-point tolerance.
package decompose
