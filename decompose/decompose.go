package decompose

import "github.com/lohvynenko/flownet/flow"

// Attribution maps upstream source ID → downstream consumer ID → the
// flow share attributed to that pair. Zero-flow pairs are omitted.
type Attribution map[string]map[string]float64

// Value returns the flow attributed to the (source, consumer) pair,
// or 0 if the pair carried nothing.
func (a Attribution) Value(source, consumer string) float64 {
	return a[source][consumer]
}

// Total returns the total flow attributed to one upstream source
// across all consumers.
func (a Attribution) Total(source string) float64 {
	var sum float64
	for _, f := range a[source] {
		sum += f
	}

	return sum
}

// Proportional distributes hub throughput back to upstream sources.
//
// upstream holds realized flow on source→hub edges, downstream on
// hub→consumer edges (both straight out of a solved flow.FlowMatrix,
// sliced to the relevant tiers).
//
// Per hub h:
//  1. inflow[u] = upstream[u][h]; totalIn = Σ inflow.
//  2. totalIn == 0 ⇒ h moved nothing, skip.
//  3. share[u] = inflow[u] / totalIn.
//  4. every downstream edge h→d with flow f contributes f·share[u] to
//     the (u, d) pair, accumulating across hubs feeding the same d.
//
// Complexity: O(H · (U + D)) for H hubs with U suppliers and D consumers.
func Proportional(upstream, downstream flow.FlowMatrix) Attribution {
	att := make(Attribution)

	for hub, consumers := range downstream {
		// 1) Gather the hub's inflow per upstream source.
		var totalIn int64
		inflow := make(map[string]int64)
		for u, nbrs := range upstream {
			if f := nbrs[hub]; f > 0 {
				inflow[u] = f
				totalIn += f
			}
		}
		// 2) An unfed hub contributes nothing downstream.
		if totalIn == 0 {
			continue
		}

		// 3–4) Split each outgoing flow by supplier share.
		for d, f := range consumers {
			if f == 0 {
				continue
			}
			for u, in := range inflow {
				share := float64(in) / float64(totalIn)
				if att[u] == nil {
					att[u] = make(map[string]float64)
				}
				att[u][d] += float64(f) * share
			}
		}
	}

	return att
}
