// Package flownet models capacitated distribution networks — sources
// feeding intermediate hubs feeding end consumers — and answers two
// questions about them: how much can the network carry, and who supplied
// whom once it does.
//
// What flownet offers:
//
//   - Capacitated graphs: directed edges with non-negative integer
//     capacities; re-adding an edge accumulates capacity.
//   - Max-flow: Edmonds–Karp (shortest augmenting paths over a residual
//     graph), returning the flow value, the per-edge flow matrix, and the
//     final residual for inspection.
//   - Min-cut: the saturated frontier separating source from sink,
//     read straight off the final residual.
//   - Attribution: proportional decomposition of hub throughput into a
//     source × consumer table, for auditing which upstream entity
//     supplied which downstream delivery.
//   - A worked logistics network (terminals → warehouses → stores) with
//     CSV and text reporting, plus a small prefix-tree utility.
//
// Everything is organized under focused subpackages:
//
//	core/       — capacitated Graph: construction, accumulation, snapshots
//	flow/       — residual graphs, Edmonds–Karp, flow matrix, min-cut
//	decompose/  — proportional source→consumer attribution
//	logistics/  — demo supply network, tier slicing, reports
//	trie/       — string prefix tree (exact, prefix and suffix queries)
//
// Quick ASCII example:
//
//	    SRC ──60→ T1 ──25→ S1 ──15→ M1 ──→ SNK
//	        ──55→ T2 ──30→ S4 ──20→ M10 ─→ SNK
//
//	two terminals supplying stores through warehouses; max flow = 115.
//
//	go get github.com/lohvynenko/flownet
package flownet
