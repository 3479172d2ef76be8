package logistics

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/slices"

	"github.com/lohvynenko/flownet/decompose"
	"github.com/lohvynenko/flownet/flow"
)

// WriteFlowsCSV persists an attribution table as CSV rows of
// (terminal, store, units), units rounded to the nearest integer.
// Zero rows are dropped; rows are grouped by terminal, stores ordered
// by length then lexicographically so numeric suffixes read naturally
// (M1, M2, …, M10).
func WriteFlowsCSV(w io.Writer, att decompose.Attribution) error {
	type row struct {
		terminal, store string
		units           int64
	}

	rows := make([]row, 0, len(att)*8)
	for t, stores := range att {
		for m, f := range stores {
			if units := int64(math.Round(f)); units > 0 {
				rows = append(rows, row{terminal: t, store: m, units: units})
			}
		}
	}
	slices.SortFunc(rows, func(a, b row) int {
		if a.terminal != b.terminal {
			return compareIDs(a.terminal, b.terminal)
		}

		return compareIDs(a.store, b.store)
	})

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"terminal", "store", "flow_units"}); err != nil {
		return fmt.Errorf("logistics: write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{r.terminal, r.store, fmt.Sprintf("%d", r.units)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("logistics: write csv row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteSummary persists a human-readable solve summary: the max-flow
// value, per-terminal attributed totals, and the bottleneck (min-cut)
// edges.
func WriteSummary(w io.Writer, res *flow.Result, att decompose.Attribution, cut []flow.CutEdge) error {
	if _, err := fmt.Fprintf(w, "max flow: %d units\n", res.MaxFlow); err != nil {
		return fmt.Errorf("logistics: write summary: %w", err)
	}

	terminals := make([]string, 0, len(att))
	for t := range att {
		terminals = append(terminals, t)
	}
	slices.SortFunc(terminals, compareIDs)
	for _, t := range terminals {
		if _, err := fmt.Fprintf(w, "%s total: %.0f units\n", t, att.Total(t)); err != nil {
			return fmt.Errorf("logistics: write summary: %w", err)
		}
	}

	if _, err := fmt.Fprintln(w, "bottleneck edges:"); err != nil {
		return fmt.Errorf("logistics: write summary: %w", err)
	}
	for _, e := range cut {
		if _, err := fmt.Fprintf(w, "  %s→%s (%d)\n", e.From, e.To, e.Capacity); err != nil {
			return fmt.Errorf("logistics: write summary: %w", err)
		}
	}

	return nil
}

// compareIDs orders node IDs by length first, then lexicographically,
// so M2 sorts before M10.
func compareIDs(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}

		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
