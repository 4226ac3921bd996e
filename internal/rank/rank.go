// Package rank selects the top markets of a category by traded volume.
package rank

import (
	"sort"

	"github.com/rickgao/kalshi-extract/internal/model"
)

// TopN returns the n highest-volume markets as ranked entries for the
// given category. Ordering is volume descending with ties broken by
// ticker ascending, so the result is deterministic for any input order.
// Fewer than n inputs yield fewer entries; empty input yields nil.
// The input slice is not modified.
func TopN(cat model.Category, markets []model.Market, n int) []model.RankedEntry {
	if n <= 0 || len(markets) == 0 {
		return nil
	}

	sorted := make([]model.Market, len(markets))
	copy(sorted, markets)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Volume != sorted[j].Volume {
			return sorted[i].Volume > sorted[j].Volume
		}
		return sorted[i].Ticker < sorted[j].Ticker
	})

	if n > len(sorted) {
		n = len(sorted)
	}

	entries := make([]model.RankedEntry, n)
	for i := 0; i < n; i++ {
		entries[i] = model.RankedEntry{
			Category: cat,
			Rank:     i + 1,
			Market:   sorted[i],
		}
	}
	return entries
}
