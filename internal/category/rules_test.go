package category

import (
	"testing"

	"github.com/rickgao/kalshi-extract/internal/model"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name   string
		market model.Market
		want   model.Category
		ok     bool
	}{
		{
			name:   "series prefix match",
			market: model.Market{Ticker: "KXFED-26SEP-T4.00", SeriesTicker: "KXFED", Title: "Above 4.00%?"},
			want:   model.CategoryEconomics,
			ok:     true,
		},
		{
			name:   "prefix match is case-insensitive",
			market: model.Market{SeriesTicker: "kxnba", Title: "Lakers to win?"},
			want:   model.CategorySports,
			ok:     true,
		},
		{
			name:   "title keyword when prefix unknown",
			market: model.Market{SeriesTicker: "KXZZZ", Title: "Fed rate decision"},
			want:   model.CategoryEconomics,
			ok:     true,
		},
		{
			name:   "keyword match is case-insensitive",
			market: model.Market{Title: "Will BITCOIN close above $100k?"},
			want:   model.CategoryCrypto,
			ok:     true,
		},
		{
			name:   "mayor race is politics",
			market: model.Market{Title: "NYC Mayor race"},
			want:   model.CategoryPolitics,
			ok:     true,
		},
		{
			name:   "no match excludes the market",
			market: model.Market{SeriesTicker: "KXHIGHNY", Title: "High temp in NYC tomorrow?"},
			ok:     false,
		},
		{
			name:   "empty market excluded",
			market: model.Market{},
			ok:     false,
		},
		{
			name:   "ambiguous title resolves to earliest rule",
			market: model.Market{Title: "Presidential election moves bitcoin price?"},
			want:   model.CategoryPolitics,
			ok:     true,
		},
		{
			name:   "earlier rule keyword beats later rule prefix",
			market: model.Market{SeriesTicker: "KXBTC", Title: "Election night bitcoin swing"},
			want:   model.CategoryPolitics, // keyword "election" sits in rule 1, checked before KXBTC
			ok:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Categorize(tt.market)
			if ok != tt.ok {
				t.Fatalf("Categorize() ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Categorize() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestCategorizePure checks that repeated classification of the same
// record is stable.
func TestCategorizePure(t *testing.T) {
	m := model.Market{SeriesTicker: "KXOSCAR", Title: "Best Picture winner"}

	first, ok := Categorize(m)
	if !ok {
		t.Fatal("expected a match")
	}
	for i := 0; i < 100; i++ {
		got, ok := Categorize(m)
		if !ok || got != first {
			t.Fatalf("iteration %d: Categorize() = (%q, %v), want (%q, true)", i, got, ok, first)
		}
	}
}

// TestRuleOrderMatchesTaxonomy pins the precedence order so a table
// reshuffle shows up as a test failure, not a silent behavior change.
func TestRuleOrderMatchesTaxonomy(t *testing.T) {
	if len(Rules) != len(model.Categories) {
		t.Fatalf("len(Rules) = %d, want %d", len(Rules), len(model.Categories))
	}
	for i, r := range Rules {
		if r.Category != model.Categories[i] {
			t.Errorf("Rules[%d].Category = %q, want %q", i, r.Category, model.Categories[i])
		}
		if len(r.TickerPrefixes) == 0 && len(r.Keywords) == 0 {
			t.Errorf("Rules[%d] (%s) has no patterns", i, r.Category)
		}
	}
}
