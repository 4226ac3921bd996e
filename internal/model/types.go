package model

import (
	"time"

	"github.com/google/uuid"
)

// Category is one of the fixed set of reporting categories.
type Category string

// The closed category set. Declaration order is the classification
// precedence order used by the categorizer.
const (
	CategoryPolitics  Category = "Politics"
	CategorySports    Category = "Sports"
	CategoryCrypto    Category = "Crypto"
	CategoryWorld     Category = "World"
	CategoryEconomics Category = "Economics"
	CategoryCulture   Category = "Culture"
)

// Categories lists every category in precedence order.
var Categories = []Category{
	CategoryPolitics,
	CategorySports,
	CategoryCrypto,
	CategoryWorld,
	CategoryEconomics,
	CategoryCulture,
}

// ParseCategory returns the Category matching the given name.
func ParseCategory(name string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// Market represents a tradeable prediction market as of a single fetch.
// Immutable once built; owned by the run that fetched it.
type Market struct {
	Ticker       string // Primary key (e.g., "KXFED-26SEP-T4.00")
	SeriesTicker string // Series grouping (e.g., "KXFED")
	EventTicker  string // Event grouping (e.g., "KXFED-26SEP")
	Title        string // Display title
	Status       string // Status: unopened, open, closed, settled
	Result       string // Settlement result (yes/no/empty)

	// Current prices (cents, 0-100)
	YesBid int // Best YES bid price
	YesAsk int // Best YES ask price
	NoBid  int // Best NO bid price
	NoAsk  int // Best NO ask price

	// Volume
	Volume       int64 // Total traded contracts
	Volume24h    int64 // 24-hour volume
	OpenInterest int64 // Open interest
}

// MarketDetail holds optional per-market enrichment fetched in detailed mode:
// the series display title and the best resting orderbook levels.
type MarketDetail struct {
	SeriesTitle string // Series display title (e.g., "Fed Funds Rate")
	BestYesBid  int    // Best YES bid from the orderbook (cents), 0 if the book is empty
	BestNoBid   int    // Best NO bid from the orderbook (cents), 0 if the book is empty
}

// RankedEntry is one market's position within a category ranking.
type RankedEntry struct {
	Category Category      // Owning category
	Rank     int           // 1-based rank within the category
	Market   Market        // The ranked market
	Detail   *MarketDetail // Enrichment from detailed mode, nil otherwise
}

// ExtractionSummary is the result of one complete extraction run.
// Every category appears in Categories, with an empty slice when no
// market classified into it.
type ExtractionSummary struct {
	RunID       uuid.UUID                  // Unique identifier for this run
	GeneratedAt time.Time                  // Wall-clock time the summary was assembled (UTC)
	Categories  map[Category][]RankedEntry // Category -> entries ordered by rank
}

// TotalMarkets returns the number of ranked entries across all categories.
func (s *ExtractionSummary) TotalMarkets() int {
	n := 0
	for _, entries := range s.Categories {
		n += len(entries)
	}
	return n
}

// TotalVolume returns the summed volume of all ranked entries.
func (s *ExtractionSummary) TotalVolume() int64 {
	var v int64
	for _, entries := range s.Categories {
		for _, e := range entries {
			v += e.Market.Volume
		}
	}
	return v
}
