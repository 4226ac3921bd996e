package api

import (
	"context"
)

// FixtureSource is the demo-mode stand-in for the live client. It serves
// a fixed in-memory market set through the same paginated contract as
// GET /markets, so the rest of the pipeline cannot tell the difference.
// Deterministic by construction: no network, no clock.
type FixtureSource struct {
	pages  [][]APIMarket
	series map[string]APISeries
	books  map[string]APIOrderbook
}

// NewFixtureSource builds the canned demo data set, split across two
// pages to exercise the pagination loop.
func NewFixtureSource() *FixtureSource {
	page1 := []APIMarket{
		{
			Ticker: "KXPRES-28-DEM", SeriesTicker: "KXPRES", EventTicker: "KXPRES-28",
			Title: "Democratic candidate wins the 2028 presidential election?", Status: "open",
			YesBid: 51, YesAsk: 53, NoBid: 47, NoAsk: 49, Volume: 1832400, Volume24h: 40210, OpenInterest: 612000,
		},
		{
			Ticker: "KXMAYOR-NYC-25", SeriesTicker: "KXMAYOR", EventTicker: "KXMAYOR-NYC",
			Title: "NYC Mayor race decided in the first round?", Status: "open",
			YesBid: 22, YesAsk: 25, NoBid: 75, NoAsk: 78, Volume: 221870, Volume24h: 9100, OpenInterest: 84000,
		},
		{
			Ticker: "KXNFL-26SB-KC", SeriesTicker: "KXNFL", EventTicker: "KXNFL-26SB",
			Title: "Chiefs win the Super Bowl?", Status: "open",
			YesBid: 18, YesAsk: 20, NoBid: 80, NoAsk: 82, Volume: 954310, Volume24h: 30550, OpenInterest: 310000,
		},
		{
			Ticker: "KXNBA-26-BOS", SeriesTicker: "KXNBA", EventTicker: "KXNBA-26",
			Title: "Celtics win the NBA championship?", Status: "open",
			YesBid: 24, YesAsk: 26, NoBid: 74, NoAsk: 76, Volume: 412005, Volume24h: 12900, OpenInterest: 150400,
		},
		{
			Ticker: "KXBTC-26DEC-T150", SeriesTicker: "KXBTC", EventTicker: "KXBTC-26DEC",
			Title: "Bitcoin above $150,000 on Dec 31?", Status: "open",
			YesBid: 33, YesAsk: 35, NoBid: 65, NoAsk: 67, Volume: 768220, Volume24h: 25080, OpenInterest: 264800,
		},
	}
	page2 := []APIMarket{
		{
			Ticker: "KXETH-26JUN-T8K", SeriesTicker: "KXETH", EventTicker: "KXETH-26JUN",
			Title: "Ethereum above $8,000 by June 30?", Status: "open",
			YesBid: 12, YesAsk: 14, NoBid: 86, NoAsk: 88, Volume: 305990, Volume24h: 8440, OpenInterest: 99100,
		},
		{
			Ticker: "KXFED-26SEP-CUT", SeriesTicker: "KXFED", EventTicker: "KXFED-26SEP",
			Title: "Fed rate decision: cut at the September meeting?", Status: "open",
			YesBid: 61, YesAsk: 63, NoBid: 37, NoAsk: 39, Volume: 1204500, Volume24h: 51200, OpenInterest: 450300,
		},
		{
			Ticker: "KXCPI-26AUG-T3", SeriesTicker: "KXCPI", EventTicker: "KXCPI-26AUG",
			Title: "August CPI inflation above 3.0%?", Status: "open",
			YesBid: 41, YesAsk: 44, NoBid: 56, NoAsk: 59, Volume: 98410, Volume24h: 4200, OpenInterest: 35600,
		},
		{
			Ticker: "KXCEASEFIRE-26-UKR", SeriesTicker: "KXCEASEFIRE", EventTicker: "KXCEASEFIRE-26",
			Title: "Ukraine ceasefire announced this year?", Status: "open",
			YesBid: 28, YesAsk: 31, NoBid: 69, NoAsk: 72, Volume: 534700, Volume24h: 18700, OpenInterest: 201400,
		},
		{
			Ticker: "KXOSCAR-27-BP", SeriesTicker: "KXOSCAR", EventTicker: "KXOSCAR-27",
			Title: "Best Picture goes to the box office leader?", Status: "open",
			YesBid: 15, YesAsk: 18, NoBid: 82, NoAsk: 85, Volume: 67240, Volume24h: 2100, OpenInterest: 24900,
		},
		{
			Ticker: "KXHIGHNY-26AUG27", SeriesTicker: "KXHIGHNY", EventTicker: "KXHIGHNY-26AUG27",
			Title: "High temperature in NYC above 90F?", Status: "open",
			YesBid: 45, YesAsk: 48, NoBid: 52, NoAsk: 55, Volume: 15020, Volume24h: 900, OpenInterest: 5100,
		},
	}

	series := map[string]APISeries{
		"KXPRES":      {Ticker: "KXPRES", Title: "Presidential Election Winner", Category: "Politics"},
		"KXMAYOR":     {Ticker: "KXMAYOR", Title: "Mayoral Elections", Category: "Politics"},
		"KXNFL":       {Ticker: "KXNFL", Title: "Pro Football Championship", Category: "Sports"},
		"KXNBA":       {Ticker: "KXNBA", Title: "Pro Basketball Championship", Category: "Sports"},
		"KXBTC":       {Ticker: "KXBTC", Title: "Bitcoin Price Range", Category: "Crypto"},
		"KXETH":       {Ticker: "KXETH", Title: "Ethereum Price Range", Category: "Crypto"},
		"KXFED":       {Ticker: "KXFED", Title: "Fed Funds Rate", Category: "Economics"},
		"KXCPI":       {Ticker: "KXCPI", Title: "CPI Inflation", Category: "Economics"},
		"KXCEASEFIRE": {Ticker: "KXCEASEFIRE", Title: "Ceasefire Watch", Category: "World"},
		"KXOSCAR":     {Ticker: "KXOSCAR", Title: "Academy Awards", Category: "Culture"},
		"KXHIGHNY":    {Ticker: "KXHIGHNY", Title: "NYC Daily High Temperature", Category: "Climate"},
	}

	books := make(map[string]APIOrderbook)
	for _, page := range [][]APIMarket{page1, page2} {
		for _, m := range page {
			books[m.Ticker] = APIOrderbook{
				Yes: [][]int{{m.YesBid - 2, 500}, {m.YesBid, 120}},
				No:  [][]int{{m.NoBid - 2, 480}, {m.NoBid, 95}},
			}
		}
	}

	return &FixtureSource{
		pages:  [][]APIMarket{page1, page2},
		series: series,
		books:  books,
	}
}

// GetMarkets serves a fixture page. The cursor is the stringified index
// of the next page; an empty response cursor ends the iteration.
func (f *FixtureSource) GetMarkets(ctx context.Context, opts GetMarketsOptions) (*MarketsResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, &TransportError{Path: "/markets", Err: err}
	}

	idx := 0
	if opts.Cursor != "" {
		for i := range f.pages {
			if opts.Cursor == cursorFor(i) {
				idx = i
				break
			}
		}
	}
	if idx >= len(f.pages) {
		return &MarketsResponse{}, nil
	}

	resp := &MarketsResponse{Markets: f.pages[idx]}
	if idx+1 < len(f.pages) {
		resp.Cursor = cursorFor(idx + 1)
	}
	return resp, nil
}

// GetSeries serves a canned series record.
func (f *FixtureSource) GetSeries(ctx context.Context, seriesTicker string) (*APISeries, error) {
	if s, ok := f.series[seriesTicker]; ok {
		return &s, nil
	}
	return nil, &TransportError{Path: "/series/" + seriesTicker, StatusCode: 404}
}

// GetOrderbook serves a canned orderbook.
func (f *FixtureSource) GetOrderbook(ctx context.Context, ticker string, depth int) (*OrderbookResponse, error) {
	if b, ok := f.books[ticker]; ok {
		return &OrderbookResponse{Orderbook: b}, nil
	}
	return nil, &TransportError{Path: "/markets/" + ticker + "/orderbook", StatusCode: 404}
}

func cursorFor(page int) string {
	// Opaque enough for the pipeline, readable enough for test failures.
	return "fixture-page-" + string(rune('0'+page))
}
