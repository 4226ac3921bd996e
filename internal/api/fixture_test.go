package api

import (
	"context"
	"errors"
	"testing"
)

func TestFixtureSourcePagination(t *testing.T) {
	f := NewFixtureSource()
	ctx := context.Background()

	var all []APIMarket
	cursor := ""
	pages := 0
	for {
		resp, err := f.GetMarkets(ctx, GetMarketsOptions{Cursor: cursor})
		if err != nil {
			t.Fatalf("GetMarkets() error = %v", err)
		}
		all = append(all, resp.Markets...)
		pages++
		if resp.Cursor == "" {
			break
		}
		cursor = resp.Cursor
	}

	if pages != 2 {
		t.Errorf("pages = %d, want 2", pages)
	}
	if len(all) == 0 {
		t.Fatal("fixture returned no markets")
	}

	seen := make(map[string]bool)
	for _, m := range all {
		if m.Ticker == "" || m.Title == "" || m.SeriesTicker == "" {
			t.Errorf("incomplete market: %+v", m)
		}
		if m.Volume < 0 {
			t.Errorf("market %s has negative volume %d", m.Ticker, m.Volume)
		}
		if seen[m.Ticker] {
			t.Errorf("duplicate ticker %s across pages", m.Ticker)
		}
		seen[m.Ticker] = true
	}
}

func TestFixtureSourceDetails(t *testing.T) {
	f := NewFixtureSource()
	ctx := context.Background()

	resp, err := f.GetMarkets(ctx, GetMarketsOptions{})
	if err != nil {
		t.Fatalf("GetMarkets() error = %v", err)
	}

	for _, m := range resp.Markets {
		s, err := f.GetSeries(ctx, m.SeriesTicker)
		if err != nil {
			t.Errorf("GetSeries(%s) error = %v", m.SeriesTicker, err)
			continue
		}
		if s.Title == "" {
			t.Errorf("series %s has no title", m.SeriesTicker)
		}

		book, err := f.GetOrderbook(ctx, m.Ticker, 0)
		if err != nil {
			t.Errorf("GetOrderbook(%s) error = %v", m.Ticker, err)
			continue
		}
		if yes, no := book.Orderbook.BestBids(); yes == 0 && no == 0 {
			t.Errorf("orderbook for %s is empty", m.Ticker)
		}
	}

	var terr *TransportError
	if _, err := f.GetSeries(ctx, "KXNOPE"); !errors.As(err, &terr) {
		t.Errorf("unknown series error = %v, want *TransportError", err)
	}
	if _, err := f.GetOrderbook(ctx, "KXNOPE-1", 0); !errors.As(err, &terr) {
		t.Errorf("unknown orderbook error = %v, want *TransportError", err)
	}
}

func TestFixtureSourceCanceledContext(t *testing.T) {
	f := NewFixtureSource()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var terr *TransportError
	if _, err := f.GetMarkets(ctx, GetMarketsOptions{}); !errors.As(err, &terr) {
		t.Errorf("error = %v, want *TransportError", err)
	}
}
