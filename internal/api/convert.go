package api

import (
	"github.com/rickgao/kalshi-extract/internal/model"
)

// ToModel converts an APIMarket to model.Market. Prices stay in cents.
func (m *APIMarket) ToModel() model.Market {
	return model.Market{
		Ticker:       m.Ticker,
		SeriesTicker: m.SeriesTicker,
		EventTicker:  m.EventTicker,
		Title:        m.Title,
		Status:       m.Status,
		Result:       m.Result,
		YesBid:       m.YesBid,
		YesAsk:       m.YesAsk,
		NoBid:        m.NoBid,
		NoAsk:        m.NoAsk,
		Volume:       m.Volume,
		Volume24h:    m.Volume24h,
		OpenInterest: m.OpenInterest,
	}
}

// BestBids returns the best (highest-priced) resting YES and NO bids in
// cents. A side with no resting orders reports 0. Level order is not
// assumed: the book is scanned rather than indexed.
func (o *APIOrderbook) BestBids() (yes, no int) {
	for _, level := range o.Yes {
		if len(level) >= 2 && level[0] > yes {
			yes = level[0]
		}
	}
	for _, level := range o.No {
		if len(level) >= 2 && level[0] > no {
			no = level[0]
		}
	}
	return yes, no
}
