package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/kalshi-extract/internal/api"
	"github.com/rickgao/kalshi-extract/internal/category"
	"github.com/rickgao/kalshi-extract/internal/model"
	"github.com/rickgao/kalshi-extract/internal/rank"
)

// MarketSource serves pages of markets. Satisfied by *api.Client and
// *api.FixtureSource.
type MarketSource interface {
	GetMarkets(ctx context.Context, opts api.GetMarketsOptions) (*api.MarketsResponse, error)
}

// DetailSource serves the per-market enrichment used in detailed mode.
type DetailSource interface {
	GetSeries(ctx context.Context, seriesTicker string) (*api.APISeries, error)
	GetOrderbook(ctx context.Context, ticker string, depth int) (*api.OrderbookResponse, error)
}

// Config holds per-run pipeline settings.
type Config struct {
	TopN      int    // Markets kept per category
	PageLimit int    // Page size for each markets request
	MaxPages  int    // Safety cap on pagination; 0 = unbounded
	Status    string // Market status filter passed to the API
	Detailed  bool   // Enrich ranked entries with orderbook + series data
}

// Extractor runs the fetch -> categorize -> rank pipeline.
type Extractor struct {
	cfg    Config
	source MarketSource
	detail DetailSource
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithDetailSource provides the source for detailed-mode enrichment.
// Required when Config.Detailed is set.
func WithDetailSource(d DetailSource) Option {
	return func(e *Extractor) {
		e.detail = d
	}
}

// New creates an Extractor over the given market source.
func New(cfg Config, source MarketSource, logger *slog.Logger, opts ...Option) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Extractor{
		cfg:    cfg,
		source: source,
		logger: logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes one extraction and returns the assembled summary.
// Transport and decode errors from the source propagate unchanged.
func (e *Extractor) Run(ctx context.Context) (*model.ExtractionSummary, error) {
	if e.cfg.Detailed && e.detail == nil {
		return nil, fmt.Errorf("detailed mode requires a detail source")
	}

	start := time.Now()
	runID := uuid.New()
	e.logger.Info("starting extraction run",
		"run_id", runID,
		"top_n", e.cfg.TopN,
		"page_limit", e.cfg.PageLimit,
		"max_pages", e.cfg.MaxPages,
		"status", e.cfg.Status,
	)

	markets, err := e.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[model.Category][]model.Market)
	unmatched := 0
	for _, m := range markets {
		cat, ok := category.Categorize(m)
		if !ok {
			unmatched++
			continue
		}
		grouped[cat] = append(grouped[cat], m)
	}
	e.logger.Info("categorized markets",
		"total", len(markets),
		"unmatched", unmatched,
	)

	summary := &model.ExtractionSummary{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		Categories:  make(map[model.Category][]model.RankedEntry, len(model.Categories)),
	}
	for _, cat := range model.Categories {
		entries := rank.TopN(cat, grouped[cat], e.cfg.TopN)
		if entries == nil {
			entries = []model.RankedEntry{}
		}
		summary.Categories[cat] = entries
	}

	if e.cfg.Detailed {
		if err := e.enrich(ctx, summary); err != nil {
			return nil, err
		}
	}

	e.logger.Info("extraction run complete",
		"run_id", runID,
		"ranked_markets", summary.TotalMarkets(),
		"duration", time.Since(start),
	)
	return summary, nil
}

// fetchAll paginates the markets endpoint into memory. The total market
// count is in the low tens of thousands, fine to hold for a batch run.
func (e *Extractor) fetchAll(ctx context.Context) ([]model.Market, error) {
	var all []model.Market
	opts := api.GetMarketsOptions{
		Limit:  e.cfg.PageLimit,
		Status: e.cfg.Status,
	}

	pages := 0
	for {
		resp, err := e.source.GetMarkets(ctx, opts)
		if err != nil {
			return nil, err
		}
		pages++

		for i := range resp.Markets {
			all = append(all, resp.Markets[i].ToModel())
		}
		e.logger.Debug("fetched markets page",
			"page", pages,
			"page_markets", len(resp.Markets),
			"total_markets", len(all),
		)

		if resp.Cursor == "" {
			break
		}
		if e.cfg.MaxPages > 0 && pages >= e.cfg.MaxPages {
			e.logger.Warn("stopping pagination at page cap",
				"max_pages", e.cfg.MaxPages,
				"total_markets", len(all),
			)
			break
		}
		opts.Cursor = resp.Cursor
	}

	return all, nil
}

// enrich attaches series titles and best orderbook levels to every
// ranked entry. Series lookups are cached per ticker: the ranked set is
// small but series repeat within a category.
func (e *Extractor) enrich(ctx context.Context, summary *model.ExtractionSummary) error {
	seriesTitles := make(map[string]string)

	for _, cat := range model.Categories {
		entries := summary.Categories[cat]
		for i := range entries {
			m := entries[i].Market

			title, ok := seriesTitles[m.SeriesTicker]
			if !ok {
				s, err := e.detail.GetSeries(ctx, m.SeriesTicker)
				if err != nil {
					return err
				}
				title = s.Title
				seriesTitles[m.SeriesTicker] = title
			}

			book, err := e.detail.GetOrderbook(ctx, m.Ticker, 0)
			if err != nil {
				return err
			}
			yes, no := book.Orderbook.BestBids()

			entries[i].Detail = &model.MarketDetail{
				SeriesTitle: title,
				BestYesBid:  yes,
				BestNoBid:   no,
			}
		}
	}
	return nil
}
