package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rickgao/kalshi-extract/internal/model"
)

// WriteError reports an export destination that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write export %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// fileSummary is the on-disk schema.
type fileSummary struct {
	GeneratedAt string                 `json:"generated_at"`
	RunID       string                 `json:"run_id"`
	Categories  map[string][]fileEntry `json:"categories"`
}

type fileEntry struct {
	Rank         int    `json:"rank"`
	Ticker       string `json:"ticker"`
	Title        string `json:"title"`
	SeriesTicker string `json:"series_ticker"`
	SeriesTitle  string `json:"series_title,omitempty"`
	Volume       int64  `json:"volume"`

	YesBid int `json:"yes_bid"`
	YesAsk int `json:"yes_ask"`
	NoBid  int `json:"no_bid"`
	NoAsk  int `json:"no_ask"`

	YesBidDisplay string `json:"yes_bid_display"`
	YesAskDisplay string `json:"yes_ask_display"`
	NoBidDisplay  string `json:"no_bid_display"`
	NoAskDisplay  string `json:"no_ask_display"`

	BestYesBidDisplay string `json:"best_yes_bid_display,omitempty"`
	BestNoBidDisplay  string `json:"best_no_bid_display,omitempty"`
}

// FormatCents renders an integer cent price as a dollar string, e.g.
// 61 -> "$0.61". Decimal arithmetic keeps money display exact.
func FormatCents(cents int) string {
	return "$" + decimal.New(int64(cents), -2).StringFixed(2)
}

// DefaultFilename returns the conventional timestamped export name,
// e.g. "kalshi_top_volumes_20260826_153000.json".
func DefaultFilename(t time.Time) string {
	return "kalshi_top_volumes_" + t.Format("20060102_150405") + ".json"
}

// WriteSummary serializes the summary as indented JSON to path, creating
// or overwriting the file. Returns the path written. Fails with a
// *WriteError when the destination is not writable.
func WriteSummary(summary *model.ExtractionSummary, path string) (string, error) {
	out := fileSummary{
		GeneratedAt: summary.GeneratedAt.Format(time.RFC3339),
		RunID:       summary.RunID.String(),
		Categories:  make(map[string][]fileEntry, len(summary.Categories)),
	}

	for cat, entries := range summary.Categories {
		fileEntries := make([]fileEntry, len(entries))
		for i, e := range entries {
			fe := fileEntry{
				Rank:          e.Rank,
				Ticker:        e.Market.Ticker,
				Title:         e.Market.Title,
				SeriesTicker:  e.Market.SeriesTicker,
				Volume:        e.Market.Volume,
				YesBid:        e.Market.YesBid,
				YesAsk:        e.Market.YesAsk,
				NoBid:         e.Market.NoBid,
				NoAsk:         e.Market.NoAsk,
				YesBidDisplay: FormatCents(e.Market.YesBid),
				YesAskDisplay: FormatCents(e.Market.YesAsk),
				NoBidDisplay:  FormatCents(e.Market.NoBid),
				NoAskDisplay:  FormatCents(e.Market.NoAsk),
			}
			if e.Detail != nil {
				fe.SeriesTitle = e.Detail.SeriesTitle
				fe.BestYesBidDisplay = FormatCents(e.Detail.BestYesBid)
				fe.BestNoBidDisplay = FormatCents(e.Detail.BestNoBid)
			}
			fileEntries[i] = fe
		}
		out.Categories[string(cat)] = fileEntries
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	return path, nil
}
