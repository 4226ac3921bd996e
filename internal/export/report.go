package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rickgao/kalshi-extract/internal/model"
)

// WriteReport renders a human-readable summary of the run to w: per
// category the ranked markets with prices, then overall statistics.
func WriteReport(w io.Writer, summary *model.ExtractionSummary) error {
	var b strings.Builder

	rule := strings.Repeat("=", 60)
	b.WriteString(rule + "\n")
	b.WriteString("TOP VOLUMES SUMMARY REPORT\n")
	fmt.Fprintf(&b, "generated %s  run %s\n", summary.GeneratedAt.Format(time.RFC3339), summary.RunID)
	b.WriteString(rule + "\n")

	for _, cat := range model.Categories {
		entries := summary.Categories[cat]
		if len(entries) == 0 {
			fmt.Fprintf(&b, "\n%s: no markets\n", strings.ToUpper(string(cat)))
			continue
		}

		fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(string(cat)))
		b.WriteString(strings.Repeat("-", 40) + "\n")

		var catVolume int64
		avgYesAsk := decimal.Zero
		for _, e := range entries {
			catVolume += e.Market.Volume
			avgYesAsk = avgYesAsk.Add(decimal.New(int64(e.Market.YesAsk), -2))

			fmt.Fprintf(&b, "  %d. %s\n", e.Rank, e.Market.Ticker)
			fmt.Fprintf(&b, "     Title: %s\n", e.Market.Title)
			if e.Detail != nil && e.Detail.SeriesTitle != "" {
				fmt.Fprintf(&b, "     Series: %s\n", e.Detail.SeriesTitle)
			}
			fmt.Fprintf(&b, "     Volume: %d | YES %s/%s | NO %s/%s\n",
				e.Market.Volume,
				FormatCents(e.Market.YesBid), FormatCents(e.Market.YesAsk),
				FormatCents(e.Market.NoBid), FormatCents(e.Market.NoAsk),
			)
		}
		avgYesAsk = avgYesAsk.Div(decimal.NewFromInt(int64(len(entries))))
		fmt.Fprintf(&b, "  Category volume: %d | Average YES ask: $%s\n",
			catVolume, avgYesAsk.StringFixed(2))
	}

	b.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&b, "Total markets ranked: %d\n", summary.TotalMarkets())
	fmt.Fprintf(&b, "Total volume: %d\n", summary.TotalVolume())
	b.WriteString(rule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}
