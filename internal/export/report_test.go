package export

import (
	"strings"
	"testing"
)

func TestWriteReport(t *testing.T) {
	var sb strings.Builder
	if err := WriteReport(&sb, sampleSummary()); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"TOP VOLUMES SUMMARY REPORT",
		"ECONOMICS:",
		"1. KXFED-26SEP-CUT",
		"Title: Fed rate decision: cut?",
		"Volume: 1204500 | YES $0.61/$0.63 | NO $0.37/$0.39",
		"Series: CPI Inflation",
		"POLITICS:",
		"SPORTS: no markets",
		"Total markets ranked: 3",
		"Total volume: 1524780",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n---\n%s", want, out)
		}
	}

	// Average YES ask for Economics: (0.63 + 0.44) / 2 = 0.535 -> rounds to 0.54.
	if !strings.Contains(out, "Average YES ask: $0.54") {
		t.Errorf("report missing Economics average price\n---\n%s", out)
	}
}
