package category

import (
	"strings"

	"github.com/rickgao/kalshi-extract/internal/model"
)

// Rule maps matching markets to a single category. A market matches when
// its series ticker starts with one of TickerPrefixes, or its title
// contains one of Keywords. Both checks are case-insensitive.
type Rule struct {
	Category       model.Category
	TickerPrefixes []string
	Keywords       []string
}

// Rules is the ordered classification table. A market matching several
// rules always resolves to the earliest one, so keep narrow rules ahead
// of broad ones (Economics keywords like "fed" must not leak into
// Politics, so Politics carries no economic terms).
var Rules = []Rule{
	{
		Category: model.CategoryPolitics,
		TickerPrefixes: []string{
			"KXPRES", "KXSENATE", "KXHOUSE", "KXGOV", "KXMAYOR", "KXCABINET",
			"PRES", "SENATE", "HOUSE", "GOV",
		},
		Keywords: []string{
			"president", "presidential", "senate", "congress", "governor",
			"mayor", "election", "electoral", "primary", "nominee", "ballot",
			"republican", "democrat", "white house", "impeach", "veto",
		},
	},
	{
		Category: model.CategorySports,
		TickerPrefixes: []string{
			"KXNFL", "KXNBA", "KXMLB", "KXNHL", "KXNCAA", "KXUFC", "KXPGA",
			"KXF1", "KXWTA", "KXATP", "KXEPL", "KXUCL",
		},
		Keywords: []string{
			"nfl", "nba", "mlb", "nhl", "super bowl", "world series",
			"playoffs", "championship", "grand slam", "heisman", "olympics",
			"world cup", "premier league",
		},
	},
	{
		Category: model.CategoryCrypto,
		TickerPrefixes: []string{
			"KXBTC", "KXETH", "KXSOL", "KXDOGE", "KXCRYPTO",
		},
		// "eth" alone is too substring-happy ("ethics"), so only the
		// full word appears here.
		Keywords: []string{
			"bitcoin", "btc", "ethereum", "crypto", "stablecoin",
			"solana", "dogecoin", "blockchain",
		},
	},
	{
		Category: model.CategoryWorld,
		TickerPrefixes: []string{
			"KXWAR", "KXNATO", "KXUN", "KXCEASEFIRE", "KXSUMMIT",
		},
		Keywords: []string{
			"ceasefire", "nato", "united nations", "sanctions", "treaty",
			"ukraine", "taiwan", "middle east", "summit", "prime minister",
			"invasion",
		},
	},
	{
		Category: model.CategoryEconomics,
		TickerPrefixes: []string{
			"KXFED", "KXCPI", "KXGDP", "KXPAYROLL", "KXRECESSION", "KXRATE",
			"FED", "CPI", "GDP",
		},
		Keywords: []string{
			"fed", "federal reserve", "rate decision", "interest rate",
			"inflation", "cpi", "gdp", "recession", "unemployment",
			"jobs report", "treasury", "debt ceiling", "tariff",
		},
	},
	{
		Category: model.CategoryCulture,
		TickerPrefixes: []string{
			"KXOSCAR", "KXGRAMMY", "KXEMMY", "KXBOXOFFICE", "KXALBUM",
			"KXROTTEN",
		},
		Keywords: []string{
			"oscar", "grammy", "emmy", "box office", "album", "billboard",
			"netflix", "spotify", "movie", "celebrity", "time person of the year",
		},
	},
}

// Categorize classifies a market against the rule table. It is a pure
// function: the same market always yields the same result. The second
// return value is false when no rule matches, which excludes the market
// from every category output.
func Categorize(m model.Market) (model.Category, bool) {
	series := strings.ToUpper(m.SeriesTicker)
	title := strings.ToLower(m.Title)

	for _, r := range Rules {
		for _, prefix := range r.TickerPrefixes {
			if strings.HasPrefix(series, prefix) {
				return r.Category, true
			}
		}
		for _, kw := range r.Keywords {
			if strings.Contains(title, kw) {
				return r.Category, true
			}
		}
	}
	return "", false
}
