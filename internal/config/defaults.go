package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultRestURL    = "https://api.elections.kalshi.com/trade-api/v2"
	DefaultAPITimeout = 30 * time.Second
	DefaultTopN       = 5
	DefaultPageLimit  = 1000 // API maximum
	DefaultMaxPages   = 0    // unbounded
	DefaultStatus     = "open"
	DefaultExportDir  = "."
)

// Default returns a config with every default applied, for callers that
// run without a config file.
func Default() *ExtractorConfig {
	cfg := &ExtractorConfig{}
	cfg.applyDefaults()
	return cfg
}

func (c *ExtractorConfig) applyDefaults() {
	if c.API.RestURL == "" {
		c.API.RestURL = DefaultRestURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = Duration(DefaultAPITimeout)
	}

	if c.Extract.TopN == 0 {
		c.Extract.TopN = DefaultTopN
	}
	if c.Extract.PageLimit == 0 {
		c.Extract.PageLimit = DefaultPageLimit
	}
	if c.Extract.Status == "" {
		c.Extract.Status = DefaultStatus
	}

	if c.Export.Dir == "" {
		c.Export.Dir = DefaultExportDir
	}
}
