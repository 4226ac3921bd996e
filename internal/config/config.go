// Package config loads extractor configuration from YAML with ${VAR}
// environment expansion, applied defaults, and validation.
package config

// ExtractorConfig is the root configuration for an extraction run.
type ExtractorConfig struct {
	API     APIConfig     `yaml:"api"`
	Extract ExtractConfig `yaml:"extract"`
	Export  ExportConfig  `yaml:"export"`
}

// APIConfig holds Kalshi API settings.
type APIConfig struct {
	RestURL string   `yaml:"rest_url"`
	APIKey  string   `yaml:"api_key"` // Optional; public market data needs none
	Timeout Duration `yaml:"timeout"`
}

// ExtractConfig holds pipeline settings.
type ExtractConfig struct {
	TopN      int    `yaml:"top_n"`      // Markets kept per category
	PageLimit int    `yaml:"page_limit"` // Page size for GET /markets (max 1000)
	MaxPages  int    `yaml:"max_pages"`  // Safety cap on pagination; 0 = unbounded
	Status    string `yaml:"status"`     // Market status filter
	Detailed  bool   `yaml:"detailed"`   // Enrich ranked entries with orderbook + series data
}

// ExportConfig holds export destination settings.
type ExportConfig struct {
	Dir string `yaml:"dir"` // Directory for generated files; "." when empty
}
