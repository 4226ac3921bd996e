package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "extractor.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
api:
  rest_url: https://demo-api.kalshi.co/trade-api/v2
  api_key: test-key
  timeout: 10s
extract:
  top_n: 3
  page_limit: 200
  max_pages: 4
  status: open
  detailed: true
export:
  dir: /tmp/exports
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.API.RestURL != "https://demo-api.kalshi.co/trade-api/v2" {
			t.Errorf("RestURL = %q", cfg.API.RestURL)
		}
		if cfg.API.Timeout.Duration() != 10*time.Second {
			t.Errorf("Timeout = %v, want 10s", cfg.API.Timeout)
		}
		if cfg.Extract.TopN != 3 || cfg.Extract.PageLimit != 200 || cfg.Extract.MaxPages != 4 {
			t.Errorf("extract = %+v", cfg.Extract)
		}
		if !cfg.Extract.Detailed {
			t.Error("Detailed = false, want true")
		}
		if cfg.Export.Dir != "/tmp/exports" {
			t.Errorf("Dir = %q", cfg.Export.Dir)
		}
	})

	t.Run("expands environment variables", func(t *testing.T) {
		t.Setenv("KALSHI_API_KEY", "from-env")
		path := writeConfig(t, `
api:
  api_key: ${KALSHI_API_KEY}
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.API.APIKey != "from-env" {
			t.Errorf("APIKey = %q, want %q", cfg.API.APIKey, "from-env")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load("/nonexistent/extractor.yaml"); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "api: [not a map")
		if _, err := Load(path); err == nil {
			t.Error("expected error for malformed yaml")
		}
	})

	t.Run("malformed duration", func(t *testing.T) {
		path := writeConfig(t, "api:\n  timeout: soon\n")
		if _, err := Load(path); err == nil {
			t.Error("expected error for malformed duration")
		}
	})
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.API.RestURL != DefaultRestURL {
		t.Errorf("RestURL = %q, want %q", cfg.API.RestURL, DefaultRestURL)
	}
	if cfg.API.Timeout.Duration() != DefaultAPITimeout {
		t.Errorf("Timeout = %v, want %v", cfg.API.Timeout, DefaultAPITimeout)
	}
	if cfg.Extract.TopN != 5 {
		t.Errorf("TopN = %d, want 5", cfg.Extract.TopN)
	}
	if cfg.Extract.PageLimit != 1000 {
		t.Errorf("PageLimit = %d, want 1000", cfg.Extract.PageLimit)
	}
	if cfg.Extract.MaxPages != 0 {
		t.Errorf("MaxPages = %d, want 0 (unbounded)", cfg.Extract.MaxPages)
	}
	if cfg.Extract.Status != "open" {
		t.Errorf("Status = %q, want %q", cfg.Extract.Status, "open")
	}
	if cfg.Export.Dir != "." {
		t.Errorf("Dir = %q, want %q", cfg.Export.Dir, ".")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadWithDefaultsKeepsExplicitValues(t *testing.T) {
	path := writeConfig(t, `
extract:
  top_n: 10
`)
	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults() error = %v", err)
	}
	if cfg.Extract.TopN != 10 {
		t.Errorf("TopN = %d, want 10", cfg.Extract.TopN)
	}
	if cfg.Extract.PageLimit != DefaultPageLimit {
		t.Errorf("PageLimit = %d, want default %d", cfg.Extract.PageLimit, DefaultPageLimit)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ExtractorConfig)
		wantErr bool
	}{
		{"defaults are valid", func(c *ExtractorConfig) {}, false},
		{"top_n zero", func(c *ExtractorConfig) { c.Extract.TopN = 0 }, true},
		{"top_n negative", func(c *ExtractorConfig) { c.Extract.TopN = -1 }, true},
		{"page_limit too large", func(c *ExtractorConfig) { c.Extract.PageLimit = 10000 }, true},
		{"page_limit zero", func(c *ExtractorConfig) { c.Extract.PageLimit = 0 }, true},
		{"max_pages negative", func(c *ExtractorConfig) { c.Extract.MaxPages = -1 }, true},
		{"unknown status", func(c *ExtractorConfig) { c.Extract.Status = "paused" }, true},
		{"missing rest_url", func(c *ExtractorConfig) { c.API.RestURL = "" }, true},
		{"missing export dir", func(c *ExtractorConfig) { c.Export.Dir = "" }, true},
		{"settled status ok", func(c *ExtractorConfig) { c.Extract.Status = "settled" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
