package config

import (
	"errors"
	"fmt"
)

// Validate checks that all values are in range.
func (c *ExtractorConfig) Validate() error {
	if c.API.RestURL == "" {
		return errors.New("api.rest_url is required")
	}
	if c.API.Timeout < 0 {
		return errors.New("api.timeout must be >= 0")
	}

	if c.Extract.TopN < 1 {
		return errors.New("extract.top_n must be >= 1")
	}
	if c.Extract.PageLimit < 1 || c.Extract.PageLimit > 1000 {
		return fmt.Errorf("extract.page_limit must be between 1 and 1000, got %d", c.Extract.PageLimit)
	}
	if c.Extract.MaxPages < 0 {
		return errors.New("extract.max_pages must be >= 0 (0 = unbounded)")
	}

	switch c.Extract.Status {
	case "open", "unopened", "closed", "settled", "":
	default:
		return fmt.Errorf("extract.status %q is not a known market status", c.Extract.Status)
	}

	if c.Export.Dir == "" {
		return errors.New("export.dir is required")
	}

	return nil
}
