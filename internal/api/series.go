package api

import "context"

// GetSeries fetches a series by ticker.
func (c *Client) GetSeries(ctx context.Context, seriesTicker string) (*APISeries, error) {
	var resp SeriesResponse
	if err := c.get(ctx, "/series/"+seriesTicker, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Series, nil
}

// GetExchangeStatus fetches the exchange trading status.
func (c *Client) GetExchangeStatus(ctx context.Context) (*ExchangeStatusResponse, error) {
	var resp ExchangeStatusResponse
	if err := c.get(ctx, "/exchange/status", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
