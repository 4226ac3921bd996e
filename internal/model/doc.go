// Package model defines shared data types used across the extractor.
//
// Conventions:
//   - Prices: integer cents (0-100 = $0.00-$1.00), as returned by the markets endpoint
//   - Volume: cumulative traded contract count, the ranking metric
//   - IDs: string for tickers, uuid.UUID for run identifiers
package model
