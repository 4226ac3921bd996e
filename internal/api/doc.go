// Package api provides the Kalshi REST API client used by the extractor.
//
// Endpoints:
//   - Production: https://api.elections.kalshi.com/trade-api/v2
//   - Demo: https://demo-api.kalshi.co/trade-api/v2
//
// Requests are single-attempt: the client reports a *TransportError or
// *DecodeError and leaves any retry decision to the caller.
package api
