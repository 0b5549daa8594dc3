// Package quote looks up display data (company name, price, market cap)
// for a ticker from the Yahoo Finance quote API. The source is treated
// as unreliable: callers substitute safe defaults when it fails.
package quote

import (
	"context"
	"fmt"

	"resty.dev/v3"
)

// DefaultBaseURL is the production quote API host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Quote holds the display fields for one ticker.
type Quote struct {
	Name      string
	Price     float64
	MarketCap float64
}

// yahooQuoteResponse represents the v7 quote API response
type yahooQuoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol             string  `json:"symbol"`
			ShortName          string  `json:"shortName"`
			RegularMarketPrice float64 `json:"regularMarketPrice"`
			MarketCap          float64 `json:"marketCap"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"quoteResponse"`
}

// Source is the interface the pipeline depends on, so tests can swap in
// a mock quote source.
type Source interface {
	Fetch(ctx context.Context, ticker string) (*Quote, error)
}

// Fetcher fetches quotes from Yahoo Finance.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher creates a quote fetcher against the given base URL.
func NewFetcher(baseURL string) *Fetcher {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "Mozilla/5.0")

	return &Fetcher{client: client}
}

// Fetch retrieves the current quote for a ticker.
func (f *Fetcher) Fetch(ctx context.Context, ticker string) (*Quote, error) {
	var result yahooQuoteResponse

	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbols": ticker,
			"fields":  "symbol,shortName,regularMarketPrice,marketCap",
		}).
		SetResult(&result).
		Get("/v7/finance/quote")

	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote for %s: %w", ticker, err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("quote API returned status %d", resp.StatusCode())
	}

	if len(result.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("no quote data in response for %s", ticker)
	}

	q := result.QuoteResponse.Result[0]
	return &Quote{
		Name:      q.ShortName,
		Price:     q.RegularMarketPrice,
		MarketCap: q.MarketCap,
	}, nil
}
