// Package stockanalysis retrieves quarterly and annual EPS history from
// the stockanalysis.com financial statement pages. The pages are
// semi-structured markup with no schema guarantees; extraction is
// heuristic and degrades to "no data" when the layout drifts.
package stockanalysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"canslimscreener/internal/fetcher"
	"canslimscreener/internal/screener"
)

// DefaultBaseURL is the production statements host.
const DefaultBaseURL = "https://stockanalysis.com"

// Period selects the statement view on the financials page.
type Period string

const (
	PeriodQuarterly Period = "quarterly"
	PeriodAnnual    Period = "annual"
)

// Client fetches financial statement pages and extracts EPS series.
type Client struct {
	baseURL string
	fetcher fetcher.Fetcher
	locator RowLocator
}

// NewClient creates a statements client using the default EPS row locator.
func NewClient(baseURL string, f fetcher.Fetcher) *Client {
	return &Client{
		baseURL: baseURL,
		fetcher: f,
		locator: DefaultLocator(),
	}
}

// NewClientWithLocator creates a statements client with a custom row
// locator, for when the source site's table labeling changes.
func NewClientWithLocator(baseURL string, f fetcher.Fetcher, locator RowLocator) *Client {
	return &Client{
		baseURL: baseURL,
		fetcher: f,
		locator: locator,
	}
}

// StatementURL builds the financials page URL for a ticker and period view.
func (c *Client) StatementURL(ticker string, period Period) string {
	return fmt.Sprintf("%s/stocks/%s/financials/?p=%s", c.baseURL, ticker, period)
}

// FetchEPS retrieves the financials page for the given period and
// returns its EPS series. Both an unreachable page (after retries) and
// a page without a recognizable EPS row degrade to an empty series so
// the rest of the batch keeps going; only context cancellation is
// propagated as an error.
func (c *Client) FetchEPS(ctx context.Context, ticker string, period Period) (screener.EpsSeries, error) {
	url := c.StatementURL(ticker, period)

	body, err := c.fetcher.FetchPage(ctx, url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, fetcher.ErrUnavailable) {
			slog.Warn("financials page unavailable",
				"ticker", ticker,
				"period", string(period))
			return screener.EpsSeries{}, nil
		}
		return nil, fmt.Errorf("fetch %s financials for %s: %w", period, ticker, err)
	}

	series, err := ExtractEPS(body, c.locator)
	if err != nil {
		return nil, fmt.Errorf("extract %s EPS for %s: %w", period, ticker, err)
	}
	if len(series) == 0 {
		slog.Info("no EPS row found in financials table",
			"ticker", ticker,
			"period", string(period))
	}
	return series, nil
}
