// Package pipeline drives the per-ticker screening flow: rate-limited
// statement fetches, the quote lookup, and criteria evaluation. Each
// ticker's run is independent; a failure affects that ticker only.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"canslimscreener/internal/quote"
	"canslimscreener/internal/ratelimit"
	"canslimscreener/internal/screener"
	"canslimscreener/internal/stockanalysis"
)

// StatementsSource fetches EPS series from the financial statements site.
type StatementsSource interface {
	FetchEPS(ctx context.Context, ticker string, period stockanalysis.Period) (screener.EpsSeries, error)
}

// Pipeline screens tickers against the CANSLIM EPS growth criteria.
type Pipeline struct {
	statements StatementsSource
	quotes     quote.Source
	limiter    *ratelimit.Limiter
	evaluator  screener.Evaluator
	workers    int
}

// New creates a pipeline. workers bounds the number of tickers screened
// concurrently; 1 reproduces strictly sequential processing. Results
// are returned in input order either way, and the per-request
// retry/backoff behavior is unchanged by the fan-out.
func New(statements StatementsSource, quotes quote.Source, limiter *ratelimit.Limiter, evaluator screener.Evaluator, workers int) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		statements: statements,
		quotes:     quotes,
		limiter:    limiter,
		evaluator:  evaluator,
		workers:    workers,
	}
}

// Screen evaluates every ticker and returns the results in input order.
// Tickers that fail hard are skipped and logged; the batch itself only
// fails on cancellation or an empty input list.
func (p *Pipeline) Screen(ctx context.Context, tickers []string) ([]screener.Result, error) {
	if len(tickers) == 0 {
		return nil, fmt.Errorf("no tickers to screen")
	}

	// Indexed slots keep input order regardless of completion order.
	slots := make([]*screener.Result, len(tickers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, ticker := range tickers {
		g.Go(func() error {
			result, err := p.screenOne(ctx, ticker)
			if err != nil {
				if ctx.Err() != nil {
					return err
				}
				slog.Warn("skipping ticker", "ticker", ticker, "error", err)
				return nil
			}
			slots[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]screener.Result, 0, len(tickers))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results, nil
}

// screenOne runs the full flow for a single ticker.
func (p *Pipeline) screenOne(ctx context.Context, ticker string) (*screener.Result, error) {
	slog.Info("analyzing ticker", "ticker", ticker)

	if err := p.limiter.Wait(ctx, ratelimit.SourceStatements); err != nil {
		return nil, err
	}
	quarterly, err := p.statements.FetchEPS(ctx, ticker, stockanalysis.PeriodQuarterly)
	if err != nil {
		return nil, err
	}

	if err := p.limiter.Wait(ctx, ratelimit.SourceStatements); err != nil {
		return nil, err
	}
	annual, err := p.statements.FetchEPS(ctx, ticker, stockanalysis.PeriodAnnual)
	if err != nil {
		return nil, err
	}

	info := screener.QuoteInfo{Company: "N/A", Price: "N/A", MarketCap: "$0"}
	if err := p.limiter.Wait(ctx, ratelimit.SourceQuotes); err != nil {
		return nil, err
	}
	if q, err := p.quotes.Fetch(ctx, ticker); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Warn("quote lookup failed, using defaults", "ticker", ticker, "error", err)
	} else {
		info = screener.QuoteInfo{
			Company:   q.Name,
			Price:     quote.FormatPrice(q.Price),
			MarketCap: quote.FormatMarketCap(q.MarketCap),
		}
		if info.Company == "" {
			info.Company = "N/A"
		}
	}

	result := p.evaluator.Evaluate(ticker, info, quarterly, annual)
	return &result, nil
}

// Accepted filters a result set down to the tickers that passed.
func Accepted(results []screener.Result) []screener.Result {
	var accepted []screener.Result
	for _, r := range results {
		if r.Passed {
			accepted = append(accepted, r)
		}
	}
	return accepted
}
