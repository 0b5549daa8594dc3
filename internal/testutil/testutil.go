package testutil

import (
	"context"
	"strconv"

	"canslimscreener/internal/quote"
	"canslimscreener/internal/screener"
	"canslimscreener/internal/stockanalysis"
)

// MockStatements is a mock statements source for pipeline tests.
type MockStatements struct {
	FetchEPSFunc func(ctx context.Context, ticker string, period stockanalysis.Period) (screener.EpsSeries, error)
}

// FetchEPS implements the pipeline's statements source interface.
func (m *MockStatements) FetchEPS(ctx context.Context, ticker string, period stockanalysis.Period) (screener.EpsSeries, error) {
	if m.FetchEPSFunc != nil {
		return m.FetchEPSFunc(ctx, ticker, period)
	}
	return screener.EpsSeries{}, nil
}

// StaticStatements returns a mock that serves the same two series for
// every ticker.
func StaticStatements(quarterly, annual screener.EpsSeries) *MockStatements {
	return &MockStatements{
		FetchEPSFunc: func(_ context.Context, _ string, period stockanalysis.Period) (screener.EpsSeries, error) {
			if period == stockanalysis.PeriodAnnual {
				return annual, nil
			}
			return quarterly, nil
		},
	}
}

// MockQuotes is a mock quote source.
type MockQuotes struct {
	FetchFunc func(ctx context.Context, ticker string) (*quote.Quote, error)
}

// Fetch implements quote.Source.
func (m *MockQuotes) Fetch(ctx context.Context, ticker string) (*quote.Quote, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, ticker)
	}
	return &quote.Quote{Name: "Mock Co", Price: 100, MarketCap: 1_000_000_000}, nil
}

// StaticQuote returns a mock that serves a fixed quote (or error) for
// every ticker.
func StaticQuote(q *quote.Quote, err error) *MockQuotes {
	return &MockQuotes{
		FetchFunc: func(_ context.Context, _ string) (*quote.Quote, error) {
			return q, err
		},
	}
}

// Series builds an EpsSeries from raw value strings, most-recent-first,
// with synthetic "EPS n" period labels.
func Series(raw ...string) screener.EpsSeries {
	s := make(screener.EpsSeries, len(raw))
	for i, r := range raw {
		s[i] = screener.EpsValue{Period: "EPS " + strconv.Itoa(i+1), Raw: r}
	}
	return s
}
