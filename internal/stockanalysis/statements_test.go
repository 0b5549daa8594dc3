package stockanalysis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"canslimscreener/internal/fetcher"
)

func testFetcher() fetcher.Fetcher {
	return fetcher.NewClientWithOptions(fetcher.NewIdentityPool(), 3, 10*time.Millisecond, time.Second)
}

func TestStatementURL(t *testing.T) {
	c := NewClient("https://stockanalysis.com", nil)

	tests := []struct {
		ticker string
		period Period
		want   string
	}{
		{"AAPL", PeriodQuarterly, "https://stockanalysis.com/stocks/AAPL/financials/?p=quarterly"},
		{"MSFT", PeriodAnnual, "https://stockanalysis.com/stocks/MSFT/financials/?p=annual"},
	}

	for _, tt := range tests {
		t.Run(tt.ticker, func(t *testing.T) {
			if got := c.StatementURL(tt.ticker, tt.period); got != tt.want {
				t.Errorf("StatementURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFetchEPS(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stocks/AAPL/financials/" {
			t.Errorf("path = %q, want /stocks/AAPL/financials/", r.URL.Path)
		}
		if got := r.URL.Query().Get("p"); got != "quarterly" {
			t.Errorf("p = %q, want quarterly", got)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(financialsPage))
	}))
	defer server.Close()

	c := NewClient(server.URL, testFetcher())
	series, err := c.FetchEPS(context.Background(), "AAPL", PeriodQuarterly)
	if err != nil {
		t.Fatalf("FetchEPS() returned unexpected error: %v", err)
	}
	if len(series) != 4 {
		t.Fatalf("FetchEPS() returned %d values, want 4", len(series))
	}
	if series[0].Raw != "$1.23" {
		t.Errorf("latest EPS = %q, want %q", series[0].Raw, "$1.23")
	}
}

func TestFetchEPS_Unavailable(t *testing.T) {
	// Every attempt fails; the outcome is an empty series, not an error.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(server.URL, testFetcher())
	series, err := c.FetchEPS(context.Background(), "FAIL", PeriodQuarterly)
	if err != nil {
		t.Fatalf("FetchEPS() returned unexpected error: %v", err)
	}
	if len(series) != 0 {
		t.Errorf("FetchEPS() = %v, want empty series", series)
	}
}

func TestFetchEPS_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(financialsPage))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(server.URL, testFetcher())
	if _, err := c.FetchEPS(ctx, "AAPL", PeriodQuarterly); err == nil {
		t.Error("FetchEPS() with cancelled context returned nil error")
	}
}
