package fetcher

import "context"

// Fetcher is the interface for retrieving raw page content over HTTP.
// Implementations retry transient failures internally; once FetchPage
// returns, the outcome is definitive. A terminal failure is reported as
// an error wrapping ErrUnavailable and is expected to be degraded by
// the caller (empty data, ticker skipped), never treated as fatal to a
// batch.
type Fetcher interface {
	// FetchPage performs a GET against url and returns the response body.
	FetchPage(ctx context.Context, url string) (string, error)
}
