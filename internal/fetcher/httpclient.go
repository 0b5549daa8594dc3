package fetcher

import (
	"context"
	"log/slog"
	"time"

	"resty.dev/v3"
)

const (
	// Default retry configuration: 3 total attempts with a fixed pause
	// between them. The target is a single slow-but-usually-reachable
	// host, so a small attempt count with a flat wait beats exponential
	// backoff here.
	defaultAttempts  = 3
	defaultRetryWait = 2 * time.Second
	defaultTimeout   = 10 * time.Second
)

// Client fetches pages with bounded retries and a rotating client
// identity. It implements Fetcher.
type Client struct {
	client     *resty.Client
	identities *IdentityPool
}

// NewClient creates a page-fetching client with the default retry policy.
func NewClient(identities *IdentityPool) *Client {
	return NewClientWithOptions(identities, defaultAttempts, defaultRetryWait, defaultTimeout)
}

// NewClientWithOptions creates a client with an explicit attempt count,
// inter-attempt wait, and per-attempt timeout.
func NewClientWithOptions(identities *IdentityPool, attempts int, retryWait, timeout time.Duration) *Client {
	if attempts < 1 {
		attempts = 1
	}
	c := &Client{identities: identities}

	c.client = resty.New().
		SetTimeout(timeout).
		SetRetryCount(attempts - 1).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryWait). // fixed wait, not exponential
		AddRetryConditions(retryCondition).
		AddRetryHooks(c.retryHook)

	return c
}

// retryCondition retries on any transport error or non-success status.
func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	return !r.IsSuccess()
}

// retryHook rotates the client identity for the next attempt and logs
// the failed one for operator visibility.
func (c *Client) retryHook(r *resty.Response, err error) {
	r.Request.SetHeader("User-Agent", c.identities.Next())

	if err != nil {
		slog.Warn("fetch attempt failed, retrying",
			"url", r.Request.URL,
			"attempt", r.Request.Attempt,
			"error", err.Error())
		return
	}
	slog.Warn("fetch attempt failed, retrying",
		"url", r.Request.URL,
		"attempt", r.Request.Attempt,
		"status_code", r.StatusCode())
}

// FetchPage performs a GET and returns the response body. On the first
// successful attempt the body is returned immediately; once every
// attempt has failed the error wraps ErrUnavailable and the failure has
// already been logged.
func (c *Client) FetchPage(ctx context.Context, url string) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", c.identities.Next()).
		Get(url)

	if err != nil {
		slog.Warn("all fetch attempts failed", "url", url, "error", err)
		return "", Unavailable(url, NewNetworkError(err))
	}
	if !resp.IsSuccess() {
		slog.Warn("all fetch attempts failed", "url", url, "status_code", resp.StatusCode())
		return "", Unavailable(url, ClassifyHTTPError(resp.StatusCode()))
	}

	return resp.String(), nil
}
