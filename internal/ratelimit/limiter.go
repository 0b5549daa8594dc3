package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Source represents the external hosts we pace requests against.
type Source string

const (
	// SourceStatements is the financial statements site.
	SourceStatements Source = "statements"
	// SourceQuotes is the quote API.
	SourceQuotes Source = "quotes"
)

// Limiter manages per-source request pacing. It is a plain value
// created by the caller and passed to whoever needs it; there is no
// process-wide instance.
type Limiter struct {
	limiters map[Source]*rate.Limiter
	mu       sync.RWMutex
}

// New creates a limiter with the given budgets in requests per minute.
// A budget of zero or less disables pacing for that source.
func New(statementsPerMinute, quotesPerMinute float64) *Limiter {
	l := &Limiter{limiters: make(map[Source]*rate.Limiter)}
	l.set(SourceStatements, statementsPerMinute)
	l.set(SourceQuotes, quotesPerMinute)
	return l
}

// Unlimited creates a limiter that never blocks, for tests.
func Unlimited() *Limiter {
	return &Limiter{limiters: map[Source]*rate.Limiter{
		SourceStatements: rate.NewLimiter(rate.Inf, 1),
		SourceQuotes:     rate.NewLimiter(rate.Inf, 1),
	}}
}

func (l *Limiter) set(src Source, perMinute float64) {
	if perMinute <= 0 {
		l.limiters[src] = rate.NewLimiter(rate.Inf, 1)
		return
	}
	l.limiters[src] = rate.NewLimiter(rate.Limit(perMinute/60.0), 1)
}

// Wait blocks until the limiter permits a request for the given source,
// or the context is cancelled.
func (l *Limiter) Wait(ctx context.Context, src Source) error {
	l.mu.RLock()
	limiter, exists := l.limiters[src]
	l.mu.RUnlock()

	if !exists {
		return nil
	}
	return limiter.Wait(ctx)
}

// Allow reports whether a request for the given source may happen now.
func (l *Limiter) Allow(src Source) bool {
	l.mu.RLock()
	limiter, exists := l.limiters[src]
	l.mu.RUnlock()

	if !exists {
		return true
	}
	return limiter.Allow()
}
