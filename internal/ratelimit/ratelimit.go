// Package ratelimit caps requests per client address per one-minute
// wall-clock window.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

const windowSeconds = 60

// Limiter decides whether a request from addr may proceed.
type Limiter interface {
	// Allow records one request from addr and reports whether it is within
	// the limit. When denied, retryAfter is the number of whole seconds
	// remaining in the current window (always in 1..60).
	Allow(ctx context.Context, addr string) (allowed bool, retryAfter int)

	// Size reports the number of tracked addresses in the current window.
	Size() int
}

// inMemoryLimiter counts requests per address for the current minute window.
// Handlers run on parallel goroutines under net/http, so the counter map is
// mutex-guarded. Entries for windows older than the current one are dropped
// wholesale when the window advances.
type inMemoryLimiter struct {
	mu     sync.Mutex
	limit  int
	window int64
	counts map[string]int
	now    func() time.Time
}

// New creates an in-memory limiter with configuration options.
func New(opts ...Option) Limiter {
	l := &inMemoryLimiter{
		limit:  60,
		counts: make(map[string]int),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *inMemoryLimiter) Allow(_ context.Context, addr string) (bool, int) {
	now := l.now().Unix()
	window := now / windowSeconds

	l.mu.Lock()
	defer l.mu.Unlock()

	if window != l.window {
		l.window = window
		l.counts = make(map[string]int)
	}

	l.counts[addr]++
	if l.counts[addr] <= l.limit {
		return true, 0
	}

	retryAfter := windowSeconds - int(now%windowSeconds)
	if retryAfter < 1 {
		retryAfter = 1
	}
	return false, retryAfter
}

func (l *inMemoryLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.counts)
}
