package ratelimit

import "time"

// Option applies a configuration option to the limiter.
type Option func(*inMemoryLimiter)

// WithLimit sets the allowed requests per address per minute window.
func WithLimit(n int) Option {
	return func(l *inMemoryLimiter) {
		if n > 0 {
			l.limit = n
		}
	}
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(l *inMemoryLimiter) {
		if now != nil {
			l.now = now
		}
	}
}
