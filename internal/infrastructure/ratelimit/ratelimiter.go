package ratelimit

import "time"

// RateLimiter bounds how often a key may act within a sliding window. The
// auth endpoints use it to slow down credential stuffing.
type RateLimiter interface {
	Allow(key string, limit int, window time.Duration) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}
