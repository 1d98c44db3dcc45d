package cache

import (
	"context"
	"time"
)

// Decision is the outcome of one rate limit check.
type Decision struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

type ILimiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
	Limit() int
}

type LimiterConfig struct {
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
}

func (c LimiterConfig) withDefaults() LimiterConfig {
	if c.Capacity <= 0 {
		c.Capacity = 10
	}
	if c.RefillTokens <= 0 {
		c.RefillTokens = 1
	}
	if c.RefillInterval <= 0 {
		c.RefillInterval = 6 * time.Second
	}
	if c.TTL <= 0 {
		c.TTL = 10 * time.Minute
	}
	return c
}
