package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalLimiter is the in-process fallback used when redis is not
// configured. Limits are per process.
type LocalLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	cfg      LimiterConfig
	now      func() time.Time
}

func NewLocalLimiter(cfg LimiterConfig) *LocalLimiter {
	cfg = cfg.withDefaults()
	return &LocalLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(cfg.RefillInterval / time.Duration(cfg.RefillTokens)),
		cfg:      cfg,
		now:      time.Now,
	}
}

func (l *LocalLimiter) Limit() int { return l.cfg.Capacity }

func (l *LocalLimiter) Allow(_ context.Context, key string) (Decision, error) {
	if key == "" {
		key = "unknown"
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.cfg.Capacity)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	l.gcLocked(now)

	reservation := v.limiter.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return Decision{Allowed: false, RetryAfter: delay}, nil
	}
	return Decision{Allowed: true, Remaining: int64(v.limiter.TokensAt(now))}, nil
}

func (l *LocalLimiter) gcLocked(now time.Time) {
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.cfg.TTL {
			delete(l.visitors, key)
		}
	}
}
