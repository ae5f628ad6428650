package ratelimit

import (
	"sync"
	"time"
)

// minSweepInterval bounds how often idle buckets are scanned.
const minSweepInterval = time.Minute

// Config sizes TokenBuckets.
type Config struct {
	Rate       float64       // refill, tokens per second
	Burst      int           // bucket capacity
	TTL        time.Duration // idle buckets older than this are dropped; 0 keeps them forever
	MaxBuckets int           // 0 means unbounded
}

type bucket struct {
	tokens float64
	at     time.Time
}

// TokenBuckets keeps one token bucket per client key.
type TokenBuckets struct {
	rate  float64
	burst float64
	ttl   time.Duration
	max   int
	clock Clock

	mu        sync.Mutex
	buckets   map[string]bucket
	lastSweep time.Time
}

// NewTokenBuckets applies defaults of one token per second and a burst of
// one. A nil clock means the wall clock.
func NewTokenBuckets(cfg Config, clock Clock) *TokenBuckets {
	if clock == nil {
		clock = RealClock{}
	}
	tb := &TokenBuckets{
		rate:    cfg.Rate,
		burst:   float64(cfg.Burst),
		ttl:     cfg.TTL,
		max:     max(cfg.MaxBuckets, 0),
		clock:   clock,
		buckets: make(map[string]bucket),
	}
	if tb.rate <= 0 {
		tb.rate = 1
	}
	if tb.burst < 1 {
		tb.burst = 1
	}
	return tb
}

// Allow takes one token from key's bucket. A key seen for the first time
// starts with a full bucket. When the table is full and no idle bucket can
// be dropped, new keys are refused.
func (tb *TokenBuckets) Allow(key string) bool {
	now := tb.clock.Now()

	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.sweep(now, false)

	b, ok := tb.buckets[key]
	if !ok {
		if tb.max > 0 && len(tb.buckets) >= tb.max {
			tb.sweep(now, true)
			if len(tb.buckets) >= tb.max {
				return false
			}
		}
		b = bucket{tokens: tb.burst, at: now}
	}

	if elapsed := now.Sub(b.at); elapsed > 0 {
		b.tokens = min(tb.burst, b.tokens+elapsed.Seconds()*tb.rate)
		b.at = now
	}

	allowed := b.tokens >= 1
	if allowed {
		b.tokens--
	}
	tb.buckets[key] = b
	return allowed
}

// Len reports how many keys are tracked.
func (tb *TokenBuckets) Len() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return len(tb.buckets)
}

// sweep drops buckets idle for longer than the TTL. Unless forced it runs at
// most once per max(TTL/2, minSweepInterval). Callers hold tb.mu.
func (tb *TokenBuckets) sweep(now time.Time, force bool) {
	if tb.ttl <= 0 {
		return
	}
	if !force && !tb.lastSweep.IsZero() && now.Sub(tb.lastSweep) < max(tb.ttl/2, minSweepInterval) {
		return
	}
	tb.lastSweep = now
	for k, b := range tb.buckets {
		if now.Sub(b.at) > tb.ttl {
			delete(tb.buckets, k)
		}
	}
}
