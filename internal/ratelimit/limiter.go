package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// BranchLimiter throttles outbound generation calls per search branch so a
// burst of trip searches cannot exhaust the shared API credential's quota.
type BranchLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults RateLimitConfig
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 2,
		BurstSize:         4,
	}
}

func NewBranchLimiter(config RateLimitConfig) *BranchLimiter {
	return &BranchLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func NewBranchLimiterWithDefaults() *BranchLimiter {
	return NewBranchLimiter(DefaultConfig())
}

func (b *BranchLimiter) getLimiter(branch string) *rate.Limiter {
	b.mu.RLock()
	limiter, exists := b.limiters[branch]
	b.mu.RUnlock()

	if exists {
		return limiter
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if limiter, exists = b.limiters[branch]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(b.defaults.RequestsPerSecond), b.defaults.BurstSize)
	b.limiters[branch] = limiter
	return limiter
}

func (b *BranchLimiter) SetBranchLimit(branch string, rps float64, burst int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.limiters[branch] = rate.NewLimiter(rate.Limit(rps), burst)
}

func (b *BranchLimiter) Wait(ctx context.Context, branch string) error {
	return b.getLimiter(branch).Wait(ctx)
}
