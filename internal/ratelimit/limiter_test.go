package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestWait_AllowsBurstThenThrottles(t *testing.T) {
	limiter := NewBranchLimiter(RateLimitConfig{RequestsPerSecond: 100, BurstSize: 2})

	ctx := context.Background()
	start := time.Now()
	for i := 0; i < 2; i++ {
		if err := limiter.Wait(ctx, "flights"); err != nil {
			t.Fatalf("burst wait %d failed: %v", i, err)
		}
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Fatalf("burst should not block, took %v", elapsed)
	}
}

func TestWait_HonorsContextCancellation(t *testing.T) {
	limiter := NewBranchLimiter(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1})

	ctx := context.Background()
	if err := limiter.Wait(ctx, "hotels"); err != nil {
		t.Fatalf("first wait failed: %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := limiter.Wait(cancelled, "hotels"); err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
}

func TestSetBranchLimit_BranchesAreIndependent(t *testing.T) {
	limiter := NewBranchLimiterWithDefaults()
	limiter.SetBranchLimit("flights", 0.001, 1)

	ctx := context.Background()
	if err := limiter.Wait(ctx, "flights"); err != nil {
		t.Fatalf("flights burst failed: %v", err)
	}

	// The flights limiter is now exhausted; hotels must be unaffected.
	done := make(chan error, 1)
	go func() {
		done <- limiter.Wait(ctx, "hotels")
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("hotels wait failed: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("hotels branch blocked by the flights limiter")
	}
}
