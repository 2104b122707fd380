package worker

import (
	"context"
	"testing"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 1 {
		t.Errorf("expected default burst 1 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "openai"); err != nil {
		t.Errorf("wait failed: %v", err)
	}

	// A different provider key has its own bucket
	if err := limiter.Wait(ctx, "anthropic"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_RateLimit(t *testing.T) {
	// 1 rps, burst 1: the first call consumes the only token
	limiter := NewLimiter(1, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "openai"); err != nil {
		t.Errorf("first wait failed: %v", err)
	}

	if limiter.Allow("openai") {
		t.Error("expected allow to fail (exhausted tokens)")
	}

	// Other keys are unaffected
	if !limiter.Allow("ollama") {
		t.Error("expected allow for other key")
	}
}

func TestLimiter_SetRate(t *testing.T) {
	limiter := NewLimiter(10, 10)

	limiter.SetRate("slow", 0.1, 1)

	if !limiter.Allow("slow") {
		t.Error("first request should pass")
	}
	if limiter.Allow("slow") {
		t.Error("second request should fail")
	}
	if !limiter.Allow("fast") {
		t.Error("other key should pass")
	}
}

func TestLimiter_CanceledContext(t *testing.T) {
	limiter := NewLimiter(0.001, 1)
	ctx, cancel := context.WithCancel(context.Background())

	// Drain the token, then cancel while the next call would block
	_ = limiter.Wait(ctx, "openai")
	cancel()

	if err := limiter.Wait(ctx, "openai"); err == nil {
		t.Error("expected error from canceled context")
	}
}
