package token_bucket

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNoRefill is returned by Wait when the bucket is empty and can never refill.
var ErrNoRefill = errors.New("token bucket is empty and has no refill rate")

type Limiter interface {
	Allow() bool
	Wait(ctx context.Context) error
}

// TokenBucket serves both sides: the store client waits for a token before
// every outbound request, the mock store rejects requests without one.
type TokenBucket struct {
	capacity   int
	tokens     int
	refillRate float64
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens > 0 {
		t.tokens--
		return true
	}
	return false
}

// Wait blocks until a token is taken or ctx is done.
func (t *TokenBucket) Wait(ctx context.Context) error {
	if t.refillRate <= 0 {
		if t.Allow() {
			return nil
		}
		return ErrNoRefill
	}

	pause := time.Duration(float64(time.Second) / t.refillRate)
	for {
		if t.Allow() {
			return nil
		}

		timer := time.NewTimer(pause)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (t *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	tokensToAdd := int(elapsed * t.refillRate)

	if tokensToAdd > 0 {
		t.tokens += tokensToAdd
		if t.tokens > t.capacity {
			t.tokens = t.capacity
		}
		t.lastRefill = now
	}
}
