package worker

import (
	"context"
	"testing"
)

func TestLimiter_Unlimited(t *testing.T) {
	l := NewLimiter(0, 0)

	for i := 0; i < 100; i++ {
		if !l.Allow() {
			t.Fatal("Unlimited limiter should always allow")
		}
	}
	if err := l.Wait(context.Background()); err != nil {
		t.Errorf("Unlimited wait failed: %v", err)
	}

	var nilLimiter *Limiter
	if !nilLimiter.Allow() {
		t.Error("Nil limiter should allow")
	}
	if err := nilLimiter.Wait(context.Background()); err != nil {
		t.Errorf("Nil limiter wait failed: %v", err)
	}
}

func TestLimiter_Throttles(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow() {
		t.Fatal("Expected first call to be allowed")
	}
	if l.Allow() {
		t.Error("Expected second immediate call to be throttled")
	}
}

func TestLimiter_WaitCancelled(t *testing.T) {
	l := NewLimiter(0.001, 1)

	// Drain the burst so the next wait has to block.
	if !l.Allow() {
		t.Fatal("Expected burst token")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.Wait(ctx); err == nil {
		t.Error("Expected error waiting on a cancelled context")
	}
}
