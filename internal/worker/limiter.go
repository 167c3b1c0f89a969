package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles batch classification throughput. Import jobs that run
// against a shared environment can cap classifications per second; a nil
// Limiter or a non-positive rate means unlimited.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a rate limiter. perSecond <= 0 returns an unlimited
// limiter.
func NewLimiter(perSecond float64, burst int) *Limiter {
	if perSecond <= 0 {
		return &Limiter{}
	}
	if burst <= 0 {
		burst = 5
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Wait blocks until the next classification is allowed or the context is
// cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil || l.limiter == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}

// Allow checks whether a classification is allowed without waiting.
func (l *Limiter) Allow() bool {
	if l == nil || l.limiter == nil {
		return true
	}
	return l.limiter.Allow()
}
