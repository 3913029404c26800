// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across commands.
package httputil

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces consecutive HTTP calls a fixed interval apart. The interval
// is a hard floor on throughput, not a backoff: callers invoke Wait after
// every response, success or failure, and N calls through a Pacer take at
// least N times the interval.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer returns a Pacer with the given interval. The underlying token
// bucket starts empty, so the first Wait blocks for a full interval just
// like every later one. A non-positive interval disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		return &Pacer{}
	}
	l := rate.NewLimiter(rate.Every(interval), 1)
	l.Allow()
	return &Pacer{limiter: l}
}

// Wait blocks until the interval has elapsed since the previous call. It
// returns early with an error if ctx is cancelled or its deadline falls
// before the interval expires. A nil or unpaced Pacer returns immediately.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.limiter == nil {
		return nil
	}
	if err := p.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("pacing delay: %w", err)
	}
	return nil
}
