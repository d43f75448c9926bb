package gh

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// PacedRunner spaces invocations of the wrapped Runner a fixed interval
// apart. The first invocation is never delayed. The tracker throttles
// rapid-fire mutations, so batch runs pause between consecutive calls
// rather than hammering it.
type PacedRunner struct {
	inner   Runner
	limiter *rate.Limiter
}

// NewPacedRunner wraps inner so consecutive invocations start at least
// interval apart. A zero or negative interval disables pacing.
func NewPacedRunner(inner Runner, interval time.Duration) *PacedRunner {
	var limiter *rate.Limiter
	if interval > 0 {
		limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
	return &PacedRunner{inner: inner, limiter: limiter}
}

// Execute waits out the pacing interval, then delegates to the wrapped
// Runner.
func (r *PacedRunner) Execute(ctx context.Context, args ...string) (Result, error) {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return Result{}, fmt.Errorf("waiting for pacing interval: %w", err)
		}
	}
	return r.inner.Execute(ctx, args...)
}
