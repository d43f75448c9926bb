package gh

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stampRunner records when each invocation starts.
type stampRunner struct {
	stamps []time.Time
}

func (r *stampRunner) Execute(ctx context.Context, args ...string) (Result, error) {
	r.stamps = append(r.stamps, time.Now())
	return Result{}, nil
}

func TestPacedRunnerFirstCallIsImmediate(t *testing.T) {
	inner := &stampRunner{}
	paced := NewPacedRunner(inner, time.Hour)

	start := time.Now()
	_, err := paced.Execute(context.Background(), "auth", "status")
	require.NoError(t, err)

	// With an hour interval, any pacing on the first call would hang
	// far past this bound.
	assert.Less(t, time.Since(start), 10*time.Second)
	assert.Len(t, inner.stamps, 1)
}

func TestPacedRunnerSpacesConsecutiveCalls(t *testing.T) {
	inner := &stampRunner{}
	paced := NewPacedRunner(inner, 50*time.Millisecond)

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := paced.Execute(context.Background(), "issue", "list")
		require.NoError(t, err)
	}
	elapsed := time.Since(start)

	// First call free, then two 50ms waits.
	assert.GreaterOrEqual(t, elapsed, 90*time.Millisecond, "three calls should span at least two intervals")
	assert.Len(t, inner.stamps, 3)
}

func TestPacedRunnerZeroIntervalPassesThrough(t *testing.T) {
	inner := &stampRunner{}
	paced := NewPacedRunner(inner, 0)

	for i := 0; i < 3; i++ {
		_, err := paced.Execute(context.Background(), "issue", "list")
		require.NoError(t, err)
	}
	assert.Len(t, inner.stamps, 3)
}
