// Package ghtest provides a scriptable Runner for tests.
package ghtest

import (
	"context"

	"github.com/CIVICTECH-TV/rvops/internal/gh"
)

// Call records one invocation made against the fake.
type Call struct {
	Args []string
}

// Response is the scripted outcome of one invocation.
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// Err simulates a spawn-level failure; the output fields are
	// ignored when it is set.
	Err error
}

// Runner is a fake gh.Runner that replays scripted responses in order
// and records every call. Once the scripted responses run out, Default
// is returned (its zero value is a silent success).
type Runner struct {
	Responses []Response
	Default   Response
	Calls     []Call

	// Inspect, when set, runs on every call before the response is
	// chosen. Tests use it to observe transport artifacts that only
	// exist while the call is in flight.
	Inspect func(args []string)
}

func (r *Runner) Execute(ctx context.Context, args ...string) (gh.Result, error) {
	n := len(r.Calls)
	r.Calls = append(r.Calls, Call{Args: append([]string(nil), args...)})
	if r.Inspect != nil {
		r.Inspect(args)
	}

	resp := r.Default
	if n < len(r.Responses) {
		resp = r.Responses[n]
	}
	if resp.Err != nil {
		return gh.Result{}, resp.Err
	}
	return gh.Result{Stdout: resp.Stdout, Stderr: resp.Stderr, ExitCode: resp.ExitCode}, nil
}
