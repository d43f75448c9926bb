// Package gh drives the GitHub CLI as an opaque external collaborator.
// Commands go out as argument vectors; results come back as exit status
// plus captured stdout and stderr. Nothing in this package understands
// the tracker beyond that contract, which keeps every caller testable
// against a fake Runner.
package gh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// DefaultTool is the invocable name used when none is configured.
const DefaultTool = "gh"

// Result holds the captured output and status of one tool invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes the external tool. The error return covers failures
// to run the tool at all (binary missing, context cancelled). A
// non-zero exit from the tool itself is data, reported in Result, so
// callers decide what a failure means for their operation.
type Runner interface {
	Execute(ctx context.Context, args ...string) (Result, error)
}

// CLIRunner invokes the real tool via os/exec.
type CLIRunner struct {
	// Tool is the invocable name. Empty means DefaultTool.
	Tool string

	// Dir, when set, is the working directory for invocations.
	Dir string

	// Trace, when set, receives one "+ tool args..." line per
	// invocation before it runs.
	Trace io.Writer
}

// Execute runs the tool synchronously and captures both output streams.
func (r *CLIRunner) Execute(ctx context.Context, args ...string) (Result, error) {
	tool := r.Tool
	if tool == "" {
		tool = DefaultTool
	}
	if r.Trace != nil {
		fmt.Fprintf(r.Trace, "+ %s %s\n", tool, strings.Join(args, " "))
	}

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("running %s: %w", tool, err)
	}
	return res, nil
}
