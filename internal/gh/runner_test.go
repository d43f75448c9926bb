package gh

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test drives sh")
	}
}

func TestCLIRunnerCapturesStreams(t *testing.T) {
	skipWithoutShell(t)

	r := &CLIRunner{Tool: "sh"}
	res, err := r.Execute(context.Background(), "-c", "echo out; echo err >&2")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("expected exit 0, got %d", res.ExitCode)
	}
	if res.Stdout != "out\n" {
		t.Errorf("expected stdout %q, got %q", "out\n", res.Stdout)
	}
	if res.Stderr != "err\n" {
		t.Errorf("expected stderr %q, got %q", "err\n", res.Stderr)
	}
}

func TestCLIRunnerNonZeroExitIsNotAnError(t *testing.T) {
	skipWithoutShell(t)

	r := &CLIRunner{Tool: "sh"}
	res, err := r.Execute(context.Background(), "-c", "echo failed >&2; exit 3")
	if err != nil {
		t.Fatalf("non-zero exit should not surface as an error: %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("expected exit 3, got %d", res.ExitCode)
	}
	if res.Stderr != "failed\n" {
		t.Errorf("expected captured stderr, got %q", res.Stderr)
	}
}

func TestCLIRunnerMissingTool(t *testing.T) {
	r := &CLIRunner{Tool: "rvops-no-such-tool-2f9c"}
	_, err := r.Execute(context.Background(), "issue", "list")
	if err == nil {
		t.Fatalf("expected a spawn error for a missing tool")
	}
}

func TestCLIRunnerTrace(t *testing.T) {
	skipWithoutShell(t)

	var trace bytes.Buffer
	r := &CLIRunner{Tool: "sh", Trace: &trace}
	if _, err := r.Execute(context.Background(), "-c", "true"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	line := trace.String()
	if !strings.HasPrefix(line, "+ sh -c") {
		t.Errorf("expected a traced command line, got %q", line)
	}
}
