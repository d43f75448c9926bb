package gh

import (
	"fmt"
	"strings"
)

// ToolError reports an invocation that ran and exited non-zero. The
// captured stderr rides along because the tool puts its diagnostics
// there, not in the exit code.
type ToolError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	head := strings.Join(e.Args, " ")
	if len(e.Args) > 4 {
		head = strings.Join(e.Args[:4], " ") + " ..."
	}
	msg := fmt.Sprintf("gh %s: exit status %d", head, e.ExitCode)
	if detail := strings.TrimSpace(e.Stderr); detail != "" {
		msg += ": " + detail
	}
	return msg
}

// ParseError reports an invocation that exited zero but whose output
// did not contain the expected shape.
type ParseError struct {
	// Want describes the shape that was expected.
	Want string
	// Output is the stdout that failed to produce it.
	Output string
}

func (e *ParseError) Error() string {
	out := strings.TrimSpace(e.Output)
	if len(out) > 120 {
		out = out[:120] + "..."
	}
	if out == "" {
		return fmt.Sprintf("expected %s in tool output, got nothing", e.Want)
	}
	return fmt.Sprintf("expected %s in tool output, got %q", e.Want, out)
}
