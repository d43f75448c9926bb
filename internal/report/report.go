// Package report renders human-readable batch run summaries.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/CIVICTECH-TV/rvops/internal/types"
)

// Summary describes one finished run for rendering.
type Summary struct {
	// RunID tags the summary so log excerpts from different runs stay
	// distinguishable.
	RunID  string
	Result *types.RunResult
}

// New builds a summary for a finished run under a fresh run id.
func New(result *types.RunResult) Summary {
	return Summary{
		RunID:  uuid.New().String()[:8],
		Result: result,
	}
}

// Render writes the run summary. Sections appear only when they have
// entries; the final line states the overall outcome.
func Render(w io.Writer, s Summary) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("─", 60))
	fmt.Fprintf(w, "%s (run %s)\n", bold("Run summary"), s.RunID)

	section := func(glyph, name string, entries []string) {
		if len(entries) == 0 {
			return
		}
		fmt.Fprintf(w, "\n%s %s (%d):\n", glyph, name, len(entries))
		for _, e := range entries {
			fmt.Fprintf(w, "  • %s\n", e)
		}
	}
	section(green("✓"), "Created", s.Result.Created)
	section(green("✓"), "Updated", s.Result.Updated)
	section(green("✓"), "Closed", s.Result.Closed)
	section(red("✗"), "Errors", s.Result.Errors)

	switch {
	case s.Result.Total() == 0:
		fmt.Fprintf(w, "\nNothing to do\n")
	case s.Result.HasErrors():
		fmt.Fprintf(w, "\n%s Completed with %d error(s)\n", red("✗"), len(s.Result.Errors))
	default:
		fmt.Fprintf(w, "\n%s All operations completed\n", green("✓"))
	}
}
