// Package batch drives ordered operation lists against the tracker.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/CIVICTECH-TV/rvops/internal/plan"
	"github.com/CIVICTECH-TV/rvops/internal/provision"
	"github.com/CIVICTECH-TV/rvops/internal/types"
)

// Driver executes plan operations strictly in sequence, accumulating
// every outcome into a RunResult. A failed operation is recorded and
// the run continues with the next one; nothing short of process death
// stops a batch.
type Driver struct {
	prov *provision.Provisioner
	out  io.Writer
}

// NewDriver creates a driver that reports progress to out.
func NewDriver(prov *provision.Provisioner, out io.Writer) *Driver {
	if out == nil {
		out = os.Stdout
	}
	return &Driver{prov: prov, out: out}
}

// Run executes every operation in order and returns the accumulated
// result. The result covers all operations even when some fail: each
// one lands in exactly one outcome bucket.
func (d *Driver) Run(ctx context.Context, ops []plan.Operation) *types.RunResult {
	cyan := color.New(color.FgCyan).SprintFunc()

	result := &types.RunResult{}
	for i := range ops {
		op := &ops[i]
		fmt.Fprintf(d.out, "%s [%d/%d] %s %s\n", cyan("→"), i+1, len(ops), op.Kind, op.DisplayName())
		d.runOne(ctx, op, result)
	}
	return result
}

// Preview prints what Run would do without invoking the tool.
func (d *Driver) Preview(ops []plan.Operation) {
	cyan := color.New(color.FgCyan).SprintFunc()

	for i := range ops {
		op := &ops[i]
		detail := ""
		switch op.Kind {
		case plan.KindCreate:
			if op.Item != nil && len(op.Item.Labels) > 0 {
				detail = " [" + strings.Join(op.Item.Labels, ", ") + "]"
			}
		case plan.KindClose:
			if op.Reason != "" {
				detail = " (" + op.Reason + ")"
			}
		}
		fmt.Fprintf(d.out, "%s [%d/%d] would %s %s%s\n", cyan("→"), i+1, len(ops), op.Kind, op.DisplayName(), detail)
	}
	fmt.Fprintf(d.out, "\nDry run: %d operation(s), nothing invoked\n", len(ops))
}

// runOne executes a single operation. Panics are downgraded so one bad
// operation cannot take down the rest of the batch: they become error
// entries, or warnings when the operation already recorded its outcome
// (a follow-up panicking must not double-count the operation).
func (d *Driver) runOne(ctx context.Context, op *plan.Operation, result *types.RunResult) {
	recorded := result.Total()
	defer func() {
		if r := recover(); r != nil {
			if result.Total() > recorded {
				yellow := color.New(color.FgYellow).SprintFunc()
				fmt.Fprintf(d.out, "  %s follow-up panic: %v\n", yellow("⚠"), r)
				return
			}
			red := color.New(color.FgRed).SprintFunc()
			fmt.Fprintf(d.out, "  %s panic: %v\n", red("✗"), r)
			result.Errors = append(result.Errors, fmt.Sprintf("%s %q: panic: %v", op.Kind, op.DisplayName(), r))
		}
	}()

	switch op.Kind {
	case plan.KindCreate:
		d.create(ctx, op, result)
	case plan.KindUpdate:
		d.update(ctx, op, result)
	case plan.KindClose:
		d.closeIssue(ctx, op, result)
	default:
		result.Errors = append(result.Errors, fmt.Sprintf("unknown operation kind %q", op.Kind))
	}
}

func (d *Driver) create(ctx context.Context, op *plan.Operation, result *types.RunResult) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	id, err := d.prov.Submit(ctx, *op.Item)
	if err != nil {
		fmt.Fprintf(d.out, "  %s %v\n", red("✗"), err)
		result.Errors = append(result.Errors, fmt.Sprintf("create %q: %v", op.Item.Title, err))
		return
	}
	fmt.Fprintf(d.out, "  %s created #%s\n", green("✓"), id)
	result.Created = append(result.Created, fmt.Sprintf("#%s %s", id, op.Item.Title))

	// Follow-ups are best-effort: the issue exists, so failures here
	// are warnings, not run errors.
	if err := d.prov.AttachToBoard(ctx, id); err != nil {
		fmt.Fprintf(d.out, "  %s board attach failed: %v\n", yellow("⚠"), err)
	} else {
		fmt.Fprintf(d.out, "  %s added to board\n", green("✓"))
	}

	if !op.Item.SkipRelationship && d.prov.HasEpic() {
		if err := d.prov.AnnotateRelationship(ctx, id); err != nil {
			fmt.Fprintf(d.out, "  %s epic comment failed: %v\n", yellow("⚠"), err)
		} else {
			fmt.Fprintf(d.out, "  %s linked to epic\n", green("✓"))
		}
	}
}

func (d *Driver) update(ctx context.Context, op *plan.Operation, result *types.RunResult) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	if err := d.prov.Comment(ctx, op.Target, op.Comment); err != nil {
		fmt.Fprintf(d.out, "  %s %v\n", red("✗"), err)
		result.Errors = append(result.Errors, fmt.Sprintf("update #%s: %v", op.Target, err))
		return
	}
	fmt.Fprintf(d.out, "  %s commented on #%s\n", green("✓"), op.Target)
	result.Updated = append(result.Updated, "#"+op.Target)
}

func (d *Driver) closeIssue(ctx context.Context, op *plan.Operation, result *types.RunResult) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	if err := d.prov.Close(ctx, op.Target, op.Reason, op.Comment); err != nil {
		fmt.Fprintf(d.out, "  %s %v\n", red("✗"), err)
		result.Errors = append(result.Errors, fmt.Sprintf("close #%s: %v", op.Target, err))
		return
	}
	if op.Reason != "" {
		fmt.Fprintf(d.out, "  %s closed #%s (%s)\n", green("✓"), op.Target, op.Reason)
	} else {
		fmt.Fprintf(d.out, "  %s closed #%s\n", green("✓"), op.Target)
	}
	result.Closed = append(result.Closed, "#"+op.Target)
}
