package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CIVICTECH-TV/rvops/internal/batch"
	"github.com/CIVICTECH-TV/rvops/internal/plan"
	"github.com/CIVICTECH-TV/rvops/internal/report"
)

var runCmd = &cobra.Command{
	Use:   "run <plan-file>",
	Short: "Execute a declarative operations plan",
	Long: `Execute the operations in a YAML plan file, in order.

Each operation creates, updates, or closes one tracker issue. Created
issues are attached to the project board and cross-referenced with the
configured epic. A failed operation is recorded in the run summary and
the run continues with the next one; nothing is retried or rolled back.

The process exits 0 once the summary is printed, even when individual
operations failed. Only an unreadable plan or configuration exits
non-zero, before any operation runs.

Examples:
  rvops run epic3.yaml              # Execute the plan
  rvops run epic3.yaml --dry-run    # Preview without touching the tracker`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		cfg := loadConfig()
		p, err := plan.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load plan: %v\n", err)
			os.Exit(1)
		}

		driver := batch.NewDriver(newProvisioner(cfg, newRunner(cfg)), os.Stdout)
		if dryRun {
			driver.Preview(p.Operations)
			return
		}

		result := driver.Run(context.Background(), p.Operations)
		report.Render(os.Stdout, report.New(result))
	},
}

func init() {
	runCmd.Flags().Bool("dry-run", false, "Preview the operations without invoking the tool")
	rootCmd.AddCommand(runCmd)
}
