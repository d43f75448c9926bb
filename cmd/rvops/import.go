package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CIVICTECH-TV/rvops/internal/batch"
	"github.com/CIVICTECH-TV/rvops/internal/plan"
	"github.com/CIVICTECH-TV/rvops/internal/report"
	"github.com/CIVICTECH-TV/rvops/internal/tabular"
	"github.com/CIVICTECH-TV/rvops/internal/types"
)

var importCmd = &cobra.Command{
	Use:   "import <csv-file>",
	Short: "Create issues from a CSV backlog export",
	Long: `Create one tracker issue per row of a CSV backlog file.

The file needs a Title column; Description, Labels, Priority,
Milestone, and Estimate columns are optional and folded into the issue
body. Created issues are attached to the project board. Epic
relationship comments are skipped: backlog exports carry no epic
context.

Examples:
  rvops import project-plan.csv
  rvops import project-plan.csv --dry-run`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		cfg := loadConfig()
		items, err := tabular.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load backlog file: %v\n", err)
			os.Exit(1)
		}

		ops := importOperations(items)

		driver := batch.NewDriver(newProvisioner(cfg, newRunner(cfg)), os.Stdout)
		if dryRun {
			driver.Preview(ops)
			return
		}

		result := driver.Run(context.Background(), ops)
		report.Render(os.Stdout, report.New(result))
	},
}

func init() {
	importCmd.Flags().Bool("dry-run", false, "Preview the operations without invoking the tool")
	rootCmd.AddCommand(importCmd)
}

// importOperations wraps backlog items as create operations. Imported
// issues never get epic relationship comments.
func importOperations(items []types.WorkItem) []plan.Operation {
	ops := make([]plan.Operation, 0, len(items))
	for i := range items {
		item := items[i]
		item.SkipRelationship = true
		ops = append(ops, plan.Operation{Kind: plan.KindCreate, Item: &item})
	}
	return ops
}
