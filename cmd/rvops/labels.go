package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CIVICTECH-TV/rvops/internal/labelset"
)

var labelsCmd = &cobra.Command{
	Use:   "labels <labels-file>",
	Short: "Create tracker labels from a YAML table",
	Long: `Create every label listed in a YAML label table.

Each entry carries a name, a description, and a 6-digit hex color. A
label the tool rejects (typically because it already exists) is printed
as a failure and the remaining labels are still attempted. The command
exits 0 after the summary either way.

Examples:
  rvops labels labels.yaml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		set, err := labelset.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load label table: %v\n", err)
			os.Exit(1)
		}

		green := color.New(color.FgGreen).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()

		prov := newProvisioner(cfg, newRunner(cfg))
		ctx := context.Background()

		created := 0
		for _, l := range set.Labels {
			if err := prov.CreateLabel(ctx, l.Name, l.Description, l.Color); err != nil {
				fmt.Printf("%s %s: %v\n", red("✗"), l.Name, err)
				continue
			}
			fmt.Printf("%s Created label: %s\n", green("✓"), l.Name)
			created++
		}

		fmt.Printf("\nSummary: %d/%d labels created successfully\n", created, len(set.Labels))
	},
}

func init() {
	rootCmd.AddCommand(labelsCmd)
}
