package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CIVICTECH-TV/rvops/internal/config"
	"github.com/CIVICTECH-TV/rvops/internal/gh"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check rvops configuration and environment health",
	Long: `Run health checks to diagnose common configuration and environment issues.

This command checks for:
- Configuration file readability and validity
- The external CLI being present on PATH
- CLI authentication state

Exit codes:
  0 - All checks passed
  1 - One or more checks failed`,
	Run: func(cmd *cobra.Command, args []string) {
		green := color.New(color.FgGreen).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		fmt.Printf("Running rvops health checks...\n\n")

		var failures []string
		var warnings []string

		// Check 1: Configuration
		fmt.Printf("%s Configuration\n", cyan("→"))
		cfg, err := config.Load(configPath)
		if err != nil {
			failures = append(failures, fmt.Sprintf("Cannot load configuration: %v", err))
			fmt.Printf("  %s Cannot load configuration\n", red("✗"))
			if verbose {
				fmt.Printf("    Error: %v\n", err)
			}
			// The remaining checks still run against the defaults
			cfg = config.Default()
		} else {
			fmt.Printf("  %s Repo: %s\n", green("✓"), cfg.Repo)
			fmt.Printf("  %s Board transport: %s\n", green("✓"), cfg.Board.Transport)
			if cfg.Epic.Number > 0 {
				fmt.Printf("  %s Epic: #%d\n", green("✓"), cfg.Epic.Number)
			} else {
				warnings = append(warnings, "No epic configured (relationship comments disabled)")
				fmt.Printf("  %s No epic configured\n", yellow("⚠"))
			}
		}

		// Check 2: Tool binary on PATH
		fmt.Printf("%s Tool binary\n", cyan("→"))
		toolPath, err := exec.LookPath(cfg.Tool)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s not found on PATH", cfg.Tool))
			fmt.Printf("  %s %s not found on PATH\n", red("✗"), cfg.Tool)
		} else {
			fmt.Printf("  %s Found %s: %s\n", green("✓"), cfg.Tool, toolPath)
		}

		// Check 3: Authentication
		fmt.Printf("%s Authentication\n", cyan("→"))
		if toolPath == "" {
			fmt.Printf("  %s Skipped (no tool binary)\n", yellow("⚠"))
		} else {
			runner := &gh.CLIRunner{Tool: cfg.Tool}
			res, err := runner.Execute(context.Background(), "auth", "status")
			switch {
			case err != nil:
				failures = append(failures, fmt.Sprintf("Cannot run %s auth status: %v", cfg.Tool, err))
				fmt.Printf("  %s Cannot run %s auth status\n", red("✗"), cfg.Tool)
			case res.ExitCode != 0:
				failures = append(failures, fmt.Sprintf("%s is not authenticated", cfg.Tool))
				fmt.Printf("  %s Not authenticated\n", red("✗"))
				if verbose {
					for _, line := range strings.Split(strings.TrimSpace(res.Stderr), "\n") {
						fmt.Printf("    %s\n", line)
					}
				}
			default:
				fmt.Printf("  %s Authenticated\n", green("✓"))
			}
		}

		// Summary
		fmt.Printf("\n%s\n", strings.Repeat("─", 60))

		if len(failures) == 0 && len(warnings) == 0 {
			fmt.Printf("%s All checks passed! rvops is ready to run.\n", green("✓"))
			os.Exit(0)
		}

		if len(failures) > 0 {
			fmt.Printf("\n%s Failures (%d):\n", red("✗"), len(failures))
			for _, failure := range failures {
				fmt.Printf("  • %s\n", failure)
			}
		}

		if len(warnings) > 0 {
			fmt.Printf("\n%s Warnings (%d):\n", yellow("⚠"), len(warnings))
			for _, warning := range warnings {
				fmt.Printf("  • %s\n", warning)
			}
		}

		if len(failures) > 0 {
			fmt.Printf("\n%s rvops may not work correctly. Please address the failures above.\n", yellow("⚠"))
			os.Exit(1)
		}

		fmt.Printf("\n%s rvops should work, but some warnings were detected.\n", green("✓"))
		os.Exit(0)
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
