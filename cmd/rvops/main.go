package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/CIVICTECH-TV/rvops/internal/config"
	"github.com/CIVICTECH-TV/rvops/internal/gh"
	"github.com/CIVICTECH-TV/rvops/internal/provision"
	"github.com/CIVICTECH-TV/rvops/internal/types"
)

var (
	// Version is the current version of rvops (overridden by ldflags at build time)
	Version = "0.3.0"
	// Build can be set via ldflags at compile time
	Build = "dev"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "rvops",
	Short: "rvops - ReelVault tracker operations",
	Long: `Batch operations against the ReelVault issue tracker.

rvops drives the GitHub CLI to create, update, and close issues from
declarative plan files, attach new issues to the project board, and
cross-reference them with their epic. Operations run strictly in
sequence with a fixed pause between tool invocations; individual
failures are recorded in the run summary and never retried.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Handle --version flag on root command
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("rvops version %s (%s)\n", Version, Build)
			return
		}
		// No subcommand - show help
		_ = cmd.Help() // Help() always returns nil for cobra commands
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration file (default rvops.yaml when present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Trace every tool invocation on stderr")
	rootCmd.Flags().Bool("version", false, "Print version information")
}

// loadConfig reads the run configuration. Unusable configuration is
// fatal: no batch command can do anything sensible without it.
func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newRunner builds the paced CLI runner the batch commands drive.
func newRunner(cfg *config.Config) gh.Runner {
	var trace io.Writer
	if verbose {
		trace = os.Stderr
	}
	cli := &gh.CLIRunner{Tool: cfg.Tool, Trace: trace}
	return gh.NewPacedRunner(cli, cfg.PauseInterval())
}

// newProvisioner maps the file configuration onto the provisioner's
// explicit dependencies.
func newProvisioner(cfg *config.Config, runner gh.Runner) *provision.Provisioner {
	return provision.New(runner, provision.Config{
		Repo: cfg.Repo,
		Board: provision.Board{
			Transport: types.Transport(cfg.Board.Transport),
			Number:    cfg.Board.Number,
			Owner:     cfg.Board.Owner,
			ID:        cfg.Board.ID,
		},
		Epic: provision.Epic{
			Number: cfg.Epic.Number,
			Title:  cfg.Epic.Title,
		},
		TempDir: cfg.TempDir,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
