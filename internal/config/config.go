// Package config loads rvops configuration from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/CIVICTECH-TV/rvops/internal/types"
)

// DefaultPath is probed in the working directory when --config is not
// given.
const DefaultPath = "rvops.yaml"

// defaultPause is the delay between consecutive tool invocations when
// the config does not set one.
const defaultPause = time.Second

// Config holds everything rvops needs to drive the tracker: which tool
// to invoke, which repository to mutate, and where created issues get
// attached and cross-referenced.
type Config struct {
	// Tool is the invocable name of the external CLI.
	Tool string `yaml:"tool"`

	// Repo is the owner/name slug every mutation is scoped to.
	Repo string `yaml:"repo"`

	Board BoardConfig `yaml:"board"`
	Epic  EpicConfig  `yaml:"epic"`

	// Pause is the fixed delay between consecutive tool invocations, in
	// time.ParseDuration syntax ("1s", "1500ms"). Empty means 1s.
	Pause string `yaml:"pause,omitempty"`

	// TempDir is where body transport files are written. Empty means
	// the system temp directory.
	TempDir string `yaml:"temp_dir,omitempty"`
}

// BoardConfig identifies the project board new issues are attached to.
type BoardConfig struct {
	// Transport selects the attachment strategy: "item-add" or
	// "graphql".
	Transport string `yaml:"transport"`

	// Number and Owner feed the item-add transport.
	Number int    `yaml:"number,omitempty"`
	Owner  string `yaml:"owner,omitempty"`

	// ID is the board's persistent node id, used by the graphql
	// transport.
	ID string `yaml:"id,omitempty"`
}

// EpicConfig identifies the parent epic referenced by relationship
// comments on newly created issues. A zero Number disables the
// comments entirely.
type EpicConfig struct {
	Number int    `yaml:"number,omitempty"`
	Title  string `yaml:"title,omitempty"`
}

// Default returns the built-in configuration for the ReelVault project.
func Default() *Config {
	return &Config{
		Tool: "gh",
		Repo: "CIVICTECH-TV/ReelVault",
		Board: BoardConfig{
			Transport: string(types.TransportItemAdd),
			Number:    5,
			Owner:     "CIVICTECH-TV",
			ID:        "PVT_kwDODIBDzM4A7Mog",
		},
		Epic: EpicConfig{
			Number: 36,
			Title:  "User Interface",
		},
	}
}

// Load builds the effective configuration: built-in defaults, then the
// YAML file, then RVOPS_* environment overrides. An empty path probes
// DefaultPath and quietly falls back to defaults when it is absent; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultPath
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case explicit || !os.IsNotExist(err):
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyEnv layers RVOPS_* environment variables over the loaded values.
func (c *Config) applyEnv() {
	if val := os.Getenv("RVOPS_TOOL"); val != "" {
		c.Tool = val
	}
	if val := os.Getenv("RVOPS_REPO"); val != "" {
		c.Repo = val
	}
	if val := os.Getenv("RVOPS_BOARD_TRANSPORT"); val != "" {
		c.Board.Transport = val
	}
	if val := os.Getenv("RVOPS_BOARD_NUMBER"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			c.Board.Number = n
		}
	}
	if val := os.Getenv("RVOPS_BOARD_OWNER"); val != "" {
		c.Board.Owner = val
	}
	if val := os.Getenv("RVOPS_BOARD_ID"); val != "" {
		c.Board.ID = val
	}
	if val := os.Getenv("RVOPS_EPIC_NUMBER"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 0 {
			c.Epic.Number = n
		}
	}
	if val := os.Getenv("RVOPS_EPIC_TITLE"); val != "" {
		c.Epic.Title = val
	}
	if val := os.Getenv("RVOPS_PAUSE"); val != "" {
		c.Pause = val
	}
	if val := os.Getenv("RVOPS_TEMP_DIR"); val != "" {
		c.TempDir = val
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Tool == "" {
		return fmt.Errorf("tool is required")
	}
	if !strings.Contains(c.Repo, "/") {
		return fmt.Errorf("repo must be an owner/name slug, got %q", c.Repo)
	}

	transport := types.Transport(c.Board.Transport)
	if !transport.IsValid() {
		return fmt.Errorf("unknown board transport %q", c.Board.Transport)
	}
	switch transport {
	case types.TransportItemAdd:
		if c.Board.Number <= 0 {
			return fmt.Errorf("board number is required for the item-add transport")
		}
		if c.Board.Owner == "" {
			return fmt.Errorf("board owner is required for the item-add transport")
		}
	case types.TransportGraphQL:
		if c.Board.ID == "" {
			return fmt.Errorf("board id is required for the graphql transport")
		}
	}

	if c.Epic.Number < 0 {
		return fmt.Errorf("epic number cannot be negative, got %d", c.Epic.Number)
	}

	if c.Pause != "" {
		pause, err := time.ParseDuration(c.Pause)
		if err != nil {
			return fmt.Errorf("invalid pause %q: %w", c.Pause, err)
		}
		if pause < 0 {
			return fmt.Errorf("pause cannot be negative, got %s", c.Pause)
		}
	}
	return nil
}

// PauseInterval returns the parsed pause, or the default when unset.
// Validate has already rejected unparseable values.
func (c *Config) PauseInterval() time.Duration {
	if c.Pause == "" {
		return defaultPause
	}
	pause, err := time.ParseDuration(c.Pause)
	if err != nil {
		return defaultPause
	}
	return pause
}
