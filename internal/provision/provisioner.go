// Package provision turns work items into tracker entities through the
// external CLI. Every mutation goes out as one synchronous tool
// invocation; identifiers come back by parsing the URL the tool prints.
package provision

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/CIVICTECH-TV/rvops/internal/gh"
	"github.com/CIVICTECH-TV/rvops/internal/types"
)

// Config holds the explicit dependencies of a Provisioner. There is no
// ambient state: the repo, board, and epic all arrive here.
type Config struct {
	// Repo is the owner/name slug every mutation is scoped to.
	Repo string

	Board Board
	Epic  Epic

	// TempDir is where body transport files are written. Empty means
	// the system temp directory.
	TempDir string
}

// Board identifies the project board created issues are attached to.
type Board struct {
	Transport types.Transport
	// Number and Owner feed the item-add transport.
	Number int
	Owner  string
	// ID is the board's persistent node id, used by the graphql
	// transport.
	ID string
}

// Epic identifies the parent tracking entity referenced by relationship
// comments. The relationship is a comment convention, not a structural
// link; a zero Number means no epic is configured.
type Epic struct {
	Number int
	Title  string
}

// Provisioner submits work items and runs their follow-up mutations.
type Provisioner struct {
	runner gh.Runner
	cfg    Config
}

// New creates a Provisioner that drives the given runner.
func New(runner gh.Runner, cfg Config) *Provisioner {
	return &Provisioner{runner: runner, cfg: cfg}
}

// HasEpic reports whether an epic is configured for relationship
// comments.
func (p *Provisioner) HasEpic() bool {
	return p.cfg.Epic.Number > 0
}

// run invokes the tool and folds a non-zero exit into a *gh.ToolError.
func (p *Provisioner) run(ctx context.Context, args ...string) (gh.Result, error) {
	res, err := p.runner.Execute(ctx, args...)
	if err != nil {
		return res, err
	}
	if res.ExitCode != 0 {
		return res, &gh.ToolError{Args: args, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return res, nil
}

// Submit creates a tracker issue for the item and returns its assigned
// identifier. The body travels inline when it is short and shell-safe,
// otherwise through a temp file that is removed before Submit returns,
// success or failure.
func (p *Provisioner) Submit(ctx context.Context, item types.WorkItem) (string, error) {
	args := []string{"issue", "create", "--repo", p.cfg.Repo, "--title", item.Title}

	bodyFlags, cleanup, err := p.bodyFlags(item.Title, item.Body)
	if err != nil {
		return "", err
	}
	defer cleanup()
	args = append(args, bodyFlags...)

	if len(item.Labels) > 0 {
		args = append(args, "--label", strings.Join(item.Labels, ","))
	}

	res, err := p.run(ctx, args...)
	if err != nil {
		return "", err
	}
	return gh.ExtractIdentifier(res.Stdout)
}

// AttachToBoard adds a created issue to the configured project board.
// Best-effort: the issue already exists, so callers log failures here
// and move on.
func (p *Provisioner) AttachToBoard(ctx context.Context, id string) error {
	switch p.cfg.Board.Transport {
	case types.TransportGraphQL:
		return p.attachGraphQL(ctx, id)
	default:
		return p.attachItemAdd(ctx, id)
	}
}

func (p *Provisioner) attachItemAdd(ctx context.Context, id string) error {
	_, err := p.run(ctx, "project", "item-add", strconv.Itoa(p.cfg.Board.Number),
		"--owner", p.cfg.Board.Owner, "--url", p.issueURL(id))
	return err
}

// attachGraphQL is the two-step transport: resolve the issue's
// persistent node id, then run the board mutation against it.
func (p *Provisioner) attachGraphQL(ctx context.Context, id string) error {
	res, err := p.run(ctx, "issue", "view", id, "--repo", p.cfg.Repo, "--json", "id", "--jq", ".id")
	if err != nil {
		return err
	}
	nodeID := strings.TrimSpace(res.Stdout)
	if nodeID == "" {
		return &gh.ParseError{Want: "issue node id", Output: res.Stdout}
	}

	query := fmt.Sprintf(
		`mutation { addProjectV2ItemById(input: {projectId: %q, contentId: %q}) { item { id } } }`,
		p.cfg.Board.ID, nodeID)
	_, err = p.run(ctx, "api", "graphql", "-f", "query="+query)
	return err
}

// AnnotateRelationship comments the epic back-reference on a newly
// created issue. No-op when no epic is configured. Best-effort.
func (p *Provisioner) AnnotateRelationship(ctx context.Context, id string) error {
	if !p.HasEpic() {
		return nil
	}
	ref := fmt.Sprintf("Epic #%d", p.cfg.Epic.Number)
	if p.cfg.Epic.Title != "" {
		ref += ": " + p.cfg.Epic.Title
	}
	body := fmt.Sprintf(
		"**Related to Epic #%d**\n\nThis issue is part of %s.\n\nPlease check the Epic for overall progress and context.",
		p.cfg.Epic.Number, ref)
	return p.Comment(ctx, id, body)
}

// Comment posts an annotation on an existing issue. The body follows
// the same transport rules as Submit.
func (p *Provisioner) Comment(ctx context.Context, id, body string) error {
	args := []string{"issue", "comment", id, "--repo", p.cfg.Repo}

	bodyFlags, cleanup, err := p.bodyFlags("comment-"+id, body)
	if err != nil {
		return err
	}
	defer cleanup()
	args = append(args, bodyFlags...)

	_, err = p.run(ctx, args...)
	return err
}

// Close closes an issue, posting the closing comment first. A failed
// comment is reported on stderr but never blocks the close itself.
func (p *Provisioner) Close(ctx context.Context, id, reason, comment string) error {
	if comment != "" {
		if err := p.Comment(ctx, id, comment); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to comment on #%s before closing: %v\n", id, err)
		}
	}

	args := []string{"issue", "close", id, "--repo", p.cfg.Repo}
	if reason != "" {
		args = append(args, "--reason", reason)
	}
	_, err := p.run(ctx, args...)
	return err
}

// CreateLabel registers a label with its description and hex color.
func (p *Provisioner) CreateLabel(ctx context.Context, name, description, color string) error {
	_, err := p.run(ctx, "label", "create", name,
		"--description", description, "--color", color, "--repo", p.cfg.Repo)
	return err
}

func (p *Provisioner) issueURL(id string) string {
	return fmt.Sprintf("https://github.com/%s/issues/%s", p.cfg.Repo, id)
}
