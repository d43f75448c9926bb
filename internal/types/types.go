// Package types defines the shared data model for tracker operations.
package types

import (
	"fmt"
	"strings"
)

// WorkItem represents one unit of trackable work awaiting submission.
// Items are built by an input loader (plan or tabular), submitted once,
// and discarded; nothing mutates an item after it is built.
type WorkItem struct {
	Title string `yaml:"title"`

	// Body is the exact final issue body. Loaders render metadata that
	// has no creation flag (milestone, priority, estimate) into it.
	Body string `yaml:"body"`

	Labels []string `yaml:"labels,omitempty"`

	// Milestone is consumed by the loaders when rendering the body; the
	// creation command itself carries no milestone argument.
	Milestone string `yaml:"milestone,omitempty"`

	// SkipRelationship suppresses the epic relationship comment after
	// this item is created.
	SkipRelationship bool `yaml:"skip_epic_relationship,omitempty"`
}

// Validate checks if the work item has valid field values
func (w *WorkItem) Validate() error {
	if strings.TrimSpace(w.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(w.Title) > 500 {
		return fmt.Errorf("title must be 500 characters or less (got %d)", len(w.Title))
	}
	for i, label := range w.Labels {
		if strings.TrimSpace(label) == "" {
			return fmt.Errorf("label %d is empty", i+1)
		}
	}
	return nil
}

// Transport selects the board attachment strategy.
type Transport string

const (
	// TransportItemAdd attaches an issue to the board in a single
	// project item-add invocation.
	TransportItemAdd Transport = "item-add"

	// TransportGraphQL resolves the issue's node id first, then runs the
	// addProjectV2ItemById mutation against the board's node id.
	TransportGraphQL Transport = "graphql"
)

// IsValid checks if the transport value is valid
func (t Transport) IsValid() bool {
	switch t {
	case TransportItemAdd, TransportGraphQL:
		return true
	}
	return false
}

// RunResult accumulates every outcome of one batch run. Entries are
// appended in operation order. The result lives only as long as the
// run's summary output; nothing persists it.
type RunResult struct {
	Created []string
	Updated []string
	Closed  []string
	Errors  []string
}

// Total returns the number of recorded outcomes.
func (r *RunResult) Total() int {
	return len(r.Created) + len(r.Updated) + len(r.Closed) + len(r.Errors)
}

// HasErrors reports whether any operation in the run failed.
func (r *RunResult) HasErrors() bool {
	return len(r.Errors) > 0
}
