// Package plan loads declarative operation lists for batch runs. A plan
// file replaces the one-off scripts that used to hardcode each tracker
// mutation: the same driver executes any ordered mix of creates,
// updates, and closes.
package plan

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/CIVICTECH-TV/rvops/internal/types"
)

// Kind discriminates the operation variants.
type Kind string

const (
	KindCreate Kind = "create"
	KindUpdate Kind = "update"
	KindClose  Kind = "close"
)

// IsValid checks if the kind value is valid
func (k Kind) IsValid() bool {
	switch k {
	case KindCreate, KindUpdate, KindClose:
		return true
	}
	return false
}

// Operation is one tagged record in a plan. Kind selects which of the
// remaining fields apply: create carries an Item, update and close
// address an existing Target.
type Operation struct {
	Kind Kind `yaml:"kind"`

	// Name labels the operation in progress output. Optional; the item
	// title or target stands in when absent.
	Name string `yaml:"name,omitempty"`

	// Item is the work item a create operation submits.
	Item *types.WorkItem `yaml:"item,omitempty"`

	// Target is the existing issue an update or close addresses.
	Target string `yaml:"target,omitempty"`

	// Reason is the close reason ("completed" or "not planned").
	Reason string `yaml:"reason,omitempty"`

	// Comment is the annotation posted by update, or the closing
	// comment posted before a close.
	Comment string `yaml:"comment,omitempty"`
}

// Validate checks the per-kind required fields.
func (o *Operation) Validate() error {
	if !o.Kind.IsValid() {
		return fmt.Errorf("unknown operation kind %q", o.Kind)
	}
	switch o.Kind {
	case KindCreate:
		if o.Item == nil {
			return fmt.Errorf("create requires an item")
		}
		if err := o.Item.Validate(); err != nil {
			return err
		}
	case KindUpdate:
		if o.Target == "" {
			return fmt.Errorf("update requires a target")
		}
		if strings.TrimSpace(o.Comment) == "" {
			return fmt.Errorf("update requires a comment")
		}
	case KindClose:
		if o.Target == "" {
			return fmt.Errorf("close requires a target")
		}
		if o.Reason != "" && !isCloseReason(o.Reason) {
			return fmt.Errorf("unknown close reason %q", o.Reason)
		}
	}
	return nil
}

// DisplayName returns the label used in progress output and reports.
func (o *Operation) DisplayName() string {
	if o.Name != "" {
		return o.Name
	}
	switch o.Kind {
	case KindCreate:
		if o.Item != nil {
			return o.Item.Title
		}
	case KindUpdate, KindClose:
		return "#" + o.Target
	}
	return string(o.Kind)
}

func isCloseReason(r string) bool {
	switch r {
	case "completed", "not planned":
		return true
	}
	return false
}

// Plan is an ordered list of operations, executed strictly in sequence.
type Plan struct {
	Operations []Operation `yaml:"operations"`
}

// Load reads and validates a plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse unmarshals and validates a plan document.
func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan YAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.renderMilestones()
	return &p, nil
}

// Validate checks every operation and rejects duplicate create titles,
// which would otherwise submit the same work twice in one run.
func (p *Plan) Validate() error {
	if len(p.Operations) == 0 {
		return fmt.Errorf("plan has no operations")
	}

	titles := make(map[string]int)
	for i, op := range p.Operations {
		if err := op.Validate(); err != nil {
			return fmt.Errorf("operation %d: %w", i+1, err)
		}
		if op.Kind == KindCreate {
			title := op.Item.Title
			if prev, ok := titles[title]; ok {
				return fmt.Errorf("operation %d: duplicate title %q (also operation %d)", i+1, title, prev)
			}
			titles[title] = i + 1
		}
	}
	return nil
}

// renderMilestones folds each create item's milestone into its body.
// The creation command has no milestone flag, so the value rides along
// as a body footer.
func (p *Plan) renderMilestones() {
	for i := range p.Operations {
		op := &p.Operations[i]
		if op.Kind != KindCreate || op.Item == nil || op.Item.Milestone == "" {
			continue
		}
		footer := fmt.Sprintf("**Milestone**: %s", op.Item.Milestone)
		body := strings.TrimRight(op.Item.Body, "\n")
		if body == "" {
			op.Item.Body = footer + "\n"
		} else {
			op.Item.Body = body + "\n\n" + footer + "\n"
		}
	}
}
