// Package tabular loads work items from CSV backlog exports.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/CIVICTECH-TV/rvops/internal/types"
)

// Columns recognized in the header row. Title is required; the rest are
// optional and may appear in any order. Labels holds a comma-separated
// list inside a single field; Priority, Milestone, and Estimate have no
// creation flags and are rendered into the issue body.
const (
	colTitle       = "Title"
	colDescription = "Description"
	colLabels      = "Labels"
	colPriority    = "Priority"
	colMilestone   = "Milestone"
	colEstimate    = "Estimate"
)

// Load reads work items from a CSV file.
func Load(path string) ([]types.WorkItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading backlog file: %w", err)
	}
	defer f.Close()

	items, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Parse reads work items from CSV data. Each row becomes one item whose
// body is the description plus a metadata footer.
func Parse(r io.Reader) ([]types.WorkItem, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	if _, ok := col[colTitle]; !ok {
		return nil, fmt.Errorf("missing %s column", colTitle)
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var items []types.WorkItem
	titles := make(map[string]int)
	row := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		item := types.WorkItem{
			Title:     field(record, colTitle),
			Milestone: field(record, colMilestone),
		}
		if labels := field(record, colLabels); labels != "" {
			for _, l := range strings.Split(labels, ",") {
				if l = strings.TrimSpace(l); l != "" {
					item.Labels = append(item.Labels, l)
				}
			}
		}
		item.Body = renderBody(
			field(record, colDescription),
			field(record, colPriority),
			item.Milestone,
			field(record, colEstimate),
			item.Labels,
		)

		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		if prev, ok := titles[item.Title]; ok {
			return nil, fmt.Errorf("row %d: duplicate title %q (also row %d)", row, item.Title, prev)
		}
		titles[item.Title] = row

		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no data rows")
	}
	return items, nil
}

// renderBody combines the description with a metadata footer for the
// fields that have no creation flags.
func renderBody(description, priority, milestone, estimate string, labels []string) string {
	meta := make([]string, 0, 4)
	add := func(name, value string) {
		if value != "" {
			meta = append(meta, fmt.Sprintf("**%s**: %s", name, value))
		}
	}
	add("Priority", priority)
	add("Milestone", milestone)
	add("Estimate", estimate)
	if len(labels) > 0 {
		add("Labels", strings.Join(labels, ", "))
	}

	if len(meta) == 0 {
		return description
	}
	footer := "---\n" + strings.Join(meta, "\n") + "\n"
	if description == "" {
		return footer
	}
	return description + "\n\n" + footer
}
