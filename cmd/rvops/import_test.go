package main

import (
	"testing"

	"github.com/CIVICTECH-TV/rvops/internal/plan"
	"github.com/CIVICTECH-TV/rvops/internal/types"
)

func TestImportOperations(t *testing.T) {
	items := []types.WorkItem{
		{Title: "Upload UI", Body: "File picker.", Labels: []string{"ui"}},
		{Title: "Restore manager", Body: "Browse and restore."},
	}

	ops := importOperations(items)

	if len(ops) != 2 {
		t.Fatalf("Expected 2 operations, got %d", len(ops))
	}
	for i, op := range ops {
		if op.Kind != plan.KindCreate {
			t.Errorf("Operation %d: kind = %q, want create", i, op.Kind)
		}
		if op.Item == nil {
			t.Fatalf("Operation %d: missing item", i)
		}
		if !op.Item.SkipRelationship {
			t.Errorf("Operation %d: imported item should skip the epic relationship", i)
		}
		if err := op.Validate(); err != nil {
			t.Errorf("Operation %d: validation failed: %v", i, err)
		}
	}

	if ops[0].Item.Title != "Upload UI" || ops[1].Item.Title != "Restore manager" {
		t.Errorf("Operations out of order: %q, %q", ops[0].Item.Title, ops[1].Item.Title)
	}
	if ops[0].Item == ops[1].Item {
		t.Error("Operations share one item pointer")
	}

	// The caller's slice stays untouched
	if items[0].SkipRelationship {
		t.Error("importOperations mutated the input slice")
	}
}

func TestImportOperationsEmpty(t *testing.T) {
	if ops := importOperations(nil); len(ops) != 0 {
		t.Errorf("Expected no operations, got %d", len(ops))
	}
}
