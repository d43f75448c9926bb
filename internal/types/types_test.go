package types

import (
	"strings"
	"testing"
)

func TestWorkItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    WorkItem
		wantErr bool
	}{
		{
			name: "valid item",
			item: WorkItem{Title: "Upload UI", Body: "details", Labels: []string{"ui", "task"}},
		},
		{
			name: "valid item without labels",
			item: WorkItem{Title: "Upload UI"},
		},
		{
			name:    "empty title",
			item:    WorkItem{Body: "details"},
			wantErr: true,
		},
		{
			name:    "whitespace title",
			item:    WorkItem{Title: "   "},
			wantErr: true,
		},
		{
			name:    "title too long",
			item:    WorkItem{Title: strings.Repeat("x", 501)},
			wantErr: true,
		},
		{
			name: "title at limit",
			item: WorkItem{Title: strings.Repeat("x", 500)},
		},
		{
			name:    "empty label",
			item:    WorkItem{Title: "Upload UI", Labels: []string{"ui", " "}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestTransportIsValid(t *testing.T) {
	if !TransportItemAdd.IsValid() {
		t.Errorf("item-add should be valid")
	}
	if !TransportGraphQL.IsValid() {
		t.Errorf("graphql should be valid")
	}
	if Transport("ftp").IsValid() {
		t.Errorf("ftp should not be valid")
	}
	if Transport("").IsValid() {
		t.Errorf("empty transport should not be valid")
	}
}

func TestRunResultTotals(t *testing.T) {
	r := &RunResult{}
	if r.Total() != 0 {
		t.Errorf("empty result should total 0, got %d", r.Total())
	}
	if r.HasErrors() {
		t.Errorf("empty result should have no errors")
	}

	r.Created = append(r.Created, "#42 Upload UI", "#43 Restore manager")
	r.Closed = append(r.Closed, "#41")
	r.Errors = append(r.Errors, "create \"Advanced upload\": exit status 1")

	if got := r.Total(); got != 4 {
		t.Errorf("expected total 4, got %d", got)
	}
	if !r.HasErrors() {
		t.Errorf("result with error entries should report HasErrors")
	}
}
