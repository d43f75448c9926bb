package gh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		stdout  string
		want    string
		wantErr bool
	}{
		{
			name:   "plain issue URL",
			stdout: "https://github.com/CIVICTECH-TV/ReelVault/issues/42\n",
			want:   "42",
		},
		{
			name:   "generic host",
			stdout: "https://example.com/a/b/123",
			want:   "123",
		},
		{
			name:   "URL after informational lines",
			stdout: "Creating issue in CIVICTECH-TV/ReelVault\n\nhttps://github.com/CIVICTECH-TV/ReelVault/issues/107\n",
			want:   "107",
		},
		{
			name:   "last URL wins",
			stdout: "see https://github.com/CIVICTECH-TV/ReelVault\nhttps://github.com/CIVICTECH-TV/ReelVault/issues/55",
			want:   "55",
		},
		{
			name:   "trailing slash",
			stdout: "https://github.com/CIVICTECH-TV/ReelVault/issues/9/",
			want:   "9",
		},
		{
			name:   "http scheme",
			stdout: "http://tracker.internal/items/8100",
			want:   "8100",
		},
		{
			name:    "no URL at all",
			stdout:  "issue created successfully",
			wantErr: true,
		},
		{
			name:    "empty output",
			stdout:  "",
			wantErr: true,
		},
		{
			name:    "URL without a path",
			stdout:  "https://github.com\n",
			wantErr: true,
		},
		{
			name:    "URL with only a trailing slash",
			stdout:  "https://github.com/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractIdentifier(tt.stdout)
			if tt.wantErr {
				assert.Error(t, err)
				var parseErr *ParseError
				assert.True(t, errors.As(err, &parseErr), "expected a *ParseError, got %T", err)
				assert.Empty(t, got, "identifier must be empty on error")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
