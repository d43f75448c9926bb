// Package labelset loads repository label tables.
package labelset

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var colorPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// Label is one label definition: name, short description, and a
// six-digit hex color without the leading #.
type Label struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Color       string `yaml:"color"`
}

// Validate checks if the label has valid field values
func (l *Label) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("label name is required")
	}
	if !colorPattern.MatchString(l.Color) {
		return fmt.Errorf("label %q: color must be 6 hex digits, got %q", l.Name, l.Color)
	}
	return nil
}

// Set is a label table loaded from YAML.
type Set struct {
	Labels []Label `yaml:"labels"`
}

// Load reads and validates a label table file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading label file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse unmarshals and validates a label table document.
func Parse(data []byte) (*Set, error) {
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing label YAML: %w", err)
	}
	if len(s.Labels) == 0 {
		return nil, fmt.Errorf("label table is empty")
	}

	names := make(map[string]bool)
	for i := range s.Labels {
		if err := s.Labels[i].Validate(); err != nil {
			return nil, fmt.Errorf("label %d: %w", i+1, err)
		}
		if names[s.Labels[i].Name] {
			return nil, fmt.Errorf("duplicate label %q", s.Labels[i].Name)
		}
		names[s.Labels[i].Name] = true
	}
	return &s, nil
}
