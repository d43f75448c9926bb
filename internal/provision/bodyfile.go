package provision

import (
	"fmt"
	"os"
	"strings"
)

// inlineBodyLimit is the longest body passed directly on the command
// line. Anything larger goes through a temp file.
const inlineBodyLimit = 200

// needsBodyFile reports whether the body must travel through a temp
// file instead of an inline argument. Newlines, quoting characters,
// and shell expansion characters all force the file route.
func needsBodyFile(body string) bool {
	if len(body) > inlineBodyLimit {
		return true
	}
	return strings.ContainsAny(body, "\n\"\\`$")
}

// bodyFlags returns the --body or --body-file arguments for a body and
// a cleanup func that removes any temp file behind them. cleanup is
// never nil and is safe to call unconditionally. On error any partially
// written file is already removed, so callers have nothing to clean.
func (p *Provisioner) bodyFlags(name, body string) (args []string, cleanup func(), err error) {
	cleanup = func() {}
	if !needsBodyFile(body) {
		return []string{"--body", body}, cleanup, nil
	}

	f, err := os.CreateTemp(p.cfg.TempDir, "issue-"+sanitizeName(name)+"-*.md")
	if err != nil {
		return nil, cleanup, fmt.Errorf("creating body file: %w", err)
	}
	path := f.Name()

	if _, err := f.WriteString(body); err != nil {
		f.Close()
		os.Remove(path)
		return nil, cleanup, fmt.Errorf("writing body file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, cleanup, fmt.Errorf("writing body file: %w", err)
	}
	return []string{"--body-file", path}, func() { os.Remove(path) }, nil
}

// sanitizeName makes a title usable inside a temp file name. Spaces
// become underscores; anything outside [A-Za-z0-9._-] is dropped.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	s := b.String()
	if len(s) > 60 {
		s = s[:60]
	}
	if s == "" {
		s = "item"
	}
	return s
}
