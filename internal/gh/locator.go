package gh

import (
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`https?://\S+`)

// ExtractIdentifier pulls the tracker-assigned identifier out of tool
// stdout. On creation the tool prints the new entity's URL, and the
// identifier is the final path segment ("https://.../issues/123" gives
// "123"). When the output holds several URLs the last one wins, since
// the entity URL is printed last after any informational lines.
//
// Returns a *ParseError when no URL is present or the URL has no path
// segment; callers never see an empty identifier alongside a nil error.
func ExtractIdentifier(stdout string) (string, error) {
	urls := urlPattern.FindAllString(stdout, -1)
	if len(urls) == 0 {
		return "", &ParseError{Want: "entity URL", Output: stdout}
	}

	last := strings.TrimRight(urls[len(urls)-1], "/")
	host := last
	if i := strings.Index(last, "//"); i >= 0 {
		host = last[i+2:]
	}
	if !strings.Contains(host, "/") {
		return "", &ParseError{Want: "entity identifier", Output: stdout}
	}

	segment := last[strings.LastIndex(last, "/")+1:]
	if segment == "" {
		return "", &ParseError{Want: "entity identifier", Output: stdout}
	}
	return segment, nil
}
