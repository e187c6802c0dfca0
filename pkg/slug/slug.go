package slug

import (
	"regexp"
	"strings"
)

var (
	invalidChars  = regexp.MustCompile(`[^a-z0-9\s_-]`)
	separatorRuns = regexp.MustCompile(`[\s_-]+`)
	edgeHyphens   = regexp.MustCompile(`^-+|-+$`)
)

// Make converts a display name into a URL-safe slug: lowercase, special
// characters stripped, runs of whitespace/underscores/hyphens collapsed to a
// single hyphen, edge hyphens trimmed. Empty input yields an empty slug;
// rejecting that is the caller's job.
func Make(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = invalidChars.ReplaceAllString(s, "")
	s = separatorRuns.ReplaceAllString(s, "-")
	return edgeHyphens.ReplaceAllString(s, "")
}
