package textsource

import (
	"regexp"
	"strings"
)

var (
	reBlankRuns = regexp.MustCompile(`\n{3,}`)
	reTrailWS   = regexp.MustCompile(`[ \t]+\n`)
)

// normalizeText cleans up line endings and excess whitespace without
// touching line structure, which the fallback extractor depends on.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = reTrailWS.ReplaceAllString(s, "\n")
	s = reBlankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
