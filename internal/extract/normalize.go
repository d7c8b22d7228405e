package extract

import (
	"regexp"
	"strings"
)

var (
	excessNewlines = regexp.MustCompile(`\n{3,}`)
	spaceRuns      = regexp.MustCompile(` {2,}`)
)

// Normalize cleans raw extracted text into its canonical form: line endings
// unified to LF, runs of 3+ newlines collapsed to a paragraph break, tabs
// turned into spaces, space runs collapsed, surrounding whitespace trimmed.
// It never fails and is idempotent.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = excessNewlines.ReplaceAllString(s, "\n\n")
	s = strings.ReplaceAll(s, "\t", " ")
	s = spaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
