package llm

// TruncationMarker is appended whenever BoundContext cuts the document, so
// downstream consumers can detect truncation deterministically.
const TruncationMarker = "\n\n[document truncated]"

// BoundContext returns at most budgetChars characters of content, measured in
// runes, cut as a hard prefix with TruncationMarker appended. Content within
// budget is returned unchanged. A non-positive budget disables the bound.
func BoundContext(content string, budgetChars int) string {
	if budgetChars <= 0 {
		return content
	}
	runes := []rune(content)
	if len(runes) <= budgetChars {
		return content
	}
	return string(runes[:budgetChars]) + TruncationMarker
}
