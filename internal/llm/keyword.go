package llm

import (
	"context"
	"sort"
	"strings"
)

// KeywordClient is a deterministic, offline implementation of Client. It keeps
// the routing policy testable without network access: greetings get a
// conversational reply, document questions get the best-matching sentences,
// and absent facts get NotFoundReply.
type KeywordClient struct{}

var greetings = map[string]struct{}{
	"hi":           {},
	"hello":        {},
	"hey":          {},
	"yo":           {},
	"how are you":  {},
	"whats up":     {},
	"what's up":    {},
	"good morning": {},
	"good evening": {},
}

// Answer implements Client.
func (KeywordClient) Answer(ctx context.Context, question, documentContext string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	normalized := strings.ToLower(strings.TrimSpace(strings.Trim(strings.TrimSpace(question), "!?.,")))
	if _, ok := greetings[normalized]; ok {
		return "Hello! Ask me anything about your document.", nil
	}

	keywords := questionKeywords(question)
	if len(keywords) == 0 {
		return NotFoundReply, nil
	}

	type scored struct {
		sentence string
		matches  int
		order    int
	}
	var relevant []scored
	for i, sentence := range splitSentences(documentContext) {
		lower := strings.ToLower(sentence)
		matches := 0
		for _, word := range keywords {
			if strings.Contains(lower, word) || strings.Contains(lower, stem(word)) {
				matches++
			}
		}
		if matches > 0 {
			relevant = append(relevant, scored{sentence: sentence, matches: matches, order: i})
		}
	}
	if len(relevant) == 0 {
		return NotFoundReply, nil
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		if relevant[i].matches != relevant[j].matches {
			return relevant[i].matches > relevant[j].matches
		}
		return relevant[i].order < relevant[j].order
	})

	top := relevant
	if len(top) > 3 {
		top = top[:3]
	}
	parts := make([]string, 0, len(top))
	for _, s := range top {
		parts = append(parts, s.sentence)
	}
	return strings.Join(parts, ". ") + ".", nil
}

// questionKeywords keeps words longer than three characters, stripped of
// punctuation and lowercased.
func questionKeywords(question string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
			return r
		default:
			return ' '
		}
	}, strings.ToLower(question))

	var out []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) > 3 {
			out = append(out, word)
		}
	}
	return out
}

// stem trims common English suffixes so "sorting" still matches "quicksort".
// The keyword stays unchanged when the stem would drop below four characters.
func stem(word string) string {
	for _, suffix := range []string{"ing", "es", "ed", "s"} {
		if trimmed := strings.TrimSuffix(word, suffix); trimmed != word && len(trimmed) >= 4 {
			return trimmed
		}
	}
	return word
}

func splitSentences(text string) []string {
	var out []string
	for _, raw := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if s := strings.TrimSpace(raw); s != "" {
			out = append(out, s)
		}
	}
	return out
}

var _ Client = KeywordClient{}
