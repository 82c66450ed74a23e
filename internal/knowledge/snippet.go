package knowledge

import "strings"

const snippetFallbackLen = 150

// Snippet returns the sentence of content that best matches query.
func Snippet(content, query string) string {
	return extractSnippet(content, tokenize(query))
}

// extractSnippet picks the sentence with the most query-token hits. When
// no sentence matches, it falls back to the first 150 characters of the
// content with an ellipsis if truncated.
func extractSnippet(content string, tokens []string) string {
	sentences := splitSentences(content)

	best := ""
	bestHits := 0
	for _, s := range sentences {
		lower := strings.ToLower(s)
		hits := 0
		for _, tok := range tokens {
			if strings.Contains(lower, tok) {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			best = s
		}
	}
	if best != "" {
		return strings.TrimSpace(best)
	}

	runes := []rune(content)
	if len(runes) <= snippetFallbackLen {
		return strings.TrimSpace(content)
	}
	return strings.TrimSpace(string(runes[:snippetFallbackLen])) + "..."
}

func splitSentences(content string) []string {
	var sentences []string
	var sb strings.Builder
	for _, r := range content {
		sb.WriteRune(r)
		if r == '.' || r == '!' || r == '?' || r == '؟' || r == '\n' {
			if s := strings.TrimSpace(sb.String()); s != "" {
				sentences = append(sentences, s)
			}
			sb.Reset()
		}
	}
	if s := strings.TrimSpace(sb.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
