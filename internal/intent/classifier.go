package intent

import (
	"strings"

	"github.com/ziadkadry99/site-assist/internal/session"
)

// Result is the outcome of classifying one turn.
type Result struct {
	Intent           Intent            `json:"intent"`
	Confidence       float64           `json:"confidence"`
	Entities         map[string]string `json:"entities"`
	SuggestedActions []string          `json:"suggested_actions"`
}

// Classifier scores the pattern table against incoming turns. It is
// stateless; session continuity comes in through the conversation context.
type Classifier struct{}

// NewClassifier creates a classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the winning intent for text. Candidate confidence is
// 0.5 base + 0.3 for a pattern hit + 0.2 when the pattern covers the whole
// input + 0.1 for session continuity + 0.1 when an accumulated interest
// appears in the input, clamped to 1.0. Ties keep the first-registered
// intent. Unmatched input yields general_inquiry with confidence 0.
func (c *Classifier) Classify(text string, ctx *session.Context) Result {
	normalized, tokens := normalize(text)

	var prevIntent string
	var interests []string
	if ctx != nil {
		prevIntent = ctx.LastIntent()
		interests = ctx.Interests
	}

	interestHit := false
	for _, topic := range interests {
		if topic != "" && strings.Contains(normalized, strings.ToLower(topic)) {
			interestHit = true
			break
		}
	}

	best := Result{
		Intent:     GeneralInquiry,
		Confidence: 0,
	}
	bestScore := 0.0

	for _, in := range All {
		for _, pattern := range patterns[in] {
			if !matches(normalized, tokens, pattern) {
				continue
			}

			score := 0.5 + 0.3
			if pattern == normalized {
				score += 0.2
			}
			if isRelated(in, prevIntent) {
				score += 0.1
			}
			if interestHit {
				score += 0.1
			}
			if score > 1.0 {
				score = 1.0
			}

			// Strictly greater keeps the first-registered intent on ties.
			if score > bestScore {
				bestScore = score
				best.Intent = in
				best.Confidence = score
			}
		}
	}

	best.Entities = ExtractEntities(normalized, tokens)
	best.SuggestedActions = SuggestedActions(best.Intent)
	return best
}

// normalize lower-cases and tokenizes an input string.
func normalize(text string) (string, []string) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	return normalized, strings.Fields(normalized)
}

// matches reports whether pattern fires on the input. Multi-word patterns
// match as substrings; single words must match a whole token so short
// patterns like "hi" do not fire inside unrelated words.
func matches(normalized string, tokens []string, pattern string) bool {
	if strings.ContainsRune(pattern, ' ') {
		return strings.Contains(normalized, pattern)
	}
	for _, tok := range tokens {
		if strings.Trim(tok, ".,!?؟:;\"'") == pattern {
			return true
		}
	}
	return false
}
