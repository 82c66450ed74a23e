// Package personalize augments raw model replies with recommendations,
// follow-ups, and suggestion chips biased by the session profile.
package personalize

import (
	"strings"

	"github.com/ziadkadry99/site-assist/internal/intent"
	"github.com/ziadkadry99/site-assist/internal/session"
)

const maxInterestRecommendations = 2

// Recommendation is the structured recommendation block attached to a
// response when the session has product or industry interests.
type Recommendation struct {
	Robots         []string `json:"robots"`
	Reasoning      string   `json:"reasoning"`
	Implementation string   `json:"implementation"`
	ROI            string   `json:"roi,omitempty"`
}

// Enhancement is the result of enhancing one raw reply.
type Enhancement struct {
	Response          string            `json:"response"`
	Suggestions       []string          `json:"suggestions"`
	FollowUpQuestions []string          `json:"follow_up_questions,omitempty"`
	Recommendation    *Recommendation   `json:"recommendation,omitempty"`
	Confidence        float64           `json:"confidence"`
	Metadata          map[string]string `json:"metadata,omitempty"`
}

// Enhancer is stateless; every call works from the inputs and the
// read-only profile. Callers persist any resulting session changes.
type Enhancer struct{}

// NewEnhancer creates an Enhancer.
func NewEnhancer() *Enhancer {
	return &Enhancer{}
}

// Enhance builds the final reply text around raw. Confidence is 0.5 plus
// up to 0.3 for text growth (one tenth of a percent per added character),
// plus 0.1 each for accumulated interests, flow history, and a known user
// type, clamped to 1.0.
func (e *Enhancer) Enhance(raw string, p session.Personalization, res intent.Result) Enhancement {
	language := p.PreferredLanguage
	if _, ok := greetings[language]; !ok {
		language = "en"
	}

	var b strings.Builder

	if res.Intent == intent.Greeting && p.PreviousInteractions == 0 {
		b.WriteString(greetings[language])
		b.WriteString("\n\n")
	}
	b.WriteString(raw)

	for _, line := range interestLines(language, p.Interests) {
		b.WriteString("\n\n")
		b.WriteString(line)
	}

	if line, ok := followUpLines[language][res.Intent]; ok {
		b.WriteString("\n\n")
		b.WriteString(line)
	}

	if res.Entities[intent.SlotUrgency] == "urgent" {
		b.WriteString("\n\n")
		b.WriteString(urgencyNotices[language])
	}

	enhanced := b.String()

	return Enhancement{
		Response:          enhanced,
		Suggestions:       selectSuggestions(language, res.Intent, res.Entities),
		FollowUpQuestions: followUpQuestions[language][res.Intent],
		Recommendation:    buildRecommendation(language, p.Interests),
		Confidence:        enhancementConfidence(raw, enhanced, p),
		Metadata: map[string]string{
			"language": language,
			"intent":   string(res.Intent),
		},
	}
}

func interestLines(language string, interests []string) []string {
	table := interestRecommendations[language]
	var lines []string
	for _, interest := range interests {
		if line, ok := table[interest]; ok {
			lines = append(lines, line)
			if len(lines) == maxInterestRecommendations {
				break
			}
		}
	}
	return lines
}

func buildRecommendation(language string, interests []string) *Recommendation {
	var robots []string
	for _, interest := range interests {
		if name, ok := productInterests[interest]; ok {
			robots = append(robots, name)
		}
	}
	if len(robots) == 0 {
		return nil
	}
	reasons := recommendationReasons[language]
	return &Recommendation{
		Robots:         robots,
		Reasoning:      reasons.Reasoning,
		Implementation: reasons.Implementation,
		ROI:            reasons.ROI,
	}
}

func enhancementConfidence(raw, enhanced string, p session.Personalization) float64 {
	growth := float64(len([]rune(enhanced)) - len([]rune(raw)))
	if growth < 0 {
		growth = 0
	}
	bonus := growth / 1000
	if bonus > 0.3 {
		bonus = 0.3
	}

	confidence := 0.5 + bonus
	if len(p.Interests) > 0 {
		confidence += 0.1
	}
	if len(p.ConversationFlow) > 0 {
		confidence += 0.1
	}
	if p.UserType != "" && p.UserType != session.UserUnknown {
		confidence += 0.1
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}
