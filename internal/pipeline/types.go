// Package pipeline orchestrates one conversational turn: correction,
// classification, retrieval, generation, enhancement, persistence.
package pipeline

import "github.com/ziadkadry99/site-assist/internal/personalize"

// ChatRequest is the turn-level input.
type ChatRequest struct {
	Message   string `json:"message"`
	Language  string `json:"language"`
	SessionID string `json:"sessionId"`
}

// SpellingInfo reports the correction applied to the incoming message.
type SpellingInfo struct {
	Original   string  `json:"original"`
	Corrected  string  `json:"corrected"`
	Confidence float64 `json:"confidence"`
}

// ChatResponse is the turn-level output.
type ChatResponse struct {
	Message            string                       `json:"message"`
	Language           string                       `json:"language"`
	Confidence         float64                      `json:"confidence"`
	Intent             string                       `json:"intent,omitempty"`
	Entities           map[string]string            `json:"entities,omitempty"`
	SuggestedActions   []string                     `json:"suggestedActions,omitempty"`
	Suggestions        []string                     `json:"suggestions,omitempty"`
	Recommendations    *personalize.Recommendation  `json:"recommendations,omitempty"`
	FollowUpQuestions  []string                     `json:"followUpQuestions,omitempty"`
	SpellingCorrection *SpellingInfo                `json:"spellingCorrection,omitempty"`
}
