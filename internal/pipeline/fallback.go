package pipeline

const (
	fallbackConfidence = 0.1
	fallbackAction     = "contact_support"
)

var fallbackMessages = map[string]string{
	"en": "I'm sorry, I'm having trouble answering right now. Please try again in a moment, or reach our support team directly and they'll be glad to help.",
	"ar": "عذرا، أواجه صعوبة في الرد الآن. يرجى المحاولة مرة أخرى بعد قليل، أو التواصل مع فريق الدعم مباشرة وسيسعدهم مساعدتك.",
}

// fallbackResponse is the canned reply substituted when the model call
// fails or times out.
func fallbackResponse(language string) ChatResponse {
	msg, ok := fallbackMessages[language]
	if !ok {
		msg = fallbackMessages["en"]
	}
	return ChatResponse{
		Message:          msg,
		Language:         language,
		Confidence:       fallbackConfidence,
		SuggestedActions: []string{fallbackAction},
	}
}
