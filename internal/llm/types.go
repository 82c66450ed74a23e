package llm

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message in a conversation.
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest contains the parameters for a completion request.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Usage reports the token accounting for one completion.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
}

// Total returns the combined token count for the completion.
func (u Usage) Total() int {
	return u.PromptTokens + u.CompletionTokens
}

// CompletionResponse contains the result of a completion request.
type CompletionResponse struct {
	Content string
	Model   string
	Usage   Usage
}
