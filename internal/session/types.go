package session

import "time"

// Role identifies who produced a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserType classifies the visitor behind a session.
type UserType string

const (
	UserProspect UserType = "prospect"
	UserCustomer UserType = "customer"
	UserPartner  UserType = "partner"
	UserUnknown  UserType = "unknown"
)

// Message is a single conversation turn belonging to a session.
type Message struct {
	Role      Role              `json:"role"`
	Text      string            `json:"text"`
	Timestamp time.Time         `json:"timestamp"`
	Intent    string            `json:"intent,omitempty"`
	Entities  map[string]string `json:"entities,omitempty"`
}

// Context is the per-session conversation state. History and Flow are
// bounded; Interests only grows.
type Context struct {
	SessionID string    `json:"session_id"`
	Language  string    `json:"language"`
	History   []Message `json:"history"`
	Interests []string  `json:"interests"`
	Flow      []string  `json:"conversation_flow"`
	CreatedAt time.Time `json:"created_at"`
}

// HasInterest reports whether the session accumulated the given topic.
func (c *Context) HasInterest(topic string) bool {
	for _, t := range c.Interests {
		if t == topic {
			return true
		}
	}
	return false
}

// LastIntent returns the most recent intent in the flow, or "".
func (c *Context) LastIntent() string {
	if len(c.Flow) == 0 {
		return ""
	}
	return c.Flow[len(c.Flow)-1]
}

// Personalization is the session-scoped profile used to bias suggestions
// and recommendations.
type Personalization struct {
	SessionID            string    `json:"session_id"`
	Interests            []string  `json:"interests"`
	PreviousInteractions int       `json:"previous_interactions"`
	PreferredLanguage    string    `json:"preferred_language"`
	ConversationFlow     []string  `json:"conversation_flow"`
	UserType             UserType  `json:"user_type"`
	LastInteraction      time.Time `json:"last_interaction"`
}
