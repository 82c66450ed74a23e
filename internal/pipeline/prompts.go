package pipeline

import (
	"strings"

	"github.com/ziadkadry99/site-assist/internal/knowledge"
	"github.com/ziadkadry99/site-assist/internal/llm"
	"github.com/ziadkadry99/site-assist/internal/session"
)

const maxPromptSnippets = 3

var systemPrompts = map[string]string{
	"en": `You are a helpful assistant on a robotics company website. Answer questions about our robots, pricing, demos, and support. Be concise and friendly. If you do not know something, say so and offer to connect the visitor with our team. Answer in English.`,
	"ar": `أنت مساعد ودود على موقع شركة روبوتات. أجب عن الأسئلة حول روبوتاتنا والأسعار والعروض التجريبية والدعم. كن موجزا وودودا. إذا لم تعرف شيئا فقل ذلك واعرض توصيل الزائر بفريقنا. أجب بالعربية.`,
}

// buildSystemPrompt assembles the model instructions: base persona,
// retrieved knowledge snippets, and accumulated session interests.
func buildSystemPrompt(language string, results []knowledge.SearchResult, interests []string) string {
	var b strings.Builder

	base, ok := systemPrompts[language]
	if !ok {
		base = systemPrompts["en"]
	}
	b.WriteString(base)

	if len(results) > 0 {
		b.WriteString("\n\nRelevant knowledge:\n")
		n := len(results)
		if n > maxPromptSnippets {
			n = maxPromptSnippets
		}
		for _, r := range results[:n] {
			b.WriteString("- ")
			b.WriteString(r.Item.Title)
			b.WriteString(": ")
			b.WriteString(r.Snippet)
			b.WriteString("\n")
		}
	}

	if len(interests) > 0 {
		b.WriteString("\nThe visitor has shown interest in: ")
		b.WriteString(strings.Join(interests, ", "))
		b.WriteString(".")
	}

	return b.String()
}

// buildMessages assembles the full completion request message list:
// system prompt, prior session turns oldest first, then the new user
// message.
func buildMessages(systemPrompt string, history []session.Message, userMessage string) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	for _, m := range history {
		role := llm.RoleUser
		if m.Role == session.RoleAssistant {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Text})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userMessage})
	return messages
}
