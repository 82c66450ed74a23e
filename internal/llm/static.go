package llm

import (
	"context"
	"strings"
)

// StaticProvider answers every request with a fixed reply. It stands in for
// a real model in tests, demos, and offline installs.
type StaticProvider struct {
	reply string
}

// NewStaticProvider creates a provider that always returns reply. An empty
// reply falls back to a generic acknowledgement.
func NewStaticProvider(reply string) *StaticProvider {
	if strings.TrimSpace(reply) == "" {
		reply = "Thanks for your message. A member of our team will follow up with details."
	}
	return &StaticProvider{reply: reply}
}

func (p *StaticProvider) Name() string {
	return "static"
}

func (p *StaticProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &CompletionResponse{
		Content: p.reply,
		Model:   "static",
	}, nil
}
