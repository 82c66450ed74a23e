package llm

import "context"

// Provider is the generative model backend used by the chat pipeline.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name returns the name of this provider.
	Name() string
}
