// Package embeddings provides text embedding backends for semantic
// knowledge search.
package embeddings

import (
	"context"

	chromem "github.com/philippgille/chromem-go"
)

// Embedder turns texts into dense vectors.
type Embedder interface {
	// Embed generates embeddings for one or more texts.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the vector dimension count.
	Dimensions() int

	// Name returns the model identifier.
	Name() string
}

// ToChromemFunc adapts an Embedder to chromem-go, which embeds one text
// at a time.
func ToChromemFunc(e Embedder) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		results, err := e.Embed(ctx, []string{text})
		if err != nil {
			return nil, err
		}
		if len(results) == 0 {
			return nil, nil
		}
		return results[0], nil
	}
}
