package knowledge

import (
	"context"
	"fmt"

	chromem "github.com/philippgille/chromem-go"

	"github.com/ziadkadry99/site-assist/internal/embeddings"
)

const semanticCollection = "knowledge"

// SemanticStore is an optional embedding-backed store used when keyword
// search returns nothing. It holds the same items as the Index.
type SemanticStore struct {
	db         *chromem.DB
	collection *chromem.Collection
}

// NewSemanticStore creates an in-memory semantic store.
func NewSemanticStore(embedder embeddings.Embedder) (*SemanticStore, error) {
	db := chromem.NewDB()
	col, err := db.GetOrCreateCollection(semanticCollection, nil, embeddings.ToChromemFunc(embedder))
	if err != nil {
		return nil, fmt.Errorf("create semantic collection: %w", err)
	}
	return &SemanticStore{db: db, collection: col}, nil
}

// AddItems embeds and stores catalog items. Title and content are
// concatenated as the embedded document text.
func (s *SemanticStore) AddItems(ctx context.Context, items []Item) error {
	if len(items) == 0 {
		return nil
	}
	docs := make([]chromem.Document, len(items))
	for i, item := range items {
		docs[i] = chromem.Document{
			ID:      item.ID,
			Content: item.Title + "\n" + item.Content,
			Metadata: map[string]string{
				"category": item.Category,
				"language": item.Language,
			},
		}
	}
	return s.collection.AddDocuments(ctx, docs, 1)
}

// Search returns the ids of the items most similar to the query, best
// first, restricted to one language.
func (s *SemanticStore) Search(ctx context.Context, query, language string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 5
	}
	count := s.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if limit > count {
		limit = count
	}

	where := map[string]string{"language": language}
	results, err := s.collection.Query(ctx, query, limit, where, nil)
	if err != nil {
		return nil, fmt.Errorf("semantic query: %w", err)
	}

	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids, nil
}

// Count returns the number of stored items.
func (s *SemanticStore) Count() int {
	return s.collection.Count()
}
