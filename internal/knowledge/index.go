// Package knowledge holds the curated content catalog and its
// keyword-indexed search.
package knowledge

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrItemNotFound is returned for unknown item ids.
var ErrItemNotFound = errors.New("knowledge item not found")

// Index is an inverted keyword index over the catalog. The catalog is
// small and static, so every mutation rebuilds the whole index under the
// write lock; readers are excluded during the rebuild.
type Index struct {
	mu       sync.RWMutex
	items    map[string]Item
	inverted map[string]map[string]struct{}
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		items:    make(map[string]Item),
		inverted: make(map[string]map[string]struct{}),
	}
}

// NewIndexWithItems creates an index preloaded with the given items.
func NewIndexWithItems(items []Item) (*Index, error) {
	idx := NewIndex()
	for _, item := range items {
		if err := idx.Add(item); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// Add inserts a new item and rebuilds the index.
func (x *Index) Add(item Item) error {
	if item.ID == "" {
		return fmt.Errorf("knowledge item requires an id")
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	if _, exists := x.items[item.ID]; exists {
		return fmt.Errorf("knowledge item %q already exists", item.ID)
	}
	x.items[item.ID] = item
	x.rebuild()
	return nil
}

// Update replaces an existing item and rebuilds the index.
func (x *Index) Update(item Item) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if _, exists := x.items[item.ID]; !exists {
		return ErrItemNotFound
	}
	x.items[item.ID] = item
	x.rebuild()
	return nil
}

// Delete removes an item and rebuilds the index.
func (x *Index) Delete(id string) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if _, exists := x.items[id]; !exists {
		return ErrItemNotFound
	}
	delete(x.items, id)
	x.rebuild()
	return nil
}

// Get returns the item with the given id.
func (x *Index) Get(id string) (Item, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	item, ok := x.items[id]
	if !ok {
		return Item{}, ErrItemNotFound
	}
	return item, nil
}

// ByCategory returns all items in a category for one language, ordered by
// priority descending then id.
func (x *Index) ByCategory(category, language string) []Item {
	x.mu.RLock()
	defer x.mu.RUnlock()

	var out []Item
	for _, item := range x.items {
		if item.Category == category && item.Language == language {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Items returns every indexed item in id order.
func (x *Index) Items() []Item {
	x.mu.RLock()
	defer x.mu.RUnlock()

	out := make([]Item, 0, len(x.items))
	for _, item := range x.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of indexed items.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.items)
}

// Search tokenizes the query and ranks items by keyword hits. Results are
// filtered to the given language, and to category when non-empty. The
// ordering key is relevance + 0.1*priority descending; equal keys order by
// item id so rankings are deterministic.
func (x *Index) Search(query, language, category string) []SearchResult {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	relevance := make(map[string]int)
	matched := make(map[string][]string)

	for _, tok := range tokens {
		ids, ok := x.inverted[tok]
		if !ok {
			continue
		}
		for id := range ids {
			relevance[id]++
			matched[id] = append(matched[id], tok)
		}
	}

	var results []SearchResult
	for id, score := range relevance {
		item := x.items[id]
		if item.Language != language {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		results = append(results, SearchResult{
			Item:            item,
			RelevanceScore:  score,
			MatchedKeywords: sortedUnique(matched[id]),
			Snippet:         extractSnippet(item.Content, tokens),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		si, sj := results[i].rankScore(), results[j].rankScore()
		if si != sj {
			return si > sj
		}
		return results[i].Item.ID < results[j].Item.ID
	})
	return results
}

// rebuild recomputes the inverted index from scratch. Caller holds the
// write lock.
func (x *Index) rebuild() {
	x.inverted = make(map[string]map[string]struct{})
	for id, item := range x.items {
		for _, kw := range item.SearchKeywords {
			x.addTerm(kw, id)
		}
		for _, tag := range item.Tags {
			x.addTerm(tag, id)
		}
	}
}

func (x *Index) addTerm(term, id string) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return
	}
	ids, ok := x.inverted[term]
	if !ok {
		ids = make(map[string]struct{})
		x.inverted[term] = ids
	}
	ids[id] = struct{}{}
}

// tokenize lower-cases and splits a query on whitespace, trimming
// punctuation from each token.
func tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	out := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, ".,!?؟:;\"'()")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func sortedUnique(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
