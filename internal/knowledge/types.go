package knowledge

// Item is a unit of retrievable domain content. Items are immutable at
// runtime except through the explicit index mutation operations. Content
// that varies by language exists once per language, linked by a shared
// logical id with a language-suffixed physical id (e.g. "pricing-plans-en",
// "pricing-plans-ar").
type Item struct {
	ID             string   `yaml:"id" json:"id"`
	Category       string   `yaml:"category" json:"category"`
	Subcategory    string   `yaml:"subcategory,omitempty" json:"subcategory,omitempty"`
	Title          string   `yaml:"title" json:"title"`
	Content        string   `yaml:"content" json:"content"`
	Language       string   `yaml:"language" json:"language"`
	Tags           []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Priority       int      `yaml:"priority" json:"priority"`
	SearchKeywords []string `yaml:"search_keywords,omitempty" json:"search_keywords,omitempty"`
	RelatedItems   []string `yaml:"related_items,omitempty" json:"related_items,omitempty"`
}

// SearchResult pairs an item with its relevance for one query. Derived,
// never persisted.
type SearchResult struct {
	Item            Item     `json:"item"`
	RelevanceScore  int      `json:"relevance_score"`
	MatchedKeywords []string `json:"matched_keywords"`
	Snippet         string   `json:"snippet"`
}

// rankScore is the ordering key: keyword hits dominate, priority breaks
// near-ties.
func (r SearchResult) rankScore() float64 {
	return float64(r.RelevanceScore) + float64(r.Item.Priority)*0.1
}

// catalogFile is the YAML shape of one knowledge catalog file.
type catalogFile struct {
	Items []Item `yaml:"items"`
}
