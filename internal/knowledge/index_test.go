package knowledge

import (
	"strings"
	"testing"
)

func testItems() []Item {
	return []Item{
		{
			ID:             "pricing-high",
			Category:       "pricing",
			Title:          "Pricing and Plans",
			Content:        "Pricing starts at 45,000 USD. Leasing plans include maintenance.",
			Language:       "en",
			Priority:       10,
			SearchKeywords: []string{"pricing", "cost", "lease"},
		},
		{
			ID:             "pricing-low",
			Category:       "pricing",
			Title:          "Legacy Pricing Notes",
			Content:        "Old pricing material kept for reference.",
			Language:       "en",
			Priority:       1,
			SearchKeywords: []string{"pricing", "cost"},
		},
		{
			ID:             "product-arm",
			Category:       "products",
			Title:          "Industrial Arm",
			Content:        "A six-axis arm for welding and assembly.",
			Language:       "en",
			Priority:       8,
			SearchKeywords: []string{"robot", "arm", "welding"},
		},
		{
			ID:             "product-arm-ar",
			Category:       "products",
			Title:          "ذراع صناعية",
			Content:        "ذراع بستة محاور للحام والتجميع.",
			Language:       "ar",
			Priority:       8,
			SearchKeywords: []string{"روبوت", "ذراع", "لحام"},
		},
	}
}

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndexWithItems(testItems())
	if err != nil {
		t.Fatalf("NewIndexWithItems: %v", err)
	}
	return idx
}

func TestSearchOrdersByRankScore(t *testing.T) {
	idx := newTestIndex(t)

	results := idx.Search("pricing cost", "en", "")
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		prev, cur := results[i-1], results[i]
		if prev.rankScore() < cur.rankScore() {
			t.Errorf("result %d (%s) ranked above %d (%s)", i, cur.Item.ID, i-1, prev.Item.ID)
		}
	}
}

func TestPriorityBreaksEqualRelevance(t *testing.T) {
	idx := newTestIndex(t)

	results := idx.Search("pricing cost", "en", "")
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Item.ID != "pricing-high" {
		t.Errorf("expected priority 10 item first, got %q", results[0].Item.ID)
	}
	if results[1].Item.ID != "pricing-low" {
		t.Errorf("expected priority 1 item second, got %q", results[1].Item.ID)
	}
}

func TestEqualRankOrdersByID(t *testing.T) {
	idx := NewIndex()
	for _, id := range []string{"item-b", "item-a"} {
		err := idx.Add(Item{
			ID: id, Category: "products", Title: id,
			Language: "en", Priority: 5,
			SearchKeywords: []string{"widget"},
		})
		if err != nil {
			t.Fatalf("Add(%s): %v", id, err)
		}
	}

	results := idx.Search("widget", "en", "")
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Item.ID != "item-a" || results[1].Item.ID != "item-b" {
		t.Errorf("expected id order item-a, item-b; got %s, %s", results[0].Item.ID, results[1].Item.ID)
	}
}

func TestLanguageFilter(t *testing.T) {
	idx := newTestIndex(t)

	results := idx.Search("روبوت", "ar", "")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Item.ID != "product-arm-ar" {
		t.Errorf("expected product-arm-ar, got %q", results[0].Item.ID)
	}

	if got := idx.Search("روبوت", "en", ""); len(got) != 0 {
		t.Errorf("expected no english results for arabic keyword, got %d", len(got))
	}
}

func TestCategoryFilter(t *testing.T) {
	idx := newTestIndex(t)

	results := idx.Search("pricing robot", "en", "products")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Item.ID != "product-arm" {
		t.Errorf("expected product-arm, got %q", results[0].Item.ID)
	}
}

func TestAddThenSearchRoundTrip(t *testing.T) {
	idx := newTestIndex(t)

	item := Item{
		ID:             "product-nova",
		Category:       "products",
		Title:          "Nova Arm",
		Content:        "Nova is the flagship arm.",
		Language:       "en",
		Priority:       9,
		SearchKeywords: []string{"nova", "robot"},
	}
	if err := idx.Add(item); err != nil {
		t.Fatalf("Add: %v", err)
	}

	results := idx.Search("nova", "en", "")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Item.ID != "product-nova" {
		t.Errorf("expected product-nova, got %q", results[0].Item.ID)
	}
	if len(results[0].MatchedKeywords) != 1 || results[0].MatchedKeywords[0] != "nova" {
		t.Errorf("unexpected matched keywords: %v", results[0].MatchedKeywords)
	}
}

func TestAddRejectsDuplicateID(t *testing.T) {
	idx := newTestIndex(t)
	err := idx.Add(Item{ID: "pricing-high", Title: "dup", Language: "en"})
	if err == nil {
		t.Fatal("expected error for duplicate id")
	}
}

func TestUpdateReindexes(t *testing.T) {
	idx := newTestIndex(t)

	item, err := idx.Get("product-arm")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	item.SearchKeywords = []string{"gripper"}
	if err := idx.Update(item); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if got := idx.Search("welding", "en", ""); len(got) != 0 {
		t.Errorf("old keyword still indexed: %d results", len(got))
	}
	if got := idx.Search("gripper", "en", ""); len(got) != 1 {
		t.Errorf("new keyword not indexed: %d results", len(got))
	}
}

func TestDeleteRemovesFromSearch(t *testing.T) {
	idx := newTestIndex(t)

	if err := idx.Delete("product-arm"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := idx.Get("product-arm"); err == nil {
		t.Error("expected Get to fail after delete")
	}
	if got := idx.Search("welding", "en", ""); len(got) != 0 {
		t.Errorf("deleted item still searchable: %d results", len(got))
	}
	if err := idx.Delete("product-arm"); err == nil {
		t.Error("expected error on double delete")
	}
}

func TestByCategoryOrdersByPriority(t *testing.T) {
	idx := newTestIndex(t)

	items := idx.ByCategory("pricing", "en")
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "pricing-high" || items[1].ID != "pricing-low" {
		t.Errorf("unexpected order: %s, %s", items[0].ID, items[1].ID)
	}
}

func TestEmptyQueryReturnsNothing(t *testing.T) {
	idx := newTestIndex(t)
	if got := idx.Search("   ", "en", ""); got != nil {
		t.Errorf("expected nil for blank query, got %v", got)
	}
}

func TestSnippetPicksMatchingSentence(t *testing.T) {
	content := "We build robots. Pricing starts at 45,000 USD. Support is around the clock."
	snippet := extractSnippet(content, []string{"pricing"})
	if snippet != "Pricing starts at 45,000 USD." {
		t.Errorf("unexpected snippet: %q", snippet)
	}
}

func TestSnippetFallbackTruncates(t *testing.T) {
	content := strings.Repeat("abcde ", 60)
	snippet := extractSnippet(content, []string{"zzz"})
	if !strings.HasSuffix(snippet, "...") {
		t.Errorf("expected ellipsis suffix, got %q", snippet)
	}
	if len([]rune(snippet)) > snippetFallbackLen+3 {
		t.Errorf("snippet too long: %d runes", len([]rune(snippet)))
	}
}

func TestBuiltinCatalogLoads(t *testing.T) {
	idx, err := NewIndexWithItems(BuiltinCatalog())
	if err != nil {
		t.Fatalf("loading builtin catalog: %v", err)
	}
	if idx.Len() == 0 {
		t.Fatal("builtin catalog is empty")
	}

	results := idx.Search("nova pricing", "en", "")
	if len(results) == 0 {
		t.Fatal("expected results for nova pricing")
	}
	if results[0].Item.Category != "pricing" {
		t.Errorf("expected a pricing item first, got category %q", results[0].Item.Category)
	}
}
