package session

import (
	"fmt"
	"sync"
	"testing"
)

func TestCreateAndGet(t *testing.T) {
	table := NewTable(0, 0)

	created := table.Create("s1", "en")
	if created.SessionID != "s1" || created.Language != "en" {
		t.Errorf("unexpected context: %+v", created)
	}

	got, err := table.Get("s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.SessionID != "s1" {
		t.Errorf("expected session s1, got %q", got.SessionID)
	}

	if _, err := table.Get("missing"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateIsIdempotent(t *testing.T) {
	table := NewTable(0, 0)

	table.Create("s1", "en")
	if err := table.Update("s1", RoleUser, "hello", "greeting", nil); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// Re-creating must not wipe existing state.
	again := table.Create("s1", "en")
	if len(again.History) != 1 {
		t.Errorf("expected history preserved across Create, got %d messages", len(again.History))
	}
}

func TestHistoryEviction(t *testing.T) {
	table := NewTable(0, 0)
	table.Create("s1", "en")

	// 21 consecutive turns: the first is evicted, the limit holds.
	for i := 1; i <= 21; i++ {
		err := table.Update("s1", RoleUser, fmt.Sprintf("turn %d", i), "general_inquiry", nil)
		if err != nil {
			t.Fatalf("Update %d: %v", i, err)
		}
	}

	ctx, err := table.Get("s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(ctx.History) != DefaultHistoryLimit {
		t.Fatalf("history length = %d, want %d", len(ctx.History), DefaultHistoryLimit)
	}
	for _, m := range ctx.History {
		if m.Text == "turn 1" {
			t.Error("oldest message should have been evicted")
		}
	}
	if ctx.History[0].Text != "turn 2" {
		t.Errorf("expected oldest retained message 'turn 2', got %q", ctx.History[0].Text)
	}
}

func TestFlowEviction(t *testing.T) {
	table := NewTable(0, 0)
	table.Create("s1", "en")

	for i := 0; i < 15; i++ {
		intent := "pricing_request"
		if i%2 == 0 {
			intent = "product_inquiry"
		}
		if err := table.Update("s1", RoleUser, "msg", intent, nil); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}

	ctx, _ := table.Get("s1")
	if len(ctx.Flow) != DefaultFlowLimit {
		t.Errorf("flow length = %d, want %d", len(ctx.Flow), DefaultFlowLimit)
	}
}

func TestAssistantTurnsDoNotExtendFlow(t *testing.T) {
	table := NewTable(0, 0)
	table.Create("s1", "en")

	table.Update("s1", RoleUser, "how much", "pricing_request", nil)
	table.Update("s1", RoleAssistant, "here are our prices", "", nil)

	ctx, _ := table.Get("s1")
	if len(ctx.Flow) != 1 {
		t.Errorf("flow length = %d, want 1", len(ctx.Flow))
	}
	if ctx.LastIntent() != "pricing_request" {
		t.Errorf("last intent = %q", ctx.LastIntent())
	}
}

func TestInterestsGrowOnce(t *testing.T) {
	table := NewTable(0, 0)
	table.Create("s1", "en")

	table.Update("s1", RoleUser, "tell me about nova", "product_inquiry",
		map[string]string{"product": "nova", "industry": ""})
	table.Update("s1", RoleUser, "nova again", "product_inquiry",
		map[string]string{"product": "nova"})
	table.Update("s1", RoleUser, "for my warehouse", "product_inquiry",
		map[string]string{"industry": "logistics"})

	ctx, _ := table.Get("s1")
	if len(ctx.Interests) != 2 {
		t.Fatalf("interests = %v, want [nova logistics]", ctx.Interests)
	}
	if !ctx.HasInterest("nova") || !ctx.HasInterest("logistics") {
		t.Errorf("interests = %v", ctx.Interests)
	}
}

func TestPersonalizationTracksUpdates(t *testing.T) {
	table := NewTable(0, 0)
	table.Create("s1", "ar")

	table.Update("s1", RoleUser, "مرحبا", "greeting", nil)
	table.Update("s1", RoleAssistant, "أهلاً", "", nil)
	table.Update("s1", RoleUser, "أريد روبوت", "product_inquiry",
		map[string]string{"product": "نوفا"})

	p, err := table.Personalization("s1")
	if err != nil {
		t.Fatalf("Personalization: %v", err)
	}
	if p.PreferredLanguage != "ar" {
		t.Errorf("preferred language = %q, want ar", p.PreferredLanguage)
	}
	if p.PreviousInteractions != 2 {
		t.Errorf("previous interactions = %d, want 2 (user turns only)", p.PreviousInteractions)
	}
	if p.UserType != UserUnknown {
		t.Errorf("user type = %q, want unknown", p.UserType)
	}
	if len(p.Interests) != 1 {
		t.Errorf("interests = %v", p.Interests)
	}
	if p.LastInteraction.IsZero() {
		t.Error("last interaction not set")
	}
}

func TestSetUserType(t *testing.T) {
	table := NewTable(0, 0)
	table.Create("s1", "en")

	if err := table.SetUserType("s1", UserCustomer); err != nil {
		t.Fatalf("SetUserType: %v", err)
	}
	p, _ := table.Personalization("s1")
	if p.UserType != UserCustomer {
		t.Errorf("user type = %q, want customer", p.UserType)
	}

	if err := table.SetUserType("missing", UserPartner); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClear(t *testing.T) {
	table := NewTable(0, 0)
	table.Create("s1", "en")
	table.Clear("s1")

	if _, err := table.Get("s1"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after Clear, got %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("expected empty table, got %d", table.Len())
	}
}

func TestCopiesAreIsolated(t *testing.T) {
	table := NewTable(0, 0)
	table.Create("s1", "en")
	table.Update("s1", RoleUser, "hello", "greeting", nil)

	ctx, _ := table.Get("s1")
	ctx.History[0].Text = "tampered"
	ctx.Interests = append(ctx.Interests, "bogus")

	fresh, _ := table.Get("s1")
	if fresh.History[0].Text != "hello" {
		t.Error("store state mutated through a returned copy")
	}
	if len(fresh.Interests) != 0 {
		t.Error("interest set mutated through a returned copy")
	}
}

func TestConcurrentUpdatesKeepBounds(t *testing.T) {
	table := NewTable(0, 0)
	table.Create("s1", "en")

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				table.Update("s1", RoleUser, "msg", "general_inquiry", nil)
			}
		}()
	}
	wg.Wait()

	ctx, _ := table.Get("s1")
	if len(ctx.History) > DefaultHistoryLimit {
		t.Errorf("history length %d exceeds bound", len(ctx.History))
	}
	if len(ctx.Flow) > DefaultFlowLimit {
		t.Errorf("flow length %d exceeds bound", len(ctx.Flow))
	}
}
