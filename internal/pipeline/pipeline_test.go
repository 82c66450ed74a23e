package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/site-assist/internal/db"
	"github.com/ziadkadry99/site-assist/internal/knowledge"
	"github.com/ziadkadry99/site-assist/internal/leads"
	"github.com/ziadkadry99/site-assist/internal/llm"
	"github.com/ziadkadry99/site-assist/internal/session"
)

type failingProvider struct{}

func (failingProvider) Name() string { return "failing" }
func (failingProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return nil, errors.New("backend unavailable")
}

func newTestPipeline(t *testing.T, provider llm.Provider) *Pipeline {
	t.Helper()
	idx, err := knowledge.NewIndexWithItems(knowledge.BuiltinCatalog())
	if err != nil {
		t.Fatalf("building index: %v", err)
	}
	return New(Options{
		Index:           idx,
		Sessions:        session.NewTable(session.DefaultHistoryLimit, session.DefaultFlowLimit),
		Provider:        provider,
		DefaultLanguage: "en",
	})
}

func TestTurnWithSpellingCorrection(t *testing.T) {
	p := newTestPipeline(t, llm.NewStaticProvider("We sell several robot models."))

	resp := p.Process(context.Background(), ChatRequest{
		Message:   "helo what robots do you sell",
		Language:  "en",
		SessionID: "s1",
	})

	if resp.SpellingCorrection == nil {
		t.Fatal("expected spelling correction info")
	}
	if !strings.Contains(resp.SpellingCorrection.Corrected, "hello") {
		t.Errorf("corrected text = %q, want it to contain hello", resp.SpellingCorrection.Corrected)
	}
	if resp.SpellingCorrection.Confidence <= 0.7 {
		t.Errorf("correction confidence = %v, want > 0.7", resp.SpellingCorrection.Confidence)
	}
	if resp.Intent != "product_inquiry" {
		t.Errorf("intent = %q, want product_inquiry", resp.Intent)
	}
	if !strings.Contains(resp.Message, "We sell several robot models.") {
		t.Errorf("model reply missing from response: %q", resp.Message)
	}
}

func TestResponseConfidenceClamped(t *testing.T) {
	p := newTestPipeline(t, llm.NewStaticProvider("Hello! Great to meet you."))

	resp := p.Process(context.Background(), ChatRequest{
		Message:   "hello",
		Language:  "en",
		SessionID: "s1",
	})
	if resp.Confidence < 0 || resp.Confidence > 1 {
		t.Errorf("confidence = %v, want within [0,1]", resp.Confidence)
	}
}

func TestHistoryStaysBounded(t *testing.T) {
	p := newTestPipeline(t, llm.NewStaticProvider("Noted."))

	for i := 1; i <= 21; i++ {
		p.Process(context.Background(), ChatRequest{
			Message:   fmt.Sprintf("turn number %d", i),
			Language:  "en",
			SessionID: "s1",
		})
	}

	sctx, err := p.sessions.Get("s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(sctx.History) != session.DefaultHistoryLimit {
		t.Errorf("history length = %d, want %d", len(sctx.History), session.DefaultHistoryLimit)
	}
	for _, m := range sctx.History {
		if m.Text == "turn number 1" {
			t.Error("oldest turn still present after eviction")
		}
	}
}

func TestModelFailureFallsBack(t *testing.T) {
	p := newTestPipeline(t, failingProvider{})

	resp := p.Process(context.Background(), ChatRequest{
		Message:   "tell me about pricing",
		Language:  "en",
		SessionID: "s1",
	})

	if resp.Confidence != 0.1 {
		t.Errorf("confidence = %v, want 0.1", resp.Confidence)
	}
	if len(resp.SuggestedActions) != 1 || resp.SuggestedActions[0] != "contact_support" {
		t.Errorf("suggestedActions = %v, want [contact_support]", resp.SuggestedActions)
	}
	if resp.Message != fallbackMessages["en"] {
		t.Errorf("unexpected fallback message: %q", resp.Message)
	}

	// The user's message must be persisted even on failure.
	sctx, err := p.sessions.Get("s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	found := false
	for _, m := range sctx.History {
		if m.Role == session.RoleUser && m.Text == "tell me about pricing" {
			found = true
		}
	}
	if !found {
		t.Error("user message missing from history after model failure")
	}
}

func TestContextCancellationFallsBack(t *testing.T) {
	p := newTestPipeline(t, llm.NewStaticProvider("unreachable"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp := p.Process(ctx, ChatRequest{
		Message:   "hello",
		Language:  "en",
		SessionID: "s1",
	})
	if resp.Confidence != 0.1 {
		t.Errorf("confidence = %v, want 0.1 after cancellation", resp.Confidence)
	}
}

func TestEmptyMessageDoesNotCrash(t *testing.T) {
	p := newTestPipeline(t, llm.NewStaticProvider("How can I help?"))

	resp := p.Process(context.Background(), ChatRequest{
		Message:   "",
		Language:  "en",
		SessionID: "s1",
	})
	if resp.Intent != "general_inquiry" {
		t.Errorf("intent = %q, want general_inquiry for empty input", resp.Intent)
	}
	if resp.SpellingCorrection != nil {
		t.Error("unexpected spelling correction for empty input")
	}
}

func TestUnsupportedLanguageFallsBackToDefault(t *testing.T) {
	p := newTestPipeline(t, llm.NewStaticProvider("Hello!"))

	resp := p.Process(context.Background(), ChatRequest{
		Message:   "hello",
		Language:  "fr",
		SessionID: "s1",
	})
	if resp.Language != "en" {
		t.Errorf("language = %q, want en", resp.Language)
	}
}

func TestLeadCapturedDuringTurn(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	idx, err := knowledge.NewIndexWithItems(knowledge.BuiltinCatalog())
	if err != nil {
		t.Fatalf("building index: %v", err)
	}
	leadStore := leads.NewStore(database)
	p := New(Options{
		Index:           idx,
		Sessions:        session.NewTable(session.DefaultHistoryLimit, session.DefaultFlowLimit),
		Provider:        llm.NewStaticProvider("Thanks, we'll be in touch."),
		Leads:           leadStore,
		DefaultLanguage: "en",
	})

	p.Process(context.Background(), ChatRequest{
		Message:   "please contact me at omar@example.com",
		Language:  "en",
		SessionID: "s1",
	})

	lead, err := leadStore.BySession(context.Background(), "s1")
	if err != nil {
		t.Fatalf("BySession: %v", err)
	}
	if lead == nil || lead.Email != "omar@example.com" {
		t.Fatalf("expected captured lead, got %+v", lead)
	}

	profile, err := p.sessions.Personalization("s1")
	if err != nil {
		t.Fatalf("Personalization: %v", err)
	}
	if profile.UserType != session.UserProspect {
		t.Errorf("user type = %q, want prospect after lead capture", profile.UserType)
	}
}

func TestTurnsArchivedToDatabase(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	idx, err := knowledge.NewIndexWithItems(knowledge.BuiltinCatalog())
	if err != nil {
		t.Fatalf("building index: %v", err)
	}
	archive := NewArchive(database)
	p := New(Options{
		Index:           idx,
		Sessions:        session.NewTable(session.DefaultHistoryLimit, session.DefaultFlowLimit),
		Provider:        llm.NewStaticProvider("We have five models."),
		Archive:         archive,
		DefaultLanguage: "en",
	})

	p.Process(context.Background(), ChatRequest{
		Message:   "what robots do you sell",
		Language:  "en",
		SessionID: "s1",
	})

	transcript, err := archive.Transcript(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}
	if len(transcript) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(transcript))
	}
	if transcript[0].Role != "user" || transcript[1].Role != "assistant" {
		t.Errorf("unexpected transcript order: %s, %s", transcript[0].Role, transcript[1].Role)
	}
	if transcript[0].Intent != "product_inquiry" {
		t.Errorf("archived intent = %q, want product_inquiry", transcript[0].Intent)
	}
}

func TestChatEndpoint(t *testing.T) {
	p := newTestPipeline(t, llm.NewStaticProvider("We sell industrial robots."))

	r := chi.NewRouter()
	RegisterRoutes(r, p)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	body, _ := json.Marshal(ChatRequest{Message: "what robots do you sell", Language: "en"})
	resp, err := http.Post(srv.URL+"/api/chat", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/chat: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got struct {
		SessionID string `json:"sessionId"`
		ChatResponse
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if got.SessionID == "" {
		t.Error("expected assigned session id")
	}
	if got.Intent != "product_inquiry" {
		t.Errorf("intent = %q, want product_inquiry", got.Intent)
	}
	if !strings.Contains(got.Message, "We sell industrial robots.") {
		t.Errorf("model reply missing: %q", got.Message)
	}

	histResp, err := http.Get(srv.URL + "/api/chat/" + got.SessionID + "/history")
	if err != nil {
		t.Fatalf("GET history: %v", err)
	}
	defer histResp.Body.Close()
	if histResp.StatusCode != http.StatusOK {
		t.Errorf("history status = %d, want 200", histResp.StatusCode)
	}
}
