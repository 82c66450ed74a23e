package pipeline

import (
	"context"
	"log"
	"time"

	"github.com/ziadkadry99/site-assist/internal/intent"
	"github.com/ziadkadry99/site-assist/internal/knowledge"
	"github.com/ziadkadry99/site-assist/internal/leads"
	"github.com/ziadkadry99/site-assist/internal/llm"
	"github.com/ziadkadry99/site-assist/internal/personalize"
	"github.com/ziadkadry99/site-assist/internal/session"
	"github.com/ziadkadry99/site-assist/internal/spelling"
)

// correctionThreshold is the spelling confidence above which the
// corrected text replaces the original for classification and retrieval.
const correctionThreshold = 0.7

// DefaultModelTimeout bounds the external model call.
const DefaultModelTimeout = 10 * time.Second

// Options wires the pipeline's collaborators. Provider, Sessions, and
// Index are required; the rest are optional.
type Options struct {
	Corrector *spelling.Corrector
	Index     *knowledge.Index
	Semantic  *knowledge.SemanticStore
	Sessions  *session.Table
	Provider  llm.Provider
	Leads     *leads.Store
	Archive   *Archive

	Model           string
	DefaultLanguage string
	ModelTimeout    time.Duration
}

// Pipeline runs one conversational turn end to end.
type Pipeline struct {
	corrector  *spelling.Corrector
	classifier *intent.Classifier
	index      *knowledge.Index
	semantic   *knowledge.SemanticStore
	sessions   *session.Table
	enhancer   *personalize.Enhancer
	provider   llm.Provider
	leadStore  *leads.Store
	archive    *Archive

	model           string
	defaultLanguage string
	timeout         time.Duration
}

// New creates a Pipeline from the given options.
func New(opts Options) *Pipeline {
	corrector := opts.Corrector
	if corrector == nil {
		corrector = spelling.NewCorrector()
	}
	timeout := opts.ModelTimeout
	if timeout <= 0 {
		timeout = DefaultModelTimeout
	}
	language := opts.DefaultLanguage
	if language == "" {
		language = "en"
	}
	return &Pipeline{
		corrector:       corrector,
		classifier:      intent.NewClassifier(),
		index:           opts.Index,
		semantic:        opts.Semantic,
		sessions:        opts.Sessions,
		enhancer:        personalize.NewEnhancer(),
		provider:        opts.Provider,
		leadStore:       opts.Leads,
		archive:         opts.Archive,
		model:           opts.Model,
		defaultLanguage: language,
		timeout:         timeout,
	}
}

// Process handles one turn. It never returns an error to the caller;
// model failures degrade to the canned fallback response, and the user's
// message is persisted either way.
func (p *Pipeline) Process(ctx context.Context, req ChatRequest) ChatResponse {
	language := req.Language
	if language != "en" && language != "ar" {
		language = p.defaultLanguage
	}

	p.sessions.Create(req.SessionID, language)

	correction := p.corrector.Correct(req.Message)
	text := req.Message
	if correction.Confidence > correctionThreshold {
		text = correction.Corrected
	}

	sctx, err := p.sessions.Get(req.SessionID)
	if err != nil {
		// Create above makes this unreachable; fall back to a fresh context.
		sctx = &session.Context{SessionID: req.SessionID, Language: language}
	}

	result := p.classifier.Classify(text, sctx)
	retrieved := p.retrieve(ctx, text, language)

	raw, genErr := p.generate(ctx, language, retrieved, sctx, text)
	if genErr != nil {
		log.Printf("pipeline: model call failed for session %s: %v", req.SessionID, genErr)
		resp := fallbackResponse(language)
		resp.Intent = string(result.Intent)
		resp.Entities = result.Entities
		p.persist(ctx, req, language, result, resp.Message, resp.Confidence)
		return resp
	}

	profile, err := p.sessions.Personalization(req.SessionID)
	if err != nil {
		profile = &session.Personalization{SessionID: req.SessionID, PreferredLanguage: language, UserType: session.UserUnknown}
	}
	enhancement := p.enhancer.Enhance(raw, *profile, result)

	confidence := 0.8 + 0.2*result.Confidence + 0.1*enhancement.Confidence
	if confidence > 1.0 {
		confidence = 1.0
	}

	resp := ChatResponse{
		Message:           enhancement.Response,
		Language:          language,
		Confidence:        confidence,
		Intent:            string(result.Intent),
		Entities:          result.Entities,
		SuggestedActions:  result.SuggestedActions,
		Suggestions:       enhancement.Suggestions,
		Recommendations:   enhancement.Recommendation,
		FollowUpQuestions: enhancement.FollowUpQuestions,
	}
	if correction.Corrected != correction.Original {
		resp.SpellingCorrection = &SpellingInfo{
			Original:   correction.Original,
			Corrected:  correction.Corrected,
			Confidence: correction.Confidence,
		}
	}

	p.persist(ctx, req, language, result, enhancement.Response, confidence)
	return resp
}

// retrieve runs keyword search, falling back to the semantic store when
// the keyword index comes up empty.
func (p *Pipeline) retrieve(ctx context.Context, text, language string) []knowledge.SearchResult {
	results := p.index.Search(text, language, "")
	if len(results) > 0 || p.semantic == nil {
		return results
	}

	ids, err := p.semantic.Search(ctx, text, language, maxPromptSnippets)
	if err != nil {
		log.Printf("pipeline: semantic search failed: %v", err)
		return nil
	}
	for _, id := range ids {
		item, err := p.index.Get(id)
		if err != nil {
			continue
		}
		results = append(results, knowledge.SearchResult{
			Item:    item,
			Snippet: knowledge.Snippet(item.Content, text),
		})
	}
	return results
}

// generate calls the external model within the configured timeout.
func (p *Pipeline) generate(ctx context.Context, language string, retrieved []knowledge.SearchResult, sctx *session.Context, userMessage string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	systemPrompt := buildSystemPrompt(language, retrieved, sctx.Interests)
	resp, err := p.provider.Complete(callCtx, llm.CompletionRequest{
		Model:    p.model,
		Messages: buildMessages(systemPrompt, sctx.History, userMessage),
	})
	if err != nil {
		return "", err
	}
	if resp.Usage.Total() > 0 {
		log.Printf("pipeline: model %s used %d tokens (%d prompt, %d completion)",
			resp.Model, resp.Usage.Total(), resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	}
	return resp.Content, nil
}

// persist commits both turn messages to the session table, captures any
// lead details, and archives the exchange. Lead and archive writes are
// best effort.
func (p *Pipeline) persist(ctx context.Context, req ChatRequest, language string, result intent.Result, assistantText string, confidence float64) {
	if err := p.sessions.Update(req.SessionID, session.RoleUser, req.Message, string(result.Intent), result.Entities); err != nil {
		log.Printf("pipeline: persisting user message for session %s: %v", req.SessionID, err)
	}
	if err := p.sessions.Update(req.SessionID, session.RoleAssistant, assistantText, "", nil); err != nil {
		log.Printf("pipeline: persisting assistant message for session %s: %v", req.SessionID, err)
	}

	if p.leadStore != nil {
		lead := leads.Extract(req.SessionID, language, req.Message)
		if !lead.Empty() {
			if _, err := p.leadStore.Save(ctx, lead); err != nil {
				log.Printf("pipeline: saving lead for session %s: %v", req.SessionID, err)
			} else if profile, err := p.sessions.Personalization(req.SessionID); err == nil && profile.UserType == session.UserUnknown {
				if err := p.sessions.SetUserType(req.SessionID, session.UserProspect); err != nil {
					log.Printf("pipeline: setting user type for session %s: %v", req.SessionID, err)
				}
			}
		}
	}

	if p.archive != nil {
		if err := p.archive.SaveTurn(ctx, req.SessionID, language, req.Message, assistantText, string(result.Intent), confidence); err != nil {
			log.Printf("pipeline: archiving turn for session %s: %v", req.SessionID, err)
		}
	}
}
