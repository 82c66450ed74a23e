package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ziadkadry99/site-assist/internal/config"
	"github.com/ziadkadry99/site-assist/internal/db"
	"github.com/ziadkadry99/site-assist/internal/embeddings"
	"github.com/ziadkadry99/site-assist/internal/knowledge"
	"github.com/ziadkadry99/site-assist/internal/leads"
	"github.com/ziadkadry99/site-assist/internal/llm"
	"github.com/ziadkadry99/site-assist/internal/pipeline"
	"github.com/ziadkadry99/site-assist/internal/session"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `siteassist init` to create a config file", err)
	}
	return cfg, nil
}

// createLLMProviderFromConfig creates the completion backend, wrapped in
// a rate limiter when one is configured.
func createLLMProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, err
	}
	if cfg.LLMRPM > 0 {
		provider = llm.NewRateLimitedProvider(provider, cfg.LLMRPM)
	}
	return provider, nil
}

// createEmbedderFromConfig creates an embeddings.Embedder for semantic
// fallback search.
func createEmbedderFromConfig(cfg *config.Config) (embeddings.Embedder, error) {
	provider := cfg.EmbeddingProvider
	if provider == "" {
		provider = cfg.Provider
	}

	switch provider {
	case config.ProviderOpenAI:
		apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderOpenAI))
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required for OpenAI embeddings")
		}
		return embeddings.NewOpenAIEmbedder(apiKey, cfg.EmbeddingModel), nil
	case config.ProviderOllama:
		model := cfg.EmbeddingModel
		if model == "" {
			model = "nomic-embed-text"
		}
		return embeddings.NewOllamaEmbedder(model, 768, ""), nil
	default:
		return nil, fmt.Errorf("provider %s has no embedding backend", provider)
	}
}

// loadCatalog builds the knowledge index from the configured catalog
// directory, falling back to the built-in catalog.
func loadCatalog(cfg *config.Config) (*knowledge.Index, error) {
	items := knowledge.BuiltinCatalog()
	if cfg.KnowledgeDir != "" {
		loaded, err := knowledge.LoadCatalogDir(cfg.KnowledgeDir)
		if err != nil {
			return nil, fmt.Errorf("loading knowledge catalog: %w", err)
		}
		if len(loaded) > 0 {
			items = loaded
		}
	}
	return knowledge.NewIndexWithItems(items)
}

// assistantDeps bundles everything a running assistant needs.
type assistantDeps struct {
	index    *knowledge.Index
	sessions *session.Table
	pipe     *pipeline.Pipeline
	leads    *leads.Store
	database *db.DB
}

// buildAssistant assembles the full pipeline from config. withStorage
// controls whether SQLite-backed lead capture and transcript archiving
// are wired in; the chat REPL runs without them.
func buildAssistant(cfg *config.Config, withStorage bool) (*assistantDeps, error) {
	index, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	provider, err := createLLMProviderFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating LLM provider: %w", err)
	}

	var semantic *knowledge.SemanticStore
	if cfg.SemanticFallback {
		embedder, err := createEmbedderFromConfig(cfg)
		if err != nil {
			return nil, fmt.Errorf("creating embedder: %w", err)
		}
		semantic, err = knowledge.NewSemanticStore(embedder)
		if err != nil {
			return nil, fmt.Errorf("creating semantic store: %w", err)
		}
		if err := semantic.AddItems(context.Background(), index.Items()); err != nil {
			log.Printf("warning: seeding semantic store: %v", err)
		}
	}

	deps := &assistantDeps{
		index:    index,
		sessions: session.NewTable(cfg.HistoryLimit, cfg.FlowLimit),
	}

	opts := pipeline.Options{
		Index:           index,
		Semantic:        semantic,
		Sessions:        deps.sessions,
		Provider:        provider,
		Model:           cfg.Model,
		DefaultLanguage: cfg.DefaultLanguage,
		ModelTimeout:    time.Duration(cfg.ModelTimeoutSeconds) * time.Second,
	}

	if withStorage {
		database, err := db.Open(filepath.Join(cfg.DataDir, "siteassist.db"))
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		deps.database = database
		deps.leads = leads.NewStore(database)
		opts.Leads = deps.leads
		opts.Archive = pipeline.NewArchive(database)
	}

	deps.pipe = pipeline.New(opts)
	return deps, nil
}
