package config

// SupportedLanguages are the languages the assistant can answer in.
var SupportedLanguages = []string{"en", "ar"}

// IsSupportedLanguage reports whether lang is one of the supported language codes.
func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:            ProviderOpenAI,
		Model:               "gpt-4o-mini",
		EmbeddingProvider:   ProviderOpenAI,
		EmbeddingModel:      "text-embedding-3-small",
		DefaultLanguage:     "en",
		KnowledgeDir:        "",
		DataDir:             ".siteassist",
		ModelTimeoutSeconds: 10,
		HistoryLimit:        20,
		FlowLimit:           10,
		LLMRPM:              60,
		SemanticFallback:    false,
		Server: ServerConfig{
			Port:     8080,
			AllowAll: false,
		},
	}
}
