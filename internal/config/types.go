package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
	// ProviderStatic serves canned completions without any upstream model.
	// Useful for demos and tests.
	ProviderStatic ProviderType = "static"
)

// Config is the top-level siteassist configuration, corresponding to .siteassist.yml.
type Config struct {
	Provider          ProviderType `yaml:"provider" koanf:"provider"`
	Model             string       `yaml:"model" koanf:"model"`
	EmbeddingProvider ProviderType `yaml:"embedding_provider" koanf:"embedding_provider"`
	EmbeddingModel    string       `yaml:"embedding_model" koanf:"embedding_model"`

	// DefaultLanguage is used when a chat request does not carry a language.
	DefaultLanguage string `yaml:"default_language" koanf:"default_language"`

	// KnowledgeDir holds the YAML knowledge catalog files. When empty the
	// built-in catalog is used.
	KnowledgeDir string `yaml:"knowledge_dir" koanf:"knowledge_dir"`

	// DataDir is where the SQLite database lives.
	DataDir string `yaml:"data_dir" koanf:"data_dir"`

	// ModelTimeoutSeconds bounds a single upstream completion call.
	ModelTimeoutSeconds int `yaml:"model_timeout_seconds" koanf:"model_timeout_seconds"`

	// HistoryLimit and FlowLimit bound per-session conversation state.
	HistoryLimit int `yaml:"history_limit" koanf:"history_limit"`
	FlowLimit    int `yaml:"flow_limit" koanf:"flow_limit"`

	// LLMRPM rate-limits upstream completion calls. 0 disables the limiter.
	LLMRPM int `yaml:"llm_rpm" koanf:"llm_rpm"`

	// SemanticFallback enables vector search when the keyword index misses.
	SemanticFallback bool `yaml:"semantic_fallback" koanf:"semantic_fallback"`

	Server ServerConfig `yaml:"server" koanf:"server"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
