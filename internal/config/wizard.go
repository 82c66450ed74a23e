package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .siteassist.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to siteassist! Let's configure your assistant.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select LLM provider",
		Items: []string{"openai", "ollama", "static (no upstream model)"},
	}
	idx, _, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	providers := []ProviderType{ProviderOpenAI, ProviderOllama, ProviderStatic}
	cfg.Provider = providers[idx]

	// 2. Model name.
	if cfg.Provider != ProviderStatic {
		modelPrompt := promptui.Prompt{
			Label:   "Model",
			Default: defaultModelFor(cfg.Provider),
		}
		model, err := modelPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("model: %w", err)
		}
		cfg.Model = model
	}

	// 3. Default language.
	langPrompt := promptui.Select{
		Label: "Default language",
		Items: []string{"en — English", "ar — Arabic"},
	}
	langIdx, _, err := langPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("language selection: %w", err)
	}
	cfg.DefaultLanguage = SupportedLanguages[langIdx]

	// 4. Knowledge catalog directory.
	knowledgePrompt := promptui.Prompt{
		Label:   "Knowledge catalog directory (blank for built-in catalog)",
		Default: "",
	}
	knowledgeDir, err := knowledgePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("knowledge dir: %w", err)
	}
	cfg.KnowledgeDir = knowledgeDir

	// 5. Server port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP server port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("port must be a number in 1..65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// Check for API key.
	if envVar := APIKeyEnvVar(cfg.Provider); envVar != "" {
		if os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: Set %s in your environment before running siteassist server.\n", envVar)
		}
	}

	configPath := ".siteassist.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}

// defaultModelFor returns the suggested chat model for a provider.
func defaultModelFor(p ProviderType) string {
	switch p {
	case ProviderOllama:
		return "llama3"
	default:
		return "gpt-4o-mini"
	}
}
