package cli

import (
	"fmt"

	"page-assist/internal/adapter/gemini"
	"page-assist/internal/adapter/llm"
	"page-assist/internal/config"
	"page-assist/internal/domain"
)

// generatorFactory builds the configured text-generation backend.
var generatorFactory = newGenerator

func newGenerator(cfg *config.Config) (domain.Generator, error) {
	switch cfg.LLM.Provider {
	case config.ProviderOllama:
		return llm.NewOllamaGenerator(cfg.LLM.Ollama, cfg.LLM.Generation)
	case config.ProviderGemini:
		return gemini.NewClient(cfg.LLM.Gemini, cfg.LLM.Generation)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %q", cfg.LLM.Provider)
	}
}
