package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"page-assist/internal/config"
	"page-assist/internal/domain"
	"page-assist/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// LangchainGenerator implements domain.Generator on top of any langchaingo model.
type LangchainGenerator struct {
	model      llms.Model
	generation config.GenerationConfig
}

// NewLangchainGenerator wraps model with the configured generation parameters.
func NewLangchainGenerator(model llms.Model, gen config.GenerationConfig) *LangchainGenerator {
	return &LangchainGenerator{
		model:      model,
		generation: gen,
	}
}

// NewOllamaGenerator connects to an Ollama server. The HTTP client has no
// timeout; the caller's context bounds each call.
func NewOllamaGenerator(cfg config.OllamaConfig, gen config.GenerationConfig) (*LangchainGenerator, error) {
	model, err := ollama.New(
		ollama.WithServerURL(cfg.ServerURL),
		ollama.WithModel(cfg.Model),
		ollama.WithHTTPClient(&http.Client{}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}
	logger.Get().Info("Initialized Ollama generator",
		zap.String("server_url", cfg.ServerURL),
		zap.String("model", cfg.Model))
	return NewLangchainGenerator(model, gen), nil
}

// Generate runs a single-prompt completion.
func (g *LangchainGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	response, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt,
		llms.WithTemperature(g.generation.Temperature),
		llms.WithTopK(g.generation.TopK),
		llms.WithTopP(g.generation.TopP),
		llms.WithMaxTokens(g.generation.MaxOutputTokens),
	)
	if err != nil {
		logger.Get().Error("Failed to get response from LLM", zap.Error(err))
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	return stripThinking(response), nil
}

// stripThinking drops a leading <think>...</think> block emitted by reasoning models.
func stripThinking(s string) string {
	start := strings.Index(s, "<think>")
	if start == -1 {
		return s
	}
	end := strings.Index(s, "</think>")
	if end == -1 || end < start {
		return s
	}
	return strings.TrimSpace(s[:start] + s[end+len("</think>"):])
}

var _ domain.Generator = (*LangchainGenerator)(nil)
