package ai

import (
	"context"
	"fmt"
	"time"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "openai", "gemini", "ollama" or "auto"
	Model    string       // provider specific; empty picks the provider default
	Timeout  time.Duration

	// OpenAI-compatible config (OpenAI, Groq, OpenRouter, ...)
	OpenAIAPIKey  string
	OpenAIBaseURL string

	// Gemini config
	GeminiAPIKey string

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"
}

// NewGenerator creates a Generator based on the config.
// Switch AI provider by changing config.Provider.
func NewGenerator(ctx context.Context, cfg Config) (Generator, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for OpenAI provider")
		}
		return NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.Model, cfg.Timeout), nil

	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.Model, cfg.Timeout)

	case ProviderOllama:
		return NewOllamaGenerator(cfg.OllamaBaseURL, cfg.OllamaModel, cfg.Timeout), nil

	default:
		// Prefer a hosted provider whose key is present, otherwise local Ollama
		if cfg.OpenAIAPIKey != "" {
			return NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.Model, cfg.Timeout), nil
		}
		if cfg.GeminiAPIKey != "" {
			return NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.Model, cfg.Timeout)
		}
		return NewOllamaGenerator(cfg.OllamaBaseURL, cfg.OllamaModel, cfg.Timeout), nil
	}
}
