package ai

import (
	"context"
)

// Generator is the interface every LLM provider implements.
// Implement this interface to add new AI providers (OpenAI, Gemini, Ollama, etc.)
type Generator interface {
	// Generate returns the first completion for prompt, capped at maxTokens output tokens.
	// An empty string with a nil error means the provider answered with no completion.
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
