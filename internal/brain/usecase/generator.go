package usecase

import (
	"context"
	"fmt"
	"strings"

	"brainly-backend/pkg/ai"
	"brainly-backend/pkg/logger"
)

const (
	NoAnswerPlaceholder = "No answer generated"

	answerMaxTokens = 1000
	healthMaxTokens = 10
	healthPrompt    = "Reply with the single word OK."
)

// AnswerGenerator sends assembled prompts to the configured model
type AnswerGenerator struct {
	gen ai.Generator
}

func NewAnswerGenerator(gen ai.Generator) *AnswerGenerator {
	return &AnswerGenerator{gen: gen}
}

// Generate returns the first completion, or NoAnswerPlaceholder when the model produced none.
func (g *AnswerGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.gen == nil {
		return "", fmt.Errorf("%w: no model configured", ErrGenerationFailed)
	}

	text, err := g.gen.Generate(ctx, prompt, answerMaxTokens)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if strings.TrimSpace(text) == "" {
		logger.Warnf(ctx, "[Brain] model returned no completion")
		return NoAnswerPlaceholder, nil
	}
	return text, nil
}

// HealthCheck never fails; any error means not ready.
func (g *AnswerGenerator) HealthCheck(ctx context.Context) bool {
	if g.gen == nil {
		return false
	}
	if _, err := g.gen.Generate(ctx, healthPrompt, healthMaxTokens); err != nil {
		logger.Warnf(ctx, "[Brain] health check failed: %v", err)
		return false
	}
	return true
}
