package usecase

import (
	"context"
	"errors"

	"brainly-backend/internal/brain/dto"
)

var (
	ErrEmptyQuestion             = errors.New("question is required")
	ErrGenerationFailed          = errors.New("AI request failed")
	ErrSemanticSearchUnavailable = errors.New("semantic search not available")
)

// Answer is the model's reply together with how much of the brain went into the prompt
type Answer struct {
	Text    string
	Sources dto.Sources
}

// BrainUsecase answers questions over a user's notes and saved content
type BrainUsecase interface {
	// Ask assembles the user's notes and enriched content into a prompt and asks the model
	Ask(ctx context.Context, userID, question string) (*Answer, error)

	// HealthCheck reports whether the model currently answers a trivial prompt
	HealthCheck(ctx context.Context) bool

	// Search ranks the user's notes and content against query with typo tolerance
	Search(userID, query string, limit int) ([]*dto.SearchResult, error)

	SemanticSearch(ctx context.Context, userID, query string, limit int) ([]*dto.SearchResult, error)
}

// VectorStore persists embeddings of brain documents
type VectorStore interface {
	UpsertDocument(ctx context.Context, docID, userID, kind, title, text string) error
	DeleteDocument(ctx context.Context, docID string) error
	SemanticSearch(ctx context.Context, userID, query string, limit int) ([]string, []float64, error)
}
