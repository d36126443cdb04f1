package usecase

import (
	"errors"

	"brainly-backend/internal/content/domain"
	"brainly-backend/internal/content/dto"
)

var (
	ErrInvalidShareLink = errors.New("invalid share link")
	ErrInvalidContentID = errors.New("invalid content id")
	ErrContentNotFound  = errors.New("content not found")
	ErrOwnerNotFound    = errors.New("share link owner not found")
)

// ContentUsecase defines the interface for saved content and brain sharing
type ContentUsecase interface {
	// CreateContent saves a link for userID, or for the owner of req.ShareHash when set
	CreateContent(userID string, req *dto.CreateContentRequest) (*domain.Content, error)

	// ListContent returns a user's content with the owner populated
	ListContent(userID string) ([]*domain.Content, error)

	DeleteContent(userID, contentID string) error

	// ShareBrain returns the user's share hash, creating one when needed.
	// With share=false the link is removed and "" is returned.
	ShareBrain(userID string, share bool) (string, error)

	GetSharedBrain(hash string) (*dto.SharedBrainResponse, error)

	SetIndexer(indexer Indexer)
}

// Indexer is notified when content changes so it can keep the semantic index current
type Indexer interface {
	IndexDocument(userID, docID, kind, title, text string)
	RemoveDocument(docID string)
}

// IndexKind tags content documents in the semantic index
const IndexKind = "content"
