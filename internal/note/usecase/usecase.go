package usecase

import (
	"errors"

	"brainly-backend/internal/note/domain"
	"brainly-backend/internal/note/dto"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrInvalidNoteID = errors.New("invalid note id")
	ErrNoteNotFound  = errors.New("note not found")
)

// NoteUsecase defines the interface for note business logic
type NoteUsecase interface {
	// CreateNote stores a note with a trimmed title and the next color in the user's cycle
	CreateNote(userID string, req *dto.CreateNoteRequest) (*domain.Note, error)

	ListNotes(userID string) ([]*domain.Note, error)

	UpdateNote(userID, noteID string, req *dto.UpdateNoteRequest) (*domain.Note, error)

	DeleteNote(userID, noteID string) error

	SetPinned(userID, noteID string, pinned bool) (*domain.Note, error)

	SetIndexer(indexer Indexer)
}

// Indexer is notified when notes change so it can keep the semantic index current
type Indexer interface {
	IndexDocument(userID, docID, kind, title, text string)
	RemoveDocument(docID string)
}

// IndexKind tags note documents in the semantic index
const IndexKind = "note"
