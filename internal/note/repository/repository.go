package repository

import "brainly-backend/internal/note/domain"

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	Create(note *domain.Note) error

	CountByUserID(userID string) (int64, error)

	// FindByUserID returns pinned notes first, each group most recently updated first
	FindByUserID(userID string) ([]*domain.Note, error)

	FindByIDs(userID string, ids []string) ([]*domain.Note, error)

	// FindByIDAndUser returns nil when the note does not exist or belongs to someone else
	FindByIDAndUser(id, userID string) (*domain.Note, error)

	Update(note *domain.Note) error

	DeleteByIDAndUser(id, userID string) (bool, error)
}
