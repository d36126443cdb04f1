package repository

import "brainly-backend/internal/content/domain"

// ContentRepository defines the interface for saved content data access
type ContentRepository interface {
	Create(content *domain.Content) error

	// FindByUserID returns a user's content in the order it was saved
	FindByUserID(userID string) ([]*domain.Content, error)

	FindByIDs(userID string, ids []string) ([]*domain.Content, error)

	// DeleteByIDAndUser removes an item only when it belongs to userID and reports whether it did
	DeleteByIDAndUser(id, userID string) (bool, error)
}

// ShareLinkRepository defines the interface for share link data access
type ShareLinkRepository interface {
	Create(link *domain.ShareLink) error
	FindByUserID(userID string) (*domain.ShareLink, error)
	FindByHash(hash string) (*domain.ShareLink, error)
	DeleteByUserID(userID string) error
}
