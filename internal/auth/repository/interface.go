package repository

import authdomain "brainly-backend/internal/auth/domain"

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Create(user *authdomain.User) error
	// FindByUsername returns nil, nil when no user matches
	FindByUsername(username string) (*authdomain.User, error)
	// FindByID returns nil, nil when no user matches
	FindByID(id string) (*authdomain.User, error)
	// FindByIDs returns the matching users keyed by id
	FindByIDs(ids []string) (map[string]*authdomain.User, error)
}
