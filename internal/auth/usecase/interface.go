package usecase

import (
	"errors"

	authdomain "brainly-backend/internal/auth/domain"
	authdto "brainly-backend/internal/auth/dto"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("incorrect credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	Signup(req *authdto.SignupRequest) error
	Signin(req *authdto.SigninRequest) (*authdto.TokenResponse, error)
	// ValidateToken parses a signed access token and returns the owning user id
	ValidateToken(token string) (string, error)
	GetUser(userID string) (*authdomain.User, error)
}
