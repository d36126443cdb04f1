package delivery

import (
	"errors"
	"net/http"

	authdto "brainly-backend/internal/auth/dto"
	"brainly-backend/internal/auth/usecase"
	"brainly-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup, signin and profile requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Signup registers a new user
// POST /api/v1/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req authdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "error": err.Error()})
		return
	}

	if err := h.authUsecase.Signup(&req); err != nil {
		if errors.Is(err, usecase.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
			return
		}
		logger.Errorf(c.Request.Context(), "[Auth] signup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to sign up"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User signed up"})
}

// Signin exchanges credentials for an access token
// POST /api/v1/signin
func (h *AuthHandler) Signin(c *gin.Context) {
	var req authdto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Signin(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Incorrect credentials"})
			return
		}
		logger.Errorf(c.Request.Context(), "[Auth] signin failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to sign in"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user's username
// GET /api/v1/user
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUsecase.GetUser(c.GetString("userID"))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch user data"})
		return
	}

	c.JSON(http.StatusOK, authdto.UserResponse{Username: user.Username})
}
