package delivery

import (
	"net/http"
	"strings"

	"brainly-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware accepts "Bearer <token>" or a bare token and stores the caller in "userID".
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusForbidden, gin.H{"message": "You are not logged in"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		userID, err := authUsecase.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
