package api

import (
	"net/http"

	authDelivery "brainly-backend/internal/auth/delivery"
	authUsecase "brainly-backend/internal/auth/usecase"
	brainDelivery "brainly-backend/internal/brain/delivery"
	contentDelivery "brainly-backend/internal/content/delivery"
	noteDelivery "brainly-backend/internal/note/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	authUc authUsecase.AuthUsecase,
	authHandler *authDelivery.AuthHandler,
	contentHandler *contentDelivery.ContentHandler,
	noteHandler *noteDelivery.NoteHandler,
	brainHandler *brainDelivery.BrainHandler,
	askLimiter *brainDelivery.UserRateLimiter,
) {
	requireAuth := authDelivery.AuthMiddleware(authUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		v1 := api.Group("/v1")

		// Auth routes
		v1.POST("/signup", authHandler.Signup)
		v1.POST("/signin", authHandler.Signin)
		v1.GET("/user", requireAuth, authHandler.Me)

		// Content routes (protected)
		v1.POST("/content", requireAuth, contentHandler.CreateContent)
		v1.GET("/content", requireAuth, contentHandler.GetContent)
		v1.DELETE("/content", requireAuth, contentHandler.DeleteContent)

		// Sharing; reading a shared brain is public
		v1.POST("/brain/share", requireAuth, contentHandler.ShareBrain)
		v1.GET("/brain/:shareLink", contentHandler.GetSharedBrain)

		// Note routes (protected)
		v1.POST("/note", requireAuth, noteHandler.CreateNote)
		v1.GET("/notes", requireAuth, noteHandler.GetNotes)
		v1.PUT("/note/:noteId", requireAuth, noteHandler.UpdateNote)
		v1.DELETE("/note/:noteId", requireAuth, noteHandler.DeleteNote)
		v1.POST("/note/:noteId/pin", requireAuth, noteHandler.PinNote)

		// AI routes
		ai := v1.Group("/ai")
		{
			ai.GET("/health", brainHandler.Health)
			ai.POST("/ask", requireAuth, askLimiter.Middleware(), brainHandler.Ask)
		}

		// Search routes (protected)
		search := v1.Group("/search")
		search.Use(requireAuth)
		{
			search.GET("", brainHandler.Search)
			search.POST("/semantic", brainHandler.SemanticSearch)
		}
	}
}
