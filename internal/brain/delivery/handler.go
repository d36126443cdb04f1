package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"brainly-backend/internal/brain/dto"
	"brainly-backend/internal/brain/usecase"
	"brainly-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// BrainHandler handles AI and search requests over a user's brain
type BrainHandler struct {
	brainUsecase usecase.BrainUsecase
}

// NewBrainHandler creates a new BrainHandler
func NewBrainHandler(brainUsecase usecase.BrainUsecase) *BrainHandler {
	return &BrainHandler{
		brainUsecase: brainUsecase,
	}
}

// Ask answers a question from the caller's notes and saved content
// POST /api/v1/ai/ask
func (h *BrainHandler) Ask(c *gin.Context) {
	var req dto.AskRequest
	_ = c.ShouldBindJSON(&req)

	ctx := c.Request.Context()
	answer, err := h.brainUsecase.Ask(ctx, c.GetString("userID"), req.Question)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyQuestion) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Question is required"})
			return
		}
		logger.Errorf(ctx, "[Brain] ask failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to process question"})
		return
	}

	c.JSON(http.StatusOK, dto.AskResponse{
		Answer:  answer.Text,
		Sources: answer.Sources,
	})
}

// Health reports whether the model is reachable
// GET /api/v1/ai/health
func (h *BrainHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Ready: h.brainUsecase.HealthCheck(c.Request.Context())})
}

// Search runs a typo-tolerant search over titles and bodies
// GET /api/v1/search?q=paris&limit=20
func (h *BrainHandler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	results, err := h.brainUsecase.Search(c.GetString("userID"), c.Query("q"), limit)
	if err != nil {
		logger.Errorf(c.Request.Context(), "[Brain] search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

// SemanticSearch runs a vector search over the caller's documents
// POST /api/v1/search/semantic
func (h *BrainHandler) SemanticSearch(c *gin.Context) {
	var req dto.SemanticSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	results, err := h.brainUsecase.SemanticSearch(ctx, c.GetString("userID"), req.Query, req.Limit)
	if err != nil {
		if errors.Is(err, usecase.ErrSemanticSearchUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Semantic search not available"})
			return
		}
		logger.Errorf(ctx, "[Brain] semantic search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}
