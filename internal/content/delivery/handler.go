package delivery

import (
	"errors"
	"net/http"

	"brainly-backend/internal/content/domain"
	"brainly-backend/internal/content/dto"
	"brainly-backend/internal/content/usecase"
	"brainly-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ContentHandler handles saved content and share link requests
type ContentHandler struct {
	contentUsecase usecase.ContentUsecase
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentUsecase usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{
		contentUsecase: contentUsecase,
	}
}

// CreateContent saves a link
// POST /api/v1/content
func (h *ContentHandler) CreateContent(c *gin.Context) {
	var req dto.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "error": err.Error()})
		return
	}

	content, err := h.contentUsecase.CreateContent(c.GetString("userID"), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidShareLink) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Invalid share link"})
			return
		}
		logger.Errorf(c.Request.Context(), "[Content] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content added", "content": content})
}

// GetContent lists the caller's content
// GET /api/v1/content
func (h *ContentHandler) GetContent(c *gin.Context) {
	contents, err := h.contentUsecase.ListContent(c.GetString("userID"))
	if err != nil {
		logger.Errorf(c.Request.Context(), "[Content] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch content"})
		return
	}

	if contents == nil {
		contents = []*domain.Content{}
	}
	c.JSON(http.StatusOK, gin.H{"content": contents})
}

// DeleteContent removes one of the caller's items
// DELETE /api/v1/content
func (h *ContentHandler) DeleteContent(c *gin.Context) {
	var req dto.DeleteContentRequest
	_ = c.ShouldBindJSON(&req)
	if req.ContentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "contentId required"})
		return
	}

	err := h.contentUsecase.DeleteContent(c.GetString("userID"), req.ContentID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidContentID):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid contentId format"})
		case errors.Is(err, usecase.ErrContentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Content not found or not yours"})
		default:
			logger.Errorf(c.Request.Context(), "[Content] delete failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete content"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// ShareBrain enables or disables the caller's public share link
// POST /api/v1/brain/share
func (h *ContentHandler) ShareBrain(c *gin.Context) {
	var req dto.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "error": err.Error()})
		return
	}

	hash, err := h.contentUsecase.ShareBrain(c.GetString("userID"), req.Share)
	if err != nil {
		logger.Errorf(c.Request.Context(), "[Content] share failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update share link"})
		return
	}

	if !req.Share {
		c.JSON(http.StatusOK, gin.H{"message": "Removed link"})
		return
	}
	c.JSON(http.StatusOK, dto.ShareResponse{Hash: hash})
}

// GetSharedBrain returns the content behind a share link
// GET /api/v1/brain/:shareLink
func (h *ContentHandler) GetSharedBrain(c *gin.Context) {
	brain, err := h.contentUsecase.GetSharedBrain(c.Param("shareLink"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidShareLink) || errors.Is(err, usecase.ErrOwnerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Sorry incorrect input"})
			return
		}
		logger.Errorf(c.Request.Context(), "[Content] shared brain lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch shared brain"})
		return
	}

	c.JSON(http.StatusOK, brain)
}
