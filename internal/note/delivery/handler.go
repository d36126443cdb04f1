package delivery

import (
	"errors"
	"net/http"

	"brainly-backend/internal/note/domain"
	"brainly-backend/internal/note/dto"
	"brainly-backend/internal/note/usecase"
	"brainly-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// NoteHandler handles note-related HTTP requests
type NoteHandler struct {
	noteUsecase usecase.NoteUsecase
}

// NewNoteHandler creates a new NoteHandler
func NewNoteHandler(noteUsecase usecase.NoteUsecase) *NoteHandler {
	return &NoteHandler{
		noteUsecase: noteUsecase,
	}
}

// CreateNote creates a note
// POST /api/v1/note
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "error": err.Error()})
		return
	}

	note, err := h.noteUsecase.CreateNote(c.GetString("userID"), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Title is required"})
			return
		}
		logger.Errorf(c.Request.Context(), "[Note] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note created", "note": note})
}

// GetNotes lists the caller's notes
// GET /api/v1/notes
func (h *NoteHandler) GetNotes(c *gin.Context) {
	notes, err := h.noteUsecase.ListNotes(c.GetString("userID"))
	if err != nil {
		logger.Errorf(c.Request.Context(), "[Note] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch notes"})
		return
	}

	if notes == nil {
		notes = []*domain.Note{}
	}
	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

// UpdateNote updates title, content or pin state
// PUT /api/v1/note/:noteId
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "error": err.Error()})
		return
	}

	note, err := h.noteUsecase.UpdateNote(c.GetString("userID"), c.Param("noteId"), &req)
	if err != nil {
		h.writeError(c, err, "Failed to update note")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note updated", "note": note})
}

// DeleteNote deletes a note
// DELETE /api/v1/note/:noteId
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	if err := h.noteUsecase.DeleteNote(c.GetString("userID"), c.Param("noteId")); err != nil {
		h.writeError(c, err, "Failed to delete note")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted"})
}

// PinNote sets the pin state
// POST /api/v1/note/:noteId/pin
func (h *NoteHandler) PinNote(c *gin.Context) {
	var req dto.PinNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "error": err.Error()})
		return
	}

	note, err := h.noteUsecase.SetPinned(c.GetString("userID"), c.Param("noteId"), *req.IsPinned)
	if err != nil {
		h.writeError(c, err, "Failed to pin note")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note updated", "note": note})
}

func (h *NoteHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidNoteID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid note ID"})
	case errors.Is(err, usecase.ErrNoteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Note not found"})
	default:
		logger.Errorf(c.Request.Context(), "[Note] %s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
	}
}
