package dto

import "brainly-backend/internal/content/domain"

type CreateContentRequest struct {
	Link        string `json:"link" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=youtube twitter"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ShareHash   string `json:"shareHash"`
}

type DeleteContentRequest struct {
	ContentID string `json:"contentId"`
}

type ShareRequest struct {
	Share bool `json:"share"`
}

type ShareResponse struct {
	Hash string `json:"hash"`
}

// SharedBrainResponse is the public view of a shared brain
type SharedBrainResponse struct {
	Username string            `json:"username"`
	Content  []*domain.Content `json:"content"`
}
