package dto

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest carries the fields to change; nil fields are left untouched
type UpdateNoteRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	IsPinned *bool   `json:"isPinned,omitempty"`
}

type PinNoteRequest struct {
	IsPinned *bool `json:"isPinned" binding:"required"`
}
