package dto

type AskRequest struct {
	Question string `json:"question"`
}

type Sources struct {
	NotesCount   int `json:"notesCount"`
	ContentCount int `json:"contentCount"`
}

type AskResponse struct {
	Answer  string  `json:"answer"`
	Sources Sources `json:"sources"`
}

type HealthResponse struct {
	Ready bool `json:"ready"`
}

type SemanticSearchRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}

// SearchResult is a note or saved item matched by a search
type SearchResult struct {
	ID       string  `json:"_id"`
	Kind     string  `json:"kind"`
	Title    string  `json:"title"`
	Snippet  string  `json:"snippet,omitempty"`
	Link     string  `json:"link,omitempty"`
	Type     string  `json:"type,omitempty"`
	Score    float64 `json:"score,omitempty"`
	Distance float64 `json:"distance,omitempty"`
}
