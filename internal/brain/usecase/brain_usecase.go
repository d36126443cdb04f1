package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"brainly-backend/internal/brain/dto"
	contentdomain "brainly-backend/internal/content/domain"
	contentrepo "brainly-backend/internal/content/repository"
	contentusecase "brainly-backend/internal/content/usecase"
	notedomain "brainly-backend/internal/note/domain"
	noterepo "brainly-backend/internal/note/repository"
	noteusecase "brainly-backend/internal/note/usecase"
	"brainly-backend/pkg/fuzzy"
	"brainly-backend/pkg/logger"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 50
	snippetLength      = 160
	titleWeight        = 2.0
	bodyWeight         = 1.0
)

// brainUsecase implements BrainUsecase interface
type brainUsecase struct {
	noteRepo    noterepo.NoteRepository
	contentRepo contentrepo.ContentRepository
	prompts     *PromptBuilder
	answers     *AnswerGenerator
	vectorStore VectorStore
}

// NewBrainUsecase creates a new instance of brainUsecase. vectorStore may be nil.
func NewBrainUsecase(
	noteRepo noterepo.NoteRepository,
	contentRepo contentrepo.ContentRepository,
	prompts *PromptBuilder,
	answers *AnswerGenerator,
	vectorStore VectorStore,
) BrainUsecase {
	return &brainUsecase{
		noteRepo:    noteRepo,
		contentRepo: contentRepo,
		prompts:     prompts,
		answers:     answers,
		vectorStore: vectorStore,
	}
}

func (u *brainUsecase) Ask(ctx context.Context, userID, question string) (*Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	notes, err := u.noteRepo.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	items, err := u.contentRepo.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	prompt, err := u.prompts.BuildPrompt(ctx, notes, items, question)
	if err != nil {
		return nil, err
	}
	logger.Debugf(ctx, "[Brain] prompt for user %s: %d notes, %d items, %d chars", userID, len(notes), len(items), len(prompt))

	text, err := u.answers.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &Answer{
		Text: text,
		Sources: dto.Sources{
			NotesCount:   len(notes),
			ContentCount: len(items),
		},
	}, nil
}

func (u *brainUsecase) HealthCheck(ctx context.Context) bool {
	return u.answers.HealthCheck(ctx)
}

func (u *brainUsecase) Search(userID, query string, limit int) ([]*dto.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*dto.SearchResult{}, nil
	}
	limit = clampLimit(limit)

	notes, err := u.noteRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	items, err := u.contentRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	results := make([]*dto.SearchResult, 0)
	for _, n := range notes {
		score := fuzzy.Score(query,
			fuzzy.Field{Text: n.Title, Weight: titleWeight},
			fuzzy.Field{Text: n.Content, Weight: bodyWeight},
		)
		if score > 0 {
			r := noteResult(n)
			r.Score = score
			results = append(results, r)
		}
	}
	for _, c := range items {
		score := fuzzy.Score(query,
			fuzzy.Field{Text: c.Title, Weight: titleWeight},
			fuzzy.Field{Text: c.Description, Weight: bodyWeight},
		)
		if score > 0 {
			r := contentResult(c)
			r.Score = score
			results = append(results, r)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (u *brainUsecase) SemanticSearch(ctx context.Context, userID, query string, limit int) ([]*dto.SearchResult, error) {
	if u.vectorStore == nil {
		return nil, ErrSemanticSearchUnavailable
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return []*dto.SearchResult{}, nil
	}

	ids, distances, err := u.vectorStore.SemanticSearch(ctx, userID, query, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("semantic search failed: %w", err)
	}
	if len(ids) == 0 {
		return []*dto.SearchResult{}, nil
	}

	notes, err := u.noteRepo.FindByIDs(userID, ids)
	if err != nil {
		return nil, err
	}
	items, err := u.contentRepo.FindByIDs(userID, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*dto.SearchResult, len(notes)+len(items))
	for _, n := range notes {
		byID[n.ID] = noteResult(n)
	}
	for _, c := range items {
		byID[c.ID] = contentResult(c)
	}

	// ids arrive nearest first; documents deleted since indexing are skipped
	results := make([]*dto.SearchResult, 0, len(ids))
	for i, id := range ids {
		r, ok := byID[id]
		if !ok {
			continue
		}
		if i < len(distances) {
			r.Distance = distances[i]
		}
		results = append(results, r)
	}
	return results, nil
}

func noteResult(n *notedomain.Note) *dto.SearchResult {
	return &dto.SearchResult{
		ID:      n.ID,
		Kind:    noteusecase.IndexKind,
		Title:   n.Title,
		Snippet: snippet(n.Content),
	}
}

func contentResult(c *contentdomain.Content) *dto.SearchResult {
	return &dto.SearchResult{
		ID:      c.ID,
		Kind:    contentusecase.IndexKind,
		Title:   c.Title,
		Snippet: snippet(c.Description),
		Link:    c.Link,
		Type:    string(c.Type),
	}
}

func snippet(s string) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= snippetLength {
		return string(r)
	}
	return string(r[:snippetLength]) + "..."
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultSearchLimit
	}
	if limit > maxSearchLimit {
		return maxSearchLimit
	}
	return limit
}
