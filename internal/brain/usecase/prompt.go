package usecase

import (
	"context"
	"fmt"
	"strings"

	contentdomain "brainly-backend/internal/content/domain"
	notedomain "brainly-backend/internal/note/domain"
	"brainly-backend/pkg/enrich"
	"brainly-backend/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const (
	NoNotesPlaceholder   = "No notes saved"
	NoContentPlaceholder = "No content saved"
)

const promptTemplate = `You are a helpful assistant with access to the user's personal knowledge base, their "second brain".
Answer the question using all of the information below: the user's notes, the content they saved together with its details, and the latest related news.
If the information needed to answer is not available, say so honestly instead of guessing.

USER'S NOTES:
%s

USER'S SAVED CONTENT:
%s

QUESTION: %s

ANSWER:`

// PromptBuilder turns a user's brain and a question into a single model prompt
type PromptBuilder struct {
	youtube     enrich.Enricher
	twitter     enrich.Enricher
	news        enrich.Enricher
	youtubeKey  string
	newsKey     string
	concurrency int
}

// PromptBuilderConfig holds the enrichers and credentials used per saved item
type PromptBuilderConfig struct {
	YouTube       enrich.Enricher
	Twitter       enrich.Enricher
	News          enrich.Enricher
	YouTubeAPIKey string
	NewsAPIKey    string
	// Concurrency bounds how many items are enriched at once; 1 or less is sequential
	Concurrency int
}

func NewPromptBuilder(cfg PromptBuilderConfig) *PromptBuilder {
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &PromptBuilder{
		youtube:     cfg.YouTube,
		twitter:     cfg.Twitter,
		news:        cfg.News,
		youtubeKey:  cfg.YouTubeAPIKey,
		newsKey:     cfg.NewsAPIKey,
		concurrency: concurrency,
	}
}

// BuildPrompt rejects a blank question before any enrichment call is made.
func (b *PromptBuilder) BuildPrompt(ctx context.Context, notes []*notedomain.Note, items []*contentdomain.Content, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}

	notesBlock := NoNotesPlaceholder
	if len(notes) > 0 {
		blocks := make([]string, 0, len(notes))
		for _, n := range notes {
			blocks = append(blocks, fmt.Sprintf("Note: %s\nContent: %s", n.Title, n.Content))
		}
		notesBlock = strings.Join(blocks, "\n\n")
	}

	contentBlock := NoContentPlaceholder
	if len(items) > 0 {
		contentBlock = strings.Join(b.enrichItems(ctx, items), "\n\n")
	}

	return fmt.Sprintf(promptTemplate, notesBlock, contentBlock, question), nil
}

// enrichItems returns one block per item in input order.
func (b *PromptBuilder) enrichItems(ctx context.Context, items []*contentdomain.Content) []string {
	blocks := make([]string, len(items))

	if b.concurrency == 1 {
		for i, item := range items {
			blocks[i] = b.itemBlock(ctx, item)
		}
		return blocks
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, item := range items {
		g.Go(func() error {
			blocks[i] = b.itemBlock(gCtx, item)
			return nil
		})
	}
	_ = g.Wait()
	return blocks
}

// itemBlock keeps the parts gathered before a panicking enricher.
func (b *PromptBuilder) itemBlock(ctx context.Context, item *contentdomain.Content) (block string) {
	parts := []string{fmt.Sprintf("%s: %s", strings.ToUpper(string(item.Type)), item.Title)}

	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "[Brain] enrichment of item %s aborted: %v", item.ID, r)
			block = strings.Join(parts, "\n")
		}
	}()

	switch item.Type {
	case contentdomain.ContentTypeYouTube:
		if item.Link != "" && b.youtube != nil {
			if details := b.youtube.Fetch(ctx, item.Link, b.youtubeKey); details != "" {
				parts = append(parts, details)
			}
		}
	case contentdomain.ContentTypeTwitter:
		if b.twitter != nil {
			parts = append(parts, "Tweet: "+b.twitter.Fetch(ctx, item.Link, ""))
		}
	}

	if item.Description != "" {
		parts = append(parts, "User Notes: "+item.Description)
	}

	if b.news != nil {
		parts = append(parts, "Latest News: "+b.news.Fetch(ctx, item.Title, b.newsKey))
	}

	return strings.Join(parts, "\n")
}
