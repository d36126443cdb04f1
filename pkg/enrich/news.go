package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"brainly-backend/pkg/logger"
)

const (
	// NewsNotConfigured is returned without any network call when no API key is set.
	NewsNotConfigured = "News API key not configured"
	// NewsFetchFailed is returned on any request or decode error.
	NewsFetchFailed = "Could not fetch latest news"

	DefaultNewsBaseURL = "https://newsapi.org"
	newsTimeout        = 8 * time.Second
	newsPageSize       = 3
)

type newsResponse struct {
	Articles []newsArticle `json:"articles"`
}

type newsArticle struct {
	Title  string `json:"title"`
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	PublishedAt string `json:"publishedAt"`
	Description string `json:"description"`
}

// NewsEnricher looks up the latest headlines about a topic on NewsAPI.
type NewsEnricher struct {
	baseURL string
	client  *http.Client
}

func NewNewsEnricher(baseURL string) *NewsEnricher {
	if baseURL == "" {
		baseURL = DefaultNewsBaseURL
	}
	return &NewsEnricher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: newsTimeout},
	}
}

// Fetch returns a bulleted digest of up to three recent English articles about topic.
func (e *NewsEnricher) Fetch(ctx context.Context, topic, apiKey string) string {
	if apiKey == "" {
		return NewsNotConfigured
	}

	articles, err := e.search(ctx, topic, apiKey)
	if err != nil {
		logger.Errorf(ctx, "[News] search for %q failed: %v", topic, err)
		return NewsFetchFailed
	}
	if len(articles) == 0 {
		return fmt.Sprintf("No recent news found about \"%s\"", topic)
	}

	lines := make([]string, 0, len(articles))
	for _, a := range articles {
		lines = append(lines, fmt.Sprintf("• \"%s\" (%s) - %s\n  %s", a.Title, a.Source.Name, localDate(a.PublishedAt), a.Description))
	}
	return strings.Join(lines, "\n\n")
}

func (e *NewsEnricher) search(ctx context.Context, topic, apiKey string) ([]newsArticle, error) {
	params := url.Values{}
	params.Set("q", topic)
	params.Set("apiKey", apiKey)
	params.Set("sortBy", "publishedAt")
	params.Set("language", "en")
	params.Set("pageSize", fmt.Sprintf("%d", newsPageSize))
	params.Set("searchIn", "title,description")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/v2/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news API status %d", resp.StatusCode)
	}

	var result newsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode news response: %w", err)
	}
	if len(result.Articles) > newsPageSize {
		result.Articles = result.Articles[:newsPageSize]
	}
	return result.Articles, nil
}

// localDate renders an RFC 3339 timestamp as a short US-style date.
func localDate(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("1/2/2006")
}
