package enrich

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"brainly-backend/pkg/logger"

	"github.com/PuerkitoBio/goquery"
)

const (
	// TweetUnavailable is returned when the page loads but carries no description meta tag.
	TweetUnavailable = "Tweet content not available"
	// TweetFetchFailed is returned when the request or HTML parse fails.
	TweetFetchFailed = "Could not fetch tweet content"

	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	twitterTimeout   = 5 * time.Second
)

// TwitterEnricher scrapes the Open Graph description of a tweet page.
type TwitterEnricher struct {
	client *http.Client
}

func NewTwitterEnricher() *TwitterEnricher {
	return &TwitterEnricher{client: &http.Client{Timeout: twitterTimeout}}
}

// Fetch ignores the credential; tweet pages are fetched anonymously.
func (e *TwitterEnricher) Fetch(ctx context.Context, tweetURL, _ string) string {
	text, err := e.scrape(ctx, tweetURL)
	if err != nil {
		logger.Errorf(ctx, "[Twitter] scrape of %s failed: %v", tweetURL, err)
		return TweetFetchFailed
	}
	if text == "" {
		return TweetUnavailable
	}
	return text
}

func (e *TwitterEnricher) scrape(ctx context.Context, tweetURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tweetURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	content, _ := doc.Find(`meta[property="og:description"]`).First().Attr("content")
	if strings.TrimSpace(content) == "" {
		content, _ = doc.Find(`meta[name="description"]`).First().Attr("content")
	}
	return strings.TrimSpace(content), nil
}
