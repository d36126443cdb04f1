package enrich

import (
	"context"
	"fmt"
	"strings"
	"time"

	"brainly-backend/pkg/logger"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const defaultYouTubeTimeout = 20 * time.Second

// YouTubeEnricher summarises a video through the YouTube Data API v3.
type YouTubeEnricher struct {
	endpoint string // override for tests; empty means the public API
	timeout  time.Duration
}

func NewYouTubeEnricher(endpoint string) *YouTubeEnricher {
	return &YouTubeEnricher{
		endpoint: endpoint,
		timeout:  defaultYouTubeTimeout,
	}
}

// Fetch returns a multi-line summary for videoURL, or "" when the id or key is missing
// or the lookup fails.
func (e *YouTubeEnricher) Fetch(ctx context.Context, videoURL, apiKey string) string {
	videoID, ok := ExtractVideoID(videoURL)
	if !ok || apiKey == "" {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if e.endpoint != "" {
		opts = append(opts, option.WithEndpoint(e.endpoint))
	}
	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		logger.Errorf(ctx, "[YouTube] client init failed: %v", err)
		return ""
	}

	resp, err := svc.Videos.List([]string{"snippet", "statistics"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		logger.Errorf(ctx, "[YouTube] metadata lookup for %s failed: %v", videoID, err)
		return ""
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		logger.Warnf(ctx, "[YouTube] no metadata for %s", videoID)
		return ""
	}

	video := resp.Items[0]
	var views uint64
	if video.Statistics != nil {
		views = video.Statistics.ViewCount
	}

	return strings.TrimSpace(fmt.Sprintf(
		"Title: %s\nChannel: %s\nDescription: %s\nViews: %d\nPublished: %s",
		video.Snippet.Title,
		video.Snippet.ChannelTitle,
		video.Snippet.Description,
		views,
		video.Snippet.PublishedAt,
	))
}
