package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Shogund21/youtube-analyzer/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// APIClient implements SearchClient on top of the authenticated YouTube Data
// API. A search issues a video-typed query followed by a single batched
// videos.list call that enriches every hit with statistics.
type APIClient struct {
	service *ytapi.Service
	apiKey  string
}

// NewAPIClient creates a new Data API search client. The credential is read
// once at startup; without it this backend is unavailable.
func NewAPIClient(apiKey string) (*APIClient, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	return &APIClient{
		apiKey: apiKey,
	}, nil
}

// Connect establishes a connection to the YouTube Data API.
func (c *APIClient) Connect(ctx context.Context) error {
	log.Info().Msg("Connecting to YouTube Data API")

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	service, err := ytapi.NewService(ctx, option.WithAPIKey(c.apiKey), option.WithHTTPClient(httpClient))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create YouTube service")
		return fmt.Errorf("failed to create YouTube service: %w", err)
	}

	c.service = service
	log.Info().Msg("Connected to YouTube Data API successfully")
	return nil
}

// Disconnect closes the connection to the YouTube Data API.
func (c *APIClient) Disconnect(ctx context.Context) error {
	// No explicit disconnect needed for the YouTube API client
	c.service = nil
	return nil
}

// Backend implements SearchClient.
func (c *APIClient) Backend() model.Backend {
	return model.BackendAPI
}

// Search runs a single page of a video-typed query and enriches all returned
// identifiers with statistics in one batch call.
func (c *APIClient) Search(ctx context.Context, query string, maxResults int) ([]model.RawResult, error) {
	if c.service == nil {
		return nil, fmt.Errorf("%w: client not connected", ErrNotConfigured)
	}

	log.Info().
		Str("query", query).
		Int("max_results", maxResults).
		Msg("Searching videos via YouTube Data API")

	searchResp, err := c.service.Search.List([]string{"id", "snippet"}).
		Q(query).
		Type("video").
		MaxResults(int64(maxResults)).
		Context(ctx).
		Do()
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("YouTube search call failed")
		return nil, fmt.Errorf("%w: search: %v", ErrUpstream, err)
	}

	videoIDs := make([]string, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		videoIDs = append(videoIDs, item.Id.VideoId)
	}

	if len(videoIDs) == 0 {
		log.Info().Str("query", query).Msg("YouTube search returned no videos")
		return []model.RawResult{}, nil
	}

	// Fetch snippet and statistics for all hits in a single call.
	detailResp, err := c.service.Videos.List([]string{"snippet", "statistics"}).
		Id(videoIDs...).
		Context(ctx).
		Do()
	if err != nil {
		log.Error().Err(err).Strs("video_ids", videoIDs).Msg("Failed to get video details")
		return nil, fmt.Errorf("%w: video details: %v", ErrUpstream, err)
	}

	results := make([]model.RawResult, 0, len(detailResp.Items))
	for _, item := range detailResp.Items {
		raw := &model.APIResult{
			ID: item.Id,
		}
		if item.Snippet != nil {
			raw.Title = item.Snippet.Title
			raw.ChannelTitle = item.Snippet.ChannelTitle
			raw.PublishedAt = item.Snippet.PublishedAt
		}
		if item.Statistics != nil {
			raw.ViewCount = strconv.FormatUint(item.Statistics.ViewCount, 10)
		}
		results = append(results, model.RawResult{
			Backend: model.BackendAPI,
			API:     raw,
		})
	}

	log.Info().
		Str("query", query).
		Int("result_count", len(results)).
		Msg("Retrieved videos from YouTube Data API")

	return results, nil
}
