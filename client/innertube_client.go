package client

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Shogund21/youtube-analyzer/model"
	innertubego "github.com/nezbut/innertube-go"
	"github.com/rs/zerolog/log"
)

// InnerTubeClient implements SearchClient using the InnerTube API. This
// provides an alternative to the YouTube Data API that doesn't require API
// keys or have quota limitations, but requires more data parsing. It is
// best-effort scraping: transport and parse failures collapse into an empty
// result set instead of propagating as transport errors.
type InnerTubeClient struct {
	client    *innertubego.InnerTube
	mu        sync.RWMutex // Protects client and connected state
	connected bool

	clientType    string // "WEB", "ANDROID", "IOS", etc.
	clientVersion string
}

// InnerTubeConfig contains configuration for the InnerTube client
type InnerTubeConfig struct {
	ClientType    string // Default: "WEB"
	ClientVersion string // Default: "2.20230728.00.00"
}

// NewInnerTubeClient creates a new scraping search client using the InnerTube API
func NewInnerTubeClient(config *InnerTubeConfig) (*InnerTubeClient, error) {
	// Set defaults
	if config == nil {
		config = &InnerTubeConfig{
			ClientType:    "WEB",
			ClientVersion: "2.20230728.00.00",
		}
	}

	if config.ClientType == "" {
		config.ClientType = "WEB"
	}

	if config.ClientVersion == "" {
		config.ClientVersion = "2.20230728.00.00"
	}

	log.Info().
		Str("client_type", config.ClientType).
		Str("client_version", config.ClientVersion).
		Msg("Creating YouTube InnerTube search client")

	return &InnerTubeClient{
		clientType:    config.ClientType,
		clientVersion: config.ClientVersion,
	}, nil
}

// ensureConnected checks if the client is connected and returns an error if not
func (c *InnerTubeClient) ensureConnected() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.connected || c.client == nil {
		return fmt.Errorf("client not connected - call Connect() first")
	}

	return nil
}

// Connect establishes a connection to the InnerTube API
func (c *InnerTubeClient) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected && c.client != nil {
		log.Warn().Msg("Client already connected")
		return nil
	}

	log.Info().Msg("Connecting to YouTube InnerTube API")

	// Parameters: config, clientType, clientVersion, apiKey, accessToken, refreshToken, httpClient, debug
	client, err := innertubego.NewInnerTube(
		nil,             // config (will use defaults)
		c.clientType,    // clientType
		c.clientVersion, // clientVersion
		"",              // apiKey (not needed for unauthenticated access)
		"",              // accessToken
		"",              // refreshToken
		nil,             // httpClient (will use default)
		false,           // debug mode
	)

	if err != nil {
		log.Error().Err(err).Msg("Failed to create InnerTube client")
		return fmt.Errorf("failed to create InnerTube client: %w", err)
	}

	c.client = client
	c.connected = true
	log.Info().Msg("Successfully connected to YouTube InnerTube API")
	return nil
}

// Disconnect closes the connection to the InnerTube API
func (c *InnerTubeClient) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		log.Warn().Msg("Client already disconnected")
		return nil
	}

	log.Info().Msg("Disconnecting from YouTube InnerTube API")
	c.client = nil
	c.connected = false
	return nil
}

// Backend implements SearchClient.
func (c *InnerTubeClient) Backend() model.Backend {
	return model.BackendScrape
}

// Search issues a single unauthenticated query. Zero parsed results come back
// as ErrEmptyResults; lower-level failures are logged and folded into the
// same empty outcome so this variant never surfaces a transport error.
func (c *InnerTubeClient) Search(ctx context.Context, query string, maxResults int) ([]model.RawResult, error) {
	if err := c.ensureConnected(); err != nil {
		return nil, err
	}

	log.Info().
		Str("query", query).
		Int("max_results", maxResults).
		Msg("Searching videos via InnerTube")

	var results []model.RawResult

	// Parameters: context, query, params, continuation
	data, err := c.client.Search(ctx, &query, nil, nil)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("InnerTube search failed, treating as empty result set")
	} else {
		results = parseSearchResults(data, maxResults)
	}

	if len(results) == 0 {
		log.Info().Str("query", query).Msg("InnerTube search returned no results")
		return nil, ErrEmptyResults
	}

	log.Info().
		Str("query", query).
		Int("result_count", len(results)).
		Msg("Retrieved videos via InnerTube")

	return results, nil
}

// parseSearchResults walks an InnerTube search response down to its
// videoRenderer blocks and converts each into a raw scraped result.
func parseSearchResults(data interface{}, limit int) []model.RawResult {
	results := make([]model.RawResult, 0)

	dataMap, ok := data.(map[string]interface{})
	if !ok {
		log.Warn().Msg("Invalid data type for search response")
		return results
	}

	contents, ok := dataMap["contents"].(map[string]interface{})
	if !ok {
		log.Warn().Msg("No contents found in search response")
		return results
	}

	twoCol, ok := contents["twoColumnSearchResultsRenderer"].(map[string]interface{})
	if !ok {
		log.Warn().Msg("No twoColumnSearchResultsRenderer found")
		return results
	}

	primary, ok := twoCol["primaryContents"].(map[string]interface{})
	if !ok {
		log.Warn().Msg("No primaryContents found in search response")
		return results
	}

	sectionList, ok := primary["sectionListRenderer"].(map[string]interface{})
	if !ok {
		log.Warn().Msg("No sectionListRenderer found in search response")
		return results
	}

	sections, ok := sectionList["contents"].([]interface{})
	if !ok {
		return results
	}

	for _, section := range sections {
		sectionMap, ok := section.(map[string]interface{})
		if !ok {
			continue
		}

		itemSection, ok := sectionMap["itemSectionRenderer"].(map[string]interface{})
		if !ok {
			continue
		}

		items, ok := itemSection["contents"].([]interface{})
		if !ok {
			continue
		}

		for _, item := range items {
			itemMap, ok := item.(map[string]interface{})
			if !ok {
				continue
			}

			// Ads, shelves and channel cards sit alongside videoRenderer
			// blocks; only videos are of interest here.
			videoRenderer, ok := itemMap["videoRenderer"].(map[string]interface{})
			if !ok {
				continue
			}

			raw := parseSearchVideoRenderer(videoRenderer)
			if raw == nil {
				continue
			}

			results = append(results, model.RawResult{
				Backend: model.BackendScrape,
				Scraped: raw,
			})

			if limit > 0 && len(results) >= limit {
				return results
			}
		}
	}

	return results
}

// parseSearchVideoRenderer extracts the best-effort fields from a
// videoRenderer object. Absent fields stay empty; normalization turns them
// into "N/A" later.
func parseSearchVideoRenderer(renderer map[string]interface{}) *model.ScrapedResult {
	raw := &model.ScrapedResult{}

	// Video ID is required; without it the entry is unusable.
	if videoID, ok := renderer["videoId"].(string); ok {
		raw.ID = videoID
	} else {
		return nil
	}

	if titleObj, ok := renderer["title"]; ok {
		raw.Title = extractText(titleObj)
	}

	// Channel name lives under ownerText in current responses, with
	// longBylineText as the older fallback.
	if ownerObj, ok := renderer["ownerText"]; ok {
		raw.ChannelName = extractText(ownerObj)
	}
	if raw.ChannelName == "" {
		if bylineObj, ok := renderer["longBylineText"]; ok {
			raw.ChannelName = extractText(bylineObj)
		}
	}

	if viewCountObj, ok := renderer["viewCountText"]; ok {
		raw.ViewCountText = extractText(viewCountObj)
	}

	if publishedObj, ok := renderer["publishedTimeText"]; ok {
		raw.PublishedTime = extractText(publishedObj)
	}

	return raw
}

// extractText extracts text from InnerTube text object (simpleText or runs format)
func extractText(textObj interface{}) string {
	if textObj == nil {
		return ""
	}

	// Handle direct string
	if str, ok := textObj.(string); ok {
		return str
	}

	// Handle map with simpleText
	if textMap, ok := textObj.(map[string]interface{}); ok {
		if simpleText, ok := textMap["simpleText"].(string); ok {
			return simpleText
		}

		// Handle runs array
		if runs, ok := textMap["runs"].([]interface{}); ok {
			var parts []string
			for _, run := range runs {
				if runMap, ok := run.(map[string]interface{}); ok {
					if text, ok := runMap["text"].(string); ok {
						parts = append(parts, text)
					}
				}
			}
			return strings.Join(parts, "")
		}
	}

	return ""
}
