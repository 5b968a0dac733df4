package transcript

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	innertubego "github.com/nezbut/innertube-go"
	"github.com/rs/zerolog/log"
)

// innerTubeProvider resolves caption tracks through the InnerTube player
// endpoint and downloads the timed-text payload they point at.
type innerTubeProvider struct {
	client     *innertubego.InnerTube
	httpClient *http.Client
}

func newInnerTubeProvider() *innerTubeProvider {
	return &innerTubeProvider{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (p *innerTubeProvider) ensureClient() error {
	if p.client != nil {
		return nil
	}

	// Parameters: config, clientType, clientVersion, apiKey, accessToken, refreshToken, httpClient, debug
	client, err := innertubego.NewInnerTube(nil, "WEB", "2.20230728.00.00", "", "", "", nil, false)
	if err != nil {
		return fmt.Errorf("failed to create InnerTube client: %w", err)
	}

	p.client = client
	return nil
}

func (p *innerTubeProvider) transcript(ctx context.Context, videoID string) (Transcript, error) {
	if err := p.ensureClient(); err != nil {
		return nil, err
	}

	log.Info().Str("video_id", videoID).Msg("Resolving caption track via InnerTube player")

	data, err := p.client.Player(ctx, videoID)
	if err != nil {
		log.Error().Err(err).Str("video_id", videoID).Msg("InnerTube player call failed")
		return nil, fmt.Errorf("player lookup for %s: %w", videoID, err)
	}

	if restricted(data) {
		return nil, fmt.Errorf("%w: video %s is not playable", ErrUnavailable, videoID)
	}

	trackURL := captionTrackURL(data)
	if trackURL == "" {
		return nil, fmt.Errorf("%w: no caption track for %s", ErrUnavailable, videoID)
	}

	return p.download(ctx, trackURL)
}

// restricted reports whether the player response marks the video unplayable,
// which also makes its captions unreachable.
func restricted(data interface{}) bool {
	dataMap, ok := data.(map[string]interface{})
	if !ok {
		return false
	}

	status, ok := dataMap["playabilityStatus"].(map[string]interface{})
	if !ok {
		return false
	}

	if s, ok := status["status"].(string); ok && s != "OK" {
		return true
	}
	return false
}

// captionTrackURL walks the player response down to a caption track URL,
// preferring a manually created track over auto-generated (ASR) captions.
func captionTrackURL(data interface{}) string {
	dataMap, ok := data.(map[string]interface{})
	if !ok {
		return ""
	}

	captions, ok := dataMap["captions"].(map[string]interface{})
	if !ok {
		return ""
	}

	tracklist, ok := captions["playerCaptionsTracklistRenderer"].(map[string]interface{})
	if !ok {
		return ""
	}

	tracks, ok := tracklist["captionTracks"].([]interface{})
	if !ok {
		return ""
	}

	var asrURL string
	for _, track := range tracks {
		trackMap, ok := track.(map[string]interface{})
		if !ok {
			continue
		}

		url, ok := trackMap["baseUrl"].(string)
		if !ok || url == "" {
			continue
		}

		if kind, _ := trackMap["kind"].(string); kind == "asr" {
			if asrURL == "" {
				asrURL = url
			}
			continue
		}

		return url
	}

	return asrURL
}

// timedText mirrors the <transcript> XML document served by a caption track URL.
type timedText struct {
	XMLName xml.Name       `xml:"transcript"`
	Texts   []timedTextRun `xml:"text"`
}

type timedTextRun struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Body  string  `xml:",chardata"`
}

func (p *innerTubeProvider) download(ctx context.Context, url string) (Transcript, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build caption track request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch caption track: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: caption track returned status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read caption track: %w", err)
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse caption track: %w", err)
	}

	if len(tt.Texts) == 0 {
		return nil, fmt.Errorf("%w: caption track is empty", ErrUnavailable)
	}

	entries := make(Transcript, 0, len(tt.Texts))
	for _, run := range tt.Texts {
		// Caption bodies come HTML-escaped and with stray whitespace.
		entries = append(entries, Entry{
			Start: run.Start,
			Text:  html.UnescapeString(strings.TrimSpace(run.Body)),
		})
	}

	return entries, nil
}
