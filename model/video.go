// Package model contains the data shapes shared across the search pipeline.
package model

import (
	"fmt"
	"time"

	"github.com/Shogund21/youtube-analyzer/timeparse"
)

// Backend identifies which data source produced a raw result.
type Backend string

const (
	// BackendAPI is the authenticated YouTube Data API backend.
	BackendAPI Backend = "api"
	// BackendScrape is the unauthenticated InnerTube scraping backend.
	BackendScrape Backend = "scrape"
)

// FieldUnavailable stands in for any field a backend did not supply.
const FieldUnavailable = "N/A"

// APIResult mirrors the Data API video resource after statistics enrichment.
// Empty string means the field was missing from the payload.
type APIResult struct {
	ID           string
	Title        string
	ChannelTitle string
	PublishedAt  string // RFC3339, as returned by the API
	ViewCount    string
}

// ScrapedResult holds the best-effort fields parsed out of an InnerTube
// search response. There is no schema guarantee on this path, so any field
// may be empty.
type ScrapedResult struct {
	ID            string
	Title         string
	ChannelName   string
	ViewCountText string
	PublishedTime string // relative phrase like "3 weeks ago"
}

// RawResult is a tagged union over the two backend payload shapes. Exactly
// one of API or Scraped is set, matching Backend. The payload is owned by the
// backend that produced it and is never mutated.
type RawResult struct {
	Backend Backend
	API     *APIResult
	Scraped *ScrapedResult
}

// VideoRecord is the normalized, read-only view over a RawResult. Both the
// date filter and the exporter read through this view, never through
// backend-specific field paths.
type VideoRecord struct {
	Title         string
	Channel       string
	ViewCount     string
	PublishedAt   time.Time
	PublishedText string // the backend's native date string, kept for export
	VideoID       string
}

// WatchURL returns the public watch page for the record's video.
func (r VideoRecord) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + r.VideoID
}

// Normalize maps a raw backend result onto the uniform VideoRecord view.
// Every optional field access is defensive: anything the backend did not
// supply resolves to FieldUnavailable. The publish time always resolves to a
// concrete instant, falling back to now when the source carries nothing. Only
// a malformed API timestamp is an error, since that is an upstream contract
// violation rather than a missing field.
func Normalize(raw RawResult, now time.Time) (VideoRecord, error) {
	switch raw.Backend {
	case BackendAPI:
		return normalizeAPI(raw.API, now)
	case BackendScrape:
		return normalizeScraped(raw.Scraped, now), nil
	default:
		return VideoRecord{}, fmt.Errorf("unknown backend variant: %q", raw.Backend)
	}
}

func emptyRecord(now time.Time) VideoRecord {
	return VideoRecord{
		Title:         FieldUnavailable,
		Channel:       FieldUnavailable,
		ViewCount:     FieldUnavailable,
		PublishedAt:   now,
		PublishedText: FieldUnavailable,
		VideoID:       FieldUnavailable,
	}
}

func normalizeAPI(raw *APIResult, now time.Time) (VideoRecord, error) {
	rec := emptyRecord(now)
	if raw == nil {
		return rec, nil
	}

	if raw.Title != "" {
		rec.Title = raw.Title
	}
	if raw.ChannelTitle != "" {
		rec.Channel = raw.ChannelTitle
	}
	if raw.ViewCount != "" {
		rec.ViewCount = raw.ViewCount
	}
	if raw.ID != "" {
		rec.VideoID = raw.ID
	}
	if raw.PublishedAt != "" {
		published, err := timeparse.ParseTimestamp(raw.PublishedAt)
		if err != nil {
			return VideoRecord{}, fmt.Errorf("malformed publishedAt %q: %w", raw.PublishedAt, err)
		}
		rec.PublishedAt = published
		rec.PublishedText = raw.PublishedAt
	}

	return rec, nil
}

func normalizeScraped(raw *ScrapedResult, now time.Time) VideoRecord {
	rec := emptyRecord(now)
	if raw == nil {
		return rec
	}

	if raw.Title != "" {
		rec.Title = raw.Title
	}
	if raw.ChannelName != "" {
		rec.Channel = raw.ChannelName
	}
	if raw.ViewCountText != "" {
		rec.ViewCount = raw.ViewCountText
	}
	if raw.ID != "" {
		rec.VideoID = raw.ID
	}
	if raw.PublishedTime != "" {
		rec.PublishedText = raw.PublishedTime
	}
	rec.PublishedAt = timeparse.ResolveRelative(raw.PublishedTime, now)

	return rec
}
