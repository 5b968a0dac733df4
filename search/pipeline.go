// Package search orchestrates the search-normalize-filter pipeline and holds
// the resulting session snapshot.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/Shogund21/youtube-analyzer/client"
	"github.com/Shogund21/youtube-analyzer/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Session is the snapshot of the most recent successful search. It is
// created whole on each run and replaced wholesale by the next one, so
// export and transcript actions always operate on a consistent record set.
type Session struct {
	ID      string
	Backend model.Backend
	Query   string
	Records []model.VideoRecord
}

// Run executes one synchronous search-normalize-filter pass: the backend
// produces raw results (the API variant already enriched with statistics),
// each is normalized into a VideoRecord, and only records inside the
// inclusive [start, end] window survive. Backend errors surface to the
// caller before the filter is ever invoked.
func Run(ctx context.Context, sc client.SearchClient, query string, maxResults int, start, end time.Time) (*Session, error) {
	log.Info().
		Str("query", query).
		Int("max_results", maxResults).
		Time("start", start).
		Time("end", end).
		Str("backend", string(sc.Backend())).
		Msg("Starting search pipeline")

	raws, err := sc.Search(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	records := make([]model.VideoRecord, 0, len(raws))
	for _, raw := range raws {
		rec, err := model.Normalize(raw, now)
		if err != nil {
			log.Error().Err(err).Str("backend", string(raw.Backend)).Msg("Failed to normalize result")
			return nil, fmt.Errorf("normalize %s result: %w", raw.Backend, err)
		}
		records = append(records, rec)
	}

	filtered := FilterByDateRange(records, start, end)

	session := &Session{
		ID:      uuid.NewString(),
		Backend: sc.Backend(),
		Query:   query,
		Records: filtered,
	}

	log.Info().
		Str("session_id", session.ID).
		Int("raw_count", len(raws)).
		Int("filtered_count", len(filtered)).
		Msg("Search pipeline complete")

	return session, nil
}
