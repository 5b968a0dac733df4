package transcript

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"
)

// ErrUnavailable means the provider has no transcript for the identifier:
// no captions, captions disabled, or the video is restricted.
var ErrUnavailable = errors.New("transcript unavailable")

// Transcripts are small; this mostly guards against re-fetching the same
// video within one session.
const defaultCacheSize = 256

// provider abstracts the transcript source so tests can substitute a fake.
type provider interface {
	transcript(ctx context.Context, videoID string) (Transcript, error)
}

// Fetcher retrieves transcripts and persists them under a configurable
// directory, keyed by video identifier. Fetched transcripts are memoized in
// an LRU cache for the life of the process.
type Fetcher struct {
	dir      string
	provider provider
	cache    *lru.Cache[string, Transcript]
}

// NewFetcher creates a Fetcher writing into dir. The directory is created
// lazily on the first successful fetch.
func NewFetcher(dir string) (*Fetcher, error) {
	cache, err := lru.New[string, Transcript](defaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create transcript cache: %w", err)
	}

	return &Fetcher{
		dir:      dir,
		provider: newInnerTubeProvider(),
		cache:    cache,
	}, nil
}

// Directory returns the current target directory.
func (f *Fetcher) Directory() string {
	return f.dir
}

// SetDirectory changes where future transcripts are written. Files already
// written stay where they are.
func (f *Fetcher) SetDirectory(dir string) {
	log.Info().Str("dir", dir).Msg("Transcript directory changed")
	f.dir = dir
}

// FetchAndStore retrieves the transcript for videoID and writes it to
// {dir}/{videoID}_transcript.txt, overwriting any previous file for that
// identifier. The file content is built fully in memory before the write, and
// no file is created when retrieval fails.
func (f *Fetcher) FetchAndStore(ctx context.Context, videoID string) (Transcript, string, error) {
	tr, err := f.fetch(ctx, videoID)
	if err != nil {
		return nil, "", err
	}

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return nil, "", fmt.Errorf("failed to create transcript directory: %w", err)
	}

	path := filepath.Join(f.dir, videoID+"_transcript.txt")
	if err := os.WriteFile(path, []byte(tr.Render()), 0o644); err != nil {
		return nil, "", fmt.Errorf("failed to write transcript file: %w", err)
	}

	log.Info().
		Str("video_id", videoID).
		Str("path", path).
		Int("entry_count", len(tr)).
		Msg("Transcript saved")

	return tr, path, nil
}

func (f *Fetcher) fetch(ctx context.Context, videoID string) (Transcript, error) {
	if cached, ok := f.cache.Get(videoID); ok {
		log.Debug().Str("video_id", videoID).Msg("Using cached transcript")
		return cached, nil
	}

	tr, err := f.provider.transcript(ctx, videoID)
	if err != nil {
		return nil, err
	}

	f.cache.Add(videoID, tr)
	return tr, nil
}
