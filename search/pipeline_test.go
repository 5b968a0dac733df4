package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Shogund21/youtube-analyzer/client"
	"github.com/Shogund21/youtube-analyzer/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient implements client.SearchClient with canned results.
type fakeClient struct {
	backend model.Backend
	results []model.RawResult
	err     error
}

func (f *fakeClient) Connect(ctx context.Context) error    { return nil }
func (f *fakeClient) Disconnect(ctx context.Context) error { return nil }
func (f *fakeClient) Backend() model.Backend               { return f.backend }

func (f *fakeClient) Search(ctx context.Context, query string, maxResults int) ([]model.RawResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func apiRaw(id, publishedAt string) model.RawResult {
	return model.RawResult{
		Backend: model.BackendAPI,
		API: &model.APIResult{
			ID:          id,
			Title:       "video " + id,
			PublishedAt: publishedAt,
		},
	}
}

func TestRunFiltersByWindow(t *testing.T) {
	// Two API results, only the second inside the window.
	fake := &fakeClient{
		backend: model.BackendAPI,
		results: []model.RawResult{
			apiRaw("first", "2024-01-01T00:00:00Z"),
			apiRaw("second", "2024-06-01T00:00:00Z"),
		},
	}

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)

	session, err := Run(context.Background(), fake, "cats", 50, start, end)
	require.NoError(t, err)

	require.Len(t, session.Records, 1)
	assert.Equal(t, "second", session.Records[0].VideoID)
	assert.Equal(t, model.BackendAPI, session.Backend)
	assert.Equal(t, "cats", session.Query)
	assert.NotEmpty(t, session.ID)
}

func TestRunSurfacesEmptyResults(t *testing.T) {
	fake := &fakeClient{
		backend: model.BackendScrape,
		err:     client.ErrEmptyResults,
	}

	session, err := Run(context.Background(), fake, "cats", 50, time.Time{}, time.Now())

	assert.Nil(t, session)
	assert.True(t, errors.Is(err, client.ErrEmptyResults))
}

func TestRunSurfacesMalformedTimestamp(t *testing.T) {
	fake := &fakeClient{
		backend: model.BackendAPI,
		results: []model.RawResult{apiRaw("bad", "garbage")},
	}

	_, err := Run(context.Background(), fake, "cats", 50, time.Time{}, time.Now())
	assert.Error(t, err)
}

func TestRunReplacesSessionWholesale(t *testing.T) {
	fake := &fakeClient{
		backend: model.BackendAPI,
		results: []model.RawResult{apiRaw("only", "2024-06-01T00:00:00Z")},
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	first, err := Run(context.Background(), fake, "cats", 50, start, end)
	require.NoError(t, err)

	second, err := Run(context.Background(), fake, "dogs", 50, start, end)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "dogs", second.Query)
}
