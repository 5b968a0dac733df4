package client

import (
	"context"

	"github.com/Shogund21/youtube-analyzer/model"
)

// SearchClient is the contract both backend variants implement: one page of
// raw results for a query, bounded by maxResults.
type SearchClient interface {
	// Connect prepares the underlying service.
	Connect(ctx context.Context) error

	// Disconnect releases the underlying service.
	Disconnect(ctx context.Context) error

	// Search returns raw results for the query. The shape of each result is
	// owned by the backend that produced it.
	Search(ctx context.Context, query string, maxResults int) ([]model.RawResult, error)

	// Backend reports which variant this client is, so downstream
	// normalization can pick the matching field paths.
	Backend() model.Backend
}
