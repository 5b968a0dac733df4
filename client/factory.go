package client

import (
	"fmt"

	"github.com/Shogund21/youtube-analyzer/model"
)

// NewSearchClient builds the client for the requested backend variant. The
// API key is only consulted for the authenticated variant; the scraping
// variant needs no credential.
func NewSearchClient(backend model.Backend, apiKey string) (SearchClient, error) {
	switch backend {
	case model.BackendAPI:
		return NewAPIClient(apiKey)
	case model.BackendScrape:
		return NewInnerTubeClient(nil)
	default:
		return nil, fmt.Errorf("unsupported backend variant: %s", backend)
	}
}
