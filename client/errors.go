package client

import "errors"

// Error kinds surfaced by the search backends. Callers distinguish them with
// errors.Is; the pipeline itself never retries or suppresses them.
var (
	// ErrNotConfigured means the authenticated backend was selected without a
	// credential being configured.
	ErrNotConfigured = errors.New("youtube api key not configured")

	// ErrUpstream wraps transport or schema failures of the Data API backend.
	ErrUpstream = errors.New("upstream youtube api failure")

	// ErrEmptyResults means the scraping backend produced zero results. This
	// is a valid-but-uninteresting outcome, not a transport failure.
	ErrEmptyResults = errors.New("no results found")
)
