// Package timeparse resolves backend publish-time representations into
// absolute instants. The Data API supplies strict RFC3339 timestamps; the
// scraping backend supplies free-text relative phrases like "3 weeks ago".
package timeparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// streamedMarker flags live/streamed entries whose phrase carries no usable
// publish time.
const streamedMarker = "Streamed"

// Parses phrases like "2 hours ago" or "3 days ago".
var relativePattern = regexp.MustCompile(`(\d+)\s+(hour|day|week|month|year)s?\s+ago`)

// ParseTimestamp parses an RFC3339 timestamp from the Data API. Malformed
// input is a contract violation of the upstream API, so the parse error
// propagates.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// ResolveRelative converts a relative phrase of the shape "<n> <unit>[s] ago"
// into an absolute instant anchored at now. It is a total function: streamed
// markers, empty input, unparseable integers and unrecognized units all
// resolve to now rather than an error, so an unparseable date never blocks
// the pipeline. Months are approximated as 30 days and years as 365 days,
// which is as coarse as the input itself.
func ResolveRelative(s string, now time.Time) time.Time {
	if s == "" || strings.Contains(s, streamedMarker) {
		return now
	}

	matches := relativePattern.FindStringSubmatch(s)
	if len(matches) < 3 {
		return now
	}

	value, err := strconv.Atoi(matches[1])
	if err != nil {
		return now
	}

	switch matches[2] {
	case "hour":
		return now.Add(-time.Duration(value) * time.Hour)
	case "day":
		return now.AddDate(0, 0, -value)
	case "week":
		return now.AddDate(0, 0, -value*7)
	case "month":
		return now.AddDate(0, 0, -value*30)
	case "year":
		return now.AddDate(0, 0, -value*365)
	}

	return now
}
