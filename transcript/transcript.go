// Package transcript retrieves timestamped video transcripts and persists
// them to disk, one file per video identifier.
package transcript

import (
	"fmt"
	"strings"
)

// Entry is one timed caption line.
type Entry struct {
	Start float64 // offset from video start, in seconds
	Text  string
}

// Transcript is the chronological sequence of caption entries for a video.
type Transcript []Entry

// Render serializes the transcript deterministically: one line per entry in
// chronological order, the offset printed with two decimals, e.g.
// "12.35 - some caption text".
func (t Transcript) Render() string {
	lines := make([]string, len(t))
	for i, entry := range t {
		lines[i] = fmt.Sprintf("%.2f - %s", entry.Start, entry.Text)
	}
	return strings.Join(lines, "\n")
}
