// Package export serializes normalized video records to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/Shogund21/youtube-analyzer/model"
	"github.com/rs/zerolog/log"
)

// Header is the fixed column contract for exported results.
var Header = []string{"Title", "Channel", "View Count", "Publish Date", "Video ID"}

// WriteCSV writes the header row plus one row per record to path, reading
// only through the normalized record view. The publish date column carries
// each backend's native date string: ISO-8601 for the API path, the original
// relative text for the scraped path. Every row is built fully in memory
// before it is written, and an empty record set still produces a file
// containing just the header.
func WriteCSV(records []model.VideoRecord, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open export file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for _, rec := range records {
		row := []string{rec.Title, rec.Channel, rec.ViewCount, rec.PublishedText, rec.VideoID}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", rec.VideoID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush export file: %w", err)
	}

	log.Info().
		Str("path", path).
		Int("record_count", len(records)).
		Msg("Exported records to CSV")

	return nil
}
