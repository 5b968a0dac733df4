package search

import (
	"time"

	"github.com/Shogund21/youtube-analyzer/model"
)

// FilterByDateRange retains records whose resolved publish time falls within
// the inclusive [start, end] window. The filter is stable: input order is
// preserved and the input slice is not modified.
func FilterByDateRange(records []model.VideoRecord, start, end time.Time) []model.VideoRecord {
	filtered := make([]model.VideoRecord, 0, len(records))
	for _, rec := range records {
		if rec.PublishedAt.Before(start) || rec.PublishedAt.After(end) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}

// DayBounds expands two calendar days into a whole-day [start, end] window:
// start at 00:00:00 of its day and end at the last nanosecond of its day.
// Boundaries are computed in each argument's own location, so whole-day
// semantics hold regardless of the time-of-day components passed in.
func DayBounds(startDay, endDay time.Time) (time.Time, time.Time) {
	start := time.Date(startDay.Year(), startDay.Month(), startDay.Day(), 0, 0, 0, 0, startDay.Location())
	end := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), endDay.Location())
	return start, end
}
