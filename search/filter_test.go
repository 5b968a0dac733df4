package search

import (
	"testing"
	"time"

	"github.com/Shogund21/youtube-analyzer/model"
)

func recAt(id string, published time.Time) model.VideoRecord {
	return model.VideoRecord{VideoID: id, PublishedAt: published}
}

func TestFilterByDateRange(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)

	records := []model.VideoRecord{
		recAt("before", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		recAt("inside", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		recAt("after", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := FilterByDateRange(records, start, end)

	if len(got) != 1 || got[0].VideoID != "inside" {
		t.Fatalf("FilterByDateRange returned %v, want only the inside record", got)
	}
}

func TestFilterByDateRangeInclusiveBoundaries(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	records := []model.VideoRecord{
		recAt("at-start", start),
		recAt("at-end", end),
		recAt("just-before", start.Add(-time.Nanosecond)),
		recAt("just-after", end.Add(time.Nanosecond)),
	}

	got := FilterByDateRange(records, start, end)

	if len(got) != 2 {
		t.Fatalf("expected 2 retained records, got %d", len(got))
	}
	if got[0].VideoID != "at-start" || got[1].VideoID != "at-end" {
		t.Errorf("boundary records not retained in order: %v", got)
	}
}

func TestFilterByDateRangeIdempotent(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	records := []model.VideoRecord{
		recAt("a", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
		recAt("b", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		recAt("out", time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)),
	}

	once := FilterByDateRange(records, start, end)
	twice := FilterByDateRange(once, start, end)

	if len(once) != len(twice) {
		t.Fatalf("second filter changed the set: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].VideoID != twice[i].VideoID {
			t.Errorf("record %d changed on re-filter: %s vs %s", i, once[i].VideoID, twice[i].VideoID)
		}
	}
}

func TestFilterByDateRangePreservesOrder(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	// Deliberately not sorted by publish time.
	records := []model.VideoRecord{
		recAt("late", time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)),
		recAt("early", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
		recAt("mid", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := FilterByDateRange(records, start, end)

	want := []string{"late", "early", "mid"}
	for i, id := range want {
		if got[i].VideoID != id {
			t.Fatalf("order not preserved: got %v", got)
		}
	}
}

func TestDayBounds(t *testing.T) {
	startDay := time.Date(2024, 5, 10, 14, 30, 45, 123, time.UTC)
	endDay := time.Date(2024, 5, 12, 3, 2, 1, 99, time.UTC)

	start, end := DayBounds(startDay, endDay)

	wantStart := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 5, 12, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)

	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}
}
