package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Shogund21/youtube-analyzer/client"
	"github.com/Shogund21/youtube-analyzer/config"
	"github.com/Shogund21/youtube-analyzer/export"
	"github.com/Shogund21/youtube-analyzer/model"
	"github.com/Shogund21/youtube-analyzer/search"
	"github.com/Shogund21/youtube-analyzer/transcript"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const dayFormat = "2006-01-02"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	root := &cobra.Command{
		Use:   "youtube-analyzer",
		Short: "Search YouTube videos, filter by publish date, export results and transcripts",
	}
	root.AddCommand(searchCmd(), transcriptCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func searchCmd() *cobra.Command {
	var (
		query           string
		maxResults      int
		startDate       string
		endDate         string
		useScrape       bool
		csvPath         string
		withTranscripts bool
		transcriptDir   string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search for videos and keep only those inside a publish-date window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if maxResults == 0 {
				maxResults = cfg.MaxResults
			}
			if maxResults < 1 || maxResults > config.MaxResultsLimit {
				return fmt.Errorf("max-results must be between 1 and %d", config.MaxResultsLimit)
			}
			if transcriptDir != "" {
				cfg.TranscriptDir = transcriptDir
			}

			backend := model.BackendAPI
			if useScrape || !cfg.HasAPIKey() {
				backend = model.BackendScrape
			}

			start, end, err := parseWindow(startDate, endDate)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			sc, err := client.NewSearchClient(backend, cfg.APIKey)
			if err != nil {
				return err
			}
			if err := sc.Connect(ctx); err != nil {
				return err
			}
			defer sc.Disconnect(ctx)

			session, err := search.Run(ctx, sc, query, maxResults, start, end)
			if err != nil {
				if errors.Is(err, client.ErrEmptyResults) {
					log.Info().Str("query", query).Msg("No results found, try a different query or date range")
					return nil
				}
				return err
			}

			if len(session.Records) == 0 {
				log.Info().
					Str("session_id", session.ID).
					Msg("No results inside the date window, try a different query or range")
				return nil
			}

			for _, rec := range session.Records {
				log.Info().
					Str("title", rec.Title).
					Str("channel", rec.Channel).
					Str("views", rec.ViewCount).
					Str("published", rec.PublishedText).
					Str("video_id", rec.VideoID).
					Str("url", rec.WatchURL()).
					Msg("Result")
			}

			if csvPath != "" {
				if err := export.WriteCSV(session.Records, csvPath); err != nil {
					return err
				}
			}

			if withTranscripts {
				fetcher, err := transcript.NewFetcher(cfg.TranscriptDir)
				if err != nil {
					return err
				}
				for _, rec := range session.Records {
					if _, _, err := fetcher.FetchAndStore(ctx, rec.VideoID); err != nil {
						log.Warn().
							Err(err).
							Str("video_id", rec.VideoID).
							Msg("Could not retrieve or save transcript")
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "search query text")
	_ = cmd.MarkFlagRequired("query")
	cmd.Flags().IntVarP(&maxResults, "max-results", "n", 0,
		fmt.Sprintf("result bound, 1..%d (default from config)", config.MaxResultsLimit))
	cmd.Flags().StringVar(&startDate, "start", "", "window start day, YYYY-MM-DD (default 7 days ago)")
	cmd.Flags().StringVar(&endDate, "end", "", "window end day, YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&useScrape, "scrape", false, "force the unauthenticated scraping backend")
	cmd.Flags().StringVar(&csvPath, "csv", "", "export the filtered results to this CSV file")
	cmd.Flags().BoolVar(&withTranscripts, "transcripts", false, "fetch and store a transcript for every filtered result")
	cmd.Flags().StringVar(&transcriptDir, "transcript-dir", "", "directory for transcript files")

	return cmd
}

func transcriptCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "transcript VIDEO_ID",
		Short: "Fetch a video transcript and save it to the transcript directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dir != "" {
				cfg.TranscriptDir = dir
			}

			fetcher, err := transcript.NewFetcher(cfg.TranscriptDir)
			if err != nil {
				return err
			}

			_, path, err := fetcher.FetchAndStore(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			log.Info().Str("path", path).Msg("Transcript saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "transcript-dir", "", "directory for transcript files")

	return cmd
}

// parseWindow turns two calendar days into a whole-day [start, end] window in
// local time. Defaults mirror the interactive tool this replaces: the last
// seven days.
func parseWindow(startDate, endDate string) (time.Time, time.Time, error) {
	now := time.Now()
	startDay := now.AddDate(0, 0, -7)
	endDay := now

	if startDate != "" {
		day, err := time.ParseInLocation(dayFormat, startDate, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", startDate, err)
		}
		startDay = day
	}

	if endDate != "" {
		day, err := time.ParseInLocation(dayFormat, endDate, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", endDate, err)
		}
		endDay = day
	}

	start, end := search.DayBounds(startDay, endDay)
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s is before start date %s",
			end.Format(dayFormat), start.Format(dayFormat))
	}

	return start, end, nil
}
