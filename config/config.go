// Package config loads runtime configuration for the analyzer.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// MaxResultsLimit is the largest single-page result bound either backend accepts.
	MaxResultsLimit = 50

	defaultMaxResults        = 50
	defaultTranscriptDirName = "transcripts"
)

// Config holds the process-wide settings, read once at startup. An empty
// APIKey is a valid state: it only makes the authenticated backend
// unavailable, it is never a startup failure.
type Config struct {
	APIKey        string
	TranscriptDir string
	MaxResults    int
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("max_results", defaultMaxResults)
	v.SetDefault("transcript_dir", defaultTranscriptDir())

	_ = v.BindEnv("youtube_api_key", "YOUTUBE_API_KEY")
	_ = v.BindEnv("transcript_dir", "YT_TRANSCRIPT_DIR")
	_ = v.BindEnv("max_results", "YT_MAX_RESULTS")

	cfg := &Config{
		APIKey:        v.GetString("youtube_api_key"),
		TranscriptDir: v.GetString("transcript_dir"),
		MaxResults:    v.GetInt("max_results"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultTranscriptDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return defaultTranscriptDirName
	}
	return filepath.Join(wd, defaultTranscriptDirName)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxResults < 1 || c.MaxResults > MaxResultsLimit {
		return fmt.Errorf("max_results must be between 1 and %d, got %d", MaxResultsLimit, c.MaxResults)
	}

	if c.TranscriptDir == "" {
		return fmt.Errorf("transcript_dir cannot be empty")
	}

	return nil
}

// HasAPIKey reports whether the authenticated backend can be used.
func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}
