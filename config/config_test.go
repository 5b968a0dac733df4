package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	t.Setenv("YT_TRANSCRIPT_DIR", "")
	t.Setenv("YT_MAX_RESULTS", "")

	cfg, err := Load()
	require.NoError(t, err)

	// Missing credential is a valid state, not a startup failure.
	assert.False(t, cfg.HasAPIKey())
	assert.Equal(t, defaultMaxResults, cfg.MaxResults)
	assert.NotEmpty(t, cfg.TranscriptDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "secret-key")
	t.Setenv("YT_TRANSCRIPT_DIR", "/tmp/transcripts")
	t.Setenv("YT_MAX_RESULTS", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.HasAPIKey())
	assert.Equal(t, "secret-key", cfg.APIKey)
	assert.Equal(t, "/tmp/transcripts", cfg.TranscriptDir)
	assert.Equal(t, 25, cfg.MaxResults)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  Config{TranscriptDir: "transcripts", MaxResults: 50},
		},
		{
			name:    "max results too small",
			cfg:     Config{TranscriptDir: "transcripts", MaxResults: 0},
			wantErr: true,
		},
		{
			name:    "max results too large",
			cfg:     Config{TranscriptDir: "transcripts", MaxResults: MaxResultsLimit + 1},
			wantErr: true,
		},
		{
			name:    "empty transcript dir",
			cfg:     Config{TranscriptDir: "", MaxResults: 10},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
