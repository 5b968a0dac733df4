package client

import (
	"context"
	"errors"
	"testing"

	"github.com/Shogund21/youtube-analyzer/model"
)

func TestNewAPIClient(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		wantErr bool
	}{
		{
			name:    "valid API key",
			apiKey:  "test-api-key-12345",
			wantErr: false,
		},
		{
			name:    "empty API key",
			apiKey:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewAPIClient(tt.apiKey)

			if (err != nil) != tt.wantErr {
				t.Errorf("NewAPIClient() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr {
				if !errors.Is(err, ErrNotConfigured) {
					t.Errorf("expected ErrNotConfigured, got %v", err)
				}
				return
			}

			if client == nil {
				t.Fatal("Expected non-nil client when no error")
			}

			if client.apiKey != tt.apiKey {
				t.Errorf("Expected apiKey %s, got %s", tt.apiKey, client.apiKey)
			}

			if client.Backend() != model.BackendAPI {
				t.Errorf("Expected api backend, got %s", client.Backend())
			}
		})
	}
}

func TestAPIClientSearchNotConnected(t *testing.T) {
	client, err := NewAPIClient("test-key")
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	_, err = client.Search(context.Background(), "cats", 10)
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured before Connect, got %v", err)
	}
}

func TestAPIClientDisconnect(t *testing.T) {
	client, err := NewAPIClient("test-key")
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	if err := client.Disconnect(context.Background()); err != nil {
		t.Errorf("Disconnect() error = %v", err)
	}

	if client.service != nil {
		t.Error("Expected service to be nil after disconnect")
	}
}
