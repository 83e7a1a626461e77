package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fetchbench/internal/config"
)

func TestSession_Fetch(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantUUID   string
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"uuid":"9ac21f22-0d8a-4a22-9b78-8f7b8f5dfe1d"}`))
			},
			wantUUID: "9ac21f22-0d8a-4a22-9b78-8f7b8f5dfe1d",
		},
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErrMsg: "unexpected status 500",
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"uuid":`))
			},
			wantErrMsg: "decode response body",
		},
		{
			name: "missing uuid field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"origin":"127.0.0.1"}`))
			},
			wantErr: ErrMissingUUID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			s := NewSession(config.ClientConfig{MaxIdleConnsPerHost: 10})
			defer s.Close()

			payload, err := s.Fetch(ctx, srv.URL)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else if tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantUUID, payload.UUID)
			}
		})
	}
}

func TestSession_FetchContextTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	s := NewSession(config.ClientConfig{})
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := s.Fetch(ctx, srv.URL)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestSession_FetchUnreachable(t *testing.T) {
	// A closed port fails fast instead of hanging.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	s := NewSession(config.ClientConfig{RequestTimeoutSec: 1})
	defer s.Close()

	_, err := s.Fetch(context.Background(), url)
	assert.Error(t, err)
}
