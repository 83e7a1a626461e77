package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"fetchbench/internal/config"
	"fetchbench/internal/model"
)

var (
	ErrMissingUUID = errors.New("response body has no uuid field")
)

// Fetcher performs a single request/response cycle against the target endpoint.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*model.UUIDPayload, error)
}

// Session is a Fetcher backed by one shared net/http client. It is safe for
// concurrent use: all fetches of a batch reuse its connection pool. The
// transport is wrapped with otelhttp so each request carries a client span.
type Session struct {
	client *http.Client
}

// NewSession builds a session from client settings. A zero request timeout
// leaves requests unbounded.
func NewSession(cfg config.ClientConfig) *Session {
	transport := &http.Transport{}
	if cfg.MaxIdleConnsPerHost > 0 {
		transport.MaxIdleConnsPerHost = cfg.MaxIdleConnsPerHost
	}

	client := &http.Client{
		Transport: otelhttp.NewTransport(transport),
	}
	if cfg.RequestTimeoutSec > 0 {
		client.Timeout = time.Duration(cfg.RequestTimeoutSec) * time.Second
	}

	return &Session{client: client}
}

// Fetch issues one GET, decodes the JSON body, and returns the payload.
// Network failures, non-200 statuses, malformed JSON and a missing uuid field
// all surface as errors; nothing is retried or recovered here.
func (s *Session) Fetch(ctx context.Context, url string) (*model.UUIDPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: unexpected status %d", url, resp.StatusCode)
	}

	var payload model.UUIDPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	if payload.UUID == "" {
		return nil, ErrMissingUUID
	}
	return &payload, nil
}

// Close releases idle connections held by the session's pool. The session must
// not be used after Close.
func (s *Session) Close() {
	s.client.CloseIdleConnections()
}
