package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPSource fetches a document over plain HTTP(S), e.g. a published Google
// Drive or Apps Script JSON export.
type HTTPSource struct {
	name   string
	url    string
	client *http.Client
}

// NewHTTPSource creates an HTTP source with a bounded per-request timeout so
// a slow upstream cannot hang the whole lookup.
func NewHTTPSource(name, url string) *HTTPSource {
	return &HTTPSource{
		name:   name,
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Name identifies the source in logs.
func (s *HTTPSource) Name() string { return s.name }

// Fetch retrieves the document body. Non-2xx responses are errors.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("source %s returned status %d", s.name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s body: %w", s.name, err)
	}

	return body, nil
}
