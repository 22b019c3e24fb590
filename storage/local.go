package storage

import (
	"context"
	"fmt"
	"os"
)

// LocalSource reads a record document from the local filesystem. Used for
// development and tests.
type LocalSource struct {
	name string
	path string
}

// NewLocalSource creates a new local file source
func NewLocalSource(name, path string) *LocalSource {
	return &LocalSource{name: name, path: path}
}

// Name identifies the source in logs.
func (s *LocalSource) Name() string { return s.name }

// Fetch reads the document from disk.
func (s *LocalSource) Fetch(ctx context.Context) ([]byte, error) {
	body, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return body, nil
}
