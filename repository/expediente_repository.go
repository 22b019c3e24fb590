package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"portal-backend/models"
	"portal-backend/storage"

	"golang.org/x/sync/errgroup"
)

// ErrNoSourcesConfigured means the operator has not configured any record
// source. This is a deploy-time mistake, not a user-facing "not found".
var ErrNoSourcesConfigured = errors.New("no record sources configured")

// ExpedienteRepository merges the configured record sources into one
// normalized sequence of expedientes and answers DNI lookups against it.
// A single-slot TTL cache holds the last successful merge; concurrent
// refreshes are not deduplicated since fetches are idempotent reads.
type ExpedienteRepository struct {
	sources  []storage.Source
	cacheTTL time.Duration

	mu       sync.Mutex
	cached   []models.Expediente
	cachedAt time.Time
}

// NewExpedienteRepository creates a repository over the given sources.
// A non-positive TTL disables the cache.
func NewExpedienteRepository(sources []storage.Source, cacheTTL time.Duration) *ExpedienteRepository {
	return &ExpedienteRepository{
		sources:  sources,
		cacheTTL: cacheTTL,
	}
}

// FetchAll fetches every configured source concurrently and returns the
// merged, normalized records in source order. A source that fails to fetch
// or parse is logged and omitted; only the complete absence of configured
// sources is an error.
func (r *ExpedienteRepository) FetchAll(ctx context.Context) ([]models.Expediente, error) {
	if len(r.sources) == 0 {
		return nil, ErrNoSourcesConfigured
	}

	if cached, ok := r.fromCache(); ok {
		return cached, nil
	}

	results := make([][]models.Expediente, len(r.sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range r.sources {
		g.Go(func() error {
			body, err := src.Fetch(gctx)
			if err != nil {
				log.Printf("Warning: source %s failed, omitting: %v", src.Name(), err)
				return nil
			}

			records, err := decodeExpedientes(body)
			if err != nil {
				log.Printf("Warning: source %s returned malformed JSON, omitting: %v", src.Name(), err)
				return nil
			}

			results[i] = records
			return nil
		})
	}
	// Per-source failures are swallowed above, so Wait never reports one.
	_ = g.Wait()

	merged := make([]models.Expediente, 0)
	for _, records := range results {
		merged = append(merged, records...)
	}

	r.storeCache(merged)
	return merged, nil
}

// FindByDNI returns every record whose dni matches the given one, comparing
// both sides as trimmed strings. Zero matches is a valid result.
func (r *ExpedienteRepository) FindByDNI(ctx context.Context, dni string) ([]models.Expediente, error) {
	records, err := r.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	want := strings.TrimSpace(dni)
	matches := make([]models.Expediente, 0)
	for _, record := range records {
		if strings.TrimSpace(record.DNI) == want {
			matches = append(matches, record)
		}
	}

	return matches, nil
}

// decodeExpedientes parses a source body into normalized records. Some
// sources serve the document double-encoded, as a JSON string containing
// JSON; detect that and parse the inner document.
func decodeExpedientes(body []byte) ([]models.Expediente, error) {
	data := []byte(strings.TrimSpace(string(body)))

	if len(data) > 0 && data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil, fmt.Errorf("failed to decode string-encoded body: %w", err)
		}
		data = []byte(inner)
	}

	var records []models.Expediente
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}

	for i := range records {
		records[i].Normalize()
	}

	return records, nil
}

func (r *ExpedienteRepository) fromCache() ([]models.Expediente, bool) {
	if r.cacheTTL <= 0 {
		return nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached == nil || time.Since(r.cachedAt) > r.cacheTTL {
		return nil, false
	}
	return r.cached, true
}

func (r *ExpedienteRepository) storeCache(records []models.Expediente) {
	if r.cacheTTL <= 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.cached = records
	r.cachedAt = time.Now()
}
