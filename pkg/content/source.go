// Package content loads the meditation collection from the upstream origin
// through the offline-first fetcher, so the daily notification keeps working
// with no network once the collection was captured at least once.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/meditations/pkg/cache"
	"github.com/umputun/meditations/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher

// DefaultPath is where the upstream origin serves the collection document
const DefaultPath = "/data/meditations.json"

// Fetcher performs an offline-first fetch keyed by request identity
type Fetcher interface {
	Fetch(ctx context.Context, requestKey string) (*cache.Response, error)
}

// Source reads the collection document
type Source struct {
	fetcher Fetcher
	path    string
}

// NewSource creates a content source reading from the given path
func NewSource(fetcher Fetcher, path string) *Source {
	if path == "" {
		path = DefaultPath
	}
	return &Source{fetcher: fetcher, path: path}
}

// Load fetches and parses the collection. Malformed documents are an error
// to the caller, there is no partial recovery.
func (s *Source) Load(ctx context.Context) (*domain.Collection, error) {
	resp, err := s.fetcher.Fetch(ctx, s.path)
	if err != nil {
		return nil, fmt.Errorf("fetch collection: %w", err)
	}
	if resp.Status != http.StatusOK {
		return nil, fmt.Errorf("fetch collection: unexpected status %d", resp.Status)
	}

	var collection domain.Collection
	if err := json.Unmarshal(resp.Body, &collection); err != nil {
		return nil, fmt.Errorf("parse collection: %w", err)
	}

	if resp.FromCache {
		lgr.Printf("[DEBUG] collection loaded from cache, %d items", len(collection.Items))
	}
	return &collection, nil
}
