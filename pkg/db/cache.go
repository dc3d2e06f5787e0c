package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// ErrEntryNotFound is returned when a request key has no captured response
// in the requested store
var ErrEntryNotFound = errors.New("cache entry not found")

// CacheEntry is a captured upstream response keyed by request identity
type CacheEntry struct {
	StoreName  string    `db:"store_name"`
	RequestKey string    `db:"request_key"`
	Status     int       `db:"status"`
	Headers    string    `db:"headers"`
	Body       []byte    `db:"body"`
	FetchedAt  time.Time `db:"fetched_at"`
}

// EnsureStore creates a cache store with the given name if it does not exist
func (db *DB) EnsureStore(ctx context.Context, name string) error {
	query := `INSERT INTO cache_stores (name) VALUES (?) ON CONFLICT(name) DO NOTHING`
	if _, err := db.conn.ExecContext(ctx, query, name); err != nil {
		return fmt.Errorf("ensure store %q: %w", name, err)
	}
	return nil
}

// StoreNames returns the names of all existing cache stores
func (db *DB) StoreNames(ctx context.Context) ([]string, error) {
	var names []string
	err := db.conn.SelectContext(ctx, &names, `SELECT name FROM cache_stores ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return names, nil
}

// DeleteStore removes a cache store and all its entries
func (db *DB) DeleteStore(ctx context.Context, name string) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM cache_stores WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete store %q: %w", name, err)
	}
	return nil
}

// PutEntry writes a captured response into a store, replacing any previous
// capture for the same request key. Retries on SQLite lock contention.
func (db *DB) PutEntry(ctx context.Context, e *CacheEntry) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO cache_entries (store_name, request_key, status, headers, body, fetched_at)
			VALUES (:store_name, :request_key, :status, :headers, :body, datetime('now'))
			ON CONFLICT(store_name, request_key) DO UPDATE SET
				status = excluded.status,
				headers = excluded.headers,
				body = excluded.body,
				fetched_at = excluded.fetched_at
		`
		if _, err := db.conn.NamedExecContext(ctx, query, e); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("put cache entry: %w", err)}
		}
		return nil
	})
}

// GetEntry looks up a captured response by request key
func (db *DB) GetEntry(ctx context.Context, storeName, requestKey string) (*CacheEntry, error) {
	var entry CacheEntry
	query := `SELECT * FROM cache_entries WHERE store_name = ? AND request_key = ?`
	err := db.conn.GetContext(ctx, &entry, query, storeName, requestKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cache entry: %w", err)
	}
	return &entry, nil
}

// CountEntries returns the number of captured responses in a store
func (db *DB) CountEntries(ctx context.Context, storeName string) (int, error) {
	var count int
	err := db.conn.GetContext(ctx, &count, `SELECT COUNT(*) FROM cache_entries WHERE store_name = ?`, storeName)
	if err != nil {
		return 0, fmt.Errorf("count cache entries: %w", err)
	}
	return count, nil
}
