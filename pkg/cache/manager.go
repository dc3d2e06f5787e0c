// Package cache keeps a single versioned best-effort store of upstream
// responses so the app stays usable with no network. The strategy is
// network-first: a live response always wins, a captured one is served only
// when the upstream is unreachable.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/meditations/pkg/db"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/claimer.go -pkg mocks -skip-ensure -fmt goimports . ClientClaimer

// Store is the persistence backend for versioned cache stores
type Store interface {
	EnsureStore(ctx context.Context, name string) error
	StoreNames(ctx context.Context) ([]string, error)
	DeleteStore(ctx context.Context, name string) error
	PutEntry(ctx context.Context, e *db.CacheEntry) error
	GetEntry(ctx context.Context, storeName, requestKey string) (*db.CacheEntry, error)
}

// ClientClaimer takes control of already-open client sessions after a new
// version is activated, so no session is left orphaned on an old version
type ClientClaimer interface {
	Claim(ctx context.Context, version string)
}

// Response is the result of a Fetch, either live from upstream or replayed
// from the versioned store
type Response struct {
	Status    int
	Headers   http.Header
	Body      []byte
	FromCache bool
}

// Manager owns the versioned cache store lifecycle and the network-first
// fetch strategy
type Manager struct {
	store     Store
	clients   ClientClaimer
	client    *http.Client
	upstream  string
	version   string
	resources []string

	mu        sync.Mutex
	installed bool

	writes sync.WaitGroup // tracks detached write-through tasks
}

// Config holds cache manager configuration
type Config struct {
	Upstream  string        // base URL of the origin serving the app
	Version   string        // current cache version tag, e.g. meditations-v1
	Resources []string      // critical resources precached on install
	Timeout   time.Duration // per-request upstream timeout
}

// NewManager creates a cache manager for the given version tag. The claimer
// is optional, pass nil when no client sessions need claiming.
func NewManager(store Store, clients ClientClaimer, cfg Config) *Manager {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Manager{
		store:     store,
		clients:   clients,
		client:    &http.Client{Timeout: cfg.Timeout},
		upstream:  cfg.Upstream,
		version:   cfg.Version,
		resources: cfg.Resources,
	}
}

// Version returns the current cache version tag
func (m *Manager) Version() string { return m.version }

// Ready reports whether install completed and the manager signaled readiness
func (m *Manager) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.installed
}

// Install opens the store for the current version tag and populates it with
// the critical resource set. A store-open failure is fatal to install; the
// caller retries the whole lifecycle on next start. Readiness is signaled
// explicitly once population finishes, there is no waiting on a previous
// instance.
func (m *Manager) Install(ctx context.Context) error {
	if err := m.store.EnsureStore(ctx, m.version); err != nil {
		return fmt.Errorf("open cache store %s: %w", m.version, err)
	}

	retrier := repeater.NewBackoff(3, 250*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	for _, res := range m.resources {
		err := retrier.Do(ctx, func() error {
			return m.precache(ctx, res)
		})
		if err != nil {
			return fmt.Errorf("precache %s: %w", res, err)
		}
	}

	m.mu.Lock()
	m.installed = true
	m.mu.Unlock()

	lgr.Printf("[INFO] cache install complete, store %s with %d critical resources", m.version, len(m.resources))
	return nil
}

// Activate deletes every store whose name differs from the current version
// tag and only then claims open client sessions. After activation the set of
// store names is exactly the current version.
func (m *Manager) Activate(ctx context.Context) error {
	names, err := m.store.StoreNames(ctx)
	if err != nil {
		return fmt.Errorf("list cache stores: %w", err)
	}

	for _, name := range names {
		if name == m.version {
			continue
		}
		lgr.Printf("[INFO] deleting stale cache store %s", name)
		if err := m.store.DeleteStore(ctx, name); err != nil {
			return fmt.Errorf("delete stale store %s: %w", name, err)
		}
	}

	if m.clients != nil {
		m.clients.Claim(ctx, m.version)
	}
	lgr.Printf("[INFO] cache activated, current store %s", m.version)
	return nil
}

// Fetch attempts the network first. A 200 response is returned immediately
// while a copy is written into the store by a detached tracked task; any
// network failure falls back to the captured response. A miss on both
// propagates the network failure, no synthetic offline page is produced.
func (m *Manager) Fetch(ctx context.Context, requestKey string) (*Response, error) {
	resp, netErr := m.fetchUpstream(ctx, requestKey)
	if netErr == nil {
		if resp.Status == http.StatusOK {
			m.writeThrough(requestKey, resp)
		}
		return resp, nil
	}

	entry, err := m.store.GetEntry(ctx, m.version, requestKey)
	if err != nil {
		// no captured response, surface the original network failure
		return nil, fmt.Errorf("fetch %s: %w", requestKey, netErr)
	}

	lgr.Printf("[DEBUG] serving %s from cache store %s", requestKey, m.version)
	return &Response{
		Status:    entry.Status,
		Headers:   decodeHeaders(entry.Headers),
		Body:      entry.Body,
		FromCache: true,
	}, nil
}

// WaitWrites blocks until all detached write-through tasks settle.
// The write-through itself never delays returning a response to the caller.
func (m *Manager) WaitWrites() {
	m.writes.Wait()
}

// precache fetches one critical resource and stores it synchronously
func (m *Manager) precache(ctx context.Context, requestKey string) error {
	resp, err := m.fetchUpstream(ctx, requestKey)
	if err != nil {
		return err
	}
	if resp.Status != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.Status)
	}

	entry := &db.CacheEntry{
		StoreName:  m.version,
		RequestKey: requestKey,
		Status:     resp.Status,
		Headers:    encodeHeaders(resp.Headers),
		Body:       resp.Body,
	}
	if err := m.store.PutEntry(ctx, entry); err != nil {
		return fmt.Errorf("store %s: %w", requestKey, err)
	}
	return nil
}

// writeThrough spawns a tracked task capturing a copy of a successful
// response. Failures are logged only, the cache is best-effort.
func (m *Manager) writeThrough(requestKey string, resp *Response) {
	body := make([]byte, len(resp.Body))
	copy(body, resp.Body)

	entry := &db.CacheEntry{
		StoreName:  m.version,
		RequestKey: requestKey,
		Status:     resp.Status,
		Headers:    encodeHeaders(resp.Headers),
		Body:       body,
	}

	m.writes.Add(1)
	go func() {
		defer m.writes.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := m.store.PutEntry(ctx, entry); err != nil {
			lgr.Printf("[WARN] cache write-through failed for %s: %v", requestKey, err)
		}
	}()
}

// fetchUpstream performs the actual network request against the origin
func (m *Manager) fetchUpstream(ctx context.Context, requestKey string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.upstream+requestKey, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("make request: %w", err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &Response{Status: resp.StatusCode, Headers: resp.Header.Clone(), Body: body}, nil
}

func encodeHeaders(h http.Header) string {
	data, err := json.Marshal(h)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func decodeHeaders(s string) http.Header {
	h := http.Header{}
	if err := json.Unmarshal([]byte(s), &h); err != nil {
		return http.Header{}
	}
	return h
}
