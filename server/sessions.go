package server

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/meditations/pkg/notify"
)

// Sessions is the in-memory registry of open client sessions. It backs the
// client-enumeration surface of the notification click protocol (list,
// focus, open) and is claimed by the cache manager on activation so no
// session stays on a stale version.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*session
	seq      int64
	version  string   // controlling cache version after claim
	opened   []string // URLs opened on behalf of notifications
}

// NewSessions creates an empty session registry
func NewSessions() *Sessions {
	return &Sessions{sessions: map[string]*session{}}
}

// Register adds a session for the given client URL and returns its id
func (s *Sessions) Register(url string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	id := fmt.Sprintf("session-%d", s.seq)
	s.sessions[id] = &session{id: id, url: url, registry: s}
	lgr.Printf("[DEBUG] session %s registered for %s", id, url)
	return id
}

// Unregister removes a session; unknown ids are ignored
func (s *Sessions) Unregister(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// List returns all open sessions in stable id order
func (s *Sessions) List(_ context.Context) []notify.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	clients := make([]notify.Client, 0, len(ids))
	for _, id := range ids {
		clients = append(clients, s.sessions[id])
	}
	return clients
}

// OpenWindow records a request to open a new client session at the URL
func (s *Sessions) OpenWindow(_ context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opened = append(s.opened, url)
	lgr.Printf("[INFO] open window requested for %s", url)
	return nil
}

// Claim takes control of all open sessions for the given cache version
func (s *Sessions) Claim(_ context.Context, version string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.version = version
	lgr.Printf("[INFO] claimed %d sessions for %s", len(s.sessions), version)
}

// Controlled returns the cache version controlling the sessions, empty
// before the first activation
func (s *Sessions) Controlled() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Opened returns the URLs opened on behalf of notification clicks
func (s *Sessions) Opened() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.opened...)
}

// session is one open client connection
type session struct {
	id        string
	url       string
	registry  *Sessions
	focusedAt time.Time
}

// URL returns the client location used for base-path scoping
func (c *session) URL() string { return c.url }

// Focus brings the session to the foreground
func (c *session) Focus(_ context.Context) error {
	c.registry.mu.Lock()
	defer c.registry.mu.Unlock()
	c.focusedAt = time.Now()
	lgr.Printf("[INFO] session %s focused", c.id)
	return nil
}

// Focused reports whether the session was ever brought to the foreground
func (c *session) Focused() bool {
	c.registry.mu.Lock()
	defer c.registry.mu.Unlock()
	return !c.focusedAt.IsZero()
}
