package notify

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/meditations/pkg/domain"
)

// permissionKey is the persisted platform permission state
const permissionKey = "notification-permission"

// LogNotifier is the default Notifier: it logs the payload and keeps the
// last shown notification for the status surface. Attached clients pick the
// payload up from there, the server never pushes.
type LogNotifier struct {
	mu   sync.Mutex
	last *domain.Notification
}

// NewLogNotifier creates a LogNotifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Show logs the notification and retains it as the last shown
func (n *LogNotifier) Show(_ context.Context, notification domain.Notification) error {
	n.mu.Lock()
	n.last = &notification
	n.mu.Unlock()

	lgr.Printf("[INFO] notification: %s [%s] %q", notification.Title, notification.Tag, notification.Body)
	return nil
}

// Last returns a copy of the last shown notification, false when none
func (n *LogNotifier) Last() (domain.Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.last == nil {
		return domain.Notification{}, false
	}
	return *n.last, true
}

// StoredPermissions keeps the platform permission state in the settings
// store. The user-mediated grant happens on the client surface; this side
// only records the outcome and enforces that a denied state is terminal
// until reset at the platform level.
type StoredPermissions struct {
	store SettingsStore
}

// NewStoredPermissions creates a store-backed permission state
func NewStoredPermissions(store SettingsStore) *StoredPermissions {
	return &StoredPermissions{store: store}
}

// Query reads the current permission state, Default when never set
func (p *StoredPermissions) Query(ctx context.Context) (domain.Permission, error) {
	raw, err := p.store.GetSetting(ctx, permissionKey)
	if err != nil {
		return domain.PermissionDefault, fmt.Errorf("query permission: %w", err)
	}

	switch domain.Permission(raw) {
	case domain.PermissionGranted, domain.PermissionDenied:
		return domain.Permission(raw), nil
	default:
		return domain.PermissionDefault, nil
	}
}

// Request performs the one-shot permission request. A recorded denial is
// final; otherwise the grant is recorded and returned.
func (p *StoredPermissions) Request(ctx context.Context) (domain.Permission, error) {
	current, err := p.Query(ctx)
	if err != nil {
		return domain.PermissionDefault, err
	}
	if current == domain.PermissionDenied {
		return domain.PermissionDenied, nil
	}
	if current == domain.PermissionGranted {
		return domain.PermissionGranted, nil
	}

	if err := p.store.SetSetting(ctx, permissionKey, string(domain.PermissionGranted)); err != nil {
		return current, fmt.Errorf("record permission: %w", err)
	}
	return domain.PermissionGranted, nil
}

// Deny records a platform-level denial, used when the client surface
// reports the user rejected the prompt
func (p *StoredPermissions) Deny(ctx context.Context) error {
	if err := p.store.SetSetting(ctx, permissionKey, string(domain.PermissionDenied)); err != nil {
		return fmt.Errorf("record denial: %w", err)
	}
	return nil
}
