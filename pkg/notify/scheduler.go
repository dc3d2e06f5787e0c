// Package notify implements the daily notification core: a foreground
// scheduler owning the permission state machine and the single
// self-perpetuating timer, and a background worker that renders and shows
// notifications. The two halves coordinate only through the message bridge.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/meditations/pkg/bridge"
	"github.com/umputun/meditations/pkg/domain"
)

//go:generate moq -out mocks/permissions.go -pkg mocks -skip-ensure -fmt goimports . Permissions
//go:generate moq -out mocks/settings_store.go -pkg mocks -skip-ensure -fmt goimports . SettingsStore
//go:generate moq -out mocks/dispatcher.go -pkg mocks -skip-ensure -fmt goimports . Dispatcher

// SettingsKey is the persisted key-value entry holding the scheduler settings
const SettingsKey = "meditation-notification-settings"

var (
	// ErrUnsupported is returned by mutating operations on hosts without
	// notification capability
	ErrUnsupported = errors.New("notifications not supported on this host")
	// ErrPermissionDenied is returned when the user denied notifications;
	// the app never re-prompts, the state is reset at the platform level
	ErrPermissionDenied = errors.New("notification permission denied")
)

// Permissions is the platform notification-permission API. Query reads the
// current state, Request is user-mediated and effectively one-shot, Deny
// records a platform-level rejection reported by the client surface.
type Permissions interface {
	Query(ctx context.Context) (domain.Permission, error)
	Request(ctx context.Context) (domain.Permission, error)
	Deny(ctx context.Context) error
}

// SettingsStore persists the scheduler settings across restarts
type SettingsStore interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Dispatcher sends cross-context messages to the background worker
type Dispatcher interface {
	Post(ctx context.Context, msg bridge.Message) error
	Request(ctx context.Context, msg bridge.Message) (bridge.Ack, error)
}

// SettingsPatch is a partial settings update; nil fields keep their value
type SettingsPatch struct {
	Enabled *bool
	Hour    *int
	Minute  *int
}

// Scheduler owns the notification settings, the permission state machine and
// the timer. At most one timer is live per scheduler; every schedule change
// is a cancel-then-arm performed by the run loop in a single step.
type Scheduler struct {
	store    SettingsStore
	perms    Permissions
	dispatch Dispatcher
	now      func() time.Time

	updateMu sync.Mutex // serializes whole merge-persist-assign updates

	mu         sync.Mutex
	permission domain.Permission
	settings   domain.NotificationSettings
	nextFire   time.Time // authoritative next fire instant, zero when unarmed

	refresh chan struct{} // coalesced signal to the run loop
}

// NewScheduler creates the scheduler, loads persisted settings and reads the
// platform permission state. A missing or unparsable settings blob silently
// falls back to defaults. A nil Permissions puts the scheduler into the
// terminal Unsupported state where every mutating operation fails.
func NewScheduler(ctx context.Context, store SettingsStore, perms Permissions, dispatch Dispatcher) *Scheduler {
	s := &Scheduler{
		store:      store,
		perms:      perms,
		dispatch:   dispatch,
		now:        time.Now,
		permission: domain.PermissionUnsupported,
		settings:   domain.DefaultNotificationSettings(),
		refresh:    make(chan struct{}, 1),
	}

	if raw, err := store.GetSetting(ctx, SettingsKey); err == nil && raw != "" {
		var loaded domain.NotificationSettings
		if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
			lgr.Printf("[WARN] malformed notification settings, using defaults: %v", err)
		} else if err := loaded.Validate(); err != nil {
			lgr.Printf("[WARN] invalid persisted notification settings, using defaults: %v", err)
		} else {
			s.settings = loaded
		}
	}

	if perms != nil {
		state, err := perms.Query(ctx)
		if err != nil {
			lgr.Printf("[WARN] permission query failed, treating notifications as unsupported: %v", err)
		} else {
			s.permission = state
		}
	}

	lgr.Printf("[INFO] notification scheduler created, permission %s, enabled %v at %02d:%02d",
		s.permission, s.settings.Enabled, s.settings.Hour, s.settings.Minute)
	return s
}

// Run drives the scheduling loop until the context is canceled. Each
// iteration recomputes the single next fire instant from current state,
// cancels the previous timer and arms the new one as one step. On fire it
// dispatches the notification to the background context and immediately
// re-arms for the next day.
func (s *Scheduler) Run(ctx context.Context) {
	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		var timerC <-chan time.Time

		s.mu.Lock()
		armed := s.settings.Enabled && s.permission == domain.PermissionGranted
		if armed {
			s.nextFire = nextFireAt(s.now(), s.settings)
			timer.Reset(s.nextFire.Sub(s.now()))
			timerC = timer.C
			lgr.Printf("[INFO] notification armed for %s", s.nextFire.Format("2006-01-02 15:04"))
		} else {
			s.nextFire = time.Time{}
		}
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return
		case <-s.refresh:
			// schedule changed, cancel and recompute
			if timerC != nil && !timer.Stop() {
				<-timer.C
			}
		case <-timerC:
			s.fire(ctx)
		}
	}
}

// fire dispatches the notification to the background context. A dispatch
// failure is logged and does not abort the re-arm chain.
func (s *Scheduler) fire(ctx context.Context) {
	lgr.Printf("[INFO] daily notification fired")
	if err := s.dispatch.Post(ctx, bridge.Message{Kind: bridge.KindShowNotification}); err != nil {
		lgr.Printf("[WARN] notification dispatch failed: %v", err)
	}
}

// Permission returns the observed platform permission state
func (s *Scheduler) Permission() domain.Permission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.permission
}

// Settings returns a copy of the current settings
func (s *Scheduler) Settings() domain.NotificationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// NextFire returns the authoritative next fire instant, false when unarmed
func (s *Scheduler) NextFire() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextFire, !s.nextFire.IsZero()
}

// RequestPermission asks the user for notification permission. Denied is
// terminal from inside the app: once denied no further platform prompt is
// made until the user resets it at the platform level.
func (s *Scheduler) RequestPermission(ctx context.Context) (domain.Permission, error) {
	s.mu.Lock()
	current := s.permission
	s.mu.Unlock()

	switch current {
	case domain.PermissionUnsupported:
		return domain.PermissionUnsupported, ErrUnsupported
	case domain.PermissionGranted, domain.PermissionDenied:
		return current, nil
	}

	state, err := s.perms.Request(ctx)
	if err != nil {
		return current, fmt.Errorf("request permission: %w", err)
	}

	s.mu.Lock()
	s.permission = state
	s.mu.Unlock()

	lgr.Printf("[INFO] notification permission now %s", state)
	return state, nil
}

// SetEnabled toggles the daily notification. Enabling requires granted
// permission and implicitly requests it from the default state; enabling
// from the denied state fails. Disabling cancels the timer and is
// idempotent.
func (s *Scheduler) SetEnabled(ctx context.Context, enabled bool) error {
	return s.UpdateSettings(ctx, SettingsPatch{Enabled: &enabled})
}

// UpdateSettings merges the patch into the current settings, validates and
// persists the result and re-arms the timer atomically when enabled. Invalid
// values are rejected, never clamped, and leave the previous settings intact.
func (s *Scheduler) UpdateSettings(ctx context.Context, patch SettingsPatch) error {
	s.updateMu.Lock()
	defer s.updateMu.Unlock()

	s.mu.Lock()
	permission := s.permission
	merged := s.settings
	s.mu.Unlock()

	if permission == domain.PermissionUnsupported {
		return ErrUnsupported
	}

	if patch.Enabled != nil {
		merged.Enabled = *patch.Enabled
	}
	if patch.Hour != nil {
		merged.Hour = *patch.Hour
	}
	if patch.Minute != nil {
		merged.Minute = *patch.Minute
	}
	if err := merged.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if merged.Enabled {
		state, err := s.RequestPermission(ctx)
		if err != nil {
			return err
		}
		if state == domain.PermissionDenied {
			return ErrPermissionDenied
		}
		if state != domain.PermissionGranted {
			return fmt.Errorf("notification permission not granted: %s", state)
		}
	}

	if err := s.persist(ctx, merged); err != nil {
		return err
	}

	s.mu.Lock()
	s.settings = merged
	s.mu.Unlock()

	s.adviseBackground(ctx, merged)
	s.signalRefresh()
	return nil
}

// ReportPermission records a permission outcome observed on the client
// surface, where the real platform prompt lives. A granted report goes
// through the platform request so a recorded denial still wins; a denied
// report is recorded as terminal and disarms the timer on the next loop.
func (s *Scheduler) ReportPermission(ctx context.Context, state domain.Permission) error {
	s.mu.Lock()
	current := s.permission
	s.mu.Unlock()

	if current == domain.PermissionUnsupported {
		return ErrUnsupported
	}

	switch state {
	case domain.PermissionGranted:
		got, err := s.perms.Request(ctx)
		if err != nil {
			return fmt.Errorf("record granted permission: %w", err)
		}
		state = got
	case domain.PermissionDenied:
		if err := s.perms.Deny(ctx); err != nil {
			return fmt.Errorf("record denied permission: %w", err)
		}
	default:
		return fmt.Errorf("unexpected permission outcome: %s", state)
	}

	s.mu.Lock()
	s.permission = state
	s.mu.Unlock()

	lgr.Printf("[INFO] notification permission reported as %s", state)
	s.signalRefresh()
	return nil
}

// SendTest asks the background context to show a notification immediately.
// The result is reported to the caller; a failure never disturbs the daily
// re-arm chain.
func (s *Scheduler) SendTest(ctx context.Context) error {
	s.mu.Lock()
	permission := s.permission
	s.mu.Unlock()

	if permission == domain.PermissionUnsupported {
		return ErrUnsupported
	}
	if permission != domain.PermissionGranted {
		state, err := s.RequestPermission(ctx)
		if err != nil {
			return err
		}
		if state != domain.PermissionGranted {
			return ErrPermissionDenied
		}
	}

	if err := s.dispatch.Post(ctx, bridge.Message{Kind: bridge.KindShowNotification}); err != nil {
		return fmt.Errorf("send test notification: %w", err)
	}
	return nil
}

// persist stores the settings blob under the well-known key
func (s *Scheduler) persist(ctx context.Context, settings domain.NotificationSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := s.store.SetSetting(ctx, SettingsKey, string(data)); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	return nil
}

// adviseBackground copies the schedule to the background context and awaits
// the acknowledgment. Advisory only: timer ownership stays here, so an ack
// failure is logged but does not roll the change back.
func (s *Scheduler) adviseBackground(ctx context.Context, settings domain.NotificationSettings) {
	msg := bridge.Message{
		Kind: bridge.KindScheduleNotification,
		Schedule: &bridge.SchedulePayload{
			Hour:    settings.Hour,
			Minute:  settings.Minute,
			Enabled: settings.Enabled,
		},
	}
	ack, err := s.dispatch.Request(ctx, msg)
	if err != nil {
		lgr.Printf("[WARN] schedule advisory not acknowledged: %v", err)
		return
	}
	if !ack.Success {
		lgr.Printf("[WARN] schedule advisory rejected: %s", ack.Reason)
	}
}

func (s *Scheduler) signalRefresh() {
	select {
	case s.refresh <- struct{}{}:
	default: // refresh already pending
	}
}

// nextFireAt combines the local date of now with the configured hour:minute;
// an instant not strictly in the future moves to the next calendar day.
func nextFireAt(now time.Time, s domain.NotificationSettings) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.Hour, s.Minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
