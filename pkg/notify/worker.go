package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/meditations/pkg/bridge"
	"github.com/umputun/meditations/pkg/daily"
	"github.com/umputun/meditations/pkg/domain"
)

//go:generate moq -out mocks/content_source.go -pkg mocks -skip-ensure -fmt goimports . ContentSource
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// ContentSource loads the meditation collection, offline-first
type ContentSource interface {
	Load(ctx context.Context) (*domain.Collection, error)
}

// Notifier shows a notification on the host platform
type Notifier interface {
	Show(ctx context.Context, n domain.Notification) error
}

// Client is one open client session
type Client interface {
	URL() string
	Focus(ctx context.Context) error
}

// Clients enumerates open client sessions scoped to this app and opens new ones
type Clients interface {
	List(ctx context.Context) []Client
	OpenWindow(ctx context.Context, url string) error
}

// Worker is the background context: it drains the bridge, renders the daily
// notification and handles notification clicks. It recomputes the daily index
// on its own, there is no shared memory with the foreground scheduler.
type Worker struct {
	bridge   *bridge.Bridge
	content  ContentSource
	notifier Notifier
	clients  Clients
	cfg      WorkerConfig
	now      func() time.Time
}

// WorkerConfig holds the fixed notification surface
type WorkerConfig struct {
	BasePath string // app scope used to match open client sessions
	DeepLink string // URL carried in the notification data payload
	Title    string
	Icon     string
	Badge    string
}

// NewWorker creates the background worker
func NewWorker(b *bridge.Bridge, content ContentSource, notifier Notifier, clients Clients, cfg WorkerConfig) *Worker {
	if cfg.Title == "" {
		cfg.Title = "Meditation of the Day"
	}
	if cfg.Icon == "" {
		cfg.Icon = "/icons/icon-192.png"
	}
	if cfg.Badge == "" {
		cfg.Badge = "/icons/icon-72.png"
	}
	if cfg.DeepLink == "" {
		cfg.DeepLink = cfg.BasePath
	}
	return &Worker{bridge: b, content: content, notifier: notifier, clients: clients, cfg: cfg, now: time.Now}
}

// Run drains bridge messages until the context is canceled or the bridge closes
func (w *Worker) Run(ctx context.Context) {
	lgr.Printf("[INFO] notification worker started")
	for {
		select {
		case <-ctx.Done():
			return
		case env, ok := <-w.bridge.Receive():
			if !ok {
				lgr.Printf("[INFO] bridge closed, notification worker stopped")
				return
			}
			w.handle(ctx, env)
		}
	}
}

// handle dispatches one envelope; unknown kinds are rejected, not ignored
func (w *Worker) handle(ctx context.Context, env *bridge.Envelope) {
	switch env.Msg.Kind {
	case bridge.KindShowNotification:
		if err := w.ShowDaily(ctx); err != nil {
			lgr.Printf("[WARN] failed to show daily notification: %v", err)
			env.Reply(bridge.Ack{Success: false, Reason: err.Error()})
			return
		}
		env.Reply(bridge.Ack{Success: true})
	case bridge.KindScheduleNotification:
		// advisory: the foreground owns the timer, we only acknowledge the
		// copied schedule so the sender can treat the change as applied
		p := env.Msg.Schedule
		lgr.Printf("[DEBUG] schedule advisory: enabled %v at %02d:%02d", p.Enabled, p.Hour, p.Minute)
		env.Reply(bridge.Ack{Success: true})
	default:
		lgr.Printf("[WARN] rejecting message of unknown kind %q", env.Msg.Kind)
		env.Reply(bridge.Ack{Success: false, Reason: fmt.Sprintf("unknown kind %q", env.Msg.Kind)})
	}
}

// ShowDaily loads the collection, independently derives today's index and
// shows the notification
func (w *Worker) ShowDaily(ctx context.Context) error {
	collection, err := w.content.Load(ctx)
	if err != nil {
		return fmt.Errorf("load collection: %w", err)
	}
	if len(collection.Items) == 0 {
		return fmt.Errorf("empty collection")
	}

	meditation := collection.Items[daily.Index(w.now(), len(collection.Items))]
	notification := buildNotification(meditation, w.cfg)

	if err := w.notifier.Show(ctx, notification); err != nil {
		return fmt.Errorf("show notification: %w", err)
	}

	lgr.Printf("[INFO] daily notification shown, meditation %d", meditation.ID)
	return nil
}

// HandleClick implements the notification-click protocol: dismiss closes
// only, any other interaction focuses an open session scoped to the app or
// opens a new one at the deep-link URL.
func (w *Worker) HandleClick(ctx context.Context, action string, data domain.NotificationData) error {
	if action == ActionDismiss {
		return nil
	}

	for _, client := range w.clients.List(ctx) {
		if strings.HasPrefix(client.URL(), w.cfg.BasePath) {
			return client.Focus(ctx)
		}
	}

	url := data.URL
	if url == "" {
		url = w.cfg.BasePath
	}
	return w.clients.OpenWindow(ctx, url)
}
