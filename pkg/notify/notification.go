package notify

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/meditations/pkg/domain"
)

// notification surface constants, fixed for compatibility with the reader
// surface: the stable tag makes repeated notifications replace each other
const (
	NotificationTag = "daily-meditation"
	ActionOpen      = "open"
	ActionDismiss   = "dismiss"

	maxBodyLen  = 150
	truncateLen = 147
)

// strict policy strips all markup from passage text before display
var sanitizer = bluemonday.StrictPolicy()

// buildNotification renders the notification payload for one meditation
func buildNotification(m domain.Meditation, cfg WorkerConfig) domain.Notification {
	return domain.Notification{
		Title:    cfg.Title,
		Body:     truncateBody(sanitizer.Sanitize(m.Text)),
		Icon:     cfg.Icon,
		Badge:    cfg.Badge,
		Tag:      NotificationTag,
		Renotify: true,
		Data: domain.NotificationData{
			URL:       cfg.DeepLink,
			ContentID: m.ID,
		},
		Actions: []domain.NotificationAction{
			{ID: ActionOpen, Title: "Open"},
			{ID: ActionDismiss, Title: "Dismiss"},
		},
	}
}

// truncateBody cuts the passage at 147 characters plus ellipsis when it
// exceeds 150, otherwise keeps it intact
func truncateBody(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= maxBodyLen {
		return text
	}
	return string(runes[:truncateLen]) + "..."
}
