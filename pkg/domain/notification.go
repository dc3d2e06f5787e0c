package domain

import "fmt"

// NotificationSettings is the persisted daily notification configuration.
// Stored as JSON under the "meditation-notification-settings" key.
type NotificationSettings struct {
	Enabled bool `json:"enabled"`
	Hour    int  `json:"hour"`
	Minute  int  `json:"minute"`
}

// DefaultNotificationSettings returns the out-of-the-box configuration
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{Enabled: false, Hour: 8, Minute: 0}
}

// Validate rejects out-of-range schedule values. Values are never clamped,
// the caller gets an error and the previous settings stay in effect.
func (s NotificationSettings) Validate() error {
	if s.Hour < 0 || s.Hour > 23 {
		return fmt.Errorf("hour must be in [0,23], got %d", s.Hour)
	}
	switch s.Minute {
	case 0, 15, 30, 45:
		return nil
	default:
		return fmt.Errorf("minute must be one of 0, 15, 30 or 45, got %d", s.Minute)
	}
}

// NotificationData is the payload carried by a shown notification,
// used by the click protocol to deep-link back into the app.
type NotificationData struct {
	URL       string `json:"url"`
	ContentID int    `json:"contentId"`
}

// NotificationAction is a single action button on a notification
type NotificationAction struct {
	ID    string `json:"action"`
	Title string `json:"title"`
}

// Notification is the complete payload handed to the platform notifier.
// The surface is kept stable for compatibility: tag and renotify make
// repeated daily notifications replace each other instead of stacking.
type Notification struct {
	Title    string               `json:"title"`
	Body     string               `json:"body"`
	Icon     string               `json:"icon"`
	Badge    string               `json:"badge"`
	Tag      string               `json:"tag"`
	Renotify bool                 `json:"renotify"`
	Data     NotificationData     `json:"data"`
	Actions  []NotificationAction `json:"actions"`
}
