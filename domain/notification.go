package domain

import "time"

// NotificationType classifies how a notification is presented.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is a user-facing message. Read only ever flips false → true.
type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
	Type      NotificationType `json:"type"`
	// Link is an opaque route consumed by the router, e.g. "/tables".
	Link string `json:"link,omitempty"`
}
