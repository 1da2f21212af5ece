// internal/domain/notification.go
package domain

import "time"

// Notification is a fire-and-forget user message. Emission is best-effort:
// a notification-store failure must never abort a financial settlement.
type Notification struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Message   string    `db:"message" json:"message"`
	Type      string    `db:"type" json:"type"`
	Read      bool      `db:"read" json:"read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
