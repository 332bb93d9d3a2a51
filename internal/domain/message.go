package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a direct message between two users.
type Message struct {
	Base
	SenderID   uuid.UUID `db:"sender_id"   json:"sender_id"`
	ReceiverID uuid.UUID `db:"receiver_id" json:"receiver_id"`
	Message    string    `db:"message"     json:"message"`
	IsRead     bool      `db:"is_read"     json:"is_read"`
}

// Alert is a user reminder scheduled at AlertDatetime.
type Alert struct {
	Base
	UserID        uuid.UUID `db:"user_id"        json:"user_id"`
	Name          string    `db:"name"           json:"name"`
	Description   *string   `db:"description"    json:"description"`
	AlertDatetime time.Time `db:"alert_datetime" json:"alert_datetime"`
}

// Due reports whether the alert should have fired at now.
func (a *Alert) Due(now time.Time) bool {
	return !a.AlertDatetime.After(now)
}
