package model

import "time"

// Notification types recognized by the availability check.
const (
	NotificationTypeAvailable = "AVAILABLE"
	NotificationTypeFull      = "FULL"
)

type Notification struct {
	ID        int       `json:"id" db:"id"`
	Type      string    `json:"type" db:"type"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type UpdateNotificationParams struct {
	Type    *string
	Message *string
}
