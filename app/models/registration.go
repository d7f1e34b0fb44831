package models

import "time"

// Registration ties a user to an event. At most one registration may exist per
// (user, event) pair at any time.
type Registration struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	EventID      string    `json:"event_id"`
	RegisteredAt time.Time `json:"registered_at"`
	Attended     bool      `json:"attended"`
	QRCode       string    `json:"qr_code,omitempty"`
}
