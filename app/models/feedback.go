package models

import "time"

// Feedback is a post-event rating left by an attendee. Only users with an
// attended registration may leave feedback, one entry per (user, event).
type Feedback struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id"`
	Rating    int       `json:"rating" validate:"min=1,max=5"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
