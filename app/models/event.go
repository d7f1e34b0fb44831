package models

import "time"

// Event represents a campus event submitted by an organizer. New events start
// out pending and only become visible to students once an admin approves them.
type Event struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	OrganizerID      string      `json:"organizer_id"`
	Venue            string      `json:"venue"`
	StartDate        time.Time   `json:"start_date"`
	EndDate          time.Time   `json:"end_date"`
	Category         string      `json:"category"`
	MaxAttendees     int         `json:"max_attendees"` // 0 means uncapped
	CurrentAttendees int         `json:"current_attendees"`
	Status           EventStatus `json:"status"`
	RejectionReason  string      `json:"rejection_reason,omitempty"`
	ImagePath        string      `json:"image_path,omitempty"`
	IsPaid           bool        `json:"is_paid"`
	Price            float64     `json:"price"`
	IsCompetition    bool        `json:"is_competition"`
	TeamSizeMin      int         `json:"team_size_min,omitempty"`
	TeamSizeMax      int         `json:"team_size_max,omitempty"`
	ResultsAnnounced bool        `json:"results_announced"`

	ResultsAnnouncedAt *time.Time `json:"results_announced_at,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}
