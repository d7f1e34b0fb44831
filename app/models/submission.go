package models

import "time"

// Submission is a team's competition entry. A team has at most one submission
// per event; re-submitting overwrites the existing record. Score and Rank stay
// nil until an organizer evaluates the entry.
type Submission struct {
	ID             string           `json:"id"`
	TeamID         string           `json:"team_id"`
	EventID        string           `json:"event_id"`
	SubmissionType string           `json:"submission_type"`
	Content        string           `json:"content"`
	Description    string           `json:"description"`
	Status         SubmissionStatus `json:"status"`
	Score          *float64         `json:"score,omitempty"`
	Rank           *int             `json:"rank,omitempty"`
	Feedback       string           `json:"feedback,omitempty"`
	SubmittedAt    time.Time        `json:"submitted_at"`
}
