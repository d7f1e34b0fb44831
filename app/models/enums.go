package models

// Role defines the account roles recognised by the platform.
type Role string

const (
	RoleStudent   Role = "student"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// EventStatus defines the lifecycle states of an event.
type EventStatus string

const (
	EventPending   EventStatus = "pending"
	EventApproved  EventStatus = "approved"
	EventRejected  EventStatus = "rejected"
	EventCancelled EventStatus = "cancelled"
)

// TeamStatus defines the possible states of a competition team.
type TeamStatus string

const (
	TeamActive    TeamStatus = "active"
	TeamDisbanded TeamStatus = "disbanded"
)

// SubmissionStatus defines the evaluation states of a team submission.
type SubmissionStatus string

const (
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionEvaluated SubmissionStatus = "evaluated"
)
