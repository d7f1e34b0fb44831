package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"campus-events/app/models"
	"campus-events/app/store"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// EventService governs the event lifecycle: creation, admin approval and
// rejection, cancellation and (force-)deletion with cascades.
type EventService struct {
	store    *store.Store
	notifier Notifier
}

func NewEventService(st *store.Store, notifier Notifier) *EventService {
	return &EventService{store: st, notifier: notifier}
}

type CreateEventInput struct {
	Title         string    `json:"title" validate:"required"`
	Description   string    `json:"description" validate:"required"`
	Venue         string    `json:"venue" validate:"required"`
	StartDate     time.Time `json:"start_date" validate:"required"`
	EndDate       time.Time `json:"end_date" validate:"required"`
	Category      string    `json:"category" validate:"required"`
	MaxAttendees  int       `json:"max_attendees" validate:"min=0"`
	IsPaid        bool      `json:"is_paid"`
	Price         float64   `json:"price" validate:"min=0"`
	IsCompetition bool      `json:"is_competition"`
	TeamSizeMin   int       `json:"team_size_min" validate:"min=0"`
	TeamSizeMax   int       `json:"team_size_max" validate:"min=0"`
	ImagePath     string    `json:"image_path"`
}

// Create stores a new pending event for the organizer. Start must lie in the
// future and strictly before end. Venue conflicts are not checked.
func (s *EventService) Create(organizerID string, in CreateEventInput) (*models.Event, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !in.StartDate.Before(in.EndDate) {
		return nil, fmt.Errorf("%w: end date must be after start date", ErrValidation)
	}
	if !in.StartDate.After(time.Now()) {
		return nil, fmt.Errorf("%w: start date must be in the future", ErrValidation)
	}

	event := &models.Event{
		ID:            uuid.New().String(),
		Title:         in.Title,
		Description:   in.Description,
		OrganizerID:   organizerID,
		Venue:         in.Venue,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		Category:      in.Category,
		MaxAttendees:  in.MaxAttendees,
		Status:        models.EventPending,
		IsPaid:        in.IsPaid,
		Price:         in.Price,
		IsCompetition: in.IsCompetition,
		TeamSizeMin:   in.TeamSizeMin,
		TeamSizeMax:   in.TeamSizeMax,
		ImagePath:     in.ImagePath,
		CreatedAt:     time.Now(),
	}

	var created models.Event
	err := s.store.Update(func(d *store.Data) error {
		if _, ok := d.Users[organizerID]; !ok {
			return fmt.Errorf("%w: organizer", ErrNotFound)
		}
		d.Events[event.ID] = event
		created = *event
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Approve moves a pending event to approved and notifies the organizer.
func (s *EventService) Approve(eventID string) error {
	var organizerID, title string
	err := s.store.Update(func(d *store.Data) error {
		event, ok := d.Events[eventID]
		if !ok {
			return fmt.Errorf("%w: event", ErrNotFound)
		}
		if event.Status != models.EventPending {
			return fmt.Errorf("%w: event is not pending approval", ErrInvalidState)
		}
		event.Status = models.EventApproved
		organizerID, title = event.OrganizerID, event.Title
		return nil
	})
	if err != nil {
		return err
	}
	s.notifier.Notify(organizerID, "Event Approved",
		fmt.Sprintf("Your event %q has been approved!", title))
	return nil
}

// Reject moves a pending event to rejected, recording the reason.
func (s *EventService) Reject(eventID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		reason = "No reason provided"
	}
	var organizerID, title string
	err := s.store.Update(func(d *store.Data) error {
		event, ok := d.Events[eventID]
		if !ok {
			return fmt.Errorf("%w: event", ErrNotFound)
		}
		if event.Status != models.EventPending {
			return fmt.Errorf("%w: event is not pending approval", ErrInvalidState)
		}
		event.Status = models.EventRejected
		event.RejectionReason = reason
		organizerID, title = event.OrganizerID, event.Title
		return nil
	})
	if err != nil {
		return err
	}
	s.notifier.Notify(organizerID, "Event Rejected",
		fmt.Sprintf("Your event %q has been rejected. Reason: %s", title, reason))
	return nil
}

// Cancel marks the event cancelled regardless of its prior status and notifies
// every registered user. Returns how many users were notified.
func (s *EventService) Cancel(organizerID, eventID string) (int, error) {
	var title string
	var notifyIDs []string
	err := s.store.Update(func(d *store.Data) error {
		event, ok := d.Events[eventID]
		if !ok {
			return fmt.Errorf("%w: event", ErrNotFound)
		}
		if event.OrganizerID != organizerID {
			return fmt.Errorf("%w: not the event organizer", ErrUnauthorized)
		}
		now := time.Now()
		event.Status = models.EventCancelled
		event.CancelledAt = &now
		title = event.Title
		for _, reg := range d.RegistrationsForEvent(eventID) {
			if _, ok := d.Users[reg.UserID]; ok {
				notifyIDs = append(notifyIDs, reg.UserID)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	for _, id := range notifyIDs {
		s.notifier.Notify(id, "Event Cancelled",
			fmt.Sprintf("The event %q has been cancelled by the organizer.", title))
	}
	return len(notifyIDs), nil
}

// Delete removes an event and all dependent records. Approved events that
// already have attendees must be cancelled or force-deleted instead.
func (s *EventService) Delete(organizerID, eventID string) error {
	return s.store.Update(func(d *store.Data) error {
		event, ok := d.Events[eventID]
		if !ok {
			return fmt.Errorf("%w: event", ErrNotFound)
		}
		if event.OrganizerID != organizerID {
			return fmt.Errorf("%w: not the event organizer", ErrUnauthorized)
		}
		if event.Status == models.EventApproved && event.CurrentAttendees > 0 {
			return fmt.Errorf("%w: event has registered participants, cancel or force delete instead", ErrInvalidState)
		}
		d.DeleteEventCascade(eventID)
		return nil
	})
}

// ForceDelete removes an event unconditionally, notifying every registered
// user first. Returns how many users were notified.
func (s *EventService) ForceDelete(organizerID, eventID string) (int, error) {
	var title string
	var notifyIDs []string
	err := s.store.Update(func(d *store.Data) error {
		event, ok := d.Events[eventID]
		if !ok {
			return fmt.Errorf("%w: event", ErrNotFound)
		}
		if event.OrganizerID != organizerID {
			return fmt.Errorf("%w: not the event organizer", ErrUnauthorized)
		}
		title = event.Title
		for _, reg := range d.RegistrationsForEvent(eventID) {
			if _, ok := d.Users[reg.UserID]; ok {
				notifyIDs = append(notifyIDs, reg.UserID)
			}
		}
		d.DeleteEventCascade(eventID)
		return nil
	})
	if err != nil {
		return 0, err
	}
	for _, id := range notifyIDs {
		s.notifier.Notify(id, "Event Deleted",
			fmt.Sprintf("The event %q has been permanently deleted by the organizer.", title))
	}
	return len(notifyIDs), nil
}

// Get returns the event by id.
func (s *EventService) Get(eventID string) (*models.Event, error) {
	var event *models.Event
	err := s.store.View(func(d *store.Data) error {
		e, ok := d.Events[eventID]
		if !ok {
			return fmt.Errorf("%w: event", ErrNotFound)
		}
		clone := *e
		event = &clone
		return nil
	})
	return event, err
}

// EventWithStats pairs an event with its registration count.
type EventWithStats struct {
	Event         models.Event `json:"event"`
	Registrations int          `json:"registrations"`
}

// ByOrganizer returns the organizer's events with registration counts, newest
// first.
func (s *EventService) ByOrganizer(organizerID string) ([]EventWithStats, error) {
	var out []EventWithStats
	err := s.store.View(func(d *store.Data) error {
		for _, e := range d.EventsByOrganizer(organizerID) {
			out = append(out, EventWithStats{
				Event:         *e,
				Registrations: len(d.RegistrationsForEvent(e.ID)),
			})
		}
		return nil
	})
	return out, err
}

// EventFilter narrows the approved-events listing.
type EventFilter struct {
	Category string
	Search   string
	Date     string // "today", "this_week" or "this_month"
}

// Approved lists approved events matching the filter, soonest first.
func (s *EventService) Approved(filter EventFilter) ([]models.Event, error) {
	var out []models.Event
	err := s.store.View(func(d *store.Data) error {
		for _, e := range d.Events {
			if e.Status != models.EventApproved {
				continue
			}
			if !matchesFilter(e, filter) {
				continue
			}
			out = append(out, *e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out, nil
}

func matchesFilter(e *models.Event, filter EventFilter) bool {
	if filter.Category != "" && e.Category != filter.Category {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(e.Title), needle) &&
			!strings.Contains(strings.ToLower(e.Description), needle) {
			return false
		}
	}
	switch filter.Date {
	case "today":
		now := time.Now()
		y1, m1, d1 := e.StartDate.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case "this_week":
		now := time.Now()
		y, m, d := now.Date()
		dayStart := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
		return !e.StartDate.Before(dayStart) && e.StartDate.Before(dayStart.AddDate(0, 0, 7))
	case "this_month":
		now := time.Now()
		return e.StartDate.Year() == now.Year() && e.StartDate.Month() == now.Month()
	}
	return true
}

// Upcoming lists approved events starting after now, soonest first, capped at
// limit (0 means no cap).
func (s *EventService) Upcoming(limit int) ([]models.Event, error) {
	events, err := s.Approved(EventFilter{})
	if err != nil {
		return nil, err
	}
	var out []models.Event
	now := time.Now()
	for _, e := range events {
		if e.StartDate.After(now) {
			out = append(out, e)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Categories returns the distinct categories of approved events.
func (s *EventService) Categories() ([]string, error) {
	seen := make(map[string]bool)
	err := s.store.View(func(d *store.Data) error {
		for _, e := range d.Events {
			if e.Status == models.EventApproved {
				seen[e.Category] = true
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

// EventWithOrganizer pairs an event with its organizer for admin review.
type EventWithOrganizer struct {
	Event     models.Event `json:"event"`
	Organizer models.User  `json:"organizer"`
}

// AllForReview lists every event with its organizer, pending events first,
// newest first within each group.
func (s *EventService) AllForReview() ([]EventWithOrganizer, error) {
	var out []EventWithOrganizer
	err := s.store.View(func(d *store.Data) error {
		for _, e := range d.Events {
			item := EventWithOrganizer{Event: *e}
			if u, ok := d.Users[e.OrganizerID]; ok {
				item.Organizer = *u
			}
			out = append(out, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		pi := out[i].Event.Status == models.EventPending
		pj := out[j].Event.Status == models.EventPending
		if pi != pj {
			return pi
		}
		return out[i].Event.CreatedAt.After(out[j].Event.CreatedAt)
	})
	return out, nil
}

// AnnounceResults flags a competition's results as announced.
func (s *EventService) AnnounceResults(organizerID, eventID string) error {
	return s.store.Update(func(d *store.Data) error {
		event, ok := d.Events[eventID]
		if !ok {
			return fmt.Errorf("%w: event", ErrNotFound)
		}
		if event.OrganizerID != organizerID {
			return fmt.Errorf("%w: not the event organizer", ErrUnauthorized)
		}
		now := time.Now()
		event.ResultsAnnounced = true
		event.ResultsAnnouncedAt = &now
		return nil
	})
}
